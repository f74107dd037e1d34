package threadid

import "github.com/petermattis/goid"

// Current returns the id of the goroutine executing the call.
// Ids are never reused while the goroutine is alive. Current does not allocate.
func Current() uint64 {
	return uint64(goid.Get())
}
