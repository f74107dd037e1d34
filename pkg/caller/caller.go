package caller

import (
	"reflect"
	"runtime"
	"strconv"
)

// Frame is one resolved stack frame. Zero fields are unknown.
type Frame struct {
	Function string
	File     string
	Line     int
}

// String renders the frame as file:line.
func (f Frame) String() string {
	if f.File == "" {
		return f.Function
	}
	return f.File + ":" + strconv.Itoa(f.Line)
}

// Resolver resolves the frame depth levels above Capture. Capture is the default.
type Resolver func(depth int) (Frame, bool)

var _ Resolver = Capture

const initialDepth = 32

var sentinel string

func init() {
	sentinel = runtime.FuncForPC(reflect.ValueOf(Capture).Pointer()).Name()
}

// Capture walks the calling goroutine's stack outward from Capture's own frame and
// returns the frame depth levels further out. Depth 0 is Capture itself and depth 1
// its caller. Inlined calls count as frames.
// The second result is false when depth is negative or the stack is shallower.
//
//go:noinline
func Capture(depth int) (Frame, bool) {
	if depth < 0 {
		return Frame{}, false
	}

	pcs := make([]uintptr, initialDepth)
	for {
		n := runtime.Callers(1, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, len(pcs)*2)
	}

	frames := runtime.CallersFrames(pcs)
	found := false
	remaining := depth
	for {
		fr, more := frames.Next()
		if !found {
			found = fr.Function == sentinel
		}
		if found {
			if remaining == 0 {
				return Frame{Function: fr.Function, File: fr.File, Line: fr.Line}, true
			}
			remaining--
		}
		if !more {
			return Frame{}, false
		}
	}
}

// Sentinel returns the fully qualified name of Capture.
func Sentinel() string {
	return sentinel
}
