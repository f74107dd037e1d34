// Package threadid identifies the goroutine that emits a record.
//
// Goroutines are the unit of execution the scheduler multiplexes onto OS threads,
// so the goroutine id is what separates interleaved log lines. The id comes from
// github.com/petermattis/goid, which reads it from the runtime's g structure
// without parsing a stack trace.
package threadid
