// Package caller resolves the source location of a logging call by walking the stack.
//
// Capture anchors the walk on its own frame, so the depth a caller passes is the
// number of frames between Capture and the call site it wants, independent of how
// runtime.Callers counts internally:
//
//	func logf(msg string) {
//	    fr, ok := caller.Capture(2) // 1 is logf, 2 is whoever called logf
//	    ...
//	}
//
// A miss is an expected outcome. Callers omit the location instead of failing.
package caller
