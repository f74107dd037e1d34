// Package span provides scope-paired markers for log streams.
//
// A span writes "<text>, span_mark=start" when it opens and "<text>, span_mark=end"
// when it is ended, both at trace level with target "span". Pairing relies on defer,
// so the end marker is written on normal return, early return and panic alike:
//
//	func handle(b log.Backend, id string) error {
//	    defer span.Newf(b, "handle", "id=%s", id).End()
//	    ...
//	}
//
// Nested spans close in LIFO order. Each marker is checked against the backend's
// Enabled on its own; a suppressed marker does not change the pairing.
//
// When the backend is a correlation decorator the markers carry the same task and
// thread fields as any other record, which is what lets a reader cut a stream into
// per-task timelines.
package span
