package log

import "time"

// Field is a structured key-value attribute attached to a Record.
type Field struct {
	Key   string
	Value any
}

// Metadata is the part of a Record a backend needs to decide whether it wants it.
type Metadata struct {
	Level Level
	// Target names the component that produced the record, usually the logger name.
	Target string
}

// Record is a single log entry. Every logging call produces exactly one.
// Records are passed by value; code that enriches a record builds a new one
// and never writes to the Fields slice it received.
type Record struct {
	Metadata
	Message string
	Fields  []Field
	// File and Line locate the logging call site. Zero values mean unknown.
	File string
	Line int
	// CallerSkip counts the wrapper frames between the call site and the API that
	// built the record. Stack-walking backends add it to their own depth.
	CallerSkip int
	Time       time.Time
}

// Field returns the value of the first field named key.
func (r Record) Field(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Backend is the sink that filters, formats and writes records.
// Implementations must be safe for concurrent use and must not block the caller
// on anything slower than their own output.
type Backend interface {
	// Enabled reports whether a record with the given metadata would be written.
	Enabled(meta Metadata) bool
	// Log writes the record. Callers are expected to have checked Enabled.
	Log(rec Record)
	// Flush writes out anything the backend buffers.
	Flush()
}

// Structured is implemented by backends that accept key-value fields natively.
// Backends that do not implement it, or report false, receive correlation
// metadata appended to the message text instead.
type Structured interface {
	Structured() bool
}

// IsStructured reports whether b takes fields rather than message suffixes.
func IsStructured(b Backend) bool {
	s, ok := b.(Structured)
	return ok && s.Structured()
}

var _ Backend = NoopBackend{}

// NoopBackend accepts nothing.
type NoopBackend struct{}

// Enabled always returns false.
func (NoopBackend) Enabled(Metadata) bool { return false }

// Log does nothing.
func (NoopBackend) Log(Record) {}

// Flush does nothing.
func (NoopBackend) Flush() {}
