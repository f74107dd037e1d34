package log_test

import (
	"sync"

	"github.com/erc7824/asynclog/pkg/log"
)

var _ log.SpanEventRecorder = &MockSpanEventRecorder{}

// RecordedSpanEvent is one event captured by MockSpanEventRecorder.
type RecordedSpanEvent struct {
	Name  string
	IsErr bool
	// KV holds the attributes as received, without the "msg" prefix.
	KV []any
}

// Value returns the value recorded under key.
func (e RecordedSpanEvent) Value(key string) (any, bool) {
	for i := 0; i+1 < len(e.KV); i += 2 {
		if k, ok := e.KV[i].(string); ok && k == key {
			return e.KV[i+1], true
		}
	}
	return nil, false
}

// MockSpanEventRecorder is a test double for SpanEventRecorder.
// It keeps every recorded event in order.
type MockSpanEventRecorder struct {
	traceID string
	spanID  string

	mu     sync.Mutex
	events []RecordedSpanEvent
}

// NewMockSpanEventRecorder creates a new mock with the specified trace and span IDs.
func NewMockSpanEventRecorder(traceID, spanID string) *MockSpanEventRecorder {
	return &MockSpanEventRecorder{
		traceID: traceID,
		spanID:  spanID,
	}
}

func (ser *MockSpanEventRecorder) TraceID() string {
	return ser.traceID
}

func (ser *MockSpanEventRecorder) SpanID() string {
	return ser.spanID
}

func (ser *MockSpanEventRecorder) RecordEvent(name string, keysAndValues ...any) {
	ser.record(name, false, keysAndValues)
}

func (ser *MockSpanEventRecorder) RecordError(name string, keysAndValues ...any) {
	ser.record(name, true, keysAndValues)
}

func (ser *MockSpanEventRecorder) record(name string, isErr bool, keysAndValues []any) {
	ser.mu.Lock()
	defer ser.mu.Unlock()

	kv := make([]any, len(keysAndValues))
	copy(kv, keysAndValues)
	ser.events = append(ser.events, RecordedSpanEvent{Name: name, IsErr: isErr, KV: kv})
}

// Events returns a copy of every recorded event.
func (ser *MockSpanEventRecorder) Events() []RecordedSpanEvent {
	ser.mu.Lock()
	defer ser.mu.Unlock()
	return append([]RecordedSpanEvent(nil), ser.events...)
}

// LastEventMetadata returns the most recent event's attributes with "msg" prepended.
func (ser *MockSpanEventRecorder) LastEventMetadata() []any {
	events := ser.Events()
	if len(events) == 0 {
		return nil
	}
	last := events[len(events)-1]
	return append([]any{"msg", last.Name}, last.KV...)
}

// HasError returns true if RecordError was called at least once.
func (ser *MockSpanEventRecorder) HasError() bool {
	for _, e := range ser.Events() {
		if e.IsErr {
			return true
		}
	}
	return false
}
