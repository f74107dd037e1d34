package log

import (
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ SpanEventRecorder = &OtelSpanEventRecorder{}

// OtelSpanEventRecorder is a SpanEventRecorder implementation that records
// events to an OpenTelemetry span. It converts log messages and their
// associated key-value pairs into span events and attributes.
type OtelSpanEventRecorder struct {
	span trace.Span
}

// NewOtelSpanEventRecorder creates a new OtelSpanEventRecorder that will
// record events to the provided OpenTelemetry span.
func NewOtelSpanEventRecorder(span trace.Span) *OtelSpanEventRecorder {
	return &OtelSpanEventRecorder{
		span: span,
	}
}

// TraceID returns the trace ID of the span as a string.
func (ser *OtelSpanEventRecorder) TraceID() string {
	return ser.span.SpanContext().TraceID().String()
}

// SpanID returns the span ID of the span as a string.
func (ser *OtelSpanEventRecorder) SpanID() string {
	return ser.span.SpanContext().SpanID().String()
}

// RecordEvent records an event to the span with the given name and attributes.
func (ser *OtelSpanEventRecorder) RecordEvent(name string, keysAndValues ...any) {
	ser.span.AddEvent(name, trace.WithAttributes(kvToOtelAttributes(keysAndValues...)...))
}

// RecordError records an error event to the span and sets the span status to error.
func (ser *OtelSpanEventRecorder) RecordError(name string, keysAndValues ...any) {
	ser.span.AddEvent(name, trace.WithAttributes(kvToOtelAttributes(keysAndValues...)...))
	ser.span.SetStatus(codes.Error, name)
}

func kvToOtelAttributes(keysAndValues ...any) []attribute.KeyValue {
	fields := FieldsFromKV(keysAndValues...)

	attributes := make([]attribute.KeyValue, 0, len(fields))
	for _, f := range fields {
		attributes = append(attributes, fieldToOtelAttribute(f))
	}
	return attributes
}

func fieldToOtelAttribute(f Field) attribute.KeyValue {
	switch v := f.Value.(type) {
	case bool:
		return attribute.Bool(f.Key, v)
	case int:
		return attribute.Int(f.Key, v)
	case int8:
		return attribute.Int64(f.Key, int64(v))
	case int16:
		return attribute.Int64(f.Key, int64(v))
	case int32:
		return attribute.Int64(f.Key, int64(v))
	case int64:
		return attribute.Int64(f.Key, v)
	case uint8:
		return attribute.Int64(f.Key, int64(v))
	case uint16:
		return attribute.Int64(f.Key, int64(v))
	case uint32:
		return attribute.Int64(f.Key, int64(v))
	case uint:
		return uintAttribute(f.Key, uint64(v))
	case uint64:
		// Task and thread ids are uint64.
		return uintAttribute(f.Key, v)
	case float32:
		return attribute.Float64(f.Key, float64(v))
	case float64:
		return attribute.Float64(f.Key, v)
	case string:
		return attribute.String(f.Key, v)
	case fmt.Stringer:
		return attribute.String(f.Key, v.String())
	default:
		return attribute.String(f.Key, fmt.Sprint(v))
	}
}

// uintAttribute keeps values that overflow int64 exact by rendering them as strings.
func uintAttribute(key string, v uint64) attribute.KeyValue {
	if v > math.MaxInt64 {
		return attribute.String(key, fmt.Sprint(v))
	}
	return attribute.Int64(key, int64(v))
}
