package log

var _ Logger = SpanLogger{}

// Keys under which SpanLogger adds the OpenTelemetry identifiers.
const (
	KeyOtelTraceID = "otel_trace_id"
	KeyOtelSpanID  = "otel_span_id"
)

// SpanLogger is a logger that wraps another logger and additionally records
// log events to a trace span using a SpanEventRecorder.
// Entries written through it carry the trace and span ids next to the
// task correlation fields added further down the pipeline.
type SpanLogger struct {
	lg  Logger
	ser SpanEventRecorder
}

// NewSpanLogger creates a new SpanLogger that wraps the provided logger
// and records events to the given SpanEventRecorder.
// The wrapped logger's caller skip is incremented by 2 to account for the
// level method and emit.
func NewSpanLogger(lg Logger, ser SpanEventRecorder) Logger {
	return &SpanLogger{
		lg:  lg.AddCallerSkip(2),
		ser: ser,
	}
}

// Trace logs a trace message to both the wrapped logger and the span.
func (sl SpanLogger) Trace(msg string, keysAndValues ...any) {
	sl.emit(LevelTrace, msg, keysAndValues)
}

// Debug logs a debug message to both the wrapped logger and the span.
func (sl SpanLogger) Debug(msg string, keysAndValues ...any) {
	sl.emit(LevelDebug, msg, keysAndValues)
}

// Info logs an info message to both the wrapped logger and the span.
func (sl SpanLogger) Info(msg string, keysAndValues ...any) {
	sl.emit(LevelInfo, msg, keysAndValues)
}

// Warn logs a warning message to both the wrapped logger and the span.
func (sl SpanLogger) Warn(msg string, keysAndValues ...any) {
	sl.emit(LevelWarn, msg, keysAndValues)
}

// Error logs an error message to both the wrapped logger and the span.
// The error is recorded as an error event in the span.
func (sl SpanLogger) Error(msg string, keysAndValues ...any) {
	sl.emit(LevelError, msg, keysAndValues)
}

// Fatal logs a fatal message to both the wrapped logger and the span.
// The error is recorded as an error event in the span.
func (sl SpanLogger) Fatal(msg string, keysAndValues ...any) {
	sl.emit(LevelFatal, msg, keysAndValues)
}

func (sl SpanLogger) emit(level Level, msg string, keysAndValues []any) {
	eventKV := sl.withLogContext(level, keysAndValues)
	if level == LevelError || level == LevelFatal {
		sl.ser.RecordError(msg, eventKV...)
	} else {
		sl.ser.RecordEvent(msg, eventKV...)
	}

	logKV := sl.withTraceContext(keysAndValues)
	switch level {
	case LevelTrace:
		sl.lg.Trace(msg, logKV...)
	case LevelDebug:
		sl.lg.Debug(msg, logKV...)
	case LevelInfo:
		sl.lg.Info(msg, logKV...)
	case LevelWarn:
		sl.lg.Warn(msg, logKV...)
	case LevelError:
		sl.lg.Error(msg, logKV...)
	case LevelFatal:
		sl.lg.Fatal(msg, logKV...)
	}
}

// WithKV returns a new SpanLogger with the key-value pair added to the wrapped logger.
// The SpanEventRecorder remains the same.
func (sl SpanLogger) WithKV(key string, value any) Logger {
	return SpanLogger{
		lg:  sl.lg.WithKV(key, value),
		ser: sl.ser,
	}
}

// GetAllKV returns all key-value pairs from the wrapped logger.
func (sl SpanLogger) GetAllKV() []any {
	return sl.lg.GetAllKV()
}

// WithName returns a new SpanLogger with the given name set on the wrapped logger.
// The SpanEventRecorder remains the same.
func (sl SpanLogger) WithName(name string) Logger {
	return SpanLogger{
		lg:  sl.lg.WithName(name),
		ser: sl.ser,
	}
}

// Name returns the name of the wrapped logger.
func (sl SpanLogger) Name() string {
	return sl.lg.Name()
}

// AddCallerSkip returns a new SpanLogger with increased caller skip on the wrapped logger.
func (sl SpanLogger) AddCallerSkip(skip int) Logger {
	return SpanLogger{
		lg:  sl.lg.AddCallerSkip(skip),
		ser: sl.ser,
	}
}

// withTraceContext returns the caller's key-value pairs followed by the trace and span ids.
// The caller's pairs come first so that they win if a backend merges duplicate keys.
func (sl SpanLogger) withTraceContext(keysAndValues []any) []any {
	kv := make([]any, 0, len(keysAndValues)+4)
	kv = append(kv, keysAndValues...)
	return append(kv,
		KeyOtelTraceID, sl.ser.TraceID(),
		KeyOtelSpanID, sl.ser.SpanID(),
	)
}

// withLogContext builds the span event attributes: level and component,
// then the wrapped logger's persistent pairs, then the call's pairs.
func (sl SpanLogger) withLogContext(level Level, keysAndValues []any) []any {
	persistent := sl.lg.GetAllKV()
	kv := make([]any, 0, 4+len(persistent)+len(keysAndValues))
	kv = append(kv,
		"level", string(level),
		"component", sl.lg.Name(),
	)
	kv = append(kv, persistent...)
	return append(kv, keysAndValues...)
}
