package log

import (
	"os"
	"runtime"
	"time"
)

var _ Logger = &RecordLogger{}

// RecordLogger is the Logger front end of the record pipeline. Each call becomes a
// Record that is handed to a Backend, typically a correlation decorator or a
// backend adapter such as ZapBackend.
type RecordLogger struct {
	backend       Backend
	name          string
	keysAndValues []any
	callerSkip    int
}

// NewRecordLogger creates a RecordLogger that writes to b.
func NewRecordLogger(b Backend) Logger {
	if b == nil {
		b = NoopBackend{}
	}
	return &RecordLogger{backend: b}
}

// Trace logs a message at trace level.
func (l *RecordLogger) Trace(msg string, keysAndValues ...any) {
	l.log(LevelTrace, msg, keysAndValues...)
}

// Debug logs a message at debug level.
func (l *RecordLogger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs a message at info level.
func (l *RecordLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a message at warn level.
func (l *RecordLogger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs a message at error level.
func (l *RecordLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// Fatal logs a message at fatal level, flushes the backend and exits with status 1.
func (l *RecordLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(LevelFatal, msg, keysAndValues...)
	l.backend.Flush()
	os.Exit(1)
}

func (l *RecordLogger) log(level Level, msg string, keysAndValues ...any) {
	meta := Metadata{Level: level, Target: l.name}
	if !l.backend.Enabled(meta) {
		return
	}

	kv := keysAndValues
	if len(l.keysAndValues) > 0 {
		kv = make([]any, 0, len(l.keysAndValues)+len(keysAndValues))
		kv = append(kv, l.keysAndValues...)
		kv = append(kv, keysAndValues...)
	}

	rec := Record{
		Metadata:   meta,
		Message:    msg,
		Fields:     FieldsFromKV(kv...),
		CallerSkip: l.callerSkip,
		Time:       time.Now(),
	}
	// 0 is log, 1 is the level method, 2 is its caller.
	if _, file, line, ok := runtime.Caller(2 + l.callerSkip); ok {
		rec.File, rec.Line = file, line
	}

	l.backend.Log(rec)
}

// WithKV returns a new RecordLogger with the key-value pair added to all future log messages.
func (l *RecordLogger) WithKV(key string, value any) Logger {
	kv := make([]any, 0, len(l.keysAndValues)+2)
	kv = append(kv, l.keysAndValues...)
	return &RecordLogger{
		backend:       l.backend,
		name:          l.name,
		keysAndValues: append(kv, key, value),
		callerSkip:    l.callerSkip,
	}
}

// GetAllKV returns all key-value pairs that have been added to this logger instance.
func (l *RecordLogger) GetAllKV() []any {
	return l.keysAndValues
}

// WithName returns a new RecordLogger with the given name.
// The name is added to the logger hierarchy separated by dots.
func (l *RecordLogger) WithName(name string) Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &RecordLogger{
		backend:       l.backend,
		name:          name,
		keysAndValues: l.keysAndValues,
		callerSkip:    l.callerSkip,
	}
}

// Name returns the current name of the logger.
func (l *RecordLogger) Name() string {
	return l.name
}

// AddCallerSkip returns a new RecordLogger that skips additional stack frames when determining the caller.
func (l *RecordLogger) AddCallerSkip(skip int) Logger {
	return &RecordLogger{
		backend:       l.backend,
		name:          l.name,
		keysAndValues: l.keysAndValues,
		callerSkip:    l.callerSkip + skip,
	}
}
