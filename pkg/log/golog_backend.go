package log

import (
	"fmt"
	"strings"

	golog "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Backend = &GoLogBackend{}

// GoLogBackend writes records through a named go-log subsystem.
// It is a text-only backend: it does not implement Structured, so correlation
// metadata and record fields both end up in the message as ", key=value" pairs.
// Behind a decorator the record fields come first and the correlation metadata
// closes the line; see Augmentation.Apply.
// Levels are controlled with go-log's own machinery (GOLOG_LOG_LEVEL, golog.SetLogLevel).
type GoLogBackend struct {
	system string
	lg     *zap.Logger
}

// NewGoLogBackend returns a backend for the go-log subsystem named system.
func NewGoLogBackend(system string) *GoLogBackend {
	return &GoLogBackend{
		system: system,
		// Call sites are carried in the message, go-log's own caller would point here.
		lg: golog.Logger(system).Desugar().WithOptions(zap.WithCaller(false)),
	}
}

// Enabled reports whether the subsystem's current level lets the record through.
func (b *GoLogBackend) Enabled(meta Metadata) bool {
	return b.lg.Core().Enabled(toGoLogLevel(meta.Level))
}

// Log writes the message with the record fields appended.
func (b *GoLogBackend) Log(rec Record) {
	ce := b.lg.Check(toGoLogLevel(rec.Level), AppendFields(rec.Message, rec.Fields))
	if ce == nil {
		return
	}
	ce.Write()
}

// Flush syncs the go-log core.
func (b *GoLogBackend) Flush() {
	_ = b.lg.Sync()
}

// System returns the go-log subsystem name.
func (b *GoLogBackend) System() string {
	return b.system
}

// go-log has no trace level, trace records are written at debug.
func toGoLogLevel(level Level) zapcore.Level {
	if level == LevelTrace {
		return zapcore.DebugLevel
	}
	return toZapLogLevel(level)
}

// AppendFields renders fields after msg in the ", key=value" text convention.
func AppendFields(msg string, fields []Field) string {
	if len(fields) == 0 {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(msg)
	for _, f := range fields {
		writeKey(&sb, f.Key)
		fmt.Fprint(&sb, f.Value)
	}
	return sb.String()
}
