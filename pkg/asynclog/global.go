package asynclog

import (
	"fmt"
	"sync/atomic"

	"github.com/erc7824/asynclog/pkg/log"
	"github.com/erc7824/asynclog/pkg/span"
)

// ErrAlreadyInstalled is returned by Install when a decorator is already installed.
var ErrAlreadyInstalled = fmt.Errorf("asynclog: a decorator is already installed")

type installation struct {
	decorator *Decorator
	maxLevel  log.Level
}

var installed atomic.Pointer[installation]

var _ log.Backend = sink{}

// sink forwards to the installed decorator, applying the installed threshold.
type sink struct{}

func (sink) Enabled(meta log.Metadata) bool {
	inst := installed.Load()
	if inst == nil {
		return false
	}
	return inst.maxLevel.Enables(meta.Level) && inst.decorator.Enabled(meta)
}

func (sink) Log(rec log.Record) {
	inst := installed.Load()
	if inst == nil {
		return
	}
	if !inst.maxLevel.Enables(rec.Level) {
		inst.decorator.metrics.recordSuppressed(rec.Level)
		return
	}
	inst.decorator.log(rec)
}

func (sink) Flush() {
	if inst := installed.Load(); inst != nil {
		inst.decorator.Flush()
	}
}

func (sink) Structured() bool {
	if inst := installed.Load(); inst != nil {
		return inst.decorator.Structured()
	}
	return false
}

// Installed returns the process-wide sink. Before Install it accepts nothing.
func Installed() log.Backend {
	return sink{}
}

// Default returns a logger writing to the installed sink.
func Default() log.Logger {
	return log.NewRecordLogger(sink{})
}

// MaxLevel returns the installed threshold, or false if nothing is installed.
func MaxLevel() (log.Level, bool) {
	inst := installed.Load()
	if inst == nil {
		return "", false
	}
	return inst.maxLevel, true
}

// Span opens a span named name on the installed sink.
//
//	defer asynclog.Span("main").End()
func Span(name string) *span.Span {
	return span.Open(sink{}, 1, name)
}

// Spanf opens a span on the installed sink with formatted arguments.
//
//	defer asynclog.Spanf("inner", "x=%s", x).End()
func Spanf(name, format string, args ...any) *span.Span {
	return span.Open(sink{}, 1, span.Format(name, format, args...))
}
