package span

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/erc7824/asynclog/pkg/log"
)

const (
	// Target is the record target of every marker.
	Target = "span"
	// MarkKey is the key of the marker suffix.
	MarkKey = "span_mark"

	markStart = "start"
	markEnd   = "end"
)

var markerMeta = log.Metadata{Level: log.LevelTrace, Target: Target}

// Span emits a start marker when it is created and an end marker on the first call to End.
// A Span belongs to the goroutine that created it.
type Span struct {
	backend log.Backend
	text    string
	ended   atomic.Bool
}

// Open opens a span with ready-made marker text. skip is the number of wrapper
// frames between Open and the call site the start marker should report.
// Helpers that open spans on behalf of their caller use it with skip 1.
func Open(b log.Backend, skip int, text string) *Span {
	s := &Span{backend: orNoop(b), text: text}
	s.emit(markStart, skip)
	return s
}

// New opens a span named name on b.
//
//	defer span.New(b, "main").End()
func New(b log.Backend, name string) *Span {
	s := &Span{backend: orNoop(b), text: name}
	s.emit(markStart, 0)
	return s
}

// Newf opens a span whose marker text is name followed by the formatted arguments.
//
//	defer span.Newf(b, "inner", "x=%s", x).End()
func Newf(b log.Backend, name, format string, args ...any) *Span {
	s := &Span{backend: orNoop(b), text: Format(name, format, args...)}
	s.emit(markStart, 0)
	return s
}

// Enter opens a span named after the calling function, as "<file>#<function>",
// with args rendered as "arg_0=<v0>, arg_1=<v1>, ...". It is meant to be the first
// statement of the function it covers:
//
//	func load(path string, n int) error {
//	    defer span.Enter(b, path, n).End()
//	    ...
//	}
func Enter(b log.Backend, args ...any) *Span {
	text := "unknown"
	var pcs [1]uintptr
	if runtime.Callers(2, pcs[:]) == 1 {
		fr, _ := runtime.CallersFrames(pcs[:]).Next()
		text = fr.File + "#" + shortFuncName(fr.Function)
	}
	if len(args) > 0 {
		text += ", " + formatArgs(args)
	}
	s := &Span{backend: orNoop(b), text: text}
	s.emit(markStart, 0)
	return s
}

// Format builds marker text: name, then ", " and the formatted arguments unless format is empty.
func Format(name, format string, args ...any) string {
	if format == "" {
		return name
	}
	return name + ", " + fmt.Sprintf(format, args...)
}

// End emits the end marker. Only the first call has an effect.
func (s *Span) End() {
	if !s.ended.CompareAndSwap(false, true) {
		return
	}
	s.emit(markEnd, 0)
}

// endFrom is End for a span ended by a helper skip frames below the call site.
func (s *Span) endFrom(skip int) {
	if !s.ended.CompareAndSwap(false, true) {
		return
	}
	s.emit(markEnd, skip)
}

// Text returns the marker text captured when the span was opened.
func (s *Span) Text() string {
	return s.text
}

// Ended reports whether End has been called.
func (s *Span) Ended() bool {
	return s.ended.Load()
}

// Run runs fn inside a span named name. The end marker is emitted even if fn panics.
func Run(b log.Backend, name string, fn func()) {
	s := Open(b, 1, name)
	defer s.endFrom(1)
	fn()
}

// RunE is Run for functions that return an error. The error is passed through.
func RunE(b log.Backend, name string, fn func() error) error {
	s := Open(b, 1, name)
	defer s.endFrom(1)
	return fn()
}

// emit must be called directly from the exported constructors and End
// so that the reported call site is their caller's, skip frames further out.
func (s *Span) emit(mark string, skip int) {
	if !s.backend.Enabled(markerMeta) {
		return
	}

	rec := log.Record{
		Metadata:   markerMeta,
		Message:    s.text + ", " + MarkKey + "=" + mark,
		CallerSkip: skip,
		Time:       time.Now(),
	}
	if _, file, line, ok := runtime.Caller(2 + skip); ok {
		rec.File, rec.Line = file, line
	}
	s.backend.Log(rec)
}

func orNoop(b log.Backend) log.Backend {
	if b == nil {
		return log.NoopBackend{}
	}
	return b
}

// shortFuncName keeps the package-qualified function and drops the import path.
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func formatArgs(args []any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("arg_")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('=')
		fmt.Fprint(&sb, arg)
	}
	return sb.String()
}
