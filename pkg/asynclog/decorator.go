package asynclog

import (
	"github.com/erc7824/asynclog/pkg/caller"
	"github.com/erc7824/asynclog/pkg/log"
	"github.com/erc7824/asynclog/pkg/threadid"
)

// DefaultFrameSkip is the depth, counted from the resolver, of the code that called
// a log.RecordLogger level method or a span constructor writing to a Decorator,
// directly or through the installed sink.
const DefaultFrameSkip = 5

var (
	_ log.Backend    = &Decorator{}
	_ log.Structured = &Decorator{}
)

// Correlation identifies the task a record was emitted from.
type Correlation struct {
	ID uint64
	// ParentID is meaningful only when HasParent is set.
	ParentID  uint64
	HasParent bool
}

// ContextProvider returns the correlation of the calling goroutine.
// It is called once per record and must be cheap, non-blocking and safe for concurrent use.
type ContextProvider func() Correlation

// Option configures a Decorator.
type Option func(*Decorator)

// WithBacktrace turns call-site resolution on or off. The default comes from ASYNCLOG_BACKTRACE.
func WithBacktrace(enabled bool) Option {
	return func(d *Decorator) {
		d.backtrace = enabled
	}
}

// WithCallerResolver replaces caller.Capture.
func WithCallerResolver(r caller.Resolver) Option {
	return func(d *Decorator) {
		if r != nil {
			d.resolve = r
		}
	}
}

// WithThreadIdentity replaces threadid.Current.
func WithThreadIdentity(fn func() uint64) Option {
	return func(d *Decorator) {
		if fn != nil {
			d.threadID = fn
		}
	}
}

// WithMetrics makes the decorator count what it forwards and what it drops.
func WithMetrics(m *Metrics) Option {
	return func(d *Decorator) {
		d.metrics = m
	}
}

// Decorator adds correlation metadata to every record before handing it to the
// wrapped backend. It holds no locks; its state does not change after Wrap.
type Decorator struct {
	backend    log.Backend
	structured bool
	provider   ContextProvider
	frameSkip  int
	backtrace  bool
	resolve    caller.Resolver
	threadID   func() uint64
	metrics    *Metrics
}

// Wrap decorates backend. frameSkip is the resolver depth of the logging call site,
// DefaultFrameSkip for the loggers and spans of this module.
// A nil provider reports task 0 without a parent for every record.
func Wrap(backend log.Backend, provider ContextProvider, frameSkip int, opts ...Option) *Decorator {
	if backend == nil {
		backend = log.NoopBackend{}
	}
	if provider == nil {
		provider = func() Correlation { return Correlation{} }
	}

	d := &Decorator{
		backend:   backend,
		provider:  provider,
		frameSkip: frameSkip,
		backtrace: BacktraceFromEnv(),
		resolve:   caller.Capture,
		threadID:  threadid.Current,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.structured = log.IsStructured(backend)

	return d
}

// Enabled delegates to the wrapped backend.
func (d *Decorator) Enabled(meta log.Metadata) bool {
	return d.backend.Enabled(meta)
}

// Log forwards rec with correlation metadata attached. Records the backend
// does not want are dropped without calling the provider.
func (d *Decorator) Log(rec log.Record) {
	d.log(rec)
}

// log is shared by Log and the installed sink so that both sit at the same stack depth.
func (d *Decorator) log(rec log.Record) {
	if !d.backend.Enabled(rec.Metadata) {
		d.metrics.recordSuppressed(rec.Level)
		return
	}

	corr := d.correlation()
	aug := log.Augmentation{
		TaskID:    corr.ID,
		ParentID:  corr.ParentID,
		HasParent: corr.HasParent,
	}

	if d.backtrace {
		d.metrics.recordResolution()
		if fr, ok := d.resolve(d.frameSkip + rec.CallerSkip); ok {
			aug.File, aug.Line, aug.FnName = fr.File, fr.Line, fr.Function
		} else {
			d.metrics.recordCallerMiss()
		}
	}

	aug.ThreadID = d.threadID()

	d.backend.Log(aug.Apply(rec, d.structured))
	d.metrics.recordForwarded(rec.Level)
}

// correlation calls the provider. A panicking provider yields task 0 without a parent.
func (d *Decorator) correlation() (corr Correlation) {
	defer func() {
		if r := recover(); r != nil {
			d.metrics.recordProviderPanic()
			corr = Correlation{}
		}
	}()
	return d.provider()
}

// Flush delegates to the wrapped backend.
func (d *Decorator) Flush() {
	d.backend.Flush()
}

// Structured reports whether the wrapped backend takes fields.
// Decorators can be stacked; the outer one then passes fields through.
func (d *Decorator) Structured() bool {
	return d.structured
}

// Backend returns the wrapped backend.
func (d *Decorator) Backend() log.Backend {
	return d.backend
}

// Install makes d the process-wide sink behind Installed, Default and Span, with maxLevel
// as the global threshold. Only the first Install in a process succeeds; later calls
// return ErrAlreadyInstalled and leave the first decorator in place.
func (d *Decorator) Install(maxLevel log.Level) error {
	if _, err := log.ParseLevel(string(maxLevel)); err != nil {
		return err
	}
	if !installed.CompareAndSwap(nil, &installation{decorator: d, maxLevel: maxLevel}) {
		return ErrAlreadyInstalled
	}
	return nil
}
