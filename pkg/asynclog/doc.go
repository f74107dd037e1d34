// Package asynclog decorates a log backend with causal-correlation metadata so that
// the interleaved output of concurrent goroutines can be split back into per-task
// timelines.
//
// # Decorating a Backend
//
// Wrap takes the backend, a ContextProvider that reports the current task and its
// parent, and the stack depth of logging call sites:
//
//	d := asynclog.Wrap(log.NewZapBackend(conf), registry.Current, asynclog.DefaultFrameSkip)
//	lg := log.NewRecordLogger(d)
//	lg.Info("this foo")
//
// Every record that the backend accepts gets task_id and thread_id, task_parent_id when
// the task has a parent and, with backtrace enabled, file, line and fn_name of the call
// site. A backend that implements log.Structured receives them as fields, merged after
// the record's own; a field the caller already set keeps its value. Any other backend
// receives them appended to the message:
//
//	this foo, task_id=7, task_parent_id=5, thread_id=8
//
// # Installing
//
// Install makes a decorator the process-wide sink and sets the global level. It can
// succeed once per process:
//
//	if err := d.Install(log.LevelTrace); err != nil {
//	    // errors.Is(err, asynclog.ErrAlreadyInstalled)
//	}
//	defer asynclog.Span("main").End()
//	asynclog.Default().Info("this foo")
//
// # Backtrace
//
// Call-site resolution walks the stack on every record and is off unless
// ASYNCLOG_BACKTRACE is 1, true, yes, on or full, or WithBacktrace(true) is passed.
// A call site that cannot be resolved is left out of the record.
//
// # Configuration
//
// LoadConfig reads an optional .env file and the environment:
//
//   - LOG_FORMAT, LOG_LEVEL, LOG_OUTPUT: the zap backend, see log.Config
//   - ASYNCLOG_BACKTRACE: call-site resolution
//   - ASYNCLOG_FRAME_SKIP: resolver depth (default 5)
//   - ASYNCLOG_MAX_LEVEL: installed threshold (default trace)
//
// Setup turns a Config into an installed decorator.
//
// # Metrics
//
// WithMetrics attaches Prometheus counters for forwarded and suppressed records,
// stack walks, unresolved call sites and provider panics.
package asynclog
