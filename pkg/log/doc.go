// Package log provides the record pipeline the correlation decorator sits in:
// a Logger front end, the Record and Backend types, backend adapters and the
// correlation metadata format.
//
// # Core Types
//
// Logger is the call-site API. RecordLogger turns each call into a Record and
// hands it to a Backend:
//
//	type Backend interface {
//	    Enabled(meta Metadata) bool
//	    Log(rec Record)
//	    Flush()
//	}
//
// Provided implementations:
//
//   - RecordLogger: Logger front end writing to any Backend
//   - ZapBackend: structured backend built on zap (console, logfmt or json)
//   - GoLogBackend: text backend writing through a go-log subsystem
//   - NoopLogger and NoopBackend: discard everything
//   - SpanLogger: records every entry to an OpenTelemetry span as well
//
// # Correlation Metadata
//
// Augmentation carries the fields added to every decorated record. Backends that
// implement Structured receive them as fields, merged after the caller's own
// fields; a caller field with the same key is kept. Other backends receive them
// appended to the message:
//
//	hello, file=main.go, line=12, fn_name=main.run, task_id=5, task_parent_id=2, thread_id=9
//
// file, line and fn_name are present only when known. task_parent_id is present
// only for tasks that have a parent.
//
// # Basic Usage
//
//	conf := log.Config{
//	    Format: "json",
//	    Level:  log.LevelInfo,
//	    Output: "stderr",
//	}
//	logger := log.NewZapLogger(conf)
//	logger.Info("Application started", "version", "1.0.0")
//
// # Context Integration
//
//	ctx = log.SetContextLogger(ctx, logger)
//	log.FromContext(ctx).Info("Operation started")
//
// When ctx carries a valid OpenTelemetry span the stored logger is a SpanLogger.
// Its entries carry otel_trace_id and otel_span_id.
//
// # Using AddCallerSkip for Helper Functions
//
//	func handleError(logger log.Logger, err error) {
//	    logger.AddCallerSkip(1).Error("operation failed", "err", err)
//	}
//
// # Environment Configuration
//
//   - LOG_FORMAT: Output format (console, logfmt, json)
//   - LOG_LEVEL: Minimum log level (trace, debug, info, warn, error, fatal)
//   - LOG_OUTPUT: Output destination (stderr, stdout, or file path)
package log
