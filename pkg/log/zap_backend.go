package log

import (
	"os"
	"path/filepath"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	_ Backend    = &ZapBackend{}
	_ Structured = &ZapBackend{}
)

// zapTraceLevel sits one step below zap's debug level.
const zapTraceLevel = zapcore.DebugLevel - 1

// ZapBackend is a Backend implementation backed by Uber's zap core.
// It accepts structured fields natively and supports various output
// formats and destinations.
type ZapBackend struct {
	core zapcore.Core
}

// Config is used to configure the ZapBackend.
// It supports environment variable configuration with default values.
type Config struct {
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console" validate:"omitempty,oneof=console logfmt json"`          // console, logfmt or json
	Level  Level  `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"omitempty,oneof=trace debug info warn error fatal"` // trace, debug, info, warn, error, fatal
	Output string `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr"`                                                          // stderr, stdout or file path
}

// NewZapBackend creates a new ZapBackend with the given configuration.
// It supports multiple output formats (console, logfmt, json) and destinations (stderr, stdout, file).
// Additional write syncers can be provided to write logs to multiple destinations.
func NewZapBackend(conf Config, extraWriters ...zapcore.WriteSyncer) *ZapBackend {
	// Create a production encoder config and customize time and level format.
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}
	encCfg.EncodeLevel = func(lvl zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
		if lvl == zapTraceLevel {
			encoder.AppendString(string(LevelTrace))
			return
		}
		zapcore.LowercaseLevelEncoder(lvl, encoder)
	}

	// Choose the encoder based on the config.
	var encoder zapcore.Encoder
	switch conf.Format {
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	var ws zapcore.WriteSyncer
	if conf.Output == "" || conf.Output == "stderr" {
		ws = zapcore.Lock(os.Stderr)
	} else if conf.Output == "stdout" {
		ws = zapcore.Lock(os.Stdout)
	} else {
		dir := filepath.Dir(conf.Output)
		err1 := os.MkdirAll(dir, 0755)

		// Open the specified file; fallback to stdout on error.
		file, err2 := os.OpenFile(conf.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err1 != nil || err2 != nil {
			ws = zapcore.Lock(os.Stdout)
		} else {
			ws = zapcore.AddSync(file)
		}
	}
	wss := zapcore.NewMultiWriteSyncer(append(extraWriters, ws)...)

	return &ZapBackend{
		core: zapcore.NewCore(encoder, wss, toZapLogLevel(conf.Level)),
	}
}

// NewZapLogger returns a Logger that writes straight to a ZapBackend, without correlation metadata.
func NewZapLogger(conf Config, extraWriters ...zapcore.WriteSyncer) Logger {
	return NewRecordLogger(NewZapBackend(conf, extraWriters...))
}

// Enabled reports whether the core accepts the record's level.
func (b *ZapBackend) Enabled(meta Metadata) bool {
	return b.core.Enabled(toZapLogLevel(meta.Level))
}

// Log encodes the record with its fields as zap fields.
func (b *ZapBackend) Log(rec Record) {
	ts := rec.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	ent := zapcore.Entry{
		Level:      toZapLogLevel(rec.Level),
		Time:       ts,
		LoggerName: rec.Target,
		Message:    rec.Message,
		Caller:     zapcore.NewEntryCaller(0, rec.File, rec.Line, rec.File != ""),
	}
	ce := b.core.Check(ent, nil)
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		fields = append(fields, zap.Any(f.Key, f.Value))
	}
	ce.Write(fields...)
}

// Flush syncs the underlying writers.
func (b *ZapBackend) Flush() {
	_ = b.core.Sync()
}

// Structured always returns true; zap takes typed fields.
func (b *ZapBackend) Structured() bool {
	return true
}

func toZapLogLevel(logLevel Level) zapcore.Level {
	var zapLevel zapcore.Level
	switch logLevel {
	case LevelTrace:
		zapLevel = zapTraceLevel
	case LevelDebug:
		zapLevel = zapcore.DebugLevel
	case LevelInfo:
		zapLevel = zapcore.InfoLevel
	case LevelWarn:
		zapLevel = zapcore.WarnLevel
	case LevelError:
		zapLevel = zapcore.ErrorLevel
	case LevelFatal:
		zapLevel = zapcore.FatalLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	return zapLevel
}
