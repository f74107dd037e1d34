package asynclog

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/erc7824/asynclog/pkg/log"
)

// BacktraceEnv is the opt-in switch for call-site resolution.
const BacktraceEnv = "ASYNCLOG_BACKTRACE"

// ErrInvalidConfig wraps every error returned by LoadConfig.
var ErrInvalidConfig = fmt.Errorf("invalid asynclog config")

// Flag is a boolean environment switch. 1, true, yes, on and full, in any case,
// are true. Anything else, including an empty value, is false.
type Flag bool

// SetValue implements cleanenv.Setter.
func (f *Flag) SetValue(s string) error {
	*f = Flag(isTruthy(s))
	return nil
}

// UnmarshalYAML applies the same rules to a YAML scalar, so that "full" and "on"
// are accepted in config files as well.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: backtrace flag must be a scalar", value.Line)
	}
	return f.SetValue(value.Value)
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "full":
		return true
	default:
		return false
	}
}

// BacktraceFromEnv reports whether ASYNCLOG_BACKTRACE is set to a true value.
func BacktraceFromEnv() bool {
	return isTruthy(os.Getenv(BacktraceEnv))
}

// Config holds everything needed to build and install a decorator from the environment.
type Config struct {
	Log       log.Config `yaml:"log"`
	Backtrace Flag       `yaml:"backtrace" env:"ASYNCLOG_BACKTRACE"`
	FrameSkip int        `yaml:"frame_skip" env:"ASYNCLOG_FRAME_SKIP" env-default:"5" validate:"gte=0"`
	MaxLevel  log.Level  `yaml:"max_level" env:"ASYNCLOG_MAX_LEVEL" env-default:"trace" validate:"oneof=trace debug info warn error fatal"`
}

// LoadConfig reads the configuration from the environment. Variables from the .env file
// at dotEnvPath are loaded first unless they are already set; a missing file is ignored.
func LoadConfig(dotEnvPath string) (Config, error) {
	return LoadConfigFile("", dotEnvPath)
}

// LoadConfigFile is LoadConfig with the YAML file at path read first:
//
//	backtrace: full
//	max_level: debug
//	log:
//	  format: json
//	  output: /var/log/app.log
//
// The environment overrides the file and defaults fill what neither sets. Unknown keys
// are rejected. An empty path skips the file; a missing file is an error.
func LoadConfigFile(path, dotEnvPath string) (Config, error) {
	var conf Config
	if path != "" {
		if err := readYAML(path, &conf); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: load %s: %w", ErrInvalidConfig, dotEnvPath, err)
		}
	}

	if err := cleanenv.ReadEnv(&conf); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validator.New().Struct(conf); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return conf, nil
}

func readYAML(path string, conf *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decode config file")
	}
	return nil
}

// Options returns the decorator options the configuration implies.
func (c Config) Options() []Option {
	return []Option{WithBacktrace(bool(c.Backtrace))}
}

// Setup builds a zap backend from c, wraps it and installs the result with c.MaxLevel.
// opts are applied after the ones from c. If the install fails the new backend is
// flushed and dropped; a file named by c.Log.Output may have been created by then.
func Setup(c Config, provider ContextProvider, opts ...Option) (*Decorator, error) {
	d := Wrap(log.NewZapBackend(c.Log), provider, c.FrameSkip, append(c.Options(), opts...)...)
	if err := d.Install(c.MaxLevel); err != nil {
		d.Flush()
		return nil, err
	}
	return d, nil
}
