// Package config loads run-time logging settings for hosts that use xlite.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// XLITE_* environment variables. The core package never reads any of these
// sources itself; a host calls Load and then Apply.
//
//	cfg, err := config.Load(config.WithFile("logging.yaml"))
//	if err != nil {
//		return err
//	}
//	if err := config.Apply(cfg); err != nil {
//		return err
//	}
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/trickstertwo/xlite"
)

// DefaultEnvPrefix is stripped from environment variable names before they are
// matched to keys: XLITE_FILE_TIMESTAMP sets file_timestamp.
const DefaultEnvPrefix = "XLITE_"

// ErrCapabilityUnavailable is returned by Apply when a setting needs a
// capability that the binary was built without.
var ErrCapabilityUnavailable = errors.New("config: capability not compiled in")

// Config holds the run-time logging settings.
type Config struct {
	// Level is the runtime minimum. Empty leaves the current minimum alone.
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error"`

	// Output selects the sink: stdout, stderr or discard.
	Output string `koanf:"output" validate:"required,oneof=stdout stderr discard"`

	// Color controls ANSI colouring of console output.
	Color string `koanf:"color" validate:"required,oneof=auto always never"`

	// Metadata prints module path, file and line when they were captured.
	Metadata bool `koanf:"metadata"`

	// File is the path for the file-append extension. Empty disables it.
	File string `koanf:"file"`

	// FileTimestamp is a time layout prefixed to each file line.
	FileTimestamp string `koanf:"file_timestamp" validate:"excluded_without=File"`
}

// Default returns the settings used when no source overrides them.
func Default() Config {
	return Config{
		Output: "stdout",
		Color:  "auto",
	}
}

// MinimumLevel returns the parsed Level and whether one is set.
func (c Config) MinimumLevel() (xlite.Level, bool) {
	if c.Level == "" {
		return xlite.LevelTrace, false
	}
	return xlite.ParseLevel(c.Level)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks field values.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return nil
}

type loadOptions struct {
	path      string
	envPrefix string
}

// Option configures Load.
type Option func(*loadOptions)

// WithFile layers the YAML file at path over the defaults. The file must exist.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.path = path }
}

// WithEnvPrefix replaces DefaultEnvPrefix. An empty prefix disables the
// environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) { o.envPrefix = prefix }
}

// Load builds a Config from defaults, the optional file and the environment,
// then validates it.
func Load(opts ...Option) (Config, error) {
	o := loadOptions{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if o.path != "" {
		if err := k.Load(file.Provider(o.path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: load file %s: %w", o.path, err)
		}
	}

	if o.envPrefix != "" {
		prefix := o.envPrefix
		transform := func(key string) string {
			return strings.ToLower(strings.TrimPrefix(key, prefix))
		}
		if err := k.Load(env.Provider(prefix, ".", transform), nil); err != nil {
			return Config{}, fmt.Errorf("config: load environment: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
