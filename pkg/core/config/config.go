package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/pkg/temporal/calendar"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/timezone"
)

// Config holds the complete application configuration
type Config struct {
	Engine EngineConfig `toml:"engine" yaml:"engine"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// EngineConfig holds the defaults applied when a command leaves an option
// unset
type EngineConfig struct {
	Calendar       string `toml:"calendar" yaml:"calendar" env:"CHRONOS_CALENDAR"`
	TimeZone       string `toml:"time_zone" yaml:"time_zone" env:"CHRONOS_TZ"`
	Overflow       string `toml:"overflow" yaml:"overflow" env:"CHRONOS_OVERFLOW"`
	Disambiguation string `toml:"disambiguation" yaml:"disambiguation" env:"CHRONOS_DISAMBIGUATION"`
	Offset         string `toml:"offset" yaml:"offset" env:"CHRONOS_OFFSET"`
	RoundingMode   string `toml:"rounding_mode" yaml:"rounding_mode" env:"CHRONOS_ROUNDING_MODE"`
	SearchLimit    int    `toml:"search_limit" yaml:"search_limit" env:"CHRONOS_SEARCH_LIMIT"`
	Metrics        bool   `toml:"metrics" yaml:"metrics" env:"CHRONOS_METRICS"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" env:"CHRONOS_LOG_LEVEL"`
	Format string `toml:"format" yaml:"format" env:"CHRONOS_LOG_FORMAT"`
}

// OutputConfig holds command output settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" env:"CHRONOS_OUTPUT"`
}

// OutputFormats lists the accepted output formats
var OutputFormats = []string{"text", "json", "yaml"}

// Load reads a TOML or YAML file, chosen by extension, applies CHRONOS_*
// environment overrides and defaults, and validates the result.
func Load(fs afero.Fs, path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := fs.Stat(path); err != nil {
		return nil, configError("load", err, "config file not found: %s", path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, configError("load", err, "cannot read %s", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, configError("load", nil, "unsupported config format %q", ext)
	}
	if err != nil {
		return nil, configError("load", err, "failed to parse %s", path)
	}

	return finish(&cfg)
}

// Default returns the built-in configuration with environment overrides
func Default() (*Config, error) {
	return finish(&Config{})
}

// LoadFromEnv loads the file named by CHRONOS_CONFIG, or the first file
// found in the default locations. Without any file it returns Default.
func LoadFromEnv(fs afero.Fs) (*Config, error) {
	if path := os.Getenv("CHRONOS_CONFIG"); path != "" {
		return Load(fs, path)
	}
	for _, p := range DefaultPaths() {
		if _, err := fs.Stat(p); err == nil {
			return Load(fs, p)
		}
	}
	return Default()
}

// DefaultPaths returns the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{"./chronos.toml", "./chronos.yaml", "./configs/chronos.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chronos", "config.toml"))
	}
	return paths
}

func finish(cfg *Config) (*Config, error) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, configError("readEnv", err, "invalid environment override")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Engine
	if c.Engine.Calendar == "" {
		c.Engine.Calendar = "iso8601"
	}
	if c.Engine.TimeZone == "" {
		c.Engine.TimeZone = "UTC"
	}
	if c.Engine.Overflow == "" {
		c.Engine.Overflow = iso.Constrain.String()
	}
	if c.Engine.Disambiguation == "" {
		c.Engine.Disambiguation = timezone.Compatible.String()
	}
	if c.Engine.Offset == "" {
		c.Engine.Offset = timezone.OffsetReject.String()
	}
	if c.Engine.RoundingMode == "" {
		c.Engine.RoundingMode = rounding.HalfExpand.String()
	}
	if c.Engine.SearchLimit == 0 {
		c.Engine.SearchLimit = calendar.DefaultSearchLimit
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate checks every option against the values the engine accepts
func (c *Config) Validate() error {
	id, err := calendar.CanonicalID(c.Engine.Calendar)
	if err != nil {
		return invalid("engine.calendar", c.Engine.Calendar, err)
	}
	if !slices.Contains(calendar.Default().IDs(), id) {
		return invalid("engine.calendar", c.Engine.Calendar, nil)
	}
	if _, err := timezone.Load(c.Engine.TimeZone); err != nil {
		return invalid("engine.time_zone", c.Engine.TimeZone, err)
	}
	if _, err := iso.ParseOverflow(c.Engine.Overflow); err != nil {
		return invalid("engine.overflow", c.Engine.Overflow, err)
	}
	if _, err := timezone.ParseDisambiguation(c.Engine.Disambiguation); err != nil {
		return invalid("engine.disambiguation", c.Engine.Disambiguation, err)
	}
	if _, err := timezone.ParseOffsetPolicy(c.Engine.Offset); err != nil {
		return invalid("engine.offset", c.Engine.Offset, err)
	}
	if _, err := rounding.ParseMode(c.Engine.RoundingMode); err != nil {
		return invalid("engine.rounding_mode", c.Engine.RoundingMode, err)
	}
	if c.Engine.SearchLimit < 1 {
		return invalid("engine.search_limit", c.Engine.SearchLimit, nil)
	}
	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err)
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err)
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return invalid("output.format", c.Output.Format, nil)
	}
	return nil
}

func configError(op string, cause error, format string, args ...interface{}) error {
	b := errors.NewErrorBuilder(errors.ModuleConfig).
		Operation(op).
		Code(mdwerror.CodeConfigError).
		Messagef(format, args...)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}

func invalid(key string, value interface{}, cause error) error {
	b := errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("validate").
		Code(mdwerror.CodeInvalidConfig).
		Messagef("invalid value %v for %s", value, key).
		Detail("key", key)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}
