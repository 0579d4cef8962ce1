/*
Package config loads the settings of the chronos command and assembles
the optional capabilities they enable.

Settings are read from the environment, or from a YAML file whose
values the environment then overrides:

	cfg, err := config.Load(path) // path may be empty
	kit, err := config.NewKit(cfg)
*/
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/JesseCoretta/go-chronos"
	"github.com/JesseCoretta/go-chronos/localoffset"
	"github.com/JesseCoretta/go-chronos/wellknown"
)

/*
Features selects the optional capabilities made available by a [Kit].
All but Rand are enabled by [Default].
*/
type Features struct {
	Formatting  bool                  `yaml:"formatting" env:"CHRONOS_FORMATTING" env-description:"render values in a well-known format"`
	Parsing     bool                  `yaml:"parsing" env:"CHRONOS_PARSING" env-description:"read values in a well-known format"`
	Serde       bool                  `yaml:"serde" env:"CHRONOS_SERDE" env-description:"permit yaml and json output"`
	Rand        bool                  `yaml:"rand" env:"CHRONOS_RAND" env-description:"permit generation of random values"`
	LocalOffset localoffset.Soundness `yaml:"local_offset" env:"CHRONOS_LOCAL_OFFSET" env-description:"sound, unsound or disabled"`
}

/*
Config holds the settings of the chronos command.
*/
type Config struct {
	Features      Features `yaml:"features"`
	Output        string   `yaml:"output" env:"CHRONOS_OUTPUT" env-default:"text" env-description:"text, yaml or json"`
	Format        string   `yaml:"format" env:"CHRONOS_FORMAT" env-default:"rfc3339" env-description:"well-known format of input and output"`
	DefaultOffset string   `yaml:"default_offset" env:"CHRONOS_DEFAULT_OFFSET" env-default:"Z" env-description:"offset assumed for input lacking one"`
	LogLevel      string   `yaml:"log_level" env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Seed          int64    `yaml:"seed" env:"CHRONOS_SEED" env-description:"seed of random values; zero selects a random seed"`
}

var (
	// ErrCapabilityDisabled is returned by a Kit for a capability
	// its Features do not enable.
	ErrCapabilityDisabled = errors.New("config: capability disabled")

	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("config: invalid setting")
)

/*
Default returns a Config with every capability but Rand enabled.
Settings with an env-default tag are left zero, to be filled by Load.
*/
func Default() Config {
	return Config{
		Features: Features{
			Formatting:  true,
			Parsing:     true,
			Serde:       true,
			LocalOffset: localoffset.Sound,
		},
	}
}

/*
Load returns the [Default] configuration overridden by the YAML file at
path, if path is not empty, and then by the environment. The result is
validated.
*/
func Load(path string) (Config, error) {
	cfg := Default()
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

/*
Usage returns a description of the environment variables read by Load.
*/
func Usage() string {
	header := "Environment variables:"
	desc, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}
	return desc
}

/*
Validate returns an error wrapping [ErrInvalid] if any setting of the
receiver is not recognized.
*/
func (r Config) Validate() error {
	switch lc(r.Output) {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("%w: output %q", ErrInvalid, r.Output)
	}
	if _, ok := wellknown.Lookup(r.Format); !ok {
		return fmt.Errorf("%w: format %q", ErrInvalid, r.Format)
	}
	if _, err := chronos.NewUtcOffset(r.DefaultOffset); err != nil {
		return fmt.Errorf("%w: default offset %q: %v", ErrInvalid, r.DefaultOffset, err)
	}
	if _, ok := levels[lc(r.LogLevel)]; !ok {
		return fmt.Errorf("%w: log level %q", ErrInvalid, r.LogLevel)
	}
	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

/*
Level returns the [slog.Level] named by LogLevel, or [slog.LevelInfo].
*/
func (r Config) Level() slog.Level {
	if l, ok := levels[lc(r.LogLevel)]; ok {
		return l
	}
	return slog.LevelInfo
}

var lc func(string) string = strings.ToLower
