// Package config resolves calculator settings from defaults, an optional YAML
// file, RPN_* environment variables and loosely typed maps.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/numfmt"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "RPN_"

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "rpn.yaml"

// Config holds every user-tunable setting.
type Config struct {
	// Locale is a BCP 47 tag used to derive the separators, e.g. "pt-BR".
	Locale string `yaml:"locale" json:"locale" env:"LOCALE" mapstructure:"locale"`
	// Decimal and Grouping override the locale separators. Single characters.
	Decimal  string `yaml:"decimal" json:"decimal" env:"DECIMAL" mapstructure:"decimal"`
	Grouping string `yaml:"grouping" json:"grouping" env:"GROUPING" mapstructure:"grouping"`
	Angle    string `yaml:"angle" json:"angle" env:"ANGLE" mapstructure:"angle"`
	Debug    bool   `yaml:"debug" json:"debug" env:"DEBUG" mapstructure:"debug"`
	LogLevel string `yaml:"log_level" json:"log_level" env:"LOG_LEVEL" mapstructure:"log_level"`
	// Addr is where `rpn serve` listens.
	Addr string `yaml:"addr" json:"addr" env:"ADDR" mapstructure:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Angle:    domain.Degrees.String(),
		LogLevel: "info",
		Addr:     ":8080",
	}
}

// Load reads path (YAML) over the defaults and then applies RPN_* variables.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Merge decodes a loosely typed map (e.g. tool arguments) over c.
// Unknown keys are rejected.
func (c Config) Merge(input map[string]any) (Config, error) {
	out := c
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &out,
	})
	if err != nil {
		return c, err
	}
	if err := dec.Decode(input); err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := out.Validate(); err != nil {
		return c, err
	}
	return out, nil
}

// Validate checks that the separators and angle unit resolve.
func (c Config) Validate() error {
	if _, err := c.NumberFormat(); err != nil {
		return err
	}
	if _, err := c.AngleUnit(); err != nil {
		return err
	}
	return nil
}

// NumberFormat resolves the locale and the explicit separator overrides.
func (c Config) NumberFormat() (numfmt.NumberFormat, error) {
	f := numfmt.Default
	if c.Locale != "" {
		var err error
		if f, err = numfmt.ParseLocale(c.Locale); err != nil {
			return f, err
		}
	}
	if c.Decimal != "" {
		r, err := separator("decimal", c.Decimal)
		if err != nil {
			return f, err
		}
		f.Decimal = r
	}
	if c.Grouping != "" {
		r, err := separator("grouping", c.Grouping)
		if err != nil {
			return f, err
		}
		f.Grouping = r
	}
	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

// AngleUnit resolves the configured unit name.
func (c Config) AngleUnit() (domain.AngleUnit, error) {
	return domain.ParseAngleUnit(c.Angle)
}

func separator(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s separator must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
