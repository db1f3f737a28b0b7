// Package config loads the tool-level settings shared by the CLI commands:
// an optional YAML file merged with LUCENT_* environment overrides, with
// the environment taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/gamut"
)

// Config holds the resolved settings.
type Config struct {
	// DefaultGamut is the target used when --gamut is not given.
	DefaultGamut string `koanf:"default_gamut"`
	// DefaultFormat is the serialization used when --to is not given.
	DefaultFormat string `koanf:"default_format"`
	// LightnessSteps and ChromaSteps size the region tracer's grid.
	LightnessSteps int `koanf:"lightness_steps"`
	ChromaSteps    int `koanf:"chroma_steps"`
	// Listen is the serve command's bind address.
	Listen string `koanf:"listen"`
}

// Defaults for every field. A missing file and an empty environment yield
// a fully working configuration.
const (
	DefaultGamut          = "srgb"
	DefaultFormat         = "hex"
	DefaultLightnessSteps = 64
	DefaultChromaSteps    = 32
	DefaultListen         = ":8067"
)

// Validation errors.
var (
	ErrInvalidSteps  = errors.New("step counts must be at least 2")
	ErrMissingListen = errors.New("listen address must not be empty")
)

// DefaultPath is where Load looks when no explicit path is given:
// the user config directory plus lucent/config.yaml. It returns the empty
// string when no user config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lucent", "config.yaml")
}

// Load reads the YAML file at path, or the default path when path is
// empty, and applies environment overrides on top. A missing file at the
// default path silently means defaults; a missing file at an explicit path
// is an error. Returns the config and every validation problem found.
func Load(path string) (*Config, []error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if explicit {
				return nil, []error{fmt.Errorf("config file %s: %w", path, err)}
			}
		} else if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", path, err)}
		}
	}

	cfg := &Config{
		DefaultGamut:   getEnvOrKoanf("LUCENT_GAMUT", k, "default_gamut", DefaultGamut),
		DefaultFormat:  getEnvOrKoanf("LUCENT_FORMAT", k, "default_format", DefaultFormat),
		LightnessSteps: intOrDefault(k, "lightness_steps", DefaultLightnessSteps),
		ChromaSteps:    intOrDefault(k, "chroma_steps", DefaultChromaSteps),
		Listen:         getEnvOrKoanf("LUCENT_LISTEN", k, "listen", DefaultListen),
	}

	return cfg, cfg.Validate()
}

// getEnvOrKoanf returns the environment variable value if set, otherwise
// the file value, otherwise the fallback.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey, fallback string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	if val := k.String(koanfKey); val != "" {
		return val
	}
	return fallback
}

// intOrDefault returns the file value if present, otherwise the fallback.
func intOrDefault(k *koanf.Koanf, key string, fallback int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return fallback
}

// Validate checks the resolved values. It returns every problem found, not
// just the first.
func (c *Config) Validate() []error {
	var errs []error

	if _, err := gamut.ParseTarget(c.DefaultGamut); err != nil {
		errs = append(errs, fmt.Errorf("default_gamut: %w", err))
	}
	if _, err := colour.ParseFormat(c.DefaultFormat); err != nil {
		errs = append(errs, fmt.Errorf("default_format: %w", err))
	}
	if c.LightnessSteps < 2 || c.ChromaSteps < 2 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidSteps, c.LightnessSteps, c.ChromaSteps))
	}
	if c.Listen == "" {
		errs = append(errs, ErrMissingListen)
	}
	return errs
}
