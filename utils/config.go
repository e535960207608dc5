package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Starting patterns understood by the driver.
const (
	PatternEmpty    = "empty"
	PatternSeeded   = "seeded"
	PatternRandom   = "random"
	PatternShowcase = "showcase"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" env:"GOL_WIDTH"`
	Height              int           `json:"height" env:"GOL_HEIGHT"`
	FrameRate           time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	Pattern             string        `json:"pattern" env:"GOL_PATTERN"`
	Seed                int64         `json:"seed" env:"GOL_SEED"` // 0 draws from the system generator
	MaxGenerations      int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	AutoRestart         bool          `json:"auto_restart" env:"GOL_AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"GOL_STAGNATION_THRESHOLD"`
	RefreshInterval     int           `json:"refresh_interval" env:"GOL_REFRESH_INTERVAL"` // 0 disables periodic restarts
	RandomDensity       float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	InjectionCount      int           `json:"injection_count" env:"GOL_INJECTION_COUNT"`
	ClearScreen         bool          `json:"clear_screen" env:"GOL_CLEAR_SCREEN"`
	AliveGlyph          string        `json:"alive_glyph" env:"GOL_ALIVE_GLYPH"`
	DeadGlyph           string        `json:"dead_glyph" env:"GOL_DEAD_GLYPH"`
	LogLevel            string        `json:"log_level" env:"GOL_LOG_LEVEL"`
	LogFormat           string        `json:"log_format" env:"GOL_LOG_FORMAT"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		Pattern:             PatternShowcase,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
		RefreshInterval:     200,
		RandomDensity:       0.15,
		InjectionCount:      3,
		ClearScreen:         true,
		AliveGlyph:          "◼",
		DeadGlyph:           "◻",
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overlays GOL_* variables onto config. A nil environ reads the
// process environment.
func ApplyEnv(config *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(config, env.Options{Environment: environ}); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Config.Validate] width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	switch c.Pattern {
	case PatternEmpty, PatternSeeded, PatternRandom, PatternShowcase:
	default:
		return errors.Errorf("[Config.Validate] unknown pattern %q", c.Pattern)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Config.Validate] frame rate must not be negative, got %s", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Config.Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StagnationThreshold <= 0 {
		return errors.Errorf("[Config.Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	}
	if c.RefreshInterval < 0 {
		return errors.Errorf("[Config.Validate] refresh interval must not be negative, got %d", c.RefreshInterval)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Config.Validate] random density must be within [0,1], got %g", c.RandomDensity)
	}
	if c.InjectionCount < 0 {
		return errors.Errorf("[Config.Validate] injection count must not be negative, got %d", c.InjectionCount)
	}
	if utf8.RuneCountInString(c.AliveGlyph) != 1 || utf8.RuneCountInString(c.DeadGlyph) != 1 {
		return errors.Errorf("[Config.Validate] glyphs must be a single character, got %q and %q", c.AliveGlyph, c.DeadGlyph)
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return errors.Errorf("[Config.Validate] invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("[Config.Validate] invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
