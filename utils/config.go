package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Host modes
const (
	ModeText        = "text"
	ModeInteractive = "interactive"
	ModeCanvas      = "canvas"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	RestartEvery        int           `json:"restart_every"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	Mode                string        `json:"mode"`
	Colorize            bool          `json:"colorize"`
	Scale               int           `json:"scale"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		RestartEvery:        0,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		Seed:                0, // 0 means seed from the clock
		Pattern:             "random",
		Mode:                ModeText,
		Colorize:            true,
		Scale:               10,
	}
}

// LoadConfig loads configuration from JSON file
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

// Validate reports the first setting a host cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold < 0 || c.RestartEvery < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] restart thresholds must not be negative")
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] scale must be positive, got %d", c.Scale)
	}
	switch c.Mode {
	case ModeText, ModeInteractive, ModeCanvas:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown mode: %+v", c.Mode)
	}
	return nil
}
