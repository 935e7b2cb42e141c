// Package config loads run settings for the sandboxes from YAML and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/session"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds run settings; zero-valued YAML fields keep their defaults
type Config struct {
	Seed            int64    `yaml:"seed"`
	Level           int      `yaml:"level"`
	Width           float64  `yaml:"width"`
	Height          float64  `yaml:"height"`
	PortalsPerLayer int      `yaml:"portals_per_layer"`
	Roster          []string `yaml:"roster"`
	TickMs          int      `yaml:"tick_ms"`
	TimeScale       float64  `yaml:"time_scale"`
	Debug           bool     `yaml:"debug"`
	Audio           bool     `yaml:"audio"`
}

// Default returns the built-in settings
func Default() Config {
	roster := make([]string, len(pursuer.Archetypes))
	for i, a := range pursuer.Archetypes {
		roster[i] = a.String()
	}
	return Config{
		Seed:            parameter.SessionDefaultSeed,
		Level:           1,
		Width:           parameter.SessionDefaultWidth,
		Height:          parameter.SessionDefaultHeight,
		PortalsPerLayer: parameter.SessionDefaultPortalsPerLayer,
		Roster:          roster,
		TickMs:          int(parameter.SessionTickInterval / time.Millisecond),
		TimeScale:       1,
		Audio:           true,
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from STEALTH_* variables; malformed values are ignored
func (c *Config) ApplyEnv() {
	if seed := os.Getenv("STEALTH_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Seed = val
		}
	}

	if level := os.Getenv("STEALTH_LEVEL"); level != "" {
		if val, err := strconv.Atoi(level); err == nil {
			c.Level = val
		}
	}

	if enabled := os.Getenv("STEALTH_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio = val
		}
	}

	if debug := os.Getenv("STEALTH_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			c.Debug = val
		}
	}
}

// Validate reports the first bad field wrapped in ErrInvalid
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: extents %vx%v must be positive", ErrInvalid, c.Width, c.Height)
	case c.PortalsPerLayer < 1:
		return fmt.Errorf("%w: portals_per_layer %d below 1", ErrInvalid, c.PortalsPerLayer)
	case c.TickMs <= 0:
		return fmt.Errorf("%w: tick_ms %d must be positive", ErrInvalid, c.TickMs)
	case c.TimeScale < parameter.PursuerTimeScaleMin || c.TimeScale > parameter.PursuerTimeScaleMax:
		return fmt.Errorf("%w: time_scale %v outside [%v, %v]", ErrInvalid, c.TimeScale,
			parameter.PursuerTimeScaleMin, parameter.PursuerTimeScaleMax)
	case c.Level < 0:
		return fmt.Errorf("%w: level %d is negative", ErrInvalid, c.Level)
	}

	if len(c.Roster) == 0 {
		return fmt.Errorf("%w: roster is empty", ErrInvalid)
	}
	if _, err := c.Archetypes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Archetypes parses the roster names
func (c Config) Archetypes() ([]pursuer.Archetype, error) {
	out := make([]pursuer.Archetype, 0, len(c.Roster))
	for _, name := range c.Roster {
		a, err := pursuer.ParseArchetype(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// TickInterval is the fixed simulation step
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// SessionOptions maps the settings onto session options. An unparseable roster
// falls back to one pursuer per archetype.
func (c Config) SessionOptions() session.Options {
	roster, _ := c.Archetypes()
	return session.Options{
		Seed:            c.Seed,
		Level:           c.Level,
		Width:           c.Width,
		Height:          c.Height,
		PortalsPerLayer: c.PortalsPerLayer,
		Roster:          roster,
		TimeScale:       c.TimeScale,
	}
}
