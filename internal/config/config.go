// Package config resolves the tunable constants of the visualizer:
// playback intervals, work weights and the speed tie epsilon.
//
// Resolution order: defaults -> optional YAML file -> Validate. A
// missing file is not an error; a malformed one is, so a typo never
// silently falls back to defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/algolens/algolens/compare"
)

// PlaybackConfig holds the timer settings of both playback modes.
type PlaybackConfig struct {
	// Interval is the tick period of single-algorithm playback.
	Interval Duration `yaml:"interval"`

	// CompareInterval is the shared-clock period of comparison mode.
	// Both lanes advance on the same timer.
	CompareInterval Duration `yaml:"compare_interval"`

	// MinInterval floors both intervals; values below it are raised,
	// never rejected.
	MinInterval Duration `yaml:"min_interval"`
}

// Config is the root configuration document.
type Config struct {
	Playback PlaybackConfig  `yaml:"playback"`
	Work     compare.Weights `yaml:"work"`

	// TieEpsilon is the duration band inside which two comparison
	// finish times count as a tie.
	TieEpsilon Duration `yaml:"tie_epsilon"`
}

// DefaultConfig returns the built-in settings: 400ms single playback,
// 120ms comparison clock, and the compare package's weights/epsilon.
func DefaultConfig() Config {
	return Config{
		Playback: PlaybackConfig{
			Interval:        Duration(400 * time.Millisecond),
			CompareInterval: Duration(120 * time.Millisecond),
			MinInterval:     Duration(compare.MinInterval),
		},
		Work:       compare.DefaultWeights(),
		TieEpsilon: Duration(compare.DefaultTieEpsilon),
	}
}

// Load resolves the configuration: defaults, then the YAML file at
// path when path is non-empty and the file exists. A missing file
// yields defaults; unreadable or malformed YAML is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyDefaults fills zero values with defaults and floors the
// intervals, so a partial YAML document stays usable.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Playback.Interval == 0 {
		c.Playback.Interval = defaults.Playback.Interval
	}
	if c.Playback.CompareInterval == 0 {
		c.Playback.CompareInterval = defaults.Playback.CompareInterval
	}
	if c.Playback.MinInterval == 0 {
		c.Playback.MinInterval = defaults.Playback.MinInterval
	}
	if c.Work.Compare == 0 {
		c.Work.Compare = defaults.Work.Compare
	}
	if c.Work.Swap == 0 {
		c.Work.Swap = defaults.Work.Swap
	}
	if c.TieEpsilon == 0 {
		c.TieEpsilon = defaults.TieEpsilon
	}

	if c.Playback.Interval < c.Playback.MinInterval {
		c.Playback.Interval = c.Playback.MinInterval
	}
	if c.Playback.CompareInterval < c.Playback.MinInterval {
		c.Playback.CompareInterval = c.Playback.MinInterval
	}
}

// Validate rejects settings that would break playback semantics.
func (c *Config) Validate() error {
	if c.Playback.MinInterval <= 0 {
		return fmt.Errorf("config: min_interval must be positive, got %s", c.Playback.MinInterval)
	}
	if c.Work.Compare < 0 || c.Work.Swap < 0 {
		return fmt.Errorf("config: work weights must be non-negative, got compare=%d swap=%d",
			c.Work.Compare, c.Work.Swap)
	}
	if c.TieEpsilon < 0 {
		return fmt.Errorf("config: tie_epsilon must be non-negative, got %s", c.TieEpsilon)
	}

	return nil
}
