package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// WatchConfig declares one stopwatch row
type WatchConfig struct {
	Name  string   `toml:"name"`
	Speed *float64 `toml:"speed"`
}

// SpeedOrDefault returns the configured speed, 1.0 when omitted
func (w WatchConfig) SpeedOrDefault() float64 {
	if w.Speed == nil {
		return 1.0
	}
	return *w.Speed
}

func floatPtr(v float64) *float64 {
	return &v
}

// Config holds the sandbox settings. Every field is optional in the file.
type Config struct {
	FrameRate float64           `toml:"frame_rate"`
	Nudge     float64           `toml:"nudge"`
	SetValue  float64           `toml:"set_value"`
	Sound     bool              `toml:"sound"`
	Watches   []WatchConfig     `toml:"watch"`
	Keys      map[string]string `toml:"keys"`

	// Resolved from Keys over defaultKeys
	Bindings map[rune]Action `toml:"-"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		FrameRate: 60,
		Nudge:     5,
		SetValue:  30,
		Sound:     true,
		Watches: []WatchConfig{
			{Name: "seconds", Speed: floatPtr(1.0)},
			{Name: "minutes", Speed: floatPtr(1.0 / 60.0)},
			{Name: "double", Speed: floatPtr(2.0)},
		},
		Bindings: defaultKeys(),
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if md.IsDefined("frame_rate") {
		cfg.FrameRate = file.FrameRate
	}
	if md.IsDefined("nudge") {
		cfg.Nudge = file.Nudge
	}
	if md.IsDefined("set_value") {
		cfg.SetValue = file.SetValue
	}
	if md.IsDefined("sound") {
		cfg.Sound = file.Sound
	}
	if md.IsDefined("watch") {
		cfg.Watches = file.Watches
	}

	cfg.Keys = file.Keys
	cfg.Bindings, err = parseKeyBindings(cfg.Bindings, file.Keys)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings the sandbox cannot run without.
// Watch speeds are passed through unchecked, degenerate ones included.
func (c *Config) Validate() error {
	if !(c.FrameRate > 0) {
		return fmt.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	}
	if len(c.Watches) == 0 {
		return errors.New("at least one [[watch]] is required")
	}
	for i, w := range c.Watches {
		if strings.TrimSpace(w.Name) == "" {
			return fmt.Errorf("watch %d: name is required", i)
		}
	}
	return nil
}
