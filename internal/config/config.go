// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads chart descriptions for the donutdemo command.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes environment overrides, e.g. GGCHART_WIDTH=800.
const EnvPrefix = "GGCHART"

// Validation errors.
var (
	ErrInvalidDimensions = errors.New("config: invalid dimensions")
	ErrInvalidHoleRatio  = errors.New("config: hole ratio must be in [0, 1)")
	ErrInvalidColor      = errors.New("config: invalid color")
	ErrInvalidLocale     = errors.New("config: invalid locale")
)

// Config describes one chart rendering.
type Config struct {
	Width         int             `mapstructure:"width"`
	Height        int             `mapstructure:"height"`
	HoleRatio     float64         `mapstructure:"hole_ratio"`
	Margin        float64         `mapstructure:"margin"`
	LabelTextSize float64         `mapstructure:"label_text_size"`
	Locale        string          `mapstructure:"locale"`
	Background    string          `mapstructure:"background"` // empty = transparent
	Animation     AnimationConfig `mapstructure:"animation"`
	Entries       []EntryConfig   `mapstructure:"entries"`
}

// AnimationConfig controls rendering of the entrance animation.
type AnimationConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Easing   string        `mapstructure:"easing"` // "linear", "sin-out", "cubic-out"
	FPS      int           `mapstructure:"fps"`
}

// EntryConfig is one chart entry.
type EntryConfig struct {
	Value      float64 `mapstructure:"value"`
	Color      string  `mapstructure:"color"` // #RGB, #RGBA, #RRGGBB or #RRGGBBAA
	Label      string  `mapstructure:"label"`
	ValueLabel string  `mapstructure:"value_label"`
}

// Load reads a chart description from path (YAML, JSON or TOML, by
// extension). Environment variables override scalar settings:
// GGCHART_<KEY>, e.g. GGCHART_ANIMATION_FPS.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults mirrors the ggchart defaults.
func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 600)
	v.SetDefault("height", 400)
	v.SetDefault("hole_ratio", ggchart.DefaultHoleRatio)
	v.SetDefault("margin", ggchart.DefaultMargin)
	v.SetDefault("label_text_size", ggchart.DefaultLabelTextSize)
	v.SetDefault("locale", "en")
	v.SetDefault("background", "")
	v.SetDefault("animation.duration", ggchart.DefaultAnimationDuration)
	v.SetDefault("animation.easing", "sin-out")
	v.SetDefault("animation.fps", 30)
}

// Validate checks every setting that can be checked without rendering.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if !(c.HoleRatio >= 0 && c.HoleRatio < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidHoleRatio, c.HoleRatio)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidLocale, c.Locale, err)
	}
	if _, err := ggchart.ParseEasing(c.Animation.Easing); err != nil {
		return fmt.Errorf("config: animation: %w", err)
	}
	if c.Background != "" {
		if _, err := ParseColor(c.Background); err != nil {
			return fmt.Errorf("config: background: %w", err)
		}
	}
	for i, e := range c.Entries {
		if _, err := ParseColor(e.Color); err != nil {
			return fmt.Errorf("config: entry %d: %w", i, err)
		}
	}
	return nil
}

// ChartEntries converts the configured entries.
func (c *Config) ChartEntries() ([]ggchart.Entry, error) {
	entries := make([]ggchart.Entry, len(c.Entries))
	for i, e := range c.Entries {
		col, err := ParseColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("config: entry %d: %w", i, err)
		}
		entries[i] = ggchart.Entry{
			Value:      e.Value,
			Color:      col,
			Label:      e.Label,
			ValueLabel: e.ValueLabel,
		}
	}
	return entries, nil
}

// ChartOptions returns the ggchart options for the configured settings.
func (c *Config) ChartOptions() ([]ggchart.Option, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, c.Locale, err)
	}
	return []ggchart.Option{
		ggchart.WithHoleRatio(c.HoleRatio),
		ggchart.WithMargin(c.Margin),
		ggchart.WithLabelTextSize(c.LabelTextSize),
		ggchart.WithLocale(tag),
	}, nil
}

// ChartAnimation returns the configured entrance animation.
func (c *Config) ChartAnimation() (ggchart.Animation, error) {
	ease, err := ggchart.ParseEasing(c.Animation.Easing)
	if err != nil {
		return ggchart.Animation{}, fmt.Errorf("config: animation: %w", err)
	}
	return ggchart.Animation{Duration: c.Animation.Duration, Easing: ease}, nil
}

// ParseColor parses a hex color with an optional leading '#'.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}
