package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the showcase's on-disk configuration, loaded from a TOML file.
type Config struct {
	Window WindowConfig `toml:"window"`
	Theme  ThemeConfig  `toml:"theme"`
	Locale string       `toml:"locale"`
	Log    LogConfig    `toml:"log"`
	Demos  DemosConfig  `toml:"demos"`
}

type WindowConfig struct {
	Title          string `toml:"title"`
	ShowBackground bool   `toml:"show_background"`
}

type ThemeConfig struct {
	AccentColorHex      string `toml:"accent_color"` // "#RRGGBB"
	FontPath            string `toml:"font_path"`
	BackgroundImagePath string `toml:"background_image"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// DemosConfig filters and reorders the built-in demo catalog.
// Enabled lists catalog IDs in display order; an empty list keeps every
// demo in its default order.
type DemosConfig struct {
	Enabled []string `toml:"enabled"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:          "Vetro Showcase",
			ShowBackground: false,
		},
		Theme: ThemeConfig{
			FontPath: "/mnt/SDCARD/System/fonts/Cannoli.ttf",
		},
		Locale: "en",
		Log: LogConfig{
			Path:  "logs/vetro-showcase.log",
			Level: "info",
		},
	}
}

// LoadConfig reads a TOML config file, layered over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	meta, err := toml.Decode(string(data), &config)
	if err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}
	for _, key := range meta.Undecoded() {
		return config, fmt.Errorf("parse config: unknown key %q", key)
	}

	return config, nil
}

// AccentColor parses the configured accent color. Returns 0 when unset,
// which leaves the theme's default accent in place.
func (c Config) AccentColor() (uint32, error) {
	hex := c.Theme.AccentColorHex
	if hex == "" {
		return 0, nil
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("accent color must be #RRGGBB, got %q", c.Theme.AccentColorHex)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("accent color must be #RRGGBB, got %q", c.Theme.AccentColorHex)
	}
	return uint32(value), nil
}
