package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
locale = "it"

[window]
title = "Prova"

[theme]
accent_color = "#3366FF"
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Locale != "it" {
		t.Errorf("expected locale it, got %q", config.Locale)
	}
	if config.Window.Title != "Prova" {
		t.Errorf("expected window title Prova, got %q", config.Window.Title)
	}
	// Untouched sections keep their defaults.
	if config.Log.Level != "info" {
		t.Errorf("expected default log level info, got %q", config.Log.Level)
	}

	accent, err := config.AccentColor()
	if err != nil {
		t.Fatalf("AccentColor failed: %v", err)
	}
	if accent != 0x3366FF {
		t.Errorf("expected accent 0x3366FF, got 0x%06X", accent)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[window]
titel = "typo"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for an unknown config key")
	}
}

func TestAccentColorUnsetIsZero(t *testing.T) {
	accent, err := DefaultConfig().AccentColor()
	if err != nil {
		t.Fatalf("AccentColor failed: %v", err)
	}
	if accent != 0 {
		t.Errorf("expected 0 for unset accent, got 0x%06X", accent)
	}
}

func TestAccentColorRejectsBadValues(t *testing.T) {
	for _, bad := range []string{"fff", "#12345", "#GGGGGG", "red"} {
		config := DefaultConfig()
		config.Theme.AccentColorHex = bad
		if _, err := config.AccentColor(); err == nil {
			t.Errorf("expected an error for accent color %q", bad)
		}
	}
}

func TestBuildCatalogFiltersAndReorders(t *testing.T) {
	c, err := buildCatalog(nil, DemosConfig{Enabled: []string{"toolbar", "buttons"}})
	if err != nil {
		t.Fatalf("buildCatalog failed: %v", err)
	}

	entries := c.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 demos, got %d", len(entries))
	}
	if entries[0].ID != "toolbar" || entries[1].ID != "buttons" {
		t.Errorf("expected config order [toolbar buttons], got [%s %s]", entries[0].ID, entries[1].ID)
	}
}

func TestBuildCatalogRejectsUnknownDemo(t *testing.T) {
	if _, err := buildCatalog(nil, DemosConfig{Enabled: []string{"slider"}}); err == nil {
		t.Error("expected an error for an unknown demo ID")
	}
}

func TestBuildCatalogEmptyFilterKeepsAll(t *testing.T) {
	c, err := buildCatalog(nil, DemosConfig{})
	if err != nil {
		t.Fatalf("buildCatalog failed: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("expected all 5 demos, got %d", c.Len())
	}
}
