package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInitFontsRejectsEmptyPath(t *testing.T) {
	prev := GetTheme()
	defer SetTheme(prev)

	SetTheme(Theme{FontPath: ""})
	if err := initFonts(DefaultFontSizes); err == nil {
		t.Error("expected an error with no font path configured")
	}
}

func TestInitFontsRejectsMissingFile(t *testing.T) {
	prev := GetTheme()
	defer SetTheme(prev)

	SetTheme(Theme{FontPath: filepath.Join(t.TempDir(), "missing.ttf")})
	err := initFonts(DefaultFontSizes)
	if err == nil {
		t.Fatal("expected an error for a nonexistent font file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
