package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded fonts at the standard showcase sizes.
type FontSet struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

// FontSizes configures the point sizes for the three font tiers.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

// DefaultFontSizes are tuned for the 640x480-to-1280x720 handheld displays
// the showcase targets.
var DefaultFontSizes = FontSizes{
	Large:  34,
	Medium: 26,
	Small:  20,
}

// Fonts is the shared font set, valid between Init and Close.
var Fonts FontSet

// initFonts loads the three font tiers from the theme's font path. Every
// screen derefs these fonts unconditionally, so a missing font is fatal for
// the caller, never a partial load.
func initFonts(sizes FontSizes) error {
	theme := GetTheme()
	if theme.FontPath == "" {
		return errors.New("no font path configured")
	}
	if _, err := os.Stat(theme.FontPath); err != nil {
		return fmt.Errorf("font not available: %w", err)
	}

	var err error
	if Fonts.LargeFont, err = ttf.OpenFont(theme.FontPath, sizes.Large); err != nil {
		return fmt.Errorf("load large font: %w", err)
	}
	if Fonts.MediumFont, err = ttf.OpenFont(theme.FontPath, sizes.Medium); err != nil {
		return fmt.Errorf("load medium font: %w", err)
	}
	if Fonts.SmallFont, err = ttf.OpenFont(theme.FontPath, sizes.Small); err != nil {
		return fmt.Errorf("load small font: %w", err)
	}
	return nil
}

func closeFonts() {
	if Fonts.LargeFont != nil {
		Fonts.LargeFont.Close()
	}
	if Fonts.MediumFont != nil {
		Fonts.MediumFont.Close()
	}
	if Fonts.SmallFont != nil {
		Fonts.SmallFont.Close()
	}
	Fonts = FontSet{}
}
