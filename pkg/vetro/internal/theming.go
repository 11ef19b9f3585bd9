package internal

import (
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the showcase.
// Glass panels are drawn as the GlassTint at GlassOpacity over the
// background, with a HighlightColor edge along the top.
type Theme struct {
	AccentColor          sdl.Color // Focus rings, selection bar, active tab
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on focused/selected surfaces
	HintColor            sdl.Color // Help text, footer hints
	BackgroundColor      sdl.Color // Screen background color
	GlassTint            sdl.Color // Base tint of glass panels
	GlassOpacity         uint8     // Alpha applied to glass panels
	HighlightColor       sdl.Color // Glass edge highlight
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the showcase.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme returns the stock dark glass theme used when no platform
// theme is configured.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		AccentColor:          HexToColor(0x4FC3F7),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x101018),
		HintColor:            HexToColor(0x9A9AA6),
		BackgroundColor:      HexToColor(0x14141E),
		GlassTint:            HexToColor(0xE8ECF4),
		GlassOpacity:         46,
		HighlightColor:       HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ResolveColorToken maps a semantic color token to a concrete color under
// the active theme.
func ResolveColorToken(token constants.ColorToken) sdl.Color {
	switch token {
	case constants.ColorTokenBlue:
		return HexToColor(0x42A5F5)
	case constants.ColorTokenGreen:
		return HexToColor(0x66BB6A)
	case constants.ColorTokenOrange:
		return HexToColor(0xFFA726)
	case constants.ColorTokenPurple:
		return HexToColor(0xAB47BC)
	case constants.ColorTokenTeal:
		return HexToColor(0x26A69A)
	default:
		return GetTheme().AccentColor
	}
}
