// Package constants defines shared constants, types, and configuration values
// used throughout the vetro UI showcase.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar and WindowHeightEnvVar override the window size in
// development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows vetro to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// ColorToken is a semantic color reference resolved against the active theme.
// Catalog entries carry a token rather than a concrete color so the same
// catalog renders correctly under any theme.
type ColorToken int

const (
	ColorTokenAccent ColorToken = iota
	ColorTokenBlue
	ColorTokenGreen
	ColorTokenOrange
	ColorTokenPurple
	ColorTokenTeal
)

func (ct ColorToken) GetName() string {
	switch ct {
	case ColorTokenAccent:
		return "Accent"
	case ColorTokenBlue:
		return "Blue"
	case ColorTokenGreen:
		return "Green"
	case ColorTokenOrange:
		return "Orange"
	case ColorTokenPurple:
		return "Purple"
	case ColorTokenTeal:
		return "Teal"
	default:
		return "Unknown"
	}
}

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
)
