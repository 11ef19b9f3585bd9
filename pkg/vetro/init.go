// Package vetro provides glass-styled UI components for building graphical
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware.
//
// The package handles SDL initialization, input processing, theming, and
// provides the demo list, tab view, dialog, and glass panel components used
// by the showcase application. Demo metadata and navigation live in the
// catalog, resolver, and presenter subpackages.
package vetro

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
)

// WindowOptions configures the SDL window flags (borderless, resizable,
// fullscreen, etc.) passed to Init.
type WindowOptions = internal.WindowOptions

// Options configures the vetro UI framework initialization.
type Options struct {
	WindowTitle          string        // Window title displayed in windowed mode
	ShowBackground       bool          // Whether to render the theme background
	WindowOptions        WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32        // Custom accent color, 0xRRGGBB
	FontPath             string        // Path to the TTF font used for all text
	BackgroundImagePath  string        // Optional background image rendered behind screens
	HandheldPowerButton  bool          // Watch the device power button via evdev (ignored in dev mode)
	LogPath              string        // Full path for log file including filename (creates parent directories)
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other vetro functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme(options.FontPath)
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	if options.BackgroundImagePath != "" {
		theme.BackgroundImagePath = options.BackgroundImagePath
	}
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{}
	if options.HandheldPowerButton {
		// TG5050 delivers the power button on a different event device
		// than the rest of the family.
		powerDevicePath := "/dev/input/event1"
		platformEnv := strings.ToUpper(os.Getenv("PLATFORM"))
		if strings.Contains(platformEnv, "TG5050") {
			powerDevicePath = "/dev/input/event2"
		}

		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      powerDevicePath,
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
