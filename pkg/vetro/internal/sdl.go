package internal

import (
	"os"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | img.INIT_PNG | img.INIT_JPG |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	if err := initFonts(DefaultFontSizes); err != nil {
		GetInternalLogger().Error("Failed to load fonts", "path", GetTheme().FontPath, "error", err)
		os.Exit(1)
	}

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		window.PowerButtonConfig = pbc
		window.initPowerButtonHandling(pbc)
	}
}

func SDLCleanup() {
	window.closeWindow()
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
