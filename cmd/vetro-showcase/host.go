package main

import (
	"log/slog"

	"github.com/BrandonKowalski/vetro/pkg/vetro"
	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"go.uber.org/atomic"
)

// sdlHost drives demo screens on the SDL window. Screens are blocking
// components, so Push and Present run the screen to completion on the
// calling goroutine; the active guard catches any attempt to start a second
// screen while one is still running.
type sdlHost struct {
	active *atomic.Bool
	log    *slog.Logger
}

func newSDLHost(log *slog.Logger) *sdlHost {
	return &sdlHost{
		active: atomic.NewBool(false),
		log:    log,
	}
}

func (h *sdlHost) Push(screen catalog.Screen) {
	h.run(screen, "push")
}

func (h *sdlHost) Present(screen catalog.Screen) {
	h.run(screen, "present")
}

// Dismiss has nothing to tear down: a presented screen ends when its Run
// returns, which has already happened by the time the presenter dismisses.
func (h *sdlHost) Dismiss() {}

func (h *sdlHost) run(screen catalog.Screen, op string) {
	runner, ok := screen.(vetro.Runner)
	if !ok {
		h.log.Error("Screen does not implement Runner", "op", op, "screen", screen)
		return
	}

	if !h.active.CompareAndSwap(false, true) {
		h.log.Warn("Screen already active, refusing to start another", "op", op)
		return
	}
	defer h.active.Store(false)

	if err := runner.Run(); err != nil {
		h.log.Error("Screen exited with error", "op", op, "error", err)
	}
}
