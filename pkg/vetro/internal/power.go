package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig describes how the device's power button is wired and
// what to do on short and long presses. The power button is delivered on a
// raw evdev device, not through SDL, on the target CFW firmwares.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code for the power button (usually 116)
	DevicePath      string        // Input device path, e.g. /dev/input/event1
	ShortPressMax   time.Duration // Presses shorter than this suspend; longer shut down
	CoolDownTime    time.Duration // Ignore further presses for this long after handling one
	SuspendScript   string        // Script invoked on short press
	ShutdownCommand string        // Command invoked on long press
}

// PowerButtonHandler watches the configured evdev device for power button
// presses for the life of the window. Runs on its own goroutine; it touches
// no UI state.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	defer wg.Done()

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}
	defer device.Close()

	var pressedAt time.Time
	var lastHandled time.Time

	for {
		event, err := device.ReadOne()
		if err != nil {
			GetInternalLogger().Error("Power button read failed", "error", err)
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1: // press
			pressedAt = time.Now()
		case 0: // release
			if pressedAt.IsZero() {
				continue
			}
			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			if time.Since(lastHandled) < pbc.CoolDownTime {
				continue
			}
			lastHandled = time.Now()

			if held < pbc.ShortPressMax {
				GetInternalLogger().Info("Power button short press; suspending")
				if err := exec.Command(pbc.SuspendScript).Run(); err != nil {
					GetInternalLogger().Error("Suspend script failed", "script", pbc.SuspendScript, "error", err)
				}
			} else {
				GetInternalLogger().Info("Power button long press; shutting down")
				if err := exec.Command(pbc.ShutdownCommand).Run(); err != nil {
					GetInternalLogger().Error("Shutdown command failed", "command", pbc.ShutdownCommand, "error", err)
				}
			}
		}
	}
}
