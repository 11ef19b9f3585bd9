package vetro_test

import (
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro"
)

// Consumers outside pkg/vetro configure the window through the re-exported
// WindowOptions; the internal package is not importable from there.
func TestOptionsWindowFlags(t *testing.T) {
	options := vetro.Options{
		WindowTitle: "Showcase",
		WindowOptions: vetro.WindowOptions{
			Borderless: true,
			Resizable:  true,
		},
	}

	if options.WindowOptions.IsZero() {
		t.Error("populated window options reported as zero")
	}
	if !(vetro.WindowOptions{}).IsZero() {
		t.Error("empty window options should report as zero")
	}
	if options.WindowOptions.ToSDLFlags() == (vetro.WindowOptions{}).ToSDLFlags() {
		t.Error("borderless+resizable should change the SDL flag set")
	}
}
