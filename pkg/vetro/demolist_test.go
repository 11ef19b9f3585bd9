package vetro

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
)

func newTestListController() *demoListController {
	entries := []catalog.Descriptor{
		{ID: "first", Title: "First"},
		{ID: "second", Title: "Second"},
		{ID: "third", Title: "Third"},
	}
	dlc := newDemoListController("Demos", entries, DemoListSettings{})
	dlc.MaxVisibleItems = 2
	return dlc
}

func press(button constants.VirtualButton) *internal.Event {
	return &internal.Event{Button: button, Pressed: true}
}

func TestDemoListSelectStopsWithSelection(t *testing.T) {
	dlc := newTestListController()

	running := true
	cancelled := false
	result := DemoListResult{Selected: -1}

	dlc.handleInput(press(constants.VirtualButtonDown), &running, &result, &cancelled)
	dlc.handleInput(press(constants.VirtualButtonA), &running, &result, &cancelled)

	if running {
		t.Error("A should stop the list")
	}
	if result.Selected != 1 || result.Action != ListActionSelected {
		t.Errorf("result = %+v", result)
	}
}

func TestDemoListTriggerReportsTriggeredAction(t *testing.T) {
	dlc := newTestListController()

	running := true
	cancelled := false
	result := DemoListResult{Selected: -1}

	dlc.handleInput(press(constants.VirtualButtonX), &running, &result, &cancelled)

	if running {
		t.Error("X should stop the list")
	}
	if result.Selected != 0 || result.Action != ListActionTriggered {
		t.Errorf("result = %+v", result)
	}
}

func TestDemoListBackCancels(t *testing.T) {
	dlc := newTestListController()

	running := true
	cancelled := false
	result := DemoListResult{Selected: -1}

	dlc.handleInput(press(constants.VirtualButtonB), &running, &result, &cancelled)

	if running || !cancelled {
		t.Errorf("running=%v cancelled=%v after B", running, cancelled)
	}
}

func TestDemoListOutcomeNeverExposesPlaceholderSelection(t *testing.T) {
	dlc := newTestListController()
	placeholder := DemoListResult{Selected: -1, Action: ListActionSelected}

	// Window close: cancelled with no SDL error, as the event loop reports
	// a QuitEvent.
	result, err := dlc.outcome(true, nil, placeholder)
	if !IsCancelled(err) {
		t.Errorf("expected ErrCancelled for a quit, got %v", err)
	}
	if result != nil {
		t.Errorf("cancelled outcome leaked a result: %+v", result)
	}

	result, err = dlc.outcome(false, nil, DemoListResult{Selected: 2, Action: ListActionSelected})
	if err != nil {
		t.Fatalf("outcome failed: %v", err)
	}
	if result.Selected != 2 {
		t.Errorf("Selected = %d, want 2", result.Selected)
	}
}

func TestDemoListOutcomeReportsSDLError(t *testing.T) {
	dlc := newTestListController()
	sdlErr := errors.New("renderer lost")

	_, err := dlc.outcome(true, sdlErr, DemoListResult{Selected: -1})
	if !errors.Is(err, sdlErr) {
		t.Errorf("expected the SDL error through, got %v", err)
	}
}

func TestDemoListSelectionWraps(t *testing.T) {
	dlc := newTestListController()

	dlc.moveSelection(-1)
	if dlc.SelectedIndex != 2 {
		t.Errorf("up from the first row should wrap to the last, got %d", dlc.SelectedIndex)
	}

	dlc.moveSelection(1)
	if dlc.SelectedIndex != 0 {
		t.Errorf("down from the last row should wrap to the first, got %d", dlc.SelectedIndex)
	}
}
