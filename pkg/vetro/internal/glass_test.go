package internal

import (
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
)

func TestCornerSpan(t *testing.T) {
	if got := cornerSpan(10, 0); got != 10 {
		t.Errorf("span at circle center should equal the radius, got %d", got)
	}
	if got := cornerSpan(10, 10); got != 0 {
		t.Errorf("span at the circle edge should be 0, got %d", got)
	}

	// Spans must shrink monotonically toward the corner or the fill
	// would leave notches.
	prev := cornerSpan(10, 0)
	for dy := int32(1); dy <= 10; dy++ {
		span := cornerSpan(10, dy)
		if span > prev {
			t.Errorf("span grew from %d to %d at dy=%d", prev, span, dy)
		}
		prev = span
	}
}

func TestDirectionalInputHeldPriority(t *testing.T) {
	d := NewDirectionalInput()

	if d.IsHeld() {
		t.Error("fresh input should have nothing held")
	}

	d.SetHeld(constants.VirtualButtonA, true)
	if d.IsHeld() {
		t.Error("non-directional button must not register as held")
	}

	if !d.SetHeld(constants.VirtualButtonLeft, true) {
		t.Error("left should be recognized as directional")
	}
	if d.HeldDirection() != DirectionLeft {
		t.Errorf("expected left held, got %v", d.HeldDirection())
	}

	d.Reset()
	if d.IsHeld() {
		t.Error("Reset should clear held directions")
	}
}
