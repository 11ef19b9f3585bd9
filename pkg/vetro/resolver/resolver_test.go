package resolver

import (
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
)

// toggleScreen is a stand-in screen with mutable transient state.
type toggleScreen struct {
	enabled bool
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Descriptor{
			ID:    "buttons",
			Build: func() catalog.Screen { return &toggleScreen{} },
		},
		catalog.Descriptor{
			ID:                 "tabview",
			RequiresFullScreen: true,
			Build:              func() catalog.Screen { return &toggleScreen{} },
		},
	)
}

func TestModeFollowsRequiresFullScreen(t *testing.T) {
	r := New(newTestCatalog())

	if got := r.Mode(catalog.Descriptor{ID: "buttons"}); got != ModeInline {
		t.Errorf("Mode(inline descriptor) = %v", got)
	}
	if got := r.Mode(catalog.Descriptor{ID: "tabview", RequiresFullScreen: true}); got != ModeFullScreen {
		t.Errorf("Mode(full-screen descriptor) = %v", got)
	}
}

func TestScreenReturnsFreshInstance(t *testing.T) {
	r := New(newTestCatalog())
	d, _ := newTestCatalog().Get("buttons")

	first := r.Screen(d).(*toggleScreen)
	second := r.Screen(d).(*toggleScreen)

	if first == second {
		t.Fatal("Screen returned the same instance twice")
	}

	// Mutating one instance must not leak into the other.
	first.enabled = true
	if second.enabled {
		t.Error("state mutation on one screen instance affected another")
	}
}

func TestScreenPanicsOnUnknownDescriptor(t *testing.T) {
	r := New(newTestCatalog())

	defer func() {
		if recover() == nil {
			t.Error("Screen did not panic for a descriptor outside the catalog")
		}
	}()

	r.Screen(catalog.Descriptor{ID: "not-registered"})
}

func TestScreenPanicsOnNilBuilder(t *testing.T) {
	r := New(catalog.New(catalog.Descriptor{ID: "broken"}))

	defer func() {
		if recover() == nil {
			t.Error("Screen did not panic for a descriptor without a builder")
		}
	}()

	r.Screen(catalog.Descriptor{ID: "broken"})
}

func TestModeString(t *testing.T) {
	if ModeInline.String() != "inline" || ModeFullScreen.String() != "full-screen" {
		t.Errorf("Mode strings: %q %q", ModeInline, ModeFullScreen)
	}
}
