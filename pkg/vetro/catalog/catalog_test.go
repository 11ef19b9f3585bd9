package catalog

import (
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
)

func testDescriptors() []Descriptor {
	return []Descriptor{
		{ID: "buttons", Title: "Buttons", Build: func() Screen { return "buttons-screen" }},
		{ID: "tabview", Title: "Tab View", RequiresFullScreen: true, Build: func() Screen { return "tabview-screen" }},
		{ID: "glass-container", Title: "Glass Container", Build: func() Screen { return "container-screen" }},
		{ID: "glass-transition", Title: "Glass Transition", Build: func() Screen { return "transition-screen" }},
		{ID: "toolbar", Title: "Toolbar", Build: func() Screen { return "toolbar-screen" }},
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	c := New(testDescriptors()...)

	got := c.All()
	want := []string{"buttons", "tabview", "glass-container", "glass-transition", "toolbar"}

	if len(got) != len(want) {
		t.Fatalf("All() returned %d entries, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.ID != want[i] {
			t.Errorf("All()[%d].ID = %q, want %q", i, d.ID, want[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := New(testDescriptors()...)

	first := c.All()
	first[0] = Descriptor{ID: "mutated"}

	if c.All()[0].ID != "buttons" {
		t.Error("mutating the slice returned by All() affected the catalog")
	}
}

func TestNewPanicsOnDuplicateID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New did not panic on duplicate ID")
		}
	}()

	New(
		Descriptor{ID: "buttons"},
		Descriptor{ID: "buttons"},
	)
}

func TestNewPanicsOnEmptyID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New did not panic on empty ID")
		}
	}()

	New(Descriptor{Title: "Nameless"})
}

func TestSameComparesOnlyIDs(t *testing.T) {
	a := Descriptor{ID: "buttons", Title: "Buttons"}
	b := Descriptor{ID: "buttons", Title: "Completely Different", RequiresFullScreen: true}
	other := Descriptor{ID: "toolbar", Title: "Buttons"}

	if !a.Same(b) {
		t.Error("descriptors with equal IDs should be the same entry")
	}
	if a.Same(other) {
		t.Error("descriptors with different IDs should not be the same entry")
	}
}

func TestGetAndContains(t *testing.T) {
	c := New(testDescriptors()...)

	d, ok := c.Get("glass-container")
	if !ok || d.Title != "Glass Container" {
		t.Errorf("Get(glass-container) = %+v, %v", d, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get returned ok for an unknown ID")
	}

	if !c.Contains(Descriptor{ID: "toolbar"}) {
		t.Error("Contains should match by ID alone")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	c := New(testDescriptors()...)

	inline := c.Filter(func(d Descriptor) bool { return !d.RequiresFullScreen })

	want := []string{"buttons", "glass-container", "glass-transition", "toolbar"}
	got := inline.All()
	if len(got) != len(want) {
		t.Fatalf("filtered catalog has %d entries, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.ID != want[i] {
			t.Errorf("filtered[%d].ID = %q, want %q", i, d.ID, want[i])
		}
	}

	// The source catalog is untouched.
	if c.Len() != 5 {
		t.Errorf("source catalog mutated by Filter, Len = %d", c.Len())
	}
}

type fakeEntry struct {
	id string
}

func (f fakeEntry) ID() string                              { return f.id }
func (f fakeEntry) Title() string                           { return "Fake " + f.id }
func (f fakeEntry) Description() string                     { return "fake entry" }
func (f fakeEntry) Icon() (string, constants.ColorToken)    { return "fake", constants.ColorTokenTeal }
func (f fakeEntry) RequiresFullScreen() bool                { return f.id == "full" }
func (f fakeEntry) BuildScreen() Screen                     { return "screen-for-" + f.id }

func TestEraseCapturesEntry(t *testing.T) {
	d := Erase(fakeEntry{id: "full"})

	if d.ID != "full" || !d.RequiresFullScreen {
		t.Errorf("Erase produced %+v", d)
	}
	if d.IconName != "fake" || d.IconColor != constants.ColorTokenTeal {
		t.Errorf("Erase dropped icon metadata: %+v", d)
	}
	if got := d.Build(); got != "screen-for-full" {
		t.Errorf("erased Build() = %v", got)
	}
}

func TestFromEntries(t *testing.T) {
	c := FromEntries(fakeEntry{id: "a"}, fakeEntry{id: "b"})

	got := c.All()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("FromEntries order wrong: %+v", got)
	}
}
