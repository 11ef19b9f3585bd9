package vetro

import (
	"testing"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog(nil)

	want := []string{"buttons", "tabview", "glass-container", "glass-transition", "toolbar"}
	entries := c.All()
	if len(entries) != len(want) {
		t.Fatalf("expected %d demos, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entry %d: expected ID %q, got %q", i, id, entries[i].ID)
		}
	}
}

func TestOnlyTabViewRequiresFullScreen(t *testing.T) {
	for _, entry := range DefaultCatalog(nil).All() {
		want := entry.ID == "tabview"
		if entry.RequiresFullScreen != want {
			t.Errorf("demo %q: RequiresFullScreen = %v, want %v", entry.ID, entry.RequiresFullScreen, want)
		}
	}
}

func TestDemoBuildReturnsFreshRunner(t *testing.T) {
	d := DemoButtons.Descriptor(nil)

	first := d.Build()
	second := d.Build()

	if first == second {
		t.Error("expected each Build call to return a new instance")
	}

	demo, ok := first.(*ButtonsDemo)
	if !ok {
		t.Fatalf("expected *ButtonsDemo, got %T", first)
	}
	if demo.focusedIndex != 0 {
		t.Errorf("new demo should start with focus at 0, got %d", demo.focusedIndex)
	}

	if _, ok := first.(Runner); !ok {
		t.Errorf("demo screen %T does not satisfy Runner", first)
	}
}

func TestEveryDemoBuildsRunner(t *testing.T) {
	for _, id := range AllDemoIDs() {
		screen := id.build()
		if screen == nil {
			t.Errorf("demo %s built nil screen", id)
			continue
		}
		if _, ok := screen.(Runner); !ok {
			t.Errorf("demo %s screen %T does not satisfy Runner", id, screen)
		}
	}
}

func TestDescriptorFallbackTitles(t *testing.T) {
	d := DemoGlassContainer.Descriptor(nil)
	if d.Title != "Glass Container" {
		t.Errorf("expected fallback title %q, got %q", "Glass Container", d.Title)
	}
	if d.Description == "" {
		t.Error("expected a non-empty description")
	}
	if d.IconName == "" {
		t.Error("expected a non-empty icon name")
	}
}
