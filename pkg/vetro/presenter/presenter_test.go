package presenter

import (
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"github.com/BrandonKowalski/vetro/pkg/vetro/resolver"
)

// recordingHost records every navigation primitive the presenter invokes.
type recordingHost struct {
	pushed    []catalog.Screen
	presented []catalog.Screen
	dismissed int
}

func (h *recordingHost) Push(s catalog.Screen)    { h.pushed = append(h.pushed, s) }
func (h *recordingHost) Present(s catalog.Screen) { h.presented = append(h.presented, s) }
func (h *recordingHost) Dismiss()                 { h.dismissed++ }

func newTestPresenter(t *testing.T) (*Presenter, *recordingHost, *catalog.Catalog) {
	t.Helper()

	cat := catalog.New(
		catalog.Descriptor{
			ID:    "button",
			Build: func() catalog.Screen { return "button-screen" },
		},
		catalog.Descriptor{
			ID:                 "tab",
			RequiresFullScreen: true,
			Build:              func() catalog.Screen { return "tab-screen" },
		},
		catalog.Descriptor{
			ID:                 "toolbar-sheet",
			RequiresFullScreen: true,
			Build:              func() catalog.Screen { return "toolbar-sheet-screen" },
		},
	)

	host := &recordingHost{}
	return New(resolver.New(cat), host, nil), host, cat
}

func TestInlineSelectionPushesAndReturnsToIdle(t *testing.T) {
	p, host, cat := newTestPresenter(t)
	d, _ := cat.Get("button")

	p.Select(d)

	if p.State() != StateInlineNavigating {
		t.Fatalf("state after inline Select = %v", p.State())
	}
	if len(host.pushed) != 1 || host.pushed[0] != "button-screen" {
		t.Errorf("pushed = %v", host.pushed)
	}
	if p.Request() != nil {
		t.Error("inline selection should not create a presentation request")
	}

	p.Back()

	if p.State() != StateIdle {
		t.Errorf("state after Back = %v", p.State())
	}
}

func TestFullScreenSelectionPresentsWithRequest(t *testing.T) {
	p, host, cat := newTestPresenter(t)
	d, _ := cat.Get("tab")

	p.Select(d)

	if p.State() != StateFullScreenPresenting {
		t.Fatalf("state after full-screen Select = %v", p.State())
	}
	if len(host.presented) != 1 || host.presented[0] != "tab-screen" {
		t.Errorf("presented = %v", host.presented)
	}
	req := p.Request()
	if req == nil || req.Descriptor.ID != "tab" {
		t.Fatalf("request = %+v", req)
	}

	p.Dismiss()

	if p.State() != StateIdle {
		t.Errorf("state after Dismiss = %v", p.State())
	}
	if p.Request() != nil {
		t.Error("request not cleared by Dismiss")
	}
	if host.dismissed != 1 {
		t.Errorf("host.Dismiss called %d times", host.dismissed)
	}
}

func TestDismissIsNoOpWhenIdle(t *testing.T) {
	p, host, _ := newTestPresenter(t)

	p.Dismiss()

	if p.State() != StateIdle || host.dismissed != 0 {
		t.Errorf("Dismiss while idle: state=%v host.dismissed=%d", p.State(), host.dismissed)
	}
}

// A second full-screen selection while one is already presenting is ignored;
// the modal overlay owns the display until the user dismisses it.
func TestSelectIgnoredWhilePresenting(t *testing.T) {
	p, host, cat := newTestPresenter(t)
	tab, _ := cat.Get("tab")
	sheet, _ := cat.Get("toolbar-sheet")

	p.Select(tab)
	p.Select(sheet)

	if len(host.presented) != 1 {
		t.Fatalf("presented %d screens, want 1", len(host.presented))
	}
	if req := p.Request(); req == nil || req.Descriptor.ID != "tab" {
		t.Errorf("request replaced by ignored selection: %+v", req)
	}
}

func TestBackRestoresResumeState(t *testing.T) {
	p, _, cat := newTestPresenter(t)
	d, _ := cat.Get("button")

	p.SelectWithResume(d, 3)

	entry := p.Back()
	if entry == nil {
		t.Fatal("Back returned nil after an inline push")
	}
	if entry.Descriptor.ID != "button" || entry.Resume != 3 {
		t.Errorf("popped entry = %+v", entry)
	}
	if p.Back() != nil {
		t.Error("Back should be a no-op once idle")
	}
}

// End-to-end scenario from the catalog's point of view: select inline, back,
// select full-screen, dismiss.
func TestSelectionRoundTrip(t *testing.T) {
	p, host, cat := newTestPresenter(t)
	button, _ := cat.Get("button")
	tab, _ := cat.Get("tab")

	p.Select(button)
	if p.State() != StateInlineNavigating {
		t.Fatalf("after select(button): %v", p.State())
	}
	p.Back()
	if p.State() != StateIdle {
		t.Fatalf("after back: %v", p.State())
	}

	p.Select(tab)
	if p.State() != StateFullScreenPresenting {
		t.Fatalf("after select(tab): %v", p.State())
	}
	if req := p.Request(); req == nil || req.Descriptor.ID != "tab" {
		t.Fatalf("request = %+v", req)
	}
	p.Dismiss()
	if p.State() != StateIdle || p.Request() != nil {
		t.Fatalf("after dismiss: state=%v request=%+v", p.State(), p.Request())
	}

	if len(host.pushed) != 1 || len(host.presented) != 1 || host.dismissed != 1 {
		t.Errorf("host calls: pushed=%d presented=%d dismissed=%d",
			len(host.pushed), len(host.presented), host.dismissed)
	}
}

func TestFreshScreenPerSelection(t *testing.T) {
	type toggleScreen struct{ on bool }

	cat := catalog.New(catalog.Descriptor{
		ID:    "toggles",
		Build: func() catalog.Screen { return &toggleScreen{} },
	})
	host := &recordingHost{}
	p := New(resolver.New(cat), host, nil)
	d, _ := cat.Get("toggles")

	p.Select(d)
	p.Back()
	p.Select(d)

	first := host.pushed[0].(*toggleScreen)
	second := host.pushed[1].(*toggleScreen)
	if first == second {
		t.Fatal("re-entering a demo reused the previous screen instance")
	}
	first.on = true
	if second.on {
		t.Error("toggle state leaked between screen instances")
	}
}
