// Package presenter routes catalog selections to the correct presentation.
//
// The presenter owns a small state machine, driven entirely by discrete user
// events on the host's single UI thread:
//
//	Idle ──Select(inline)──▶ InlineNavigating ──Back()──▶ Idle
//	Idle ──Select(full)────▶ FullScreenPresenting ──Dismiss()──▶ Idle
//
// On an inline selection the resolved screen is pushed onto the host's
// navigation stack; on a full-screen selection a Request recording the
// selected descriptor is created and the screen is shown as an overlay.
// There are no timeouts and no automatic transitions: the presenter only
// moves when the user selects, navigates back, or dismisses.
//
// The Host interface is the boundary to the real navigation framework. It
// must guarantee at most one active full-screen overlay at a time and
// FIFO-order back navigation; the SDL host in cmd/vetro-showcase and the
// fakes in the tests both satisfy this.
package presenter
