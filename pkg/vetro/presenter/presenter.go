package presenter

import (
	"log/slog"

	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"github.com/BrandonKowalski/vetro/pkg/vetro/resolver"
)

// Host supplies the navigation primitives the presenter dispatches to.
// Implementations must guarantee at most one active full-screen overlay at a
// time and last-in-first-out back navigation on the push stack.
type Host interface {
	// Push shows the screen as an inline (stacked) navigation.
	Push(screen catalog.Screen)
	// Present shows the screen as a full-screen overlay.
	Present(screen catalog.Screen)
	// Dismiss removes the active full-screen overlay, if any.
	Dismiss()
}

// State identifies the presenter's current position in its state machine.
type State int

const (
	// StateIdle means no selection is pending.
	StateIdle State = iota
	// StateInlineNavigating means a screen has been pushed onto the stack.
	StateInlineNavigating
	// StateFullScreenPresenting means a full-screen overlay is showing.
	StateFullScreenPresenting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInlineNavigating:
		return "inline-navigating"
	case StateFullScreenPresenting:
		return "full-screen-presenting"
	default:
		return "unknown"
	}
}

// Request is the ephemeral record of which descriptor is currently targeted
// for full-screen display. It exists only between Select and Dismiss.
type Request struct {
	Descriptor catalog.Descriptor
}

// Presenter renders selections from an ordered catalog into host navigation.
// All methods must be called from the host's single UI thread; the only
// mutable state is owned here and never crosses a goroutine boundary.
type Presenter struct {
	resolver *resolver.Resolver
	host     Host
	log      *slog.Logger

	state   State
	request *Request
	stack   *Stack
}

// New creates a Presenter dispatching to the given host.
// A nil logger disables presenter logging.
func New(r *resolver.Resolver, host Host, log *slog.Logger) *Presenter {
	if r == nil {
		panic("presenter: nil resolver")
	}
	if host == nil {
		panic("presenter: nil host")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Presenter{
		resolver: r,
		host:     host,
		log:      log,
		state:    StateIdle,
		stack:    NewStack(),
	}
}

// Select resolves the descriptor and dispatches it to the host using its
// presentation mode. The resolved screen is always a fresh instance.
//
// A selection made while a full-screen presentation is active is ignored:
// the modal overlay owns the display, so there is nothing sensible to do
// with a second selection until the user dismisses it.
func (p *Presenter) Select(d catalog.Descriptor) {
	p.SelectWithResume(d, nil)
}

// SelectWithResume is Select with resume state for the originating list,
// recorded on the navigation stack for inline pushes so the list can restore
// its position when the user navigates back.
func (p *Presenter) SelectWithResume(d catalog.Descriptor, resume any) {
	if p.state == StateFullScreenPresenting {
		p.log.Debug("selection ignored while presenting full-screen", "id", d.ID)
		return
	}

	screen := p.resolver.Screen(d)

	switch p.resolver.Mode(d) {
	case resolver.ModeFullScreen:
		p.request = &Request{Descriptor: d}
		p.state = StateFullScreenPresenting
		p.log.Debug("presenting full-screen", "id", d.ID)
		p.host.Present(screen)
	default:
		p.stack.Push(d, resume)
		p.state = StateInlineNavigating
		p.log.Debug("pushing inline", "id", d.ID, "depth", p.stack.Len())
		p.host.Push(screen)
	}
}

// Back records a user-initiated back navigation out of an inline screen and
// returns the popped stack entry (nil when nothing was pushed). The entry's
// Resume value carries whatever position state was recorded at Select time.
// No-op when no inline navigation is active.
func (p *Presenter) Back() *StackEntry {
	if p.state != StateInlineNavigating {
		return nil
	}

	entry := p.stack.Pop()
	if p.stack.IsEmpty() {
		p.state = StateIdle
	}
	return entry
}

// Dismiss records a user-initiated dismissal of the full-screen overlay:
// the request is cleared and the presenter returns to Idle.
// No-op when nothing is presenting.
func (p *Presenter) Dismiss() {
	if p.state != StateFullScreenPresenting {
		return
	}

	p.request = nil
	p.state = StateIdle
	p.host.Dismiss()
}

// State returns the presenter's current state.
func (p *Presenter) State() State {
	return p.state
}

// Request returns the active full-screen presentation request, or nil when
// no full-screen presentation is active.
func (p *Presenter) Request() *Request {
	return p.request
}
