// Package resolver maps catalog descriptors to concrete screens and
// presentation modes.
//
// Resolution is a pure mapping over valid in-catalog descriptors and cannot
// fail under normal operation. Passing a descriptor that is not a member of
// the bound catalog is a programmer error and panics rather than returning a
// recoverable error.
package resolver

import (
	"fmt"

	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
)

// Mode selects how a resolved screen is presented.
type Mode int

const (
	// ModeInline pushes the screen onto the navigation stack.
	ModeInline Mode = iota
	// ModeFullScreen shows the screen as a full-screen overlay.
	ModeFullScreen
)

func (m Mode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeFullScreen:
		return "full-screen"
	default:
		return "unknown"
	}
}

// Resolver resolves descriptors against one catalog.
type Resolver struct {
	catalog *catalog.Catalog
}

// New creates a Resolver bound to the given catalog.
func New(c *catalog.Catalog) *Resolver {
	if c == nil {
		panic("resolver: nil catalog")
	}
	return &Resolver{catalog: c}
}

// Screen invokes the descriptor's deferred factory and returns a newly
// constructed screen. The result is never cached: screens carry their own
// transient UI state, which must reset on every entry.
//
// Panics if d is not a member of the bound catalog or has no builder.
func (r *Resolver) Screen(d catalog.Descriptor) catalog.Screen {
	member, ok := r.catalog.Get(d.ID)
	if !ok {
		panic(fmt.Sprintf("resolver: descriptor %q is not in the catalog", d.ID))
	}
	if member.Build == nil {
		panic(fmt.Sprintf("resolver: descriptor %q has no screen builder", d.ID))
	}
	return member.Build()
}

// Mode returns the presentation mode for the descriptor.
// Pure function of d.RequiresFullScreen.
func (r *Resolver) Mode(d catalog.Descriptor) Mode {
	if d.RequiresFullScreen {
		return ModeFullScreen
	}
	return ModeInline
}
