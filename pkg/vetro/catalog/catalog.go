package catalog

import (
	"fmt"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
)

// Screen is an opaque renderable produced by a descriptor's Build factory.
// The catalog never inspects it; the host decides how to run it.
type Screen any

// Builder constructs a new screen instance. It is invoked on every
// navigation, never once-and-cached, so each visit starts from fresh state.
type Builder func() Screen

// Descriptor is one catalog entry: static display metadata plus the deferred
// screen factory. Identity is defined solely by ID; two descriptors with the
// same ID are the same entry regardless of their other fields.
type Descriptor struct {
	ID                 string               // Stable unique identifier within a catalog
	Title              string               // Display title
	Description        string               // Short display description
	IconName           string               // Symbolic icon reference, resolved by the renderer
	IconColor          constants.ColorToken // Semantic tint for the icon
	RequiresFullScreen bool                 // Present as a full-screen overlay instead of an inline push
	Build              Builder              // Deferred screen factory
}

// Same reports whether two descriptors identify the same entry.
// Only the IDs are compared.
func (d Descriptor) Same(other Descriptor) bool {
	return d.ID == other.ID
}

// Catalog is an ordered, immutable collection of descriptors.
// Insertion order is display order.
type Catalog struct {
	entries []Descriptor
	index   map[string]int
}

// New builds a catalog from the given descriptors.
// Duplicate or empty IDs are definition-time programmer errors and panic
// immediately rather than surfacing later as a runtime fault.
func New(entries ...Descriptor) *Catalog {
	c := &Catalog{
		entries: make([]Descriptor, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, d := range entries {
		if d.ID == "" {
			panic("catalog: descriptor with empty ID")
		}
		if _, exists := c.index[d.ID]; exists {
			panic(fmt.Sprintf("catalog: duplicate descriptor ID %q", d.ID))
		}
		c.index[d.ID] = len(c.entries)
		c.entries = append(c.entries, d)
	}

	return c
}

// All returns every descriptor in insertion order.
// The returned slice is a copy; callers may filter, slice, or reorder it
// freely without affecting the catalog.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the descriptor with the given ID, if present.
func (c *Catalog) Get(id string) (Descriptor, bool) {
	i, ok := c.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return c.entries[i], true
}

// Contains reports whether the catalog holds an entry with d's ID.
func (c *Catalog) Contains(d Descriptor) bool {
	_, ok := c.index[d.ID]
	return ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Filter derives a new catalog containing only the entries for which keep
// returns true, preserving relative order. The receiver is not modified.
func (c *Catalog) Filter(keep func(Descriptor) bool) *Catalog {
	var kept []Descriptor
	for _, d := range c.entries {
		if keep(d) {
			kept = append(kept, d)
		}
	}
	return New(kept...)
}
