package catalog

import "github.com/BrandonKowalski/vetro/pkg/vetro/constants"

// Entry is the capability interface for callers that model demos as their
// own concrete types instead of plain Descriptors. Each method mirrors one
// Descriptor field.
type Entry interface {
	ID() string
	Title() string
	Description() string
	Icon() (name string, color constants.ColorToken)
	RequiresFullScreen() bool
	BuildScreen() Screen
}

// Erase converts an Entry into a Descriptor, capturing the entry behind the
// descriptor's deferred factory. After this point callers see only the
// uniform Descriptor representation.
func Erase(e Entry) Descriptor {
	name, color := e.Icon()
	return Descriptor{
		ID:                 e.ID(),
		Title:              e.Title(),
		Description:        e.Description(),
		IconName:           name,
		IconColor:          color,
		RequiresFullScreen: e.RequiresFullScreen(),
		Build:              e.BuildScreen,
	}
}

// FromEntries builds a catalog from Entry implementations, preserving order.
// Duplicate IDs panic, as with New.
func FromEntries(entries ...Entry) *Catalog {
	descriptors := make([]Descriptor, len(entries))
	for i, e := range entries {
		descriptors[i] = Erase(e)
	}
	return New(descriptors...)
}
