// Package catalog holds the ordered set of demo descriptors that drive the
// showcase's navigation.
//
// A Descriptor is static metadata plus a deferred screen factory. Storing the
// factory rather than a built screen keeps heterogeneous screen types behind
// one uniform representation and guarantees that every navigation constructs
// a fresh screen, so transient UI state (toggle flags, focus position) never
// leaks between visits.
//
// # Basic Usage
//
//	cat := catalog.New(
//	    catalog.Descriptor{
//	        ID:       "buttons",
//	        Title:    "Buttons",
//	        IconName: "buttons",
//	        Build:    func() catalog.Screen { return NewButtonsScreen() },
//	    },
//	    catalog.Descriptor{
//	        ID:                 "tabview",
//	        Title:              "Tab View",
//	        RequiresFullScreen: true,
//	        Build:              func() catalog.Screen { return NewTabViewScreen() },
//	    },
//	)
//
//	for _, d := range cat.All() {
//	    // render d.Title, dispatch on selection
//	}
//
// Catalogs are immutable once constructed. Callers that need a subset derive
// one with Filter, which preserves relative order and leaves the source
// untouched.
//
// # Open Sets
//
// Applications with a compile-time fixed set of demos define Descriptors
// directly. Callers that model demos as their own types instead implement
// the Entry interface and convert with Erase or FromEntries; the conversion
// is the erasure boundary, and everything downstream sees only Descriptors.
package catalog
