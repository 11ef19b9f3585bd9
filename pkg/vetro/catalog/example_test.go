package catalog_test

import (
	"fmt"

	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
)

// Example demonstrates building a catalog and deriving a filtered view.
func Example() {
	cat := catalog.New(
		catalog.Descriptor{
			ID:    "buttons",
			Title: "Buttons",
			Build: func() catalog.Screen { return "buttons screen" },
		},
		catalog.Descriptor{
			ID:                 "tabview",
			Title:              "Tab View",
			RequiresFullScreen: true,
			Build:              func() catalog.Screen { return "tab view screen" },
		},
		catalog.Descriptor{
			ID:    "toolbar",
			Title: "Toolbar",
			Build: func() catalog.Screen { return "toolbar screen" },
		},
	)

	for _, d := range cat.All() {
		fmt.Printf("%s full-screen=%v\n", d.ID, d.RequiresFullScreen)
	}

	inline := cat.Filter(func(d catalog.Descriptor) bool { return !d.RequiresFullScreen })
	fmt.Println("inline entries:", inline.Len())

	// Output:
	// buttons full-screen=false
	// tabview full-screen=true
	// toolbar full-screen=false
	// inline entries: 2
}

// colorCycle is a demo defined as its own type rather than a Descriptor
// literal. Erase converts it at the catalog boundary.
type colorCycle struct{}

func (colorCycle) ID() string                           { return "color-cycle" }
func (colorCycle) Title() string                        { return "Color Cycle" }
func (colorCycle) Description() string                  { return "Cycles the accent color" }
func (colorCycle) Icon() (string, constants.ColorToken) { return "palette", constants.ColorTokenPurple }
func (colorCycle) RequiresFullScreen() bool             { return false }
func (colorCycle) BuildScreen() catalog.Screen          { return "color cycle screen" }

// Example_entries demonstrates the open-set Entry interface and erasure.
func Example_entries() {
	cat := catalog.FromEntries(colorCycle{})

	d, _ := cat.Get("color-cycle")
	fmt.Println(d.Title)
	fmt.Println(d.Build())

	// Output:
	// Color Cycle
	// color cycle screen
}
