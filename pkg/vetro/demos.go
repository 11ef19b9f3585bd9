package vetro

import (
	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Runner is the contract every demo screen satisfies: a blocking Run that
// returns once the user leaves the screen.
type Runner interface {
	Run() error
}

// DemoID enumerates the built-in demos. The set is closed; adding a demo
// means adding a constant here and a case to every switch below, which the
// compiler will point out.
type DemoID int

const (
	DemoButtons DemoID = iota
	DemoTabView
	DemoGlassContainer
	DemoGlassTransition
	DemoToolbar
)

// String returns the demo's catalog ID.
func (id DemoID) String() string {
	switch id {
	case DemoButtons:
		return "buttons"
	case DemoTabView:
		return "tabview"
	case DemoGlassContainer:
		return "glass-container"
	case DemoGlassTransition:
		return "glass-transition"
	case DemoToolbar:
		return "toolbar"
	default:
		return "unknown"
	}
}

// build constructs a fresh screen for the demo. Every call returns a new
// instance with clean transient state.
func (id DemoID) build() catalog.Screen {
	switch id {
	case DemoButtons:
		return NewButtonsDemo()
	case DemoTabView:
		return NewTabViewDemo()
	case DemoGlassContainer:
		return NewGlassContainerDemo()
	case DemoGlassTransition:
		return NewGlassTransitionDemo()
	case DemoToolbar:
		return NewToolbarDemo()
	default:
		return nil
	}
}

// AllDemoIDs returns the built-in demos in their display order.
func AllDemoIDs() []DemoID {
	return []DemoID{DemoButtons, DemoTabView, DemoGlassContainer, DemoGlassTransition, DemoToolbar}
}

type demoMessages struct {
	title       *i18n.Message
	description *i18n.Message
}

func (id DemoID) messages() demoMessages {
	switch id {
	case DemoButtons:
		return demoMessages{
			title:       &i18n.Message{ID: "demo.buttons.title", Other: "Buttons"},
			description: &i18n.Message{ID: "demo.buttons.description", Other: "Glass button styles and pressed states"},
		}
	case DemoTabView:
		return demoMessages{
			title:       &i18n.Message{ID: "demo.tabview.title", Other: "Tab View"},
			description: &i18n.Message{ID: "demo.tabview.description", Other: "Floating glass tab bar, shown full screen"},
		}
	case DemoGlassContainer:
		return demoMessages{
			title:       &i18n.Message{ID: "demo.glass_container.title", Other: "Glass Container"},
			description: &i18n.Message{ID: "demo.glass_container.description", Other: "Grouped panels sharing one container effect"},
		}
	case DemoGlassTransition:
		return demoMessages{
			title:       &i18n.Message{ID: "demo.glass_transition.title", Other: "Glass Transition"},
			description: &i18n.Message{ID: "demo.glass_transition.description", Other: "Animated morph between glass states"},
		}
	case DemoToolbar:
		return demoMessages{
			title:       &i18n.Message{ID: "demo.toolbar.title", Other: "Toolbar"},
			description: &i18n.Message{ID: "demo.toolbar.description", Other: "Floating action pills above the content"},
		}
	default:
		return demoMessages{}
	}
}

func (id DemoID) iconName() string {
	switch id {
	case DemoButtons:
		return "buttons"
	case DemoTabView:
		return "tabview"
	case DemoGlassContainer:
		return "container"
	case DemoGlassTransition:
		return "transition"
	case DemoToolbar:
		return "toolbar"
	default:
		return ""
	}
}

func (id DemoID) iconColor() constants.ColorToken {
	switch id {
	case DemoButtons:
		return constants.ColorTokenBlue
	case DemoTabView:
		return constants.ColorTokenPurple
	case DemoGlassContainer:
		return constants.ColorTokenTeal
	case DemoGlassTransition:
		return constants.ColorTokenGreen
	case DemoToolbar:
		return constants.ColorTokenOrange
	default:
		return constants.ColorTokenAccent
	}
}

// Descriptor builds the catalog descriptor for the demo. A nil localizer
// yields the built-in English strings.
func (id DemoID) Descriptor(localizer *i18n.Localizer) catalog.Descriptor {
	msgs := id.messages()
	return catalog.Descriptor{
		ID:                 id.String(),
		Title:              localize(localizer, msgs.title),
		Description:        localize(localizer, msgs.description),
		IconName:           id.iconName(),
		IconColor:          id.iconColor(),
		RequiresFullScreen: id == DemoTabView,
		Build:              id.build,
	}
}

// DefaultCatalog returns a catalog of all built-in demos in display order.
func DefaultCatalog(localizer *i18n.Localizer) *catalog.Catalog {
	ids := AllDemoIDs()
	entries := make([]catalog.Descriptor, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, id.Descriptor(localizer))
	}
	return catalog.New(entries...)
}

func localize(localizer *i18n.Localizer, msg *i18n.Message) string {
	if msg == nil {
		return ""
	}
	if localizer == nil {
		return msg.Other
	}
	localized, err := localizer.LocalizeMessage(msg)
	if err != nil {
		return msg.Other
	}
	return localized
}
