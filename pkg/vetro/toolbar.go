package vetro

import (
	"time"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type toolbarItem struct {
	Label string
	Token constants.ColorToken
}

const toolbarFlashDuration = 200 * time.Millisecond

// ToolbarDemo shows a top toolbar of glass pills. Left and right move focus
// between items, A triggers the focused action which briefly flashes its
// pill in the item's tint.
type ToolbarDemo struct {
	items        []toolbarItem
	focusedIndex int
	flashedIndex int
	flashedAt    time.Time
	directional  internal.DirectionalInput
}

func NewToolbarDemo() *ToolbarDemo {
	return &ToolbarDemo{
		items: []toolbarItem{
			{Label: "New", Token: constants.ColorTokenBlue},
			{Label: "Share", Token: constants.ColorTokenGreen},
			{Label: "Favorite", Token: constants.ColorTokenOrange},
			{Label: "Delete", Token: constants.ColorTokenPurple},
		},
		flashedIndex: -1,
		directional:  internal.NewDirectionalInput(),
	}
}

// Run blocks until the user backs out with B.
func (d *ToolbarDemo) Run() error {
	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	running := true
	var err error

	for running {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
				err = sdl.GetError()

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent:
				inputEvent := processor.ProcessSDLEvent(event.(sdl.Event))
				if inputEvent == nil {
					continue
				}

				if inputEvent.Pressed {
					d.handleInput(inputEvent, &running)
				} else {
					d.directional.SetHeld(inputEvent.Button, false)
				}
			}
		}

		switch d.directional.Update() {
		case internal.DirectionLeft:
			d.moveFocus(-1)
		case internal.DirectionRight:
			d.moveFocus(1)
		}

		d.render(renderer, window)
		window.Present()
	}

	return err
}

func (d *ToolbarDemo) handleInput(inputEvent *internal.Event, running *bool) {
	if d.directional.SetHeld(inputEvent.Button, true) {
		switch inputEvent.Button {
		case constants.VirtualButtonLeft:
			d.moveFocus(-1)
		case constants.VirtualButtonRight:
			d.moveFocus(1)
		}
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonA:
		d.flashedIndex = d.focusedIndex
		d.flashedAt = time.Now()
		GetLogger().Info("Toolbar action triggered", "item", d.items[d.focusedIndex].Label)
	case constants.VirtualButtonB:
		*running = false
	}
}

func (d *ToolbarDemo) moveFocus(direction int) {
	d.focusedIndex += direction
	if d.focusedIndex < 0 {
		d.focusedIndex = len(d.items) - 1
	} else if d.focusedIndex >= len(d.items) {
		d.focusedIndex = 0
	}
}

func (d *ToolbarDemo) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	if window.Background != nil {
		window.RenderBackground()
	} else {
		renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
		renderer.Clear()
	}

	margins := internal.UniformPadding(40)

	const pillHeight = 64
	const pillSpacing = 16
	const pillPadding = 28

	x := margins.Left
	y := margins.Top
	flashActive := d.flashedIndex >= 0 && time.Since(d.flashedAt) < toolbarFlashDuration

	for i, item := range d.items {
		pillWidth := internal.TextWidth(internal.Fonts.MediumFont, item.Label) + pillPadding*2
		rect := sdl.Rect{X: x, Y: y, W: pillWidth, H: pillHeight}

		style := internal.DefaultGlassStyle()
		style.Radius = pillHeight / 2
		if flashActive && i == d.flashedIndex {
			style = internal.TintedGlassStyle(internal.ResolveColorToken(item.Token))
			style.Radius = pillHeight / 2
		}
		style.FocusRing = i == d.focusedIndex
		internal.DrawGlassPanel(renderer, rect, style)

		labelColor := theme.TextColor
		if flashActive && i == d.flashedIndex {
			labelColor = theme.HighlightedTextColor
		}
		internal.RenderText(renderer, item.Label, internal.Fonts.MediumFont,
			rect.X+pillPadding, rect.Y+(pillHeight-int32(internal.Fonts.MediumFont.Height()))/2, labelColor)

		x += pillWidth + pillSpacing
	}

	hintY := y + pillHeight + 48
	internal.RenderText(renderer, "Toolbar actions sit in floating glass pills above the content.",
		internal.Fonts.SmallFont, margins.Left, hintY, theme.HintColor)

	renderFooter(renderer, internal.Fonts.SmallFont, []FooterHelpItem{
		{ButtonName: "A", HelpText: "Trigger"},
		{ButtonName: "B", HelpText: "Back"},
	}, margins.Bottom)
}
