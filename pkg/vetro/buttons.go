package vetro

import (
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type glassButton struct {
	Label   string
	Token   constants.ColorToken
	Pressed bool
}

// ButtonsDemo shows the glass button styles. Up and down move focus between
// buttons, A toggles the focused button's pressed state. Pressed state lives
// on the demo instance, so reopening the demo starts clean.
type ButtonsDemo struct {
	buttons      []glassButton
	focusedIndex int
	directional  internal.DirectionalInput
}

func NewButtonsDemo() *ButtonsDemo {
	return &ButtonsDemo{
		buttons: []glassButton{
			{Label: "Regular", Token: constants.ColorTokenAccent},
			{Label: "Tinted Blue", Token: constants.ColorTokenBlue},
			{Label: "Tinted Green", Token: constants.ColorTokenGreen},
			{Label: "Tinted Orange", Token: constants.ColorTokenOrange},
			{Label: "Prominent", Token: constants.ColorTokenPurple},
		},
		directional: internal.NewDirectionalInput(),
	}
}

// Run blocks until the user backs out with B.
func (d *ButtonsDemo) Run() error {
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
		case internal.DirectionUp:
			d.moveFocus(-1)
		case internal.DirectionDown:
			d.moveFocus(1)
		}

		d.render(renderer, window)
		window.Present()
	}

	return err
}

func (d *ButtonsDemo) handleInput(inputEvent *internal.Event, running *bool) {
	if d.directional.SetHeld(inputEvent.Button, true) {
		switch inputEvent.Button {
		case constants.VirtualButtonUp:
			d.moveFocus(-1)
		case constants.VirtualButtonDown:
			d.moveFocus(1)
		}
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonA:
		d.buttons[d.focusedIndex].Pressed = !d.buttons[d.focusedIndex].Pressed
	case constants.VirtualButtonB:
		*running = false
	}
}

func (d *ButtonsDemo) moveFocus(direction int) {
	d.focusedIndex += direction
	if d.focusedIndex < 0 {
		d.focusedIndex = len(d.buttons) - 1
	} else if d.focusedIndex >= len(d.buttons) {
		d.focusedIndex = 0
	}
}

func (d *ButtonsDemo) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	if window.Background != nil {
		window.RenderBackground()
	} else {
		renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
		renderer.Clear()
	}

	margins := internal.UniformPadding(40)
	y := margins.Top
	internal.RenderText(renderer, "Buttons", internal.Fonts.LargeFont, margins.Left, y, theme.TextColor)
	y += int32(internal.Fonts.LargeFont.Height()) + constants.DefaultTitleSpacing

	const buttonHeight = 72
	const buttonSpacing = 16
	buttonWidth := window.GetWidth() - margins.Left - margins.Right

	for i, button := range d.buttons {
		rect := sdl.Rect{X: margins.Left, Y: y, W: buttonWidth, H: buttonHeight}

		style := internal.DefaultGlassStyle()
		if button.Pressed {
			style = internal.TintedGlassStyle(internal.ResolveColorToken(button.Token))
		}
		style.FocusRing = i == d.focusedIndex
		internal.DrawGlassPanel(renderer, rect, style)

		labelColor := theme.TextColor
		if button.Pressed {
			labelColor = theme.HighlightedTextColor
		}
		internal.RenderTextAligned(renderer, button.Label, internal.Fonts.MediumFont,
			rect.X, rect.Y+(buttonHeight-int32(internal.Fonts.MediumFont.Height()))/2,
			rect.W, labelColor, constants.TextAlignCenter)

		y += buttonHeight + buttonSpacing
	}

	renderFooter(renderer, internal.Fonts.SmallFont, []FooterHelpItem{
		{ButtonName: "A", HelpText: "Toggle"},
		{ButtonName: "B", HelpText: "Back"},
	}, margins.Bottom)
}
