package vetro

import (
	"time"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// DialogSettings configures the confirmation dialog component.
type DialogSettings struct {
	// ConfirmButton is the button used to confirm the selection (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton is the button used to go back/cancel (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// InitialSelection is the index of the initially selected option (default: 0)
	InitialSelection int
}

// DialogOption represents a selectable option in the dialog.
type DialogOption struct {
	DisplayName string
	Value       interface{}
}

// DialogResult represents the result of a dialog.
type DialogResult struct {
	SelectedIndex int
	SelectedValue interface{}
}

type dialogController struct {
	message       string
	options       []DialogOption
	selectedIndex int
	confirmButton constants.VirtualButton
	backButton    constants.VirtualButton
	inputDelay    time.Duration
	lastInputTime time.Time
	confirmed     bool
	cancelled     bool
}

// Dialog displays a message in a centered glass panel with horizontally
// selectable options. Left and right move between options, the confirm
// button picks one. Returns ErrCancelled if the user presses the back
// button.
func Dialog(message string, options []DialogOption, settings DialogSettings) (*DialogResult, error) {
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	controller := &dialogController{
		message:       message,
		options:       options,
		selectedIndex: settings.InitialSelection,
		confirmButton: settings.ConfirmButton,
		backButton:    settings.BackButton,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	if controller.confirmButton == constants.VirtualButtonUnassigned {
		controller.confirmButton = constants.VirtualButtonA
	}
	if controller.backButton == constants.VirtualButtonUnassigned {
		controller.backButton = constants.VirtualButtonB
	}
	if controller.selectedIndex < 0 || controller.selectedIndex >= len(options) {
		controller.selectedIndex = 0
	}

	for {
		if !controller.handleEvents() {
			break
		}

		controller.render(renderer, window)
		sdl.Delay(16)
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}

	return &DialogResult{
		SelectedIndex: controller.selectedIndex,
		SelectedValue: controller.options[controller.selectedIndex].Value,
	}, nil
}

func (c *dialogController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent:
			inputEvent := processor.ProcessSDLEvent(event.(sdl.Event))
			if inputEvent == nil || !inputEvent.Pressed {
				continue
			}

			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			switch inputEvent.Button {
			case constants.VirtualButtonLeft:
				if c.selectedIndex > 0 {
					c.selectedIndex--
				}
			case constants.VirtualButtonRight:
				if c.selectedIndex < len(c.options)-1 {
					c.selectedIndex++
				}
			case c.confirmButton:
				c.confirmed = true
				return false
			case c.backButton:
				c.cancelled = true
				return false
			}
		}
	}

	return true
}

func (c *dialogController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	if window.Background != nil {
		window.RenderBackground()
	} else {
		renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
		renderer.Clear()
	}

	panelWidth := window.GetWidth() * 2 / 3
	messageHeight := internal.MultilineTextHeight(internal.Fonts.MediumFont, c.message, panelWidth-80)
	optionHeight := int32(internal.Fonts.MediumFont.Height()) + 24
	panelHeight := messageHeight + optionHeight + 100

	panel := sdl.Rect{
		X: (window.GetWidth() - panelWidth) / 2,
		Y: (window.GetHeight() - panelHeight) / 2,
		W: panelWidth,
		H: panelHeight,
	}
	style := internal.DefaultGlassStyle()
	style.Opacity = 200
	internal.DrawGlassPanel(renderer, panel, style)

	internal.RenderMultilineText(renderer, c.message, internal.Fonts.MediumFont,
		panelWidth-80, panel.X+40, panel.Y+32, theme.TextColor, constants.TextAlignCenter)

	c.renderOptions(renderer, panel, messageHeight, optionHeight)
	window.Present()
}

func (c *dialogController) renderOptions(renderer *sdl.Renderer, panel sdl.Rect, messageHeight, optionHeight int32) {
	theme := internal.GetTheme()

	const optionPadding = 24
	const optionSpacing = 20

	totalWidth := int32(0)
	for _, option := range c.options {
		totalWidth += internal.TextWidth(internal.Fonts.MediumFont, option.DisplayName) + optionPadding*2
	}
	totalWidth += optionSpacing * int32(len(c.options)-1)

	x := panel.X + (panel.W-totalWidth)/2
	y := panel.Y + messageHeight + 64

	for i, option := range c.options {
		pillWidth := internal.TextWidth(internal.Fonts.MediumFont, option.DisplayName) + optionPadding*2
		rect := sdl.Rect{X: x, Y: y, W: pillWidth, H: optionHeight}

		if i == c.selectedIndex {
			selected := internal.TintedGlassStyle(theme.AccentColor)
			selected.Radius = optionHeight / 2
			selected.FocusRing = true
			internal.DrawGlassPanel(renderer, rect, selected)
		}

		color := theme.HintColor
		if i == c.selectedIndex {
			color = theme.HighlightedTextColor
		}
		internal.RenderText(renderer, option.DisplayName, internal.Fonts.MediumFont,
			rect.X+optionPadding, rect.Y+12, color)

		x += pillWidth + optionSpacing
	}
}
