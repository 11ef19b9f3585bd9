package vetro

import (
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type containerPanel struct {
	Label  string
	Token  constants.ColorToken
	Merged bool
}

// GlassContainerDemo shows grouped translucent panels. When panels are
// merged they share one container effect and sit flush against each other;
// split panels render with their own tint and a visible gap. Up and down
// move focus, A toggles the focused panel between merged and split.
type GlassContainerDemo struct {
	panels       []containerPanel
	focusedIndex int
	directional  internal.DirectionalInput
}

func NewGlassContainerDemo() *GlassContainerDemo {
	return &GlassContainerDemo{
		panels: []containerPanel{
			{Label: "Leading", Token: constants.ColorTokenBlue, Merged: true},
			{Label: "Center", Token: constants.ColorTokenTeal, Merged: true},
			{Label: "Trailing", Token: constants.ColorTokenGreen, Merged: true},
		},
		directional: internal.NewDirectionalInput(),
	}
}

// Run blocks until the user backs out with B.
func (d *GlassContainerDemo) Run() error {
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

func (d *GlassContainerDemo) handleInput(inputEvent *internal.Event, running *bool) {
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
		d.panels[d.focusedIndex].Merged = !d.panels[d.focusedIndex].Merged
	case constants.VirtualButtonB:
		*running = false
	}
}

func (d *GlassContainerDemo) moveFocus(direction int) {
	d.focusedIndex += direction
	if d.focusedIndex < 0 {
		d.focusedIndex = len(d.panels) - 1
	} else if d.focusedIndex >= len(d.panels) {
		d.focusedIndex = 0
	}
}

func (d *GlassContainerDemo) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	if window.Background != nil {
		window.RenderBackground()
	} else {
		renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
		renderer.Clear()
	}

	margins := internal.UniformPadding(40)
	y := margins.Top
	internal.RenderText(renderer, "Glass Container", internal.Fonts.LargeFont, margins.Left, y, theme.TextColor)
	y += int32(internal.Fonts.LargeFont.Height()) + constants.DefaultTitleSpacing

	const panelHeight = 110
	const splitGap = 20
	panelWidth := window.GetWidth() - margins.Left - margins.Right

	// Merged runs share one backing panel drawn behind them, so adjacent
	// merged panels read as a single piece of glass.
	runStart := -1
	for i := 0; i <= len(d.panels); i++ {
		inRun := i < len(d.panels) && d.panels[i].Merged
		if inRun && runStart < 0 {
			runStart = i
		}
		if !inRun && runStart >= 0 {
			runRect := d.panelRect(runStart, y, margins.Left, panelWidth, panelHeight, splitGap)
			last := d.panelRect(i-1, y, margins.Left, panelWidth, panelHeight, splitGap)
			runRect.H = last.Y + last.H - runRect.Y
			internal.DrawGlassPanel(renderer, runRect, internal.DefaultGlassStyle())
			runStart = -1
		}
	}

	for i, panel := range d.panels {
		rect := d.panelRect(i, y, margins.Left, panelWidth, panelHeight, splitGap)

		if !panel.Merged {
			internal.DrawGlassPanel(renderer, rect, internal.TintedGlassStyle(internal.ResolveColorToken(panel.Token)))
		}
		if i == d.focusedIndex {
			focus := internal.GlassStyle{Radius: 14, FocusRing: true}
			internal.DrawGlassPanel(renderer, rect, focus)
		}

		state := "merged"
		if !panel.Merged {
			state = "split"
		}
		textY := rect.Y + (panelHeight-int32(internal.Fonts.MediumFont.Height()))/2
		internal.RenderText(renderer, panel.Label, internal.Fonts.MediumFont, rect.X+24, textY, theme.TextColor)
		stateW := internal.TextWidth(internal.Fonts.SmallFont, state)
		internal.RenderText(renderer, state, internal.Fonts.SmallFont,
			rect.X+rect.W-24-stateW,
			rect.Y+(panelHeight-int32(internal.Fonts.SmallFont.Height()))/2,
			theme.HintColor)
	}

	renderFooter(renderer, internal.Fonts.SmallFont, []FooterHelpItem{
		{ButtonName: "A", HelpText: "Merge/Split"},
		{ButtonName: "B", HelpText: "Back"},
	}, margins.Bottom)
}

// panelRect computes panel i's rectangle. Merged panels stack flush; a
// split panel gets breathing room on both sides.
func (d *GlassContainerDemo) panelRect(i int, top, left, width, height, gap int32) sdl.Rect {
	y := top
	for j := 0; j < i; j++ {
		y += height
		if !d.panels[j].Merged || j+1 >= len(d.panels) || !d.panels[j+1].Merged {
			y += gap
		}
	}
	return sdl.Rect{X: left, Y: y, W: width, H: height}
}
