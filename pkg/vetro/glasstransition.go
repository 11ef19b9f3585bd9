package vetro

import (
	"time"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// GlassTransitionDemo animates a panel between a compact clear state and an
// expanded tinted state. A toggles the target state; the panel's size and
// opacity ease toward the target every frame rather than snapping.
type GlassTransitionDemo struct {
	expanded      bool
	progress      float32 // 0 = compact, 1 = expanded
	lastFrameTime time.Time
}

func NewGlassTransitionDemo() *GlassTransitionDemo {
	return &GlassTransitionDemo{lastFrameTime: time.Now()}
}

// Run blocks until the user backs out with B.
func (d *GlassTransitionDemo) Run() error {
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
				if inputEvent == nil || !inputEvent.Pressed {
					continue
				}

				switch inputEvent.Button {
				case constants.VirtualButtonA:
					d.expanded = !d.expanded
				case constants.VirtualButtonB:
					running = false
				}
			}
		}

		d.update()
		d.render(renderer, window)
		window.Present()
	}

	return err
}

const transitionDuration = 350 * time.Millisecond

// update advances the animation toward the target state, scaled by real
// frame time so the transition takes the same wall time at any frame rate.
func (d *GlassTransitionDemo) update() {
	now := time.Now()
	delta := float32(now.Sub(d.lastFrameTime)) / float32(transitionDuration)
	d.lastFrameTime = now

	if d.expanded {
		d.progress += delta
		if d.progress > 1 {
			d.progress = 1
		}
	} else {
		d.progress -= delta
		if d.progress < 0 {
			d.progress = 0
		}
	}
}

// eased applies smoothstep to the linear progress.
func (d *GlassTransitionDemo) eased() float32 {
	t := d.progress
	return t * t * (3 - 2*t)
}

func lerp32(a, b int32, t float32) int32 {
	return a + int32(float32(b-a)*t)
}

func (d *GlassTransitionDemo) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	if window.Background != nil {
		window.RenderBackground()
	} else {
		renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
		renderer.Clear()
	}

	margins := internal.UniformPadding(40)
	internal.RenderText(renderer, "Glass Transition", internal.Fonts.LargeFont, margins.Left, margins.Top, theme.TextColor)

	t := d.eased()

	compactW := window.GetWidth() / 3
	expandedW := window.GetWidth() - margins.Left - margins.Right
	compactH := int32(120)
	expandedH := window.GetHeight() / 2

	w := lerp32(compactW, expandedW, t)
	h := lerp32(compactH, expandedH, t)
	rect := sdl.Rect{
		X: (window.GetWidth() - w) / 2,
		Y: (window.GetHeight() - h) / 2,
		W: w,
		H: h,
	}

	style := internal.DefaultGlassStyle()
	style.Opacity = uint8(lerp32(int32(style.Opacity), 200, t))
	accent := internal.ResolveColorToken(constants.ColorTokenTeal)
	style.Tint.R = uint8(lerp32(int32(style.Tint.R), int32(accent.R), t))
	style.Tint.G = uint8(lerp32(int32(style.Tint.G), int32(accent.G), t))
	style.Tint.B = uint8(lerp32(int32(style.Tint.B), int32(accent.B), t))
	style.Radius = lerp32(14, 28, t)
	internal.DrawGlassPanel(renderer, rect, style)

	label := "Compact"
	if d.expanded {
		label = "Expanded"
	}
	internal.RenderTextAligned(renderer, label, internal.Fonts.MediumFont,
		rect.X, rect.Y+(rect.H-int32(internal.Fonts.MediumFont.Height()))/2,
		rect.W, theme.HighlightedTextColor, constants.TextAlignCenter)

	renderFooter(renderer, internal.Fonts.SmallFont, []FooterHelpItem{
		{ButtonName: "A", HelpText: "Toggle"},
		{ButtonName: "B", HelpText: "Back"},
	}, margins.Bottom)
}
