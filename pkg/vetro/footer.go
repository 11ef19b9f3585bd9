package vetro

import (
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem pairs a physical button name with a short description of
// what it does on the current screen.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// renderFooter draws button help hints along the bottom edge of the window.
// Each hint is a small glass pill containing the button name, followed by
// the help text. Hints are laid out right to left.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomMargin int32) {
	if len(items) == 0 || font == nil {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()

	const pillPaddingX = 12
	const pillPaddingY = 4
	const itemSpacing = 24
	const textGap = 8

	lineHeight := int32(font.Height())
	y := window.GetHeight() - bottomMargin - lineHeight - pillPaddingY*2

	x := window.GetWidth() - bottomMargin
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		helpWidth := internal.TextWidth(font, item.HelpText)
		pillWidth := internal.TextWidth(font, item.ButtonName) + pillPaddingX*2

		x -= helpWidth
		internal.RenderText(renderer, item.HelpText, font, x, y+pillPaddingY, theme.HintColor)

		x -= textGap + pillWidth
		pill := sdl.Rect{X: x, Y: y, W: pillWidth, H: lineHeight + pillPaddingY*2}
		style := internal.DefaultGlassStyle()
		style.Radius = pill.H / 2
		internal.DrawGlassPanel(renderer, pill, style)
		internal.RenderText(renderer, item.ButtonName, font, x+pillPaddingX, y+pillPaddingY, theme.TextColor)

		x -= itemSpacing
	}
}
