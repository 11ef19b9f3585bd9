package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// GlassStyle controls how a glass panel is drawn.
type GlassStyle struct {
	Tint      sdl.Color // Panel fill color; alpha is taken from Opacity
	Opacity   uint8     // Fill alpha (0 transparent, 255 opaque)
	Radius    int32     // Corner radius in pixels
	Highlight bool      // Draw the light edge along the top of the panel
	FocusRing bool      // Draw an accent ring around the panel
}

// DefaultGlassStyle returns the theme's baseline glass panel style.
func DefaultGlassStyle() GlassStyle {
	theme := GetTheme()
	return GlassStyle{
		Tint:      theme.GlassTint,
		Opacity:   theme.GlassOpacity,
		Radius:    14,
		Highlight: true,
	}
}

// TintedGlassStyle returns the baseline style with the fill replaced by the
// given color at slightly higher opacity, for accented panels.
func TintedGlassStyle(tint sdl.Color) GlassStyle {
	style := DefaultGlassStyle()
	style.Tint = tint
	if style.Opacity < 70 {
		style.Opacity = 70
	}
	return style
}

// DrawGlassPanel renders a translucent rounded panel with the given style.
// The renderer must have BLENDMODE_BLEND active (Init sets this).
func DrawGlassPanel(renderer *sdl.Renderer, rect sdl.Rect, style GlassStyle) {
	fill := style.Tint
	fill.A = style.Opacity

	fillRoundedRect(renderer, rect, style.Radius, fill)

	if style.Highlight {
		theme := GetTheme()
		highlight := theme.HighlightColor
		highlight.A = 60
		// Light edge along the top, inset past the rounded corners.
		renderer.SetDrawColor(highlight.R, highlight.G, highlight.B, highlight.A)
		renderer.DrawLine(rect.X+style.Radius, rect.Y, rect.X+rect.W-style.Radius, rect.Y)
	}

	if style.FocusRing {
		accent := GetTheme().AccentColor
		drawRoundedRectOutline(renderer, rect, style.Radius, accent)
		grown := sdl.Rect{X: rect.X - 1, Y: rect.Y - 1, W: rect.W + 2, H: rect.H + 2}
		accent.A = 120
		drawRoundedRectOutline(renderer, grown, style.Radius+1, accent)
	}
}

// fillRoundedRect fills a rectangle with quarter-circle corners using
// horizontal spans. Cheap enough for the handful of panels a screen draws.
func fillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(&rect)
		return
	}

	maxRadius := Min32(rect.W, rect.H) / 2
	radius = Min32(radius, maxRadius)

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	// Center band
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	// Top and bottom caps, one span per row
	for dy := int32(0); dy < radius; dy++ {
		inset := radius - cornerSpan(radius, radius-dy)
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: rect.W - 2*inset, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: rect.W - 2*inset, H: 1})
	}
}

// drawRoundedRectOutline draws the outline of a rounded rectangle.
func drawRoundedRectOutline(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	maxRadius := Min32(rect.W, rect.H) / 2
	radius = Min32(radius, maxRadius)

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	renderer.DrawLine(rect.X+radius, rect.Y, rect.X+rect.W-1-radius, rect.Y)
	renderer.DrawLine(rect.X+radius, rect.Y+rect.H-1, rect.X+rect.W-1-radius, rect.Y+rect.H-1)
	renderer.DrawLine(rect.X, rect.Y+radius, rect.X, rect.Y+rect.H-1-radius)
	renderer.DrawLine(rect.X+rect.W-1, rect.Y+radius, rect.X+rect.W-1, rect.Y+rect.H-1-radius)

	for dy := int32(0); dy < radius; dy++ {
		span := cornerSpan(radius, radius-dy)
		inset := radius - span
		renderer.DrawPoint(rect.X+inset, rect.Y+dy)
		renderer.DrawPoint(rect.X+rect.W-1-inset, rect.Y+dy)
		renderer.DrawPoint(rect.X+inset, rect.Y+rect.H-1-dy)
		renderer.DrawPoint(rect.X+rect.W-1-inset, rect.Y+rect.H-1-dy)
	}
}

// cornerSpan returns the horizontal half-width of a circle of the given
// radius at height dy from its center, via integer square root.
func cornerSpan(radius, dy int32) int32 {
	target := radius*radius - dy*dy
	if target <= 0 {
		return 0
	}
	var span int32
	for span*span <= target {
		span++
	}
	return span - 1
}

// DrawSmoothBar draws a rounded bar, used for scrollbars and tab indicators.
func DrawSmoothBar(renderer *sdl.Renderer, x, y, w, h int32, color sdl.Color) {
	radius := Min32(w, h) / 2
	fillRoundedRect(renderer, sdl.Rect{X: x, Y: y, W: w, H: h}, radius, color)
}
