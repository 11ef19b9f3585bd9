package internal

import (
	"strings"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText draws a single line of text at (x, y) and returns its rendered
// size. Zero size means the text could not be rendered.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, x, y int32, color sdl.Color) (int32, int32) {
	if text == "" || font == nil {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
	return surface.W, surface.H
}

// RenderTextAligned draws a single line aligned within [x, x+width].
func RenderTextAligned(renderer *sdl.Renderer, text string, font *ttf.Font, x, y, width int32, color sdl.Color, align constants.TextAlign) {
	w := TextWidth(font, text)

	switch align {
	case constants.TextAlignCenter:
		x += (width - w) / 2
	case constants.TextAlignRight:
		x += width - w
	}

	RenderText(renderer, text, font, x, y, color)
}

// TextWidth returns the pixel width of text in the given font.
func TextWidth(font *ttf.Font, text string) int32 {
	if font == nil || text == "" {
		return 0
	}
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// WrapText splits text into lines that fit within maxWidth, breaking on
// spaces. Explicit newlines are preserved.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	if text == "" {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var wrapped []string
	for _, line := range strings.Split(normalized, "\n") {
		if line == "" {
			wrapped = append(wrapped, "")
			continue
		}

		words := strings.Fields(line)
		current := ""
		for _, word := range words {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			if TextWidth(font, test) > maxWidth && current != "" {
				wrapped = append(wrapped, current)
				current = word
			} else {
				current = test
			}
		}
		if current != "" {
			wrapped = append(wrapped, current)
		}
	}

	return wrapped
}

// RenderMultilineText draws word-wrapped text and returns the total height
// consumed.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if font == nil {
		return 0
	}

	lines := WrapText(font, text, maxWidth)
	if len(lines) == 0 {
		return 0
	}

	fontHeight := int32(font.Height())
	lineSpacing := int32(float32(fontHeight) * 0.2)

	currentY := y
	for _, line := range lines {
		if line != "" {
			RenderTextAligned(renderer, line, font, x, currentY, maxWidth, color, align)
		}
		currentY += fontHeight + lineSpacing
	}

	return currentY - y - lineSpacing
}

// MultilineTextHeight returns the height RenderMultilineText would consume
// without rendering anything.
func MultilineTextHeight(font *ttf.Font, text string, maxWidth int32) int32 {
	if font == nil {
		return 0
	}

	lines := WrapText(font, text, maxWidth)
	if len(lines) == 0 {
		return 0
	}

	fontHeight := int32(font.Height())
	lineSpacing := int32(float32(fontHeight) * 0.2)
	return int32(len(lines))*fontHeight + int32(len(lines)-1)*lineSpacing
}
