package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/*.svg
var iconAssets embed.FS

// RenderIcon rasterizes the named SVG icon at the given square size, tinted
// with the given color, and returns it as an SDL texture. The caller owns
// the texture; screens normally route this through a TextureCache.
//
// Returns nil for unknown icon names; a missing icon degrades to an empty
// slot, never a crash.
func RenderIcon(renderer *sdl.Renderer, name string, size int32, tint sdl.Color) *sdl.Texture {
	data, err := iconAssets.ReadFile(fmt.Sprintf("assets/%s.svg", name))
	if err != nil {
		GetInternalLogger().Warn("Unknown icon", "name", name)
		return nil
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		GetInternalLogger().Warn("Failed to parse icon", "name", name, "error", err)
		return nil
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	applyTint(rgba, tint)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		size, size, 32, size*4,
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		GetInternalLogger().Warn("Failed to create icon surface", "name", name, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Warn("Failed to create icon texture", "name", name, "error", err)
		return nil
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture
}

// IconCacheKey builds a stable cache key for a tinted icon rendering.
func IconCacheKey(name string, size int32, tint sdl.Color) string {
	return fmt.Sprintf("icon:%s:%d:%02x%02x%02x", name, size, tint.R, tint.G, tint.B)
}

// applyTint recolors every non-transparent pixel to the tint color while
// preserving the rasterized alpha, so icons act as masks.
func applyTint(rgba *image.RGBA, tint sdl.Color) {
	for i := 0; i < len(rgba.Pix); i += 4 {
		if rgba.Pix[i+3] == 0 {
			continue
		}
		rgba.Pix[i] = tint.R
		rgba.Pix[i+1] = tint.G
		rgba.Pix[i+2] = tint.B
	}
}
