// Package render defines the draw-request sink the core issues sprites to.
//
// The core never rasterizes anything itself. Entities describe what to draw
// (image handle, destination, tint) and a Renderer implementation turns those
// requests into pixels.
package render

import (
	"image"
	"image/color"

	"github.com/younwookim/sidecore/internal/domain/geom"
)

// Image is an opaque image handle. *ebiten.Image and image.Image both satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// Renderer accepts draw requests from entities
type Renderer interface {
	// DrawImage draws img stretched into dst
	DrawImage(img Image, dst geom.Rect, tint color.RGBA)

	// DrawImageAt draws img at its natural size with its top-left corner at pos
	DrawImageAt(img Image, pos geom.Vec2, tint color.RGBA)
}

// White is the neutral tint
var White = color.RGBA{255, 255, 255, 255}

// Fade scales the tint by alpha (0..1). The result stays premultiplied.
func Fade(tint color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return tint
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(tint.R) * alpha),
		G: uint8(float64(tint.G) * alpha),
		B: uint8(float64(tint.B) * alpha),
		A: uint8(float64(tint.A) * alpha),
	}
}
