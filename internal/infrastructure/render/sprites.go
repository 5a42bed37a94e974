package render

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	domrender "github.com/younwookim/sidecore/internal/domain/render"
)

// Sprites is a name -> image registry handed to the room builder
type Sprites map[string]domrender.Image

// Get returns the sprite registered under name
func (s Sprites) Get(name string) (domrender.Image, bool) {
	img, ok := s[name]
	return img, ok
}

// Placeholder creates a solid-color image. Asset decoding lives outside the
// core, so the demo fills sprites with a flat color.
func Placeholder(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// PlaceholderColor derives a stable color from a sprite name
func PlaceholderColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	v := h.Sum32()
	// Keep channels bright enough to see on a dark background
	return color.RGBA{
		R: uint8(v>>16) | 0x40,
		G: uint8(v>>8) | 0x40,
		B: uint8(v) | 0x40,
		A: 0xff,
	}
}

// Frames slices a horizontal strip into n frames of fw x fh
func Frames(sheet *ebiten.Image, fw, fh, n int) []domrender.Image {
	frames := make([]domrender.Image, 0, n)
	for i := 0; i < n; i++ {
		r := image.Rect(i*fw, 0, (i+1)*fw, fh)
		frames = append(frames, sheet.SubImage(r).(*ebiten.Image))
	}
	return frames
}
