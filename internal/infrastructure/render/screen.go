// Package render implements the core's draw-request sink on top of ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sidecore/internal/domain/geom"
	domrender "github.com/younwookim/sidecore/internal/domain/render"
)

// Screen draws requests onto an ebiten target, offset by a camera
type Screen struct {
	target *ebiten.Image
	Camera geom.Vec2

	// Non-ebiten handles are uploaded once and reused
	uploaded map[domrender.Image]*ebiten.Image
}

// NewScreen creates a renderer drawing onto target
func NewScreen(target *ebiten.Image) *Screen {
	return &Screen{
		target:   target,
		uploaded: make(map[domrender.Image]*ebiten.Image),
	}
}

// SetTarget switches the destination image (the screen changes every frame)
func (s *Screen) SetTarget(target *ebiten.Image) {
	s.target = target
}

// DrawImage draws img stretched into dst
func (s *Screen) DrawImage(img domrender.Image, dst geom.Rect, tint color.RGBA) {
	src := s.resolve(img)
	if src == nil || s.target == nil {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || dst.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X-s.Camera.X, dst.Y-s.Camera.Y)
	op.ColorScale.ScaleWithColor(tint)
	s.target.DrawImage(src, op)
}

// DrawImageAt draws img at natural size with its top-left corner at pos
func (s *Screen) DrawImageAt(img domrender.Image, pos geom.Vec2, tint color.RGBA) {
	src := s.resolve(img)
	if src == nil || s.target == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X-s.Camera.X, pos.Y-s.Camera.Y)
	op.ColorScale.ScaleWithColor(tint)
	s.target.DrawImage(src, op)
}

func (s *Screen) resolve(img domrender.Image) *ebiten.Image {
	switch v := img.(type) {
	case nil:
		return nil
	case *ebiten.Image:
		return v
	case image.Image:
		if cached, ok := s.uploaded[img]; ok {
			return cached
		}
		e := ebiten.NewImageFromImage(v)
		s.uploaded[img] = e
		return e
	default:
		return nil
	}
}
