package render

import (
	"image/color"

	"github.com/younwookim/sidecore/internal/domain/geom"
)

// DrawCall is one recorded draw request
type DrawCall struct {
	Image Image
	Dst   geom.Rect
	Tint  color.RGBA
}

// Recorder is a Renderer that keeps every request instead of drawing.
// Used for headless runs and tests.
type Recorder struct {
	Calls []DrawCall
}

// DrawImage records a stretched draw
func (r *Recorder) DrawImage(img Image, dst geom.Rect, tint color.RGBA) {
	r.Calls = append(r.Calls, DrawCall{Image: img, Dst: dst, Tint: tint})
}

// DrawImageAt records a natural-size draw
func (r *Recorder) DrawImageAt(img Image, pos geom.Vec2, tint color.RGBA) {
	r.Calls = append(r.Calls, DrawCall{Image: img, Dst: geom.NewRect(pos, geom.SizeOf(img)), Tint: tint})
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
