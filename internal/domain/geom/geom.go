// Package geom provides the axis-aligned rectangles and vectors shared by
// every entity in the core.
package geom

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SnapEpsilon is the magnitude below which trigonometric results are
// treated as exactly zero.
const SnapEpsilon = 1e-4

// Vec2 is a 2D vector (position, velocity, direction)
type Vec2 = r2.Vec

// Size is a width/height pair, typically an image extent
type Size struct {
	W, H float64
}

// SizeOf returns the pixel size of an image handle
func SizeOf(img interface{ Bounds() image.Rectangle }) Size {
	b := img.Bounds()
	return Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Rect is an axis-aligned bounding box
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect at pos with the given size
func NewRect(pos Vec2, s Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: s.W, H: s.H}
}

// Pos returns the top-left corner
func (r Rect) Pos() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the rect extent
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rect
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns the rect moved by d
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Moved returns the rect with its top-left corner placed at pos
func (r Rect) Moved(pos Vec2) Rect {
	r.X = pos.X
	r.Y = pos.Y
	return r
}

// Intersects reports whether two rects overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether o lies entirely inside r
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// SnapZero returns 0 for values whose magnitude is below SnapEpsilon
func SnapZero(v float64) float64 {
	if math.Abs(v) < SnapEpsilon {
		return 0
	}
	return v
}

// DirectionFromAngle returns the unit vector (cos, sin) for an angle in
// degrees. Near-zero components are snapped to zero before normalizing.
func DirectionFromAngle(angleDeg float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	dir := Vec2{X: SnapZero(math.Cos(rad)), Y: SnapZero(math.Sin(rad))}
	return Normalize(dir)
}

// Normalize returns the unit vector of v, or the zero vector if v is zero
func Normalize(v Vec2) Vec2 {
	if r2.Norm(v) == 0 {
		return Vec2{}
	}
	return r2.Unit(v)
}

// Clamp limits value to the range [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
