package entity

import "github.com/younwookim/sidecore/internal/domain/geom"

// Body represents the physical body of a walking entity.
// Velocity is in pixels per step.
type Body struct {
	Pos  geom.Vec2
	Vel  geom.Vec2
	Size geom.Size

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	FacingRight bool
	WasOnGround bool

	// Hazard is set when the body overlapped a spike during the last move
	Hazard bool
}

// NewBody creates a body with its top-left corner at pos
func NewBody(pos geom.Vec2, size geom.Size) *Body {
	return &Body{
		Pos:         pos,
		Size:        size,
		FacingRight: true,
	}
}

// GetHitbox returns the body's AABB
func (b *Body) GetHitbox() geom.Rect {
	return geom.NewRect(b.Pos, b.Size)
}

// Feet returns a one-pixel strip directly below the body
func (b *Body) Feet() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y + b.Size.H, W: b.Size.W, H: 1}
}

// Center returns the center of the body's AABB
func (b *Body) Center() geom.Vec2 {
	return b.GetHitbox().Center()
}

// ResetContacts clears the per-move collision flags
func (b *Body) ResetContacts() {
	b.WasOnGround = b.OnGround
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false
	b.Hazard = false
}
