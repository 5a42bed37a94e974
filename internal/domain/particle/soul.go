package particle

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/sidecore/internal/domain/geom"
)

const (
	// SoulHomingAcceleration is the per-step pull toward the player
	SoulHomingAcceleration = 1.5
	// SoulMaxSpeed bounds each velocity component (pixels per step)
	SoulMaxSpeed = 18.0
)

// Soul homes in on the player every step. It starts at rest and is only
// removed when its owner collects it with ActivateKill.
type Soul struct {
	Base
	killed bool
}

// NewSoul creates a homing particle. Angle and Speed in p are ignored.
func NewSoul(p Params) *Soul {
	b := newBase(p)
	b.velocity = geom.Vec2{}
	return &Soul{Base: b}
}

// Update steers velocity toward the player's center, clamps each component
// to ±SoulMaxSpeed and moves the particle. Gravity does not apply.
func (s *Soul) Update(dt float64, player geom.Rect) {
	s.lifespan.Update(dt)

	toPlayer := r2.Sub(player.Center(), s.hitbox.Center())
	dir := geom.Normalize(toPlayer)
	s.velocity = r2.Add(s.velocity, r2.Scale(SoulHomingAcceleration, dir))

	s.velocity.X = geom.Clamp(s.velocity.X, -SoulMaxSpeed, SoulMaxSpeed)
	s.velocity.Y = geom.Clamp(s.velocity.Y, -SoulMaxSpeed, SoulMaxSpeed)
	s.move()
}

// ActivateKill marks the soul as collected
func (s *Soul) ActivateKill() {
	s.killed = true
}

// KillParticle returns true once the soul has been collected
func (s *Soul) KillParticle() bool {
	return s.killed
}
