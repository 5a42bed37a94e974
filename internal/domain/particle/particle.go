// Package particle simulates small free bodies spawned by hit and death
// events: ballistic sparks, decelerating death bursts and homing souls.
package particle

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
	"github.com/younwookim/sidecore/internal/domain/timer"
)

// Particle is the contract emitters drive once per frame
type Particle interface {
	// Update steps the particle. player is the current player AABB.
	Update(dt float64, player geom.Rect)
	// KillParticle reports whether the owner should drop the particle
	KillParticle() bool
	GetHitbox() geom.Rect
	Draw(r render.Renderer, alpha float64)
}

// Params describes a particle at spawn time
type Params struct {
	Image    render.Image
	Pos      geom.Vec2  // Top-left spawn position
	Angle    float64    // Degrees, 0 = right, 90 = down
	Speed    float64    // Initial speed magnitude (pixels per step)
	Gravity  float64    // Added to vertical velocity every step
	Size     float64    // Multiplier on the image size
	Tint     color.RGBA // Renderer tint
	Duration float64    // Lifespan in milliseconds
}

// Base is a ballistic particle: gravity pulls on vertical velocity every
// step and the particle expires when its lifespan runs out.
type Base struct {
	image    render.Image
	hitbox   geom.Rect
	velocity geom.Vec2
	maxSpeed geom.Vec2
	gravity  float64
	lifespan *timer.Timer
	tint     color.RGBA
}

// MaxSpeedVector returns the unit direction for angle scaled to magnitude.
// Near-zero direction components are snapped to exactly zero.
func MaxSpeedVector(angleDeg, magnitude float64) geom.Vec2 {
	return r2.Scale(magnitude, geom.DirectionFromAngle(angleDeg))
}

func newBase(p Params) Base {
	size := geom.Size{}
	if p.Image != nil {
		size = geom.SizeOf(p.Image)
	}
	scale := p.Size
	if scale <= 0 {
		scale = 1
	}
	size.W *= scale
	size.H *= scale

	maxSpeed := MaxSpeedVector(p.Angle, p.Speed)
	return Base{
		image:    p.Image,
		hitbox:   geom.NewRect(p.Pos, size),
		velocity: maxSpeed,
		maxSpeed: maxSpeed,
		gravity:  p.Gravity,
		lifespan: timer.New(p.Duration),
		tint:     p.Tint,
	}
}

// New creates a ballistic particle
func New(p Params) *Base {
	b := newBase(p)
	return &b
}

// Update applies gravity then moves the particle by its velocity
func (b *Base) Update(dt float64, _ geom.Rect) {
	b.lifespan.Update(dt)
	b.velocity.Y += b.gravity
	b.move()
}

func (b *Base) move() {
	b.hitbox = b.hitbox.Translate(b.velocity)
}

// KillParticle returns true once the lifespan has elapsed
func (b *Base) KillParticle() bool {
	return b.lifespan.IsDone()
}

// GetHitbox returns the particle rectangle
func (b *Base) GetHitbox() geom.Rect { return b.hitbox }

// Velocity returns the current per-step velocity
func (b *Base) Velocity() geom.Vec2 { return b.velocity }

// MaxSpeed returns the spawn velocity vector
func (b *Base) MaxSpeed() geom.Vec2 { return b.maxSpeed }

// Tint returns the renderer tint
func (b *Base) Tint() color.RGBA { return b.tint }

// Draw issues the particle image scaled into its hitbox
func (b *Base) Draw(r render.Renderer, alpha float64) {
	if b.image == nil {
		return
	}
	r.DrawImage(b.image, b.hitbox, render.Fade(b.tint, alpha))
}
