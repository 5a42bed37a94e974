package entity

import (
	"math"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
	"github.com/younwookim/sidecore/internal/domain/timer"
)

// ActivationDelay is the grace period (milliseconds) after spawn during which
// a projectile ignores collisions, so it cannot hit its shooter's own tile.
const ActivationDelay = 100.0

// Projectile is a straight-line shot fired by an enemy or turret
type Projectile struct {
	image    render.Image
	hitbox   geom.Rect
	velocity geom.Vec2 // Cached at construction
	age      *timer.Timer
}

// NewProjectile creates a projectile at pos. angleDeg is measured from
// straight down: x uses the sine and y the cosine, so 0 fires downward and
// 90 fires right. Velocity is computed once here.
func NewProjectile(img render.Image, pos geom.Vec2, angleDeg, maxSpeed float64) *Projectile {
	rad := angleDeg * math.Pi / 180
	size := geom.Size{}
	if img != nil {
		size = geom.SizeOf(img)
	}
	return &Projectile{
		image:  img,
		hitbox: geom.NewRect(pos, size),
		velocity: geom.Vec2{
			X: geom.SnapZero(math.Sin(rad)) * maxSpeed,
			Y: geom.SnapZero(math.Cos(rad)) * maxSpeed,
		},
		age: timer.New(timer.Infinite),
	}
}

// Update ages the projectile by dt milliseconds and moves it one step
func (p *Projectile) Update(dt float64) {
	p.age.Update(dt)
	p.hitbox = p.hitbox.Translate(p.velocity)
}

// TestCollision reports whether the projectile hits the tile rectangle.
// Always false until the projectile is older than ActivationDelay.
func (p *Projectile) TestCollision(tileBox geom.Rect) bool {
	if p.age.Elapsed() <= ActivationDelay {
		return false
	}
	return p.hitbox.Intersects(tileBox)
}

// IsActive returns true once the activation delay has passed
func (p *Projectile) IsActive() bool {
	return p.age.Elapsed() > ActivationDelay
}

// GetHitbox returns the hitbox in world coordinates
func (p *Projectile) GetHitbox() geom.Rect {
	return p.hitbox
}

// Velocity returns the cached per-step velocity
func (p *Projectile) Velocity() geom.Vec2 {
	return p.velocity
}

// Age returns milliseconds since spawn
func (p *Projectile) Age() float64 {
	return p.age.Elapsed()
}

// Draw issues the projectile sprite at its position
func (p *Projectile) Draw(r render.Renderer) {
	if p.image == nil {
		return
	}
	r.DrawImageAt(p.image, p.hitbox.Pos(), render.White)
}
