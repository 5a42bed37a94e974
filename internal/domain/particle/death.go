package particle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/sidecore/internal/domain/geom"
)

// DefaultFramesOutward is the number of steps a death particle travels
// before coming to rest
const DefaultFramesOutward = 20

// toleranceSlack is the relative rounding allowance when comparing against
// the tolerance
const toleranceSlack = 1e-9

// Death bursts outward and decelerates linearly on each axis until it
// stops. It is removed once it is at rest, regardless of its lifespan.
type Death struct {
	Base
	tolerance float64
}

// NewDeath creates a decelerating particle. The per-step deceleration is
// Speed / framesOutward, so it stops within framesOutward steps.
func NewDeath(p Params, framesOutward int) *Death {
	if framesOutward <= 0 {
		framesOutward = DefaultFramesOutward
	}
	b := newBase(p)
	return &Death{
		Base:      b,
		tolerance: r2.Norm(b.maxSpeed) / float64(framesOutward),
	}
}

// Update decelerates each axis toward zero and moves the particle.
// Gravity does not apply.
func (d *Death) Update(dt float64, _ geom.Rect) {
	d.lifespan.Update(dt)
	d.velocity.X = d.decelerate(d.velocity.X)
	d.velocity.Y = d.decelerate(d.velocity.Y)
	d.move()
}

func (d *Death) decelerate(v float64) float64 {
	if math.Abs(v)-d.tolerance <= d.tolerance*toleranceSlack {
		return 0
	}
	if v > 0 {
		return v - d.tolerance
	}
	return v + d.tolerance
}

// Tolerance returns the per-step deceleration
func (d *Death) Tolerance() float64 { return d.tolerance }

// KillParticle returns true once both velocity components are exactly zero
func (d *Death) KillParticle() bool {
	return d.velocity.X == 0 && d.velocity.Y == 0
}
