package particle

import (
	"image/color"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
)

// Kind selects the particle velocity law
type Kind int

const (
	KindBallistic Kind = iota
	KindDeath
	KindSoul
)

// Preset is a reusable burst description
type Preset struct {
	Kind          Kind
	Count         int
	StartAngle    float64 // Degrees of the first particle; the rest spread evenly
	Speed         float64
	Gravity       float64
	Size          float64
	Tint          color.RGBA
	Duration      float64 // Milliseconds
	FramesOutward int     // Death particles only
}

// Spawn creates a single particle of the preset's kind
func (pr Preset) Spawn(img render.Image, pos geom.Vec2, angle float64) Particle {
	p := Params{
		Image:    img,
		Pos:      pos,
		Angle:    angle,
		Speed:    pr.Speed,
		Gravity:  pr.Gravity,
		Size:     pr.Size,
		Tint:     pr.Tint,
		Duration: pr.Duration,
	}
	switch pr.Kind {
	case KindDeath:
		return NewDeath(p, pr.FramesOutward)
	case KindSoul:
		return NewSoul(p)
	default:
		return New(p)
	}
}

// Emitter owns a set of live particles and drops them once their removal
// predicate fires.
type Emitter struct {
	particles []Particle
}

// NewEmitter creates an empty emitter
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit adds a particle
func (e *Emitter) Emit(p Particle) {
	e.particles = append(e.particles, p)
}

// Burst spawns preset.Count particles around origin with evenly spread angles
func (e *Emitter) Burst(pr Preset, img render.Image, origin geom.Vec2) []Particle {
	count := pr.Count
	if count <= 0 {
		count = 1
	}
	step := 360.0 / float64(count)

	spawned := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		p := pr.Spawn(img, origin, pr.StartAngle+float64(i)*step)
		e.Emit(p)
		spawned = append(spawned, p)
	}
	return spawned
}

// Update steps every particle, then removes those whose KillParticle is true
func (e *Emitter) Update(dt float64, player geom.Rect) {
	for _, p := range e.particles {
		p.Update(dt, player)
	}

	alive := e.particles[:0]
	for _, p := range e.particles {
		if !p.KillParticle() {
			alive = append(alive, p)
		}
	}
	// Clear the tail so dropped particles can be collected
	for i := len(alive); i < len(e.particles); i++ {
		e.particles[i] = nil
	}
	e.particles = alive
}

// Draw issues every live particle
func (e *Emitter) Draw(r render.Renderer, alpha float64) {
	for _, p := range e.particles {
		p.Draw(r, alpha)
	}
}

// Particles returns the live particles. The slice is owned by the emitter.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Len returns the number of live particles
func (e *Emitter) Len() int {
	return len(e.particles)
}
