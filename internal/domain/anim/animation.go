// Package anim provides frame-stepped sprite animations.
package anim

import (
	"image/color"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
)

// Animation plays a sequence of equally sized frames.
// A one-shot animation deactivates itself after its last frame.
type Animation struct {
	frames        []render.Image
	frameDuration float64 // milliseconds per frame
	loop          bool

	current  int
	frameAcc float64
	active   bool
	rect     geom.Rect // Destination of the current frame
}

// New creates an animation. Frame size is taken from the first frame.
func New(frames []render.Image, frameDuration float64, loop bool) *Animation {
	a := &Animation{
		frames:        frames,
		frameDuration: frameDuration,
		loop:          loop,
	}
	if len(frames) > 0 {
		a.rect = geom.NewRect(geom.Vec2{}, geom.SizeOf(frames[0]))
	}
	return a
}

// Start restarts the animation from its first frame
func (a *Animation) Start() {
	a.current = 0
	a.frameAcc = 0
	a.active = true
}

// Stop deactivates the animation
func (a *Animation) Stop() {
	a.active = false
}

// IsActive returns true while the animation is playing
func (a *Animation) IsActive() bool {
	return a.active
}

// Update advances frames by dt milliseconds
func (a *Animation) Update(dt float64) {
	if !a.active || len(a.frames) == 0 || a.frameDuration <= 0 {
		return
	}

	a.frameAcc += dt
	for a.frameAcc >= a.frameDuration {
		a.frameAcc -= a.frameDuration
		a.current++
		if a.current < len(a.frames) {
			continue
		}
		if a.loop {
			a.current = 0
			continue
		}
		// One-shot finished
		a.current = len(a.frames) - 1
		a.active = false
		a.frameAcc = 0
		return
	}
}

// CurrentFrame returns the index of the displayed frame
func (a *Animation) CurrentFrame() int {
	return a.current
}

// SetPosition moves the frame rectangle
func (a *Animation) SetPosition(x, y float64) {
	a.rect.X = x
	a.rect.Y = y
}

// Frame returns the current frame rectangle in world coordinates
func (a *Animation) Frame() geom.Rect {
	return a.rect
}

// Draw issues the current frame to the renderer
func (a *Animation) Draw(r render.Renderer, tint color.RGBA) {
	if len(a.frames) == 0 {
		return
	}
	r.DrawImage(a.frames[a.current], a.rect, tint)
}
