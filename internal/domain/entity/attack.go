package entity

import (
	"errors"
	"fmt"

	"github.com/younwookim/sidecore/internal/domain/anim"
	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
)

// ErrInvalidDirection is returned for directions outside Left/Right/Up/Down
var ErrInvalidDirection = errors.New("invalid attack direction")

// Direction represents the facing of a melee strike
type Direction int

const (
	DirRight Direction = 0
	DirUp    Direction = 1
	DirLeft  Direction = 2
	DirDown  Direction = 3
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a config name into a Direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "left":
		return DirLeft, nil
	case "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// AttackGeometry is the reach of a strike relative to the owner's
// animation frame: the hitbox sits at owner + offset and is the frame
// size minus the shrink.
type AttackGeometry struct {
	OffsetX, OffsetY float64
	ShrinkW, ShrinkH float64
}

// AttackGeometryFor returns the hitbox geometry for a facing
func AttackGeometryFor(dir Direction) (AttackGeometry, error) {
	switch dir {
	case DirLeft:
		return AttackGeometry{OffsetX: 20, OffsetY: 25, ShrinkW: 20, ShrinkH: 60}, nil
	case DirRight:
		return AttackGeometry{OffsetX: 0, OffsetY: 25, ShrinkW: 20, ShrinkH: 60}, nil
	case DirUp:
		return AttackGeometry{OffsetX: 10, OffsetY: 10, ShrinkW: 20, ShrinkH: 20}, nil
	case DirDown:
		return AttackGeometry{OffsetX: 5, OffsetY: 0, ShrinkW: 10, ShrinkH: 20}, nil
	default:
		return AttackGeometry{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
}

// Attack is a melee hitbox bound to a strike animation
type Attack struct {
	direction Direction
	geometry  AttackGeometry
	hitbox    geom.Rect
	animation *anim.Animation
}

// NewAttack creates an attack facing dir. The hitbox size is derived from
// the animation's frame size.
func NewAttack(dir Direction, animation *anim.Animation) (*Attack, error) {
	g, err := AttackGeometryFor(dir)
	if err != nil {
		return nil, err
	}
	if animation == nil {
		return nil, errors.New("attack: nil animation")
	}

	frame := animation.Frame()
	w := frame.W - g.ShrinkW
	if w < 0 {
		w = 0
	}
	h := frame.H - g.ShrinkH
	if h < 0 {
		h = 0
	}

	a := &Attack{
		direction: dir,
		geometry:  g,
		hitbox:    geom.Rect{W: w, H: h},
		animation: animation,
	}
	a.SetLoc(frame.X, frame.Y)
	return a, nil
}

// SetLoc places the animation frame at the owner position and the hitbox at
// owner position + offset
func (a *Attack) SetLoc(x, y float64) {
	a.hitbox.X = x + a.geometry.OffsetX
	a.hitbox.Y = y + a.geometry.OffsetY
	a.animation.SetPosition(x, y)
}

// StartAttack starts the strike animation
func (a *Attack) StartAttack() {
	a.animation.Start()
}

// UpdateAttack advances the strike animation; it ends itself after its
// last frame
func (a *Attack) UpdateAttack(dt float64) {
	a.animation.Update(dt)
}

// IsAnimating returns true while the strike is playing
func (a *Attack) IsAnimating() bool {
	return a.animation.IsActive()
}

// GetHitbox returns the hitbox in world coordinates
func (a *Attack) GetHitbox() geom.Rect {
	return a.hitbox
}

// Direction returns the facing fixed at construction
func (a *Attack) Direction() Direction {
	return a.direction
}

// Draw issues the current strike frame while animating
func (a *Attack) Draw(r render.Renderer, alpha float64) {
	if !a.IsAnimating() {
		return
	}
	a.animation.Draw(r, render.Fade(render.White, alpha))
}
