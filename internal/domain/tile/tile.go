// Package tile computes the static collision geometry of level tiles and the
// movement multipliers an actor gets while standing on them.
package tile

import (
	"errors"
	"fmt"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
)

// Layout errors
var (
	ErrEmptyLayout     = errors.New("tile layout has no anchors")
	ErrExtentMismatch  = errors.New("tile layout anchors and extents differ in length")
	ErrNegativeExtent  = errors.New("tile layout has a negative image extent")
	ErrUnorderedLayout = errors.New("tile layout anchors run backwards")
)

// Kind identifies a tile variant
type Kind int

const (
	KindPlatform Kind = iota
	KindIcePlatform
	KindMudPlatform
	KindOneWayPlatform
	KindSpike
	KindDoor
)

// String returns the layout name of the kind
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindIcePlatform:
		return "ice"
	case KindMudPlatform:
		return "mud"
	case KindOneWayPlatform:
		return "oneway"
	case KindSpike:
		return "spike"
	case KindDoor:
		return "door"
	default:
		return "unknown"
	}
}

// Tile is the query surface the movement and collision systems use
type Tile interface {
	Kind() Kind
	GetHitbox() geom.Rect
	GetFrictionMultiplier() float64
	GetSpeedMultiplier() float64
	Draw(r render.Renderer, alpha float64)
}

// Layout is one tile group: a repeated image placed at ordered anchors.
// Extents[i] is the image size drawn at Anchors[i].
type Layout struct {
	Anchors []geom.Vec2
	Extents []geom.Size
	Image   render.Image
}

// Validate checks the layout preconditions every tile constructor relies on
func (l Layout) Validate() error {
	if len(l.Anchors) == 0 {
		return ErrEmptyLayout
	}
	if len(l.Anchors) != len(l.Extents) {
		return fmt.Errorf("%w: %d anchors, %d extents", ErrExtentMismatch, len(l.Anchors), len(l.Extents))
	}
	for i, e := range l.Extents {
		if e.W < 0 || e.H < 0 {
			return fmt.Errorf("%w: extent %d is %vx%v", ErrNegativeExtent, i, e.W, e.H)
		}
	}
	if r := DefaultHitbox(l.Anchors, l.Extents); r.W < 0 || r.H < 0 {
		return fmt.Errorf("%w: hitbox is %vx%v", ErrUnorderedLayout, r.W, r.H)
	}
	return nil
}

// DefaultHitbox spans from the first anchor's top-left to the last anchor's
// bottom-right, using the first image extent. Anchors are assumed to run
// contiguously along one axis.
func DefaultHitbox(anchors []geom.Vec2, extents []geom.Size) geom.Rect {
	first := anchors[0]
	last := anchors[len(anchors)-1]
	ext := extents[0]
	return geom.Rect{
		X: first.X,
		Y: first.Y,
		W: last.X + ext.W - first.X,
		H: last.Y + ext.H - first.Y,
	}
}

// base holds the state shared by every tile variant
type base struct {
	kind     Kind
	layout   Layout
	hitbox   geom.Rect
	friction float64
	speed    float64
}

func newBase(kind Kind, l Layout, friction, speed float64) (base, error) {
	if err := l.Validate(); err != nil {
		return base{}, fmt.Errorf("%s: %w", kind, err)
	}
	return base{
		kind:     kind,
		layout:   l,
		hitbox:   DefaultHitbox(l.Anchors, l.Extents),
		friction: friction,
		speed:    speed,
	}, nil
}

// Kind returns the tile variant
func (b *base) Kind() Kind { return b.kind }

// GetHitbox returns the collision rectangle
func (b *base) GetHitbox() geom.Rect { return b.hitbox }

// GetFrictionMultiplier returns the friction applied to an overlapping actor
func (b *base) GetFrictionMultiplier() float64 { return b.friction }

// GetSpeedMultiplier returns the speed factor applied to an overlapping actor
func (b *base) GetSpeedMultiplier() float64 { return b.speed }

// Anchors returns the layout anchors in draw order
func (b *base) Anchors() []geom.Vec2 { return b.layout.Anchors }

// Draw issues one image per anchor
func (b *base) Draw(r render.Renderer, alpha float64) {
	if b.layout.Image == nil {
		return
	}
	tint := render.Fade(render.White, alpha)
	for i, a := range b.layout.Anchors {
		r.DrawImage(b.layout.Image, geom.NewRect(a, b.layout.Extents[i]), tint)
	}
}
