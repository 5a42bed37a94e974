package tile

import "github.com/younwookim/sidecore/internal/domain/geom"

// Movement multipliers per surface (friction, speed)
const (
	PlatformFriction = 1.0
	PlatformSpeed    = 1.0
	IceFriction      = 0.1
	IceSpeed         = 1.6
	MudFriction      = 2.0
	MudSpeed         = 0.6
)

// Platform is a solid surface with neutral movement multipliers
type Platform struct {
	base
}

// NewPlatform creates a platform from a tile group layout
func NewPlatform(l Layout) (*Platform, error) {
	b, err := newBase(KindPlatform, l, PlatformFriction, PlatformSpeed)
	if err != nil {
		return nil, err
	}
	return &Platform{base: b}, nil
}

// IcePlatform is slippery: low friction, boosted speed
type IcePlatform struct {
	base
}

// NewIcePlatform creates an ice platform from a tile group layout
func NewIcePlatform(l Layout) (*IcePlatform, error) {
	b, err := newBase(KindIcePlatform, l, IceFriction, IceSpeed)
	if err != nil {
		return nil, err
	}
	return &IcePlatform{base: b}, nil
}

// MudPlatform is sticky: high friction, reduced speed
type MudPlatform struct {
	base
}

// NewMudPlatform creates a mud platform from a tile group layout
func NewMudPlatform(l Layout) (*MudPlatform, error) {
	b, err := newBase(KindMudPlatform, l, MudFriction, MudSpeed)
	if err != nil {
		return nil, err
	}
	return &MudPlatform{base: b}, nil
}

// OneWayPlatform only collides on a thin band at its top surface.
// Actors pass through it from below.
type OneWayPlatform struct {
	base
}

// NewOneWayPlatform creates a one-way platform. The hitbox keeps the default
// position and width; its height is the default height / 6 (integer division).
func NewOneWayPlatform(l Layout) (*OneWayPlatform, error) {
	b, err := newBase(KindOneWayPlatform, l, PlatformFriction, PlatformSpeed)
	if err != nil {
		return nil, err
	}
	b.hitbox = oneWayHitbox(b.hitbox)
	return &OneWayPlatform{base: b}, nil
}

func oneWayHitbox(def geom.Rect) geom.Rect {
	def.H = float64(int(def.H) / 6)
	return def
}

// PassableFromBelow reports the one-way direction. Always true: one-way
// platforms are authored to be jumped through from underneath.
func (p *OneWayPlatform) PassableFromBelow() bool {
	return true
}
