package tile

import "github.com/younwookim/sidecore/internal/domain/geom"

// Spike is a hazard whose hitbox covers only the blade band of the sprite
type Spike struct {
	base
}

// NewSpike creates a spike strip from a tile group layout
func NewSpike(l Layout) (*Spike, error) {
	b, err := newBase(KindSpike, l, PlatformFriction, PlatformSpeed)
	if err != nil {
		return nil, err
	}
	b.hitbox = spikeHitbox(b.hitbox, l.Extents[0])
	return &Spike{base: b}, nil
}

// spikeHitbox insets the default rect by a quarter image width and half
// image height on the origin side, and trims the far side by half a width.
func spikeHitbox(def geom.Rect, ext geom.Size) geom.Rect {
	quarterW := ext.W / 4
	halfW := ext.W / 2
	halfH := ext.H / 2
	return geom.Rect{
		X: def.X + quarterW,
		Y: def.Y + halfH,
		W: def.W - quarterW - halfW,
		H: def.H - halfH,
	}
}
