package tile

import (
	"fmt"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
)

// Orientation is the axis a door slides along when opening
type Orientation int

const (
	// Vertical doors slide down
	Vertical Orientation = iota
	// Horizontal doors slide left
	Horizontal
)

// DoorState is the opening state machine: Closed -> Opening -> Open
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
)

// String returns the state name
func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "Closed"
	case DoorOpening:
		return "Opening"
	case DoorOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// DefaultDoorOpenSpeed is the displacement per OpenDoor call (pixels)
const DefaultDoorOpenSpeed = 2.0

// Door is a single sprite that slides out of the way when opened
type Door struct {
	base
	orientation  Orientation
	openSpeed    float64
	pos          geom.Vec2 // Current draw position
	displacement float64
	state        DoorState
}

// NewDoor creates a door at the layout's first anchor. The hitbox is the
// image extent at that position.
func NewDoor(l Layout, orientation Orientation, openSpeed float64) (*Door, error) {
	b, err := newBase(KindDoor, l, PlatformFriction, PlatformSpeed)
	if err != nil {
		return nil, err
	}
	if orientation != Vertical && orientation != Horizontal {
		return nil, fmt.Errorf("door: unknown orientation %d", orientation)
	}
	if openSpeed <= 0 {
		openSpeed = DefaultDoorOpenSpeed
	}
	pos := l.Anchors[0]
	b.hitbox = geom.NewRect(pos, l.Extents[0])
	return &Door{
		base:        b,
		orientation: orientation,
		openSpeed:   openSpeed,
		pos:         pos,
	}, nil
}

// OpenDoor advances the door by one open-speed step, moving the draw
// position and hitbox together. Returns true while still opening and false
// once the accumulated displacement exceeds the door's extent along its
// axis. Once open the door no longer moves.
func (d *Door) OpenDoor() bool {
	if d.state == DoorOpen {
		return false
	}
	d.state = DoorOpening

	var step geom.Vec2
	if d.orientation == Vertical {
		step.Y = d.openSpeed
	} else {
		step.X = -d.openSpeed
	}
	d.pos.X += step.X
	d.pos.Y += step.Y
	d.hitbox = d.hitbox.Translate(step)
	d.displacement += d.openSpeed

	if d.displacement > d.travel() {
		d.state = DoorOpen
		return false
	}
	return true
}

// travel is the image extent along the movement axis
func (d *Door) travel() float64 {
	ext := d.layout.Extents[0]
	if d.orientation == Vertical {
		return ext.H
	}
	return ext.W
}

// State returns the door's opening state
func (d *Door) State() DoorState { return d.state }

// Position returns the current draw position
func (d *Door) Position() geom.Vec2 { return d.pos }

// Displacement returns the accumulated distance moved
func (d *Door) Displacement() float64 { return d.displacement }

// Orientation returns the opening axis
func (d *Door) Orientation() Orientation { return d.orientation }

// Draw issues the door sprite at its current position
func (d *Door) Draw(r render.Renderer, alpha float64) {
	if d.layout.Image == nil {
		return
	}
	r.DrawImage(d.layout.Image, geom.NewRect(d.pos, d.layout.Extents[0]), render.Fade(render.White, alpha))
}
