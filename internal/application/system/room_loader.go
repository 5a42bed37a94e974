package system

import (
	"fmt"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
	"github.com/younwookim/sidecore/internal/domain/tile"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// ImageSource resolves sprite names to image handles
type ImageSource interface {
	Get(name string) (render.Image, bool)
}

// Turret is a fixed projectile spawner placed in a room
type Turret struct {
	Pos      geom.Vec2
	AngleDeg float64
}

// Room is the tile geometry of one level screen
type Room struct {
	ID      string
	Name    string
	Bounds  geom.Rect
	Spawn   geom.Vec2
	Tiles   []tile.Tile // Layout order; doors included
	Doors   map[string]*tile.Door
	Turrets []Turret
}

// ParseTileKind converts a layout type name into a tile kind
func ParseTileKind(s string) (tile.Kind, error) {
	switch s {
	case "platform", "wall":
		return tile.KindPlatform, nil
	case "ice":
		return tile.KindIcePlatform, nil
	case "mud":
		return tile.KindMudPlatform, nil
	case "oneway":
		return tile.KindOneWayPlatform, nil
	case "spike":
		return tile.KindSpike, nil
	case "door":
		return tile.KindDoor, nil
	default:
		return 0, fmt.Errorf("unknown tile type %q", s)
	}
}

// ParseOrientation converts a door orientation name
func ParseOrientation(s string) (tile.Orientation, error) {
	switch s {
	case "vertical", "":
		return tile.Vertical, nil
	case "horizontal":
		return tile.Horizontal, nil
	default:
		return 0, fmt.Errorf("unknown door orientation %q", s)
	}
}

// BuildTile constructs the tile variant for kind. Doors are built with
// NewDoor since they need an orientation.
func BuildTile(kind tile.Kind, l tile.Layout) (tile.Tile, error) {
	var (
		t   tile.Tile
		err error
	)
	switch kind {
	case tile.KindPlatform:
		t, err = tile.NewPlatform(l)
	case tile.KindIcePlatform:
		t, err = tile.NewIcePlatform(l)
	case tile.KindMudPlatform:
		t, err = tile.NewMudPlatform(l)
	case tile.KindOneWayPlatform:
		t, err = tile.NewOneWayPlatform(l)
	case tile.KindSpike:
		t, err = tile.NewSpike(l)
	default:
		return nil, fmt.Errorf("tile kind %s cannot be built from a tile group", kind)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LoadRoom converts a RoomConfig into a Room. doorSpeed is the per-step
// door opening distance.
func LoadRoom(cfg *config.RoomConfig, images ImageSource, doorSpeed float64) (*Room, error) {
	room := &Room{
		ID:     cfg.ID,
		Name:   cfg.Name,
		Bounds: geom.Rect{W: float64(cfg.Size.Width), H: float64(cfg.Size.Height)},
		Spawn:  geom.Vec2{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		Doors:  make(map[string]*tile.Door, len(cfg.Doors)),
	}

	for i, group := range cfg.Tiles {
		kind, err := ParseTileKind(group.Type)
		if err != nil {
			return nil, fmt.Errorf("room %s: tile group %d: %w", cfg.ID, i, err)
		}
		img, err := lookupSprite(images, group.Sprite)
		if err != nil {
			return nil, fmt.Errorf("room %s: tile group %d: %w", cfg.ID, i, err)
		}

		t, err := BuildTile(kind, groupLayout(group, img))
		if err != nil {
			return nil, fmt.Errorf("room %s: tile group %d: %w", cfg.ID, i, err)
		}
		room.Tiles = append(room.Tiles, t)
	}

	for i, d := range cfg.Doors {
		orientation, err := ParseOrientation(d.Orientation)
		if err != nil {
			return nil, fmt.Errorf("room %s: door %d: %w", cfg.ID, i, err)
		}
		img, err := lookupSprite(images, d.Sprite)
		if err != nil {
			return nil, fmt.Errorf("room %s: door %d: %w", cfg.ID, i, err)
		}

		extent := geom.Size{W: d.Extent.W, H: d.Extent.H}
		if extent == (geom.Size{}) && img != nil {
			extent = geom.SizeOf(img)
		}
		layout := tile.Layout{
			Anchors: []geom.Vec2{{X: d.Position.X, Y: d.Position.Y}},
			Extents: []geom.Size{extent},
			Image:   img,
		}
		door, err := tile.NewDoor(layout, orientation, doorSpeed)
		if err != nil {
			return nil, fmt.Errorf("room %s: door %d: %w", cfg.ID, i, err)
		}

		id := d.ID
		if id == "" {
			id = fmt.Sprintf("door%d", i)
		}
		if _, dup := room.Doors[id]; dup {
			return nil, fmt.Errorf("room %s: duplicate door id %s", cfg.ID, id)
		}
		room.Doors[id] = door
		room.Tiles = append(room.Tiles, door)
	}

	for _, tc := range cfg.Turrets {
		room.Turrets = append(room.Turrets, Turret{
			Pos:      geom.Vec2{X: tc.Position.X, Y: tc.Position.Y},
			AngleDeg: tc.AngleDeg,
		})
	}

	return room, nil
}

// groupLayout expands a tile group config. A single extent applies to every anchor.
func groupLayout(group config.TileGroupConfig, img render.Image) tile.Layout {
	l := tile.Layout{Image: img}
	for _, a := range group.Anchors {
		l.Anchors = append(l.Anchors, geom.Vec2{X: a.X, Y: a.Y})
	}
	for _, e := range group.Extents {
		l.Extents = append(l.Extents, geom.Size{W: e.W, H: e.H})
	}
	if len(l.Extents) == 1 && len(l.Anchors) > 1 {
		for len(l.Extents) < len(l.Anchors) {
			l.Extents = append(l.Extents, l.Extents[0])
		}
	}
	if len(l.Extents) == 0 && img != nil {
		for range l.Anchors {
			l.Extents = append(l.Extents, geom.SizeOf(img))
		}
	}
	return l
}

// lookupSprite returns nil for an empty name (invisible collision geometry)
func lookupSprite(images ImageSource, name string) (render.Image, error) {
	if name == "" || images == nil {
		return nil, nil
	}
	img, ok := images.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown sprite %q", name)
	}
	return img, nil
}

// Level is an ordered list of rooms
type Level struct {
	rooms   []*Room
	current int
}

// NewLevel creates a level starting at its first room
func NewLevel(rooms ...*Room) *Level {
	return &Level{rooms: rooms}
}

// Current returns the active room, or nil for an empty level
func (l *Level) Current() *Room {
	if len(l.rooms) == 0 {
		return nil
	}
	return l.rooms[l.current]
}

// Advance moves to the next room. Returns false at the last room.
func (l *Level) Advance() bool {
	if l.current+1 >= len(l.rooms) {
		return false
	}
	l.current++
	return true
}

// Len returns the number of rooms
func (l *Level) Len() int {
	return len(l.rooms)
}
