package config

// RoomConfig is the root config for room JSON files
type RoomConfig struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Size        RoomSizeConfig    `json:"size"`
	PlayerSpawn PositionConfig    `json:"playerSpawn"`
	Tiles       []TileGroupConfig `json:"tiles"`
	Doors       []DoorSpawnConfig `json:"doors"`
	Turrets     []TurretConfig    `json:"turrets"`
}

type RoomSizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SizeConfig struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// TileGroupConfig is one repeated tile image placed at ordered anchors.
// Extents may hold a single entry, which then applies to every anchor.
type TileGroupConfig struct {
	Type    string           `json:"type"` // platform, ice, mud, oneway, spike
	Sprite  string           `json:"sprite"`
	Anchors []PositionConfig `json:"anchors"`
	Extents []SizeConfig     `json:"extents"`
}

type DoorSpawnConfig struct {
	ID          string         `json:"id"`
	Sprite      string         `json:"sprite"`
	Position    PositionConfig `json:"position"`
	Extent      SizeConfig     `json:"extent"`
	Orientation string         `json:"orientation"` // vertical, horizontal
}

type TurretConfig struct {
	Position PositionConfig `json:"position"`
	AngleDeg float64        `json:"angleDeg"`
}
