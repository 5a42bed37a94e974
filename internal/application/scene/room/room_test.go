package room

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/particle"
	domrender "github.com/younwookim/sidecore/internal/domain/render"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

const dt = 1000.0 / 60.0

func createTestCore() *config.CoreConfig {
	return &config.CoreConfig{
		Display:    config.DisplayConfig{ScreenWidth: 160, ScreenHeight: 120, Framerate: 60},
		Projectile: config.ProjectileConfig{MaxSpeed: 4},
		Attack:     config.AttackConfig{FrameDuration: 50},
		Movement: config.MovementConfig{
			Gravity:      0.5,
			MaxFallSpeed: 8,
			RunSpeed:     2,
			Acceleration: 0.5,
			Deceleration: 0.5,
			JumpForce:    8,
		},
	}
}

func pos(x, y float64) config.PositionConfig { return config.PositionConfig{X: x, Y: y} }

func createTestRoomConfig(id string) *config.RoomConfig {
	return &config.RoomConfig{
		ID:          id,
		Name:        "Room " + id,
		Size:        config.RoomSizeConfig{Width: 200, Height: 120},
		PlayerSpawn: pos(20, 70),
		Tiles: []config.TileGroupConfig{
			{Type: "platform", Anchors: []config.PositionConfig{pos(0, 100)}, Extents: []config.SizeConfig{{W: 200, H: 20}}},
			{Type: "spike", Anchors: []config.PositionConfig{pos(100, 80)}, Extents: []config.SizeConfig{{W: 20, H: 20}}},
		},
		Doors: []config.DoorSpawnConfig{
			{ID: "exit", Position: pos(180, 40), Extent: config.SizeConfig{W: 10, H: 60}},
		},
	}
}

func createTestLevel(t *testing.T, ids ...string) *system.Level {
	t.Helper()
	rooms := make([]*system.Room, 0, len(ids))
	for _, id := range ids {
		r, err := system.LoadRoom(createTestRoomConfig(id), nil, 20)
		require.NoError(t, err)
		rooms = append(rooms, r)
	}
	return system.NewLevel(rooms...)
}

func createTestEmissions() map[string]system.Emission {
	spark := image.NewRGBA(image.Rect(0, 0, 2, 2))
	return map[string]system.Emission{
		system.PresetDeath: {Preset: particle.Preset{Kind: particle.KindDeath, Count: 8, Speed: 3, FramesOutward: 20}, Image: spark},
		system.PresetSoul:  {Preset: particle.Preset{Kind: particle.KindSoul, Count: 2}, Image: spark},
	}
}

func createTestScene(t *testing.T, ids ...string) *Scene {
	t.Helper()
	assets := Assets{
		AttackFrames: []domrender.Image{
			image.NewRGBA(image.Rect(0, 0, 40, 80)),
			image.NewRGBA(image.Rect(0, 0, 40, 80)),
		},
	}
	s, err := New(createTestCore(), createTestLevel(t, ids...), createTestEmissions(), assets)
	require.NoError(t, err)
	return s
}

func step(t *testing.T, s *Scene, input system.InputState, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		next, err := s.Step(input, dt)
		require.NoError(t, err)
		require.Nil(t, next)
	}
}

func TestNew_EmptyLevel(t *testing.T) {
	_, err := New(createTestCore(), system.NewLevel(), nil, Assets{})

	assert.Error(t, err)
}

func TestScene_PlayerLandsOnSpawnFloor(t *testing.T) {
	s := createTestScene(t, "a")

	assert.Equal(t, geom.Vec2{X: 20, Y: 70}, s.Player().Pos)
	step(t, s, system.InputState{}, 30)

	assert.True(t, s.Player().OnGround)
	assert.Equal(t, 76.0, s.Player().Pos.Y)
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestScene_SpikeKillsAndRespawns(t *testing.T) {
	s := createTestScene(t, "a")
	step(t, s, system.InputState{}, 30)

	s.Player().Pos.X = 100
	step(t, s, system.InputState{}, 1)

	assert.Equal(t, state.StateDead, s.State())
	assert.Equal(t, 10, s.World().Emitter().Len(), "death and soul bursts")

	step(t, s, system.InputState{}, 5)
	assert.Equal(t, state.StateDead, s.State(), "waits for retry")

	step(t, s, system.InputState{JumpPressed: true}, 1)
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, geom.Vec2{X: 20, Y: 70}, s.Player().Pos)
}

func TestScene_Pause(t *testing.T) {
	s := createTestScene(t, "a")

	step(t, s, system.InputState{Pause: true}, 1)
	assert.Equal(t, state.StatePaused, s.State())

	before := s.Player().Pos
	step(t, s, system.InputState{Right: true}, 10)
	assert.Equal(t, before, s.Player().Pos, "paused scenes do not simulate")

	step(t, s, system.InputState{Pause: true}, 1)
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestScene_ExitAdvancesLevel(t *testing.T) {
	s := createTestScene(t, "a", "b")
	step(t, s, system.InputState{}, 30)

	// Closed door keeps the room
	s.Player().Pos = geom.Vec2{X: 201, Y: 76}
	step(t, s, system.InputState{}, 1)
	assert.Equal(t, state.StatePlaying, s.State())

	step(t, s, system.InputState{Interact: true}, 1)
	step(t, s, system.InputState{}, 5)
	require.True(t, s.World().AllDoorsOpen())

	s.Player().Pos = geom.Vec2{X: 201, Y: 76}
	step(t, s, system.InputState{}, 1)
	assert.Equal(t, state.StateExiting, s.State())

	step(t, s, system.InputState{}, 1)
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, "b", s.World().Room().ID)
	assert.Equal(t, geom.Vec2{X: 20, Y: 70}, s.Player().Pos)

	step(t, s, system.InputState{Interact: true}, 6)
	s.Player().Pos = geom.Vec2{X: 201, Y: 76}
	step(t, s, system.InputState{}, 2)
	assert.Equal(t, state.StateFinished, s.State())
	assert.True(t, s.Finished())
}

func TestScene_Attack(t *testing.T) {
	s := createTestScene(t, "a")
	step(t, s, system.InputState{}, 30)

	step(t, s, system.InputState{Attack: true, Up: true}, 1)
	require.NotNil(t, s.attack)
	assert.True(t, s.attack.IsAnimating())
	assert.Equal(t, entity.DirUp, s.attack.Direction())

	// Pressing again mid-strike does nothing
	first := s.attack
	step(t, s, system.InputState{Attack: true}, 1)
	assert.Same(t, first, s.attack)

	step(t, s, system.InputState{}, 10)
	assert.Nil(t, s.attack, "strike ended")
}

func TestCamera(t *testing.T) {
	bounds := geom.Rect{W: 640, H: 360}

	tests := []struct {
		name   string
		focus  geom.Vec2
		bounds geom.Rect
		want   geom.Vec2
	}{
		{"centered", geom.Vec2{X: 320, Y: 180}, bounds, geom.Vec2{X: 240, Y: 120}},
		{"clamped top-left", geom.Vec2{X: 10, Y: 10}, bounds, geom.Vec2{}},
		{"clamped bottom-right", geom.Vec2{X: 630, Y: 350}, bounds, geom.Vec2{X: 480, Y: 240}},
		{"room smaller than screen", geom.Vec2{X: 50, Y: 50}, geom.Rect{W: 100, H: 100}, geom.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Camera(tt.focus, 160, 120, tt.bounds))
		})
	}
}
