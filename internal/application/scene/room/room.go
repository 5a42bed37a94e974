// Package room provides the gameplay scene: one room of a level at a time.
package room

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/sidecore/internal/application/scene"
	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/domain/anim"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/domain/geom"
	domrender "github.com/younwookim/sidecore/internal/domain/render"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
	"github.com/younwookim/sidecore/internal/infrastructure/render"
)

var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorPlayer = color.RGBA{100, 200, 100, 255}
)

// Assets are the sprites the scene draws outside of room tiles
type Assets struct {
	Player       domrender.Image
	Projectile   domrender.Image
	AttackFrames []domrender.Image
}

// Scene is the room gameplay scene
type Scene struct {
	core      *config.CoreConfig
	level     *system.Level
	emissions map[string]system.Emission
	assets    Assets

	world   *system.World
	physics *system.PhysicsSystem
	input   *system.InputSystem
	player  *entity.Body
	attack  *entity.Attack
	state   state.RoomState
	screen  *render.Screen
	screenW int
	screenH int

	souls  int
	deaths int
}

// New creates the scene on the level's first room
func New(core *config.CoreConfig, level *system.Level, emissions map[string]system.Emission, assets Assets) (*Scene, error) {
	if level.Current() == nil {
		return nil, fmt.Errorf("level has no rooms")
	}

	size := geom.Size{W: 12, H: 24}
	if assets.Player != nil {
		size = geom.SizeOf(assets.Player)
	}

	s := &Scene{
		core:      core,
		level:     level,
		emissions: emissions,
		assets:    assets,
		input:     system.NewInputSystem(&core.Movement),
		player:    entity.NewBody(geom.Vec2{}, size),
		screen:    render.NewScreen(nil),
		screenW:   core.Display.ScreenWidth,
		screenH:   core.Display.ScreenHeight,
	}
	s.physics = system.NewPhysicsSystem(&core.Movement, level.Current())
	s.enterRoom(level.Current())
	return s, nil
}

func (s *Scene) enterRoom(room *system.Room) {
	s.world = system.NewWorld(room, s.emissions, system.WorldOptions{
		ProjectileImage:    s.assets.Projectile,
		ProjectileMaxSpeed: s.core.Projectile.MaxSpeed,
		FireInterval:       s.core.Projectile.FireInterval,
	})
	s.world.OnDoorOpened = func(id string) {
		log.Printf("Door opened: %s/%s", room.ID, id)
	}
	s.world.OnSoulCollected = func() {
		s.souls++
	}

	s.physics.SetRoom(room)
	s.respawn()
	s.state = state.StatePlaying
	log.Printf("Room loaded: %s (%d tiles, %d doors)", room.ID, len(room.Tiles), len(room.Doors))
}

func (s *Scene) respawn() {
	room := s.world.Room()
	s.player.Pos = room.Spawn
	s.player.Vel = geom.Vec2{}
	s.attack = nil
}

// OnEnter implements scene.Scene
func (s *Scene) OnEnter() {}

// OnExit implements scene.Scene
func (s *Scene) OnExit() {}

// Update reads the keyboard and steps the room (implements scene.Scene)
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	return s.Step(s.input.GetInput(), dt)
}

// Step advances the scene by one frame of dt milliseconds with the given input
func (s *Scene) Step(input system.InputState, dt float64) (scene.Scene, error) {
	switch s.state {
	case state.StatePlaying:
		if input.Pause {
			s.state = state.StatePaused
			return nil, nil
		}
		s.updatePlaying(input, dt)
	case state.StatePaused:
		if input.Pause {
			s.state = state.StatePlaying
		}
	case state.StateDead:
		s.world.Update(dt, s.player.GetHitbox())
		if input.JumpPressed {
			s.respawn()
			s.state = state.StatePlaying
		}
	case state.StateExiting:
		if !s.level.Advance() {
			s.state = state.StateFinished
			log.Printf("Level finished (souls: %d, deaths: %d)", s.souls, s.deaths)
			return nil, nil
		}
		s.enterRoom(s.level.Current())
	}
	return nil, nil
}

func (s *Scene) updatePlaying(input system.InputState, dt float64) {
	if input.Interact {
		s.world.OpenAllDoors()
	}
	if input.Attack {
		s.startAttack(input)
	}

	s.input.UpdateBody(s.player, input, s.physics.Ground(s.player))
	s.physics.Update(s.player)

	if s.attack != nil {
		if s.attack.IsAnimating() {
			s.attack.SetLoc(s.player.Pos.X, s.player.Pos.Y)
		} else {
			s.attack = nil
		}
	}

	box := s.player.GetHitbox()
	s.world.Update(dt, box)

	if s.player.Hazard || s.world.HitsOn(box) {
		s.die()
		return
	}

	if box.X >= s.world.Room().Bounds.Right() && s.world.AllDoorsOpen() {
		s.state = state.StateExiting
	}
}

// startAttack strikes in the held direction unless a strike is playing
func (s *Scene) startAttack(input system.InputState) {
	if s.attack != nil || len(s.assets.AttackFrames) == 0 {
		return
	}
	dir := system.AttackDirection(input, s.player.FacingRight)
	a, err := entity.NewAttack(dir, anim.New(s.assets.AttackFrames, s.core.Attack.FrameDuration, false))
	if err != nil {
		log.Printf("Failed to create attack: %v", err)
		return
	}
	a.SetLoc(s.player.Pos.X, s.player.Pos.Y)
	a.StartAttack()
	s.world.AddAttack(a)
	s.attack = a
}

func (s *Scene) die() {
	s.deaths++
	s.state = state.StateDead
	s.world.SpawnDeathBurst(s.player.Center())
}

// State returns the scene's lifecycle state
func (s *Scene) State() state.RoomState { return s.state }

// Player returns the player body
func (s *Scene) Player() *entity.Body { return s.player }

// World returns the current room's world
func (s *Scene) World() *system.World { return s.world }

// Finished reports whether the last room was cleared (implements game.Finisher)
func (s *Scene) Finished() bool { return s.state == state.StateFinished }

// Souls returns the number of collected souls
func (s *Scene) Souls() int { return s.souls }

// Draw renders the room (implements scene.Scene)
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	s.screen.SetTarget(screen)
	s.screen.Camera = Camera(s.player.Center(), s.screenW, s.screenH, s.world.Room().Bounds)

	s.world.Draw(s.screen, 1)
	if s.state != state.StateDead && s.assets.Player != nil {
		s.screen.DrawImage(s.assets.Player, s.player.GetHitbox(), colorPlayer)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  souls: %d  deaths: %d", s.world.Room().Name, s.souls, s.deaths))
	switch s.state {
	case state.StatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", s.screenW/2-20, s.screenH/2)
	case state.StateDead:
		ebitenutil.DebugPrintAt(screen, "Press SPACE to retry", s.screenW/2-60, s.screenH/2)
	case state.StateFinished:
		ebitenutil.DebugPrintAt(screen, "CLEAR", s.screenW/2-16, s.screenH/2)
	}
}

// Camera centers the view on focus, clamped to the room bounds. Rooms
// smaller than the screen stay pinned to the top-left.
func Camera(focus geom.Vec2, screenW, screenH int, bounds geom.Rect) geom.Vec2 {
	x := focus.X - float64(screenW)/2
	y := focus.Y - float64(screenH)/2

	maxX := bounds.Right() - float64(screenW)
	maxY := bounds.Bottom() - float64(screenH)
	return geom.Vec2{
		X: geom.Clamp(x, bounds.X, max(bounds.X, maxX)),
		Y: geom.Clamp(y, bounds.Y, max(bounds.Y, maxY)),
	}
}
