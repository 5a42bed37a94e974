package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/domain/tile"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// InputSystem turns keyboard state into body velocity
type InputSystem struct {
	config *config.MovementConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.MovementConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state
type InputState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	JumpPressed bool
	Attack      bool // Attack in the held direction
	Interact    bool // Open doors
	Pause       bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Attack:      inpututil.IsKeyJustPressed(ebiten.KeyJ),
		Interact:    inpututil.IsKeyJustPressed(ebiten.KeyE),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// AttackDirection returns the direction an attack should face. Up and down
// win over the facing direction.
func AttackDirection(input InputState, facingRight bool) entity.Direction {
	switch {
	case input.Up:
		return entity.DirUp
	case input.Down:
		return entity.DirDown
	case facingRight:
		return entity.DirRight
	default:
		return entity.DirLeft
	}
}

// UpdateBody applies horizontal movement and jumping. ground is the tile the
// body stands on, or nil in the air; its multipliers scale run speed and
// deceleration.
func (s *InputSystem) UpdateBody(body *entity.Body, input InputState, ground tile.Tile) {
	speedMul, frictionMul := 1.0, 1.0
	if ground != nil {
		speedMul = ground.GetSpeedMultiplier()
		frictionMul = ground.GetFrictionMultiplier()
	}

	targetVX := 0.0
	maxSpeed := s.config.RunSpeed * speedMul
	if input.Left {
		targetVX = -maxSpeed
		body.FacingRight = false
	}
	if input.Right {
		targetVX = maxSpeed
		body.FacingRight = true
	}

	if targetVX != 0 {
		accel := s.config.Acceleration * frictionMul
		if body.Vel.X < targetVX {
			body.Vel.X += accel
			if body.Vel.X > targetVX {
				body.Vel.X = targetVX
			}
		} else if body.Vel.X > targetVX {
			body.Vel.X -= accel
			if body.Vel.X < targetVX {
				body.Vel.X = targetVX
			}
		}
	} else {
		// Airborne bodies keep their momentum
		decel := 0.0
		if ground != nil {
			decel = s.config.Deceleration * frictionMul
		}
		if body.Vel.X > 0 {
			body.Vel.X -= decel
			if body.Vel.X < 0 {
				body.Vel.X = 0
			}
		} else if body.Vel.X < 0 {
			body.Vel.X += decel
			if body.Vel.X > 0 {
				body.Vel.X = 0
			}
		}
	}

	if input.JumpPressed && body.OnGround {
		body.Vel.Y = -s.config.JumpForce
		body.OnGround = false
	}
}
