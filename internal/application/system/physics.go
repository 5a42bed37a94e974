package system

import (
	"math"

	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/tile"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// PhysicsSystem moves bodies through a room's tile geometry
type PhysicsSystem struct {
	config *config.MovementConfig
	room   *Room
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.MovementConfig, room *Room) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		room:   room,
	}
}

// SetRoom switches the geometry bodies collide with
func (s *PhysicsSystem) SetRoom(room *Room) {
	s.room = room
}

// Update applies gravity and velocity to body, resolving tile collisions
func (s *PhysicsSystem) Update(body *entity.Body) {
	body.ResetContacts()

	s.applyGravity(body)

	s.moveX(body, body.Vel.X)
	s.moveY(body, body.Vel.Y)

	body.Hazard = s.touchesSpike(body.GetHitbox())

	// Fell out of the room
	if body.Pos.Y > s.room.Bounds.Bottom() {
		body.Pos = s.room.Spawn
		body.Vel = geom.Vec2{}
	}
}

// Ground returns the tile under the body's feet, or nil when airborne
func (s *PhysicsSystem) Ground(body *entity.Body) tile.Tile {
	feet := body.Feet()
	for _, t := range s.room.Tiles {
		if t.Kind() == tile.KindSpike {
			continue
		}
		if t.GetHitbox().Intersects(feet) {
			return t
		}
	}
	return nil
}

func (s *PhysicsSystem) applyGravity(body *entity.Body) {
	body.Vel.Y += s.config.Gravity
	if s.config.MaxFallSpeed > 0 && body.Vel.Y > s.config.MaxFallSpeed {
		body.Vel.Y = s.config.MaxFallSpeed
	}
}

// moveX moves body horizontally in substeps of at most one pixel
func (s *PhysicsSystem) moveX(body *entity.Body, dx float64) {
	steps, step := substeps(dx)
	for i := 0; i < steps; i++ {
		next := body.GetHitbox().Translate(geom.Vec2{X: step})
		if t := s.blockerX(next); t != nil {
			hb := t.GetHitbox()
			if step > 0 {
				body.Pos.X = hb.X - body.Size.W
				body.OnWallRight = true
			} else {
				body.Pos.X = hb.Right()
				body.OnWallLeft = true
			}
			body.Vel.X = 0
			return
		}
		body.Pos.X += step
	}
}

// moveY moves body vertically in substeps of at most one pixel
func (s *PhysicsSystem) moveY(body *entity.Body, dy float64) {
	steps, step := substeps(dy)
	for i := 0; i < steps; i++ {
		prevBottom := body.Pos.Y + body.Size.H
		next := body.GetHitbox().Translate(geom.Vec2{Y: step})
		if t := s.blockerY(next, step, prevBottom); t != nil {
			hb := t.GetHitbox()
			if step > 0 {
				body.Pos.Y = hb.Y - body.Size.H
				body.OnGround = true
			} else {
				body.Pos.Y = hb.Bottom()
				body.OnCeiling = true
			}
			body.Vel.Y = 0
			return
		}
		body.Pos.Y += step
	}
}

func (s *PhysicsSystem) blockerX(box geom.Rect) tile.Tile {
	for _, t := range s.room.Tiles {
		switch t.Kind() {
		case tile.KindSpike, tile.KindOneWayPlatform:
			continue
		}
		if t.GetHitbox().Intersects(box) {
			return t
		}
	}
	return nil
}

// blockerY finds a tile stopping vertical movement. One-way platforms only
// stop a body falling onto them from above.
func (s *PhysicsSystem) blockerY(box geom.Rect, dy, prevBottom float64) tile.Tile {
	for _, t := range s.room.Tiles {
		hb := t.GetHitbox()
		switch t.Kind() {
		case tile.KindSpike:
			continue
		case tile.KindOneWayPlatform:
			if dy < 0 || prevBottom > hb.Y+geom.SnapEpsilon {
				continue
			}
		}
		if hb.Intersects(box) {
			return t
		}
	}
	return nil
}

func (s *PhysicsSystem) touchesSpike(box geom.Rect) bool {
	for _, t := range s.room.Tiles {
		if t.Kind() == tile.KindSpike && t.GetHitbox().Intersects(box) {
			return true
		}
	}
	return false
}

// substeps splits d into n steps no longer than one pixel
func substeps(d float64) (n int, step float64) {
	if d == 0 {
		return 0, 0
	}
	n = int(math.Ceil(math.Abs(d)))
	return n, d / float64(n)
}
