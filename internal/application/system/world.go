package system

import (
	"fmt"
	"maps"
	"slices"

	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/particle"
	"github.com/younwookim/sidecore/internal/domain/render"
	"github.com/younwookim/sidecore/internal/domain/tile"
	"github.com/younwookim/sidecore/internal/domain/timer"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// Emission is a particle preset bound to its sprite
type Emission struct {
	Preset particle.Preset
	Image  render.Image
}

// Preset names the world spawns on its own
const (
	PresetImpact = "impact" // Projectile hits a tile
	PresetDeath  = "death"
	PresetSoul   = "soul"
)

// WorldOptions configures projectile spawning
type WorldOptions struct {
	ProjectileImage    render.Image
	ProjectileMaxSpeed float64
	FireInterval       float64 // Turret shot interval in milliseconds; 0 disables turrets
}

// World owns every transient entity of a room and removes them once their
// removal predicates fire.
type World struct {
	room        *Room
	emitter     *particle.Emitter
	emissions   map[string]Emission
	projectiles []*entity.Projectile
	attacks     []*entity.Attack
	opening     map[string]*tile.Door
	opts        WorldOptions
	turretTimer *timer.Timer

	// Event callbacks
	OnDoorOpened    func(id string)
	OnSoulCollected func()
}

// FrameEvents summarizes what happened during one Update
type FrameEvents struct {
	ProjectileHits  int
	ProjectilesLost int // Left the room bounds
	SoulsCollected  int
	DoorsOpened     []string
}

// NewWorld creates a world for room
func NewWorld(room *Room, emissions map[string]Emission, opts WorldOptions) *World {
	w := &World{
		room:        room,
		emitter:     particle.NewEmitter(),
		emissions:   emissions,
		projectiles: make([]*entity.Projectile, 0, 32),
		opening:     make(map[string]*tile.Door),
		opts:        opts,
	}
	if opts.FireInterval > 0 {
		w.turretTimer = timer.New(opts.FireInterval)
	}
	return w
}

// BuildEmissions converts particle preset configs into emissions
func BuildEmissions(cfg *config.ParticlesConfig, images ImageSource) (map[string]Emission, error) {
	out := make(map[string]Emission, len(cfg.Presets))
	for name, pc := range cfg.Presets {
		kind, err := parseParticleKind(pc.Kind)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		tint, err := config.ParseColor(pc.Color)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		img, err := lookupSprite(images, pc.Sprite)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		out[name] = Emission{
			Preset: particle.Preset{
				Kind:          kind,
				Count:         pc.Count,
				StartAngle:    pc.StartAngle,
				Speed:         pc.Speed,
				Gravity:       pc.Gravity,
				Size:          pc.Size,
				Tint:          tint,
				Duration:      pc.Duration,
				FramesOutward: pc.FramesOutward,
			},
			Image: img,
		}
	}
	return out, nil
}

func parseParticleKind(s string) (particle.Kind, error) {
	switch s {
	case "ballistic", "":
		return particle.KindBallistic, nil
	case "death":
		return particle.KindDeath, nil
	case "soul":
		return particle.KindSoul, nil
	default:
		return 0, fmt.Errorf("unknown particle kind %q", s)
	}
}

// Room returns the room the world simulates
func (w *World) Room() *Room { return w.room }

// SpawnProjectile fires a projectile from pos
func (w *World) SpawnProjectile(pos geom.Vec2, angleDeg float64) *entity.Projectile {
	p := entity.NewProjectile(w.opts.ProjectileImage, pos, angleDeg, w.opts.ProjectileMaxSpeed)
	w.projectiles = append(w.projectiles, p)
	return p
}

// SpawnBurst emits the named preset at origin
func (w *World) SpawnBurst(name string, origin geom.Vec2) ([]particle.Particle, error) {
	em, ok := w.emissions[name]
	if !ok {
		return nil, fmt.Errorf("unknown particle preset %q", name)
	}
	return w.emitter.Burst(em.Preset, em.Image, origin), nil
}

// SpawnDeathBurst emits the death and soul presets for a killed entity
func (w *World) SpawnDeathBurst(origin geom.Vec2) {
	if _, ok := w.emissions[PresetDeath]; ok {
		w.SpawnBurst(PresetDeath, origin)
	}
	if _, ok := w.emissions[PresetSoul]; ok {
		w.SpawnBurst(PresetSoul, origin)
	}
}

// AddAttack registers a started attack. It is updated and drawn every frame
// until its animation ends.
func (w *World) AddAttack(a *entity.Attack) {
	w.attacks = append(w.attacks, a)
}

// OpenDoor starts opening the door with id
func (w *World) OpenDoor(id string) error {
	door, ok := w.room.Doors[id]
	if !ok {
		return fmt.Errorf("room %s: unknown door %s", w.room.ID, id)
	}
	if door.State() != tile.DoorOpen {
		w.opening[id] = door
	}
	return nil
}

// OpenAllDoors starts opening every door of the room, in id order
func (w *World) OpenAllDoors() {
	for _, id := range slices.Sorted(maps.Keys(w.room.Doors)) {
		_ = w.OpenDoor(id)
	}
}

// AllDoorsOpen reports whether every door of the room finished opening.
// A room without doors is always open.
func (w *World) AllDoorsOpen() bool {
	for _, door := range w.room.Doors {
		if door.State() != tile.DoorOpen {
			return false
		}
	}
	return true
}

// HitsOn removes every active projectile overlapping box and reports
// whether there was any
func (w *World) HitsOn(box geom.Rect) bool {
	hit := false
	w.projectiles = retain(w.projectiles, func(p *entity.Projectile) bool {
		if p.IsActive() && p.GetHitbox().Intersects(box) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// Update steps every entity by dt milliseconds. player is the player AABB.
func (w *World) Update(dt float64, player geom.Rect) FrameEvents {
	var ev FrameEvents

	w.fireTurrets(dt)
	w.updateProjectiles(dt, &ev)
	w.updateDoors(&ev)

	w.updateAttacks(dt)

	w.emitter.Update(dt, player)
	w.collectSouls(player, &ev)

	return ev
}

func (w *World) fireTurrets(dt float64) {
	if w.turretTimer == nil {
		return
	}
	w.turretTimer.Update(dt)
	if !w.turretTimer.IsDone() {
		return
	}
	w.turretTimer.Reset()
	for _, t := range w.room.Turrets {
		w.SpawnProjectile(t.Pos, t.AngleDeg)
	}
}

func (w *World) updateProjectiles(dt float64, ev *FrameEvents) {
	w.projectiles = retain(w.projectiles, func(p *entity.Projectile) bool {
		p.Update(dt)

		if w.hitsTile(p) {
			ev.ProjectileHits++
			if _, ok := w.emissions[PresetImpact]; ok {
				w.SpawnBurst(PresetImpact, p.GetHitbox().Center())
			}
			return false
		}
		if !p.GetHitbox().Intersects(w.room.Bounds) {
			ev.ProjectilesLost++
			return false
		}
		return true
	})
}

func (w *World) hitsTile(p *entity.Projectile) bool {
	for _, t := range w.room.Tiles {
		if p.TestCollision(t.GetHitbox()) {
			return true
		}
	}
	return false
}

// updateAttacks advances every strike and drops the finished ones
func (w *World) updateAttacks(dt float64) {
	w.attacks = retain(w.attacks, func(a *entity.Attack) bool {
		a.UpdateAttack(dt)
		return a.IsAnimating()
	})
}

func (w *World) updateDoors(ev *FrameEvents) {
	for _, id := range slices.Sorted(maps.Keys(w.opening)) {
		if w.opening[id].OpenDoor() {
			continue
		}
		delete(w.opening, id)
		ev.DoorsOpened = append(ev.DoorsOpened, id)
		if w.OnDoorOpened != nil {
			w.OnDoorOpened(id)
		}
	}
}

func (w *World) collectSouls(player geom.Rect, ev *FrameEvents) {
	for _, p := range w.emitter.Particles() {
		soul, ok := p.(*particle.Soul)
		if !ok || soul.KillParticle() {
			continue
		}
		if soul.GetHitbox().Intersects(player) {
			soul.ActivateKill()
			ev.SoulsCollected++
			if w.OnSoulCollected != nil {
				w.OnSoulCollected()
			}
		}
	}
}

// TilesUnder returns the tiles overlapping box, in layout order. The
// movement system reads friction and speed multipliers from these.
func (w *World) TilesUnder(box geom.Rect) []tile.Tile {
	var out []tile.Tile
	for _, t := range w.room.Tiles {
		if t.GetHitbox().Intersects(box) {
			out = append(out, t)
		}
	}
	return out
}

// Projectiles returns the live projectiles
func (w *World) Projectiles() []*entity.Projectile { return w.projectiles }

// Emitter returns the particle emitter
func (w *World) Emitter() *particle.Emitter { return w.emitter }

// Draw issues every tile, projectile, attack and particle
func (w *World) Draw(r render.Renderer, alpha float64) {
	for _, t := range w.room.Tiles {
		t.Draw(r, alpha)
	}
	for _, p := range w.projectiles {
		p.Draw(r)
	}
	for _, a := range w.attacks {
		a.Draw(r, alpha)
	}
	w.emitter.Draw(r, alpha)
}

// retain filters s in place, keeping the elements keep returns true for.
// The dropped tail is cleared so it can be collected.
func retain[T any](s []T, keep func(T) bool) []T {
	alive := s[:0]
	for _, v := range s {
		if keep(v) {
			alive = append(alive, v)
		}
	}
	clear(s[len(alive):])
	return alive
}
