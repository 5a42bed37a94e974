// Package game adapts a Scene stack to ebiten's fixed-step loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sidecore/internal/application/scene"
)

// DefaultDT is the step length in milliseconds at 60 TPS
const DefaultDT = 1000.0 / 60.0

// Finisher is implemented by scenes that can end the run
type Finisher interface {
	Finished() bool
}

// Game implements ebiten.Game. Each ebiten tick is one fixed simulation
// step of dt milliseconds handed to the current scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	ticks   int
	elapsed float64
}

// New creates a Game on initialScene and calls its OnEnter
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      DefaultDT,
	}
	g.current.OnEnter()
	return g
}

// Update steps the current scene and swaps in the scene it returns.
// Once a Finisher scene reports done, Update returns ebiten.Termination.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.ticks++
	g.elapsed += g.dt

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	if f, ok := g.current.(Finisher); ok && f.Finished() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game with a fixed logical size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the step length in milliseconds. Match it to ebiten's TPS.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Ticks returns the number of completed steps
func (g *Game) Ticks() int { return g.ticks }

// Elapsed returns the simulated time in milliseconds
func (g *Game) Elapsed() float64 { return g.elapsed }
