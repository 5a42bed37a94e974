package geom

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"negative side", Rect{X: -5, Y: -5, W: 6, H: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection should be symmetric")
		})
	}
}

func TestRect_CenterAndMoves(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.Equal(t, Vec2{X: 25, Y: 40}, r.Center())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())

	moved := r.Translate(Vec2{X: 5, Y: -5})
	assert.Equal(t, Rect{X: 15, Y: 15, W: 30, H: 40}, moved)

	placed := r.Moved(Vec2{X: 1, Y: 2})
	assert.Equal(t, Rect{X: 1, Y: 2, W: 30, H: 40}, placed)

	// Original untouched (value receiver)
	assert.Equal(t, 10.0, r.X)
}

func TestRect_Contains(t *testing.T) {
	room := Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.True(t, room.Contains(Rect{X: 10, Y: 10, W: 10, H: 10}))
	assert.True(t, room.Contains(room))
	assert.False(t, room.Contains(Rect{X: 95, Y: 10, W: 10, H: 10}))
}

func TestSizeOf(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	assert.Equal(t, Size{W: 16, H: 8}, SizeOf(img))
}

func TestSnapZero(t *testing.T) {
	assert.Equal(t, 0.0, SnapZero(1e-9))
	assert.Equal(t, 0.0, SnapZero(-1e-5))
	assert.Equal(t, 0.5, SnapZero(0.5))
	assert.Equal(t, -0.001, SnapZero(-0.001))
}

func TestDirectionFromAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vec2
	}{
		{"right", 0, Vec2{X: 1, Y: 0}},
		{"down", 90, Vec2{X: 0, Y: 1}},
		{"left", 180, Vec2{X: -1, Y: 0}},
		{"up", 270, Vec2{X: 0, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := DirectionFromAngle(tt.angle)
			// Snapped components must be exactly zero, not merely close
			assert.Equal(t, tt.want, dir)
		})
	}

	diag := DirectionFromAngle(45)
	assert.InDelta(t, math.Sqrt2/2, diag.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, diag.Y, 1e-12)
}

func TestNormalize_Zero(t *testing.T) {
	assert.Equal(t, Vec2{}, Normalize(Vec2{}))
	unit := Normalize(Vec2{X: 3, Y: 4})
	assert.InDelta(t, 0.6, unit.X, 1e-12)
	assert.InDelta(t, 0.8, unit.Y, 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 18.0, Clamp(40, -18, 18))
	assert.Equal(t, -18.0, Clamp(-40, -18, 18))
	assert.Equal(t, 3.0, Clamp(3, -18, 18))
}
