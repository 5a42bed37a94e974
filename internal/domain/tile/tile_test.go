package tile

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidecore/internal/domain/geom"
	"github.com/younwookim/sidecore/internal/domain/render"
)

// rowLayout creates n anchors laid out horizontally, each w x h
func rowLayout(n int, w, h float64) Layout {
	l := Layout{Image: image.NewRGBA(image.Rect(0, 0, int(w), int(h)))}
	for i := 0; i < n; i++ {
		l.Anchors = append(l.Anchors, geom.Vec2{X: float64(i) * w, Y: 0})
		l.Extents = append(l.Extents, geom.Size{W: w, H: h})
	}
	return l
}

func TestDefaultHitbox(t *testing.T) {
	tests := []struct {
		name    string
		anchors []geom.Vec2
		extents []geom.Size
		want    geom.Rect
	}{
		{
			name:    "single anchor",
			anchors: []geom.Vec2{{X: 10, Y: 20}},
			extents: []geom.Size{{W: 16, H: 16}},
			want:    geom.Rect{X: 10, Y: 20, W: 16, H: 16},
		},
		{
			name:    "horizontal row",
			anchors: []geom.Vec2{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 120, Y: 0}},
			extents: []geom.Size{{W: 60, H: 60}, {W: 60, H: 60}, {W: 60, H: 60}},
			want:    geom.Rect{X: 0, Y: 0, W: 180, H: 60},
		},
		{
			name:    "vertical column",
			anchors: []geom.Vec2{{X: 32, Y: 0}, {X: 32, Y: 16}, {X: 32, Y: 32}},
			extents: []geom.Size{{W: 16, H: 16}, {W: 16, H: 16}, {W: 16, H: 16}},
			want:    geom.Rect{X: 32, Y: 0, W: 16, H: 48},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultHitbox(tt.anchors, tt.extents))
		})
	}
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr error
	}{
		{"valid", rowLayout(2, 16, 16), nil},
		{"empty", Layout{}, ErrEmptyLayout},
		{
			"mismatch",
			Layout{Anchors: []geom.Vec2{{}, {X: 16}}, Extents: []geom.Size{{W: 16, H: 16}}},
			ErrExtentMismatch,
		},
		{
			"negative extent",
			Layout{Anchors: []geom.Vec2{{}}, Extents: []geom.Size{{W: -1, H: 16}}},
			ErrNegativeExtent,
		},
		{
			"row runs backwards",
			Layout{
				Anchors: []geom.Vec2{{X: 120}, {X: 60}, {X: 0}},
				Extents: []geom.Size{{W: 60, H: 60}, {W: 60, H: 60}, {W: 60, H: 60}},
			},
			ErrUnorderedLayout,
		},
		{
			"column runs backwards",
			Layout{
				Anchors: []geom.Vec2{{Y: 64}, {Y: 32}, {Y: 0}},
				Extents: []geom.Size{{W: 16, H: 16}, {W: 16, H: 16}, {W: 16, H: 16}},
			},
			ErrUnorderedLayout,
		},
		{
			"overlapping anchors",
			Layout{
				Anchors: []geom.Vec2{{X: 16}, {X: 8}},
				Extents: []geom.Size{{W: 16, H: 16}, {W: 16, H: 16}},
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructors_RejectBadLayout(t *testing.T) {
	_, err := NewPlatform(Layout{})
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewIcePlatform(Layout{})
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewMudPlatform(Layout{})
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewOneWayPlatform(Layout{})
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewSpike(Layout{})
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewDoor(Layout{}, Vertical, 2)
	assert.ErrorIs(t, err, ErrEmptyLayout)

	backwards := Layout{
		Anchors: []geom.Vec2{{X: 120}, {X: 60}, {X: 0}},
		Extents: []geom.Size{{W: 60, H: 60}, {W: 60, H: 60}, {W: 60, H: 60}},
	}
	constructors := map[string]func(Layout) (Tile, error){
		"platform": func(l Layout) (Tile, error) { return NewPlatform(l) },
		"ice":      func(l Layout) (Tile, error) { return NewIcePlatform(l) },
		"mud":      func(l Layout) (Tile, error) { return NewMudPlatform(l) },
		"oneway":   func(l Layout) (Tile, error) { return NewOneWayPlatform(l) },
		"spike":    func(l Layout) (Tile, error) { return NewSpike(l) },
	}
	for name, build := range constructors {
		t.Run(name+" backwards", func(t *testing.T) {
			_, err := build(backwards)
			assert.ErrorIs(t, err, ErrUnorderedLayout)
		})
	}
}

func TestMultipliers(t *testing.T) {
	l := rowLayout(3, 16, 16)

	platform, err := NewPlatform(l)
	require.NoError(t, err)
	ice, err := NewIcePlatform(l)
	require.NoError(t, err)
	mud, err := NewMudPlatform(l)
	require.NoError(t, err)
	oneWay, err := NewOneWayPlatform(l)
	require.NoError(t, err)
	spike, err := NewSpike(l)
	require.NoError(t, err)
	door, err := NewDoor(l, Vertical, 2)
	require.NoError(t, err)

	tests := []struct {
		name         string
		tile         Tile
		wantKind     Kind
		wantFriction float64
		wantSpeed    float64
	}{
		{"platform", platform, KindPlatform, 1.0, 1.0},
		{"ice", ice, KindIcePlatform, 0.1, 1.6},
		{"mud", mud, KindMudPlatform, 2.0, 0.6},
		{"oneway", oneWay, KindOneWayPlatform, 1.0, 1.0},
		{"spike", spike, KindSpike, 1.0, 1.0},
		{"door", door, KindDoor, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.tile.Kind())
			assert.Equal(t, tt.wantFriction, tt.tile.GetFrictionMultiplier())
			assert.Equal(t, tt.wantSpeed, tt.tile.GetSpeedMultiplier())
			assert.Equal(t, tt.name, tt.tile.Kind().String())
		})
	}
}

func TestPlatformVariants_UseDefaultHitbox(t *testing.T) {
	l := rowLayout(4, 32, 16)
	want := geom.Rect{X: 0, Y: 0, W: 128, H: 16}

	platform, err := NewPlatform(l)
	require.NoError(t, err)
	ice, err := NewIcePlatform(l)
	require.NoError(t, err)
	mud, err := NewMudPlatform(l)
	require.NoError(t, err)

	assert.Equal(t, want, platform.GetHitbox())
	assert.Equal(t, want, ice.GetHitbox())
	assert.Equal(t, want, mud.GetHitbox())
}

func TestSpike_Hitbox(t *testing.T) {
	spike, err := NewSpike(rowLayout(3, 60, 60))
	require.NoError(t, err)

	assert.Equal(t, geom.Rect{X: 15, Y: 30, W: 135, H: 30}, spike.GetHitbox())
}

func TestOneWayPlatform_Hitbox(t *testing.T) {
	tests := []struct {
		name  string
		w, h  float64
		wantH float64
	}{
		{"divisible", 16, 36, 6},
		{"integer division truncates", 16, 16, 2},
		{"smaller than six", 16, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOneWayPlatform(rowLayout(2, tt.w, tt.h))
			require.NoError(t, err)

			hb := p.GetHitbox()
			assert.Equal(t, 0.0, hb.X)
			assert.Equal(t, 0.0, hb.Y)
			assert.Equal(t, tt.w*2, hb.W)
			assert.Equal(t, tt.wantH, hb.H)
			assert.True(t, p.PassableFromBelow())
		})
	}
}

func TestHitboxes_NonNegative(t *testing.T) {
	sizes := []geom.Size{{W: 1, H: 1}, {W: 3, H: 7}, {W: 16, H: 16}, {W: 60, H: 60}, {W: 0, H: 0}}

	for _, s := range sizes {
		for n := 1; n <= 4; n++ {
			l := rowLayout(n, s.W, s.H)

			platform, err := NewPlatform(l)
			require.NoError(t, err)
			oneWay, err := NewOneWayPlatform(l)
			require.NoError(t, err)
			spike, err := NewSpike(l)
			require.NoError(t, err)
			door, err := NewDoor(l, Horizontal, 1)
			require.NoError(t, err)

			for _, tl := range []Tile{platform, oneWay, spike, door} {
				hb := tl.GetHitbox()
				assert.GreaterOrEqual(t, hb.W, 0.0, "%s width for %d anchors of %v", tl.Kind(), n, s)
				assert.GreaterOrEqual(t, hb.H, 0.0, "%s height for %d anchors of %v", tl.Kind(), n, s)
			}
		}
	}
}

func TestTile_Draw(t *testing.T) {
	l := rowLayout(3, 16, 16)
	p, err := NewPlatform(l)
	require.NoError(t, err)

	rec := &render.Recorder{}
	p.Draw(rec, 0.5)

	require.Len(t, rec.Calls, 3)
	for i, call := range rec.Calls {
		assert.Equal(t, geom.NewRect(l.Anchors[i], l.Extents[i]), call.Dst)
		assert.Equal(t, render.Fade(render.White, 0.5), call.Tint)
	}
}
