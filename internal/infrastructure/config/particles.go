package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParticlePresetConfig is one entry of particles.yaml
type ParticlePresetConfig struct {
	Kind          string  `yaml:"kind"` // ballistic, death, soul
	Sprite        string  `yaml:"sprite"`
	Count         int     `yaml:"count"`
	StartAngle    float64 `yaml:"start_angle"`
	Speed         float64 `yaml:"speed"`
	Gravity       float64 `yaml:"gravity"`
	Size          float64 `yaml:"size"`
	Color         string  `yaml:"color"`
	Duration      float64 `yaml:"duration"` // Milliseconds
	FramesOutward int     `yaml:"frames_outward"`
}

// ParticlesConfig is the root of particles.yaml
type ParticlesConfig struct {
	Presets map[string]ParticlePresetConfig `yaml:"presets"`
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". An empty string is opaque white.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{255, 255, 255, 255}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
