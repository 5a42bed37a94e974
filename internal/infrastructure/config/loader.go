package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Core      *CoreConfig
	Particles *ParticlesConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadCore loads core.json
func (l *Loader) LoadCore() (*CoreConfig, error) {
	data, err := fs.ReadFile(l.fsys, "core.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read core.json: %w", err)
	}

	var cfg CoreConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse core.json: %w", err)
	}

	return &cfg, nil
}

// LoadParticlePresets loads particles.yaml
func (l *Loader) LoadParticlePresets() (*ParticlesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "particles.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read particles.yaml: %w", err)
	}

	var cfg ParticlesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse particles.yaml: %w", err)
	}

	for name, p := range cfg.Presets {
		if _, err := ParseColor(p.Color); err != nil {
			return nil, fmt.Errorf("failed to parse particles.yaml: preset %s: %w", name, err)
		}
	}

	return &cfg, nil
}

// LoadRoom loads a room JSON file
func (l *Loader) LoadRoom(name string) (*RoomConfig, error) {
	path := "rooms/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room %s: %w", name, err)
	}

	var cfg RoomConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse room %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (core, particles)
func (l *Loader) LoadAll() (*GameConfig, error) {
	core, err := l.LoadCore()
	if err != nil {
		return nil, err
	}

	particles, err := l.LoadParticlePresets()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Core:      core,
		Particles: particles,
	}, nil
}
