// Package doorsgrid scripts a large field of doors fading in row by row.
package doorsgrid

import (
	"strconv"

	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/scenes/kit"
)

// Name is the registry key of the scene.
const Name = "doors-grid"

// MaxDoors bounds the grid so it stays inside the frame.
const MaxDoors = 50

// Config holds parameters for the grid scene.
type Config struct {
	Doors int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Doors: 40}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["doors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= MaxDoors {
			c.Doors = parsed
		}
	}
	return c
}

// Scene shows Doors doors.
type Scene struct {
	cfg Config
}

// New returns the scene for cfg.
func New(cfg Config) *Scene { return &Scene{cfg: cfg} }

// Name returns the scene identifier.
func (s *Scene) Name() string { return Name }

// Parameters reports the scene configuration.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Grid",
		Params: []core.Parameter{core.IntParam("doors", "Doors", s.cfg.Doors).Describe("laid out at most 10 per row")},
	}}}
}

// ParameterControls exposes the door count on the HUD.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "doors", Label: "Doors", Step: 1, Min: 1, Max: MaxDoors}}
}

// SetIntParameter updates the door count.
func (s *Scene) SetIntParameter(key string, value int) bool {
	if key != "doors" || value < 1 || value > MaxDoors {
		return false
	}
	s.cfg.Doors = value
	return true
}

// Build scripts the scene.
func (s *Scene) Build(int64) (*anim.Timeline, error) {
	b := anim.NewBuilder(Name).Background(anim.Charcoal)
	doors, _ := kit.Grid(b, s.cfg.Doors, kit.Small, 0.9, 1.4)
	b.Play(2, anim.LaggedStart(0.02, kit.FadeEach(doors)...))
	b.Wait(1)
	return b.Timeline(), nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
