// Package generalized scripts the N-door game on a grid: the pick holds 1/N,
// the rest share (N-1)/N, and that share collapses onto the one door the
// host leaves closed.
package generalized

import (
	"strconv"

	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/scenes/kit"
	pcore "montyhall/pkg/core"
)

// Name is the registry key of the scene.
const Name = "generalized"

// MaxDoors bounds the grid so it stays inside the frame.
const MaxDoors = 40

// Config holds parameters for the generalized scene.
type Config struct {
	Doors int
	// Pick is the player's door, 0-based.
	Pick int
	// Keep is the door the host leaves closed, 0-based; -1 draws it from
	// the seed.
	Keep int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Doors: 10, Pick: 0, Keep: 1}
}

// FromMap populates a Config from a string map. Door numbers are 1-based.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["doors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 && parsed <= MaxDoors {
			c.Doors = parsed
		}
	}
	if v, ok := cfg["pick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Pick = parsed - 1
		}
	}
	if v, ok := cfg["keep"]; ok {
		if v == "random" {
			c.Keep = -1
		} else if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Keep = parsed - 1
		}
	}
	return c
}

// Scene is the grid walkthrough.
type Scene struct {
	cfg Config
}

// New returns the scene for cfg.
func New(cfg Config) *Scene { return &Scene{cfg: cfg} }

// Name returns the scene identifier.
func (s *Scene) Name() string { return Name }

// Parameters reports the scene configuration.
func (s *Scene) Parameters() core.ParameterSnapshot {
	keep := "random"
	if s.cfg.Keep >= 0 {
		keep = strconv.Itoa(s.cfg.Keep + 1)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Game",
		Params: []core.Parameter{
			core.IntParam("doors", "Doors", s.cfg.Doors),
			core.IntParam("pick", "Pick", s.cfg.Pick+1),
			core.StringParam("keep", "Left closed", keep).Describe("door the host leaves closed, or random"),
		},
	}}}
}

// ParameterControls exposes the door count on the HUD.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "doors", Label: "Doors", Step: 1, Min: 3, Max: MaxDoors}}
}

// SetIntParameter updates the door count.
func (s *Scene) SetIntParameter(key string, value int) bool {
	if key != "doors" || value < 3 || value > MaxDoors {
		return false
	}
	s.cfg.Doors = value
	return true
}

// resolve clamps the pick and chooses the door left closed.
func (s *Scene) resolve(seed int64) (pick, keep int) {
	n := s.cfg.Doors
	pick = s.cfg.Pick
	if pick < 0 || pick >= n {
		pick = 0
	}
	keep = s.cfg.Keep
	if keep >= 0 && keep < n && keep != pick {
		return pick, keep
	}
	var others []int
	for i := 0; i < n; i++ {
		if i != pick {
			others = append(others, i)
		}
	}
	return pick, pcore.Pick(pcore.NewRNG(seed).Source(), others)
}

// Build scripts the scene.
func (s *Scene) Build(seed int64) (*anim.Timeline, error) {
	n := s.cfg.Doors
	pick, keep := s.resolve(seed)

	b := anim.NewBuilder(Name).Background(anim.Charcoal)
	kit.Title(b, "Generalized Version")

	style := kit.Small
	style.Width *= 1.5
	style.Height *= 1.5
	doors, _ := kit.Grid(b, n, style, 1.2, 1.9)
	b.Play(2, anim.LaggedStart(0.03, kit.FadeEach(doors)...))
	b.Wait(1)

	rects := kit.Rects(doors)
	b.Play(1, anim.SetColor(anim.Yellow, rects[pick]))

	probPick := kit.Label(b, kit.Fraction(1, n), 32, anim.White, b.Box(rects[pick]), anim.Up, 0.2)
	b.Play(1, anim.FadeIn(probPick))

	var others []anim.ID
	for i, r := range rects {
		if i != pick {
			others = append(others, r)
		}
	}
	group := anim.Surround(anim.Yellow, 0.2, b.Boxes(others...))
	box := b.Define(group)
	probOther := kit.Label(b, kit.Fraction(n-1, n), 32, anim.Yellow, group.Bounds(), anim.Up, 0.2)
	b.Play(1, anim.Create(box), anim.FadeIn(probOther))
	b.Wait(1)

	for i, r := range rects {
		if i == pick || i == keep {
			continue
		}
		b.Play(0.3, anim.SetFill(0.2, r))
	}
	b.Wait(1)

	final := anim.Surround(anim.Yellow, 0.2, b.Box(rects[keep]))
	label := b.Current(probOther)
	b.Play(1,
		anim.Transform(box, final),
		anim.MoveTo(probOther, anim.NextTo(final.Bounds(), label.Width, label.Height, anim.Up, 0.2)),
	)
	b.Wait(1)

	b.Play(1, anim.Indicate(anim.Yellow, 1.2, rects[keep]))
	b.Wait(2)
	return b.Timeline(), nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
