// Package generalizedn scripts the symbolic N-door argument: doors 1, 2, 3
// and N-2, N-1, N with the 1/N versus 1-1/N split.
package generalizedn

import (
	"strconv"

	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/monty"
	"montyhall/internal/scenes/kit"
)

// Name is the registry key of the scene.
const Name = "generalized-n"

// Config holds parameters for the symbolic scene.
type Config struct {
	// Doors replaces the symbol N with a concrete count when at least 6.
	Doors int
}

// DefaultConfig returns the symbolic configuration.
func DefaultConfig() Config { return Config{} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if v, ok := cfg["doors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 6 {
			c.Doors = parsed
		}
	}
	return c
}

// Scene is the generalized strip of doors.
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
		Name:    "Doors",
		Params:  []core.Parameter{core.IntParam("doors", "Doors (0 = symbolic)", s.cfg.Doors).Describe("values below 6 keep the labels symbolic")},
		Summary: "labels use N unless a count is set",
	}}}
}

func (s *Scene) labels() (last []string, pick, rest string) {
	n := s.cfg.Doors
	if n == 0 {
		return []string{"N-2", "N-1", "N"}, "1/N", "1 - 1/N"
	}
	p := monty.WinProbability(n, monty.Switch, monty.RevealAll)
	return []string{strconv.Itoa(n - 2), strconv.Itoa(n - 1), strconv.Itoa(n)},
		kit.Fraction(1, n),
		kit.Fraction(n-1, n) + " = " + kit.Percent(p)
}

// Build scripts the scene.
func (s *Scene) Build(int64) (*anim.Timeline, error) {
	lastLabels, pickLabel, restLabel := s.labels()

	b := anim.NewBuilder(Name).Background(anim.Charcoal)
	kit.Title(b, "Generalized Version")

	first := kit.Row(b, []float64{-4, -2.5, -1}, kit.Medium)
	b.Play(1.5, anim.LaggedStart(0.3, kit.FadeEach(first)...))
	b.Wait(0.5)

	probFirst := kit.Label(b, pickLabel, 36, anim.White, b.Box(first[0].Rect), anim.Up, 0.4)

	dots := b.Define(anim.Text("...", 80, anim.White).At(anim.V(0.5, 0)))
	b.Play(1, anim.FadeIn(dots))
	b.Wait(0.5)

	last := make([]kit.Door, 3)
	for i, x := range []float64{2, 3.5, 5} {
		last[i] = kit.NewDoor(b, anim.V(x, 0), lastLabels[i], kit.Medium)
	}
	b.Play(1.5, anim.LaggedStart(0.3, kit.FadeEach(last)...))
	b.Wait(0.5)

	rest := append([]kit.Door{first[1], first[2]}, last...)
	surround := anim.Surround(anim.Yellow, 0.4, b.Boxes(kit.Rects(rest)...))
	box := b.Define(surround)
	probRest := kit.Label(b, restLabel, 36, anim.Yellow, surround.Bounds(), anim.Up, 0.3)

	b.Play(1, anim.FadeIn(probFirst))
	b.Wait(2)
	b.Play(1, anim.Create(box), anim.FadeIn(probRest))
	b.Wait(2)

	opened := append([]kit.Door{first[2]}, last...)
	b.Play(1, anim.SetFill(0.2, kit.All(opened)...))
	b.Wait(1)

	kept := first[1].Rect
	final := anim.Surround(anim.Yellow, 0.4, b.Box(kept))
	label := b.Current(probRest)
	b.Play(1,
		anim.Transform(box, final),
		anim.MoveTo(probRest, anim.NextTo(final.Bounds(), label.Width, label.Height, anim.Up, 0.3)),
	)
	b.Wait(1)

	b.Play(1, anim.Indicate(anim.Yellow, 1.2, kept))
	b.Wait(2)
	return b.Timeline(), nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
