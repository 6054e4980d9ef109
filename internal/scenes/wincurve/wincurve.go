// Package wincurve scripts the line chart of the switch win probability
// (N-1)/N against the number of doors, with the 1/N stay curve beneath it.
package wincurve

import (
	"fmt"
	"strconv"

	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/monty"
	"montyhall/internal/scenes/kit"
)

// Name is the registry key of the scene.
const Name = "win-curve"

// Config holds parameters for the chart.
type Config struct {
	From, To int
	Stay     bool
}

// DefaultConfig plots N = 3..100 with the stay curve.
func DefaultConfig() Config {
	return Config{From: 3, To: 100, Stay: true}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["from"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= monty.MinDoors {
			c.From = parsed
		}
	}
	if v, ok := cfg["to"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > c.From {
			c.To = parsed
		}
	}
	if c.To <= c.From {
		c.To = c.From + 1
	}
	if v, ok := cfg["stay"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Stay = parsed
		}
	}
	return c
}

// Scene is the probability chart.
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
		Name: "Sweep",
		Params: []core.Parameter{
			core.IntParam("from", "From N", s.cfg.From),
			core.IntParam("to", "To N", s.cfg.To),
			core.StringParam("stay", "Stay curve", strconv.FormatBool(s.cfg.Stay)).Describe("also draw the 1/N stay curve"),
		},
	}}}
}

// Chart area in scene units.
var (
	plotMin = anim.V(-5.5, -2.8)
	plotMax = anim.V(5.5, 2.4)
)

// Plot maps (n, p) to scene coordinates.
func (s *Scene) Plot(n int, p float64) anim.Vec {
	span := float64(s.cfg.To - s.cfg.From)
	x := plotMin.X + (plotMax.X-plotMin.X)*float64(n-s.cfg.From)/span
	y := plotMin.Y + (plotMax.Y-plotMin.Y)*p
	return anim.V(x, y)
}

func (s *Scene) ticks() []int {
	ticks := []int{s.cfg.From}
	step := (s.cfg.To - s.cfg.From) / 4
	if step < 1 {
		step = 1
	}
	for n := s.cfg.From + step; n < s.cfg.To-step/2; n += step {
		ticks = append(ticks, n)
	}
	return append(ticks, s.cfg.To)
}

// Build scripts the scene.
func (s *Scene) Build(int64) (*anim.Timeline, error) {
	b := anim.NewBuilder(Name).Background(anim.Charcoal)
	title := anim.Text("Switching wins with probability (N-1)/N", 40, anim.White)
	titleID := b.Define(title.At(anim.ToEdge(anim.Origin, title.Width, title.Height, anim.Up, anim.LargeBuff)))
	b.Play(1.5, anim.Write(titleID))

	origin := s.Plot(s.cfg.From, 0)
	xAxis := b.Define(anim.Polyline([]anim.Vec{origin, anim.V(plotMax.X+0.2, origin.Y)}, anim.Grey, 0.03))
	yAxis := b.Define(anim.Polyline([]anim.Vec{origin, anim.V(origin.X, plotMax.Y+0.2)}, anim.Grey, 0.03))
	axes := []anim.ID{xAxis, yAxis}
	for _, n := range s.ticks() {
		at := s.Plot(n, 0)
		axes = append(axes, kit.Label(b, strconv.Itoa(n), 20, anim.Grey, anim.BoxAt(at, 0, 0), anim.Down, 0.15))
	}
	for _, p := range []float64{0, 0.5, 1} {
		at := s.Plot(s.cfg.From, p)
		axes = append(axes, kit.Label(b, strconv.FormatFloat(p, 'f', 1, 64), 20, anim.Grey, anim.BoxAt(at, 0, 0), anim.Left, 0.15))
	}
	axes = append(axes,
		kit.Label(b, "doors N", 24, anim.White, anim.BoxAt(s.Plot(s.cfg.To, 0), 0, 0), anim.Down, 0.5),
		kit.Label(b, "P(win)", 24, anim.White, anim.BoxAt(s.Plot(s.cfg.From, 1), 0, 0), anim.Up, 0.3),
	)
	b.Play(1, anim.Create(axes[:2]...), anim.FadeIn(axes[2:]...))
	b.Wait(0.5)

	points := monty.SwitchCurve(s.cfg.From, s.cfg.To)
	path := make([]anim.Vec, len(points))
	dots := make([]anim.Animation, len(points))
	for i, pt := range points {
		path[i] = s.Plot(pt.N, pt.P)
		dots[i] = anim.FadeIn(b.Define(anim.Dot(anim.Yellow).At(path[i])))
	}
	curve := b.Define(anim.Polyline(path, anim.Yellow, 0.05))
	b.Play(4, anim.Create(curve), anim.LaggedStart(0.05, dots...))
	b.Wait(0.5)

	first, last := points[0], points[len(points)-1]
	startLabel := kit.Label(b, fmt.Sprintf("N=%d: %.3f", first.N, first.P), 24, anim.Yellow, anim.BoxAt(path[0], 0, 0), anim.Up, 0.3)
	endLabel := kit.Label(b, fmt.Sprintf("N=%d: %.2f", last.N, last.P), 24, anim.Yellow, anim.BoxAt(path[len(path)-1], 0, 0), anim.Down, 0.3)
	b.Play(1, anim.FadeIn(startLabel, endLabel))
	b.Wait(1)

	if s.cfg.Stay {
		stay := monty.Curve(s.cfg.From, s.cfg.To, monty.Stay, monty.RevealAll)
		stayPath := make([]anim.Vec, len(stay))
		for i, pt := range stay {
			stayPath[i] = s.Plot(pt.N, pt.P)
		}
		stayCurve := b.Define(anim.Polyline(stayPath, anim.Green, 0.04))
		stayLabel := kit.Label(b, "stay: 1/N", 24, anim.Green, anim.BoxAt(stayPath[len(stayPath)-1], 0, 0), anim.Up, 0.2)
		b.Play(2, anim.Create(stayCurve))
		b.Play(1, anim.FadeIn(stayLabel))
	}
	b.Wait(2)
	return b.Timeline(), nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
