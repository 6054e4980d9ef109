// Package montyhall scripts the opening scene: three doors, a random car and
// goats behind them, the host's reveal and the stay/switch odds.
package montyhall

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"

	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/monty"
	"montyhall/internal/scenes/kit"
	pcore "montyhall/pkg/core"
)

// Name is the registry key of the scene.
const Name = "monty-hall"

// Config holds parameters for the opening scene.
type Config struct {
	// Pick is the player's first door, 0-based.
	Pick int
	// Image is an optional picture shown on the car door at the reveal.
	Image string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Pick: 0}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["pick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 3 {
			c.Pick = parsed - 1
		}
	}
	if v, ok := cfg["image"]; ok {
		c.Image = v
	}
	return c
}

// Scene is the three-door walkthrough.
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
		Name: "Player",
		Params: []core.Parameter{
			core.IntParam("pick", "First pick", s.cfg.Pick+1).Describe("door 1-3 the player picks first"),
			core.StringParam("image", "Car image", s.cfg.Image).Describe("PNG or JPEG shown on the car door at the reveal"),
		},
	}}}
}

// Contents returns the car/goat assignment the scene uses for seed.
func Contents(seed int64) monty.Doors {
	return monty.Classic(pcore.NewRNG(seed).Source())
}

// Build scripts the scene. The door contents and the host's choice derive
// from seed.
func (s *Scene) Build(seed int64) (*anim.Timeline, error) {
	var picture image.Image
	if s.cfg.Image != "" {
		img, err := loadImage(s.cfg.Image)
		if err != nil {
			return nil, err
		}
		picture = img
	}

	rng := pcore.NewRNG(seed).Source()
	contents := monty.Classic(rng)
	pick := s.cfg.Pick

	b := anim.NewBuilder(Name)
	kit.Title(b, "The Monty Hall Problem")

	doors := kit.Row(b, []float64{-4, 0, 4}, kit.Large)
	b.Play(1, anim.Create(kit.Rects(doors)...), anim.FadeIn(kit.Labels(doors)...))
	b.Wait(3)

	b.Play(1, anim.Indicate(anim.BlueC, 1.1, doors[pick].Rect), anim.Indicate(anim.BlueC, 1.1, doors[pick].Label()...))
	b.Wait(1.5)

	goats := contents.Goats(pick)
	opened := pcore.Pick(rng, goats)
	other := 3 - pick - opened

	b.Play(1, anim.SetFill(0.2, doors[opened].Rect))
	b.Wait(1.5)

	stay := kit.Label(b, "Stay", 36, anim.Green, b.Box(doors[pick].Rect), anim.Down, anim.LargeBuff)
	sw := kit.Label(b, "Switch", 36, anim.Yellow, b.Box(doors[other].Rect), anim.Down, anim.LargeBuff)
	b.Play(1, anim.FadeIn(stay, sw))
	b.Wait(2)

	arrows := make([]anim.ID, len(doors))
	for i, d := range doors {
		top := b.Box(d.Rect).Top()
		arrows[i] = b.Define(anim.Arrow(top.Add(anim.Up.Scale(0.6)), top.Add(anim.Up.Scale(0.1)), anim.White))
	}

	stayP := monty.WinProbability(3, monty.Stay, monty.RevealAll)
	switchP := monty.WinProbability(3, monty.Switch, monty.RevealAll)
	stayProb := kit.Label(b, fmt.Sprintf("P(stay) = %s ~ %s", kit.Fraction(1, 3), kit.Percent(stayP)), 28, anim.White, b.Box(stay), anim.Down, 0.3)
	switchProb := kit.Label(b, fmt.Sprintf("P(switch) = %s ~ %s", kit.Fraction(2, 3), kit.Percent(switchP)), 28, anim.White, b.Box(sw), anim.Down, 0.3)

	b.Play(1, anim.FadeIn(stayProb))
	b.Play(1, anim.FadeIn(arrows[pick]))
	b.Wait(0.5)
	moving := b.Copy(arrows[pick])
	b.Play(1, anim.FadeIn(switchProb), anim.Transform(moving, b.Current(arrows[other])))
	b.Wait(2)

	var reveal []anim.ID
	for i, d := range doors {
		box := b.Box(d.Rect)
		label := anim.Text(contents[i].String(), 30, anim.White)
		label.Z = 3
		reveal = append(reveal, b.Define(label.At(box.Center().Add(anim.Down.Scale(0.9)))))
		if picture != nil && contents[i] == monty.Car {
			p := anim.Picture(picture, box.Height()*0.4)
			p.Z = 3
			reveal = append(reveal, b.Define(p.At(box.Center().Add(anim.Up.Scale(0.8)))))
		}
	}
	b.Play(1, anim.FadeIn(reveal...))
	tint := anim.Red
	if contents[other] == monty.Car {
		tint = anim.Green
	}
	b.Play(1, anim.Indicate(tint, 1.1, doors[other].Rect))
	b.Wait(2)

	return b.Timeline(), nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image asset %q: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image asset %q: %w", path, err)
	}
	return img, nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
