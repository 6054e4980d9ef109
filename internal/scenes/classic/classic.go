// Package classic scripts the three-door version with probability boxes:
// each door starts at 1/3 and the 2/3 of the unpicked pair collapses onto
// the door the host leaves closed.
package classic

import (
	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/scenes/kit"
)

// Name is the registry key of the scene.
const Name = "classic"

// Scene is the classic three-door explainer. It takes no parameters.
type Scene struct{}

// New returns the scene.
func New() *Scene { return &Scene{} }

// Name returns the scene identifier.
func (s *Scene) Name() string { return Name }

// Build scripts the scene. The player holds door 1 and the host opens door 3.
func (s *Scene) Build(int64) (*anim.Timeline, error) {
	b := anim.NewBuilder(Name).Background(anim.Charcoal)
	kit.Title(b, "Classic 3-Door Version")

	doors := kit.Row(b, []float64{-4, 0, 4}, kit.Large)
	b.Play(1, anim.Create(kit.Rects(doors)...), anim.FadeIn(kit.Labels(doors)...))
	b.Wait(1)

	third := kit.Fraction(1, 3)
	probs := make([]anim.ID, len(doors))
	for i, d := range doors {
		probs[i] = kit.Label(b, third, 36, anim.White, b.Box(d.Rect), anim.Up, 0.3)
	}
	b.Play(1, anim.FadeIn(probs...))
	b.Wait(1)

	pair := anim.Surround(anim.Yellow, 0.3, b.Box(doors[1].Rect), b.Box(doors[2].Rect))
	box := b.Define(pair)
	share := kit.Label(b, kit.Fraction(2, 3), 40, anim.Yellow, pair.Bounds(), anim.Up, 0.2)
	b.Play(1, anim.Create(box), anim.FadeIn(share))
	b.Wait(2)

	b.Play(1, anim.SetFill(0.2, doors[2].Rect))
	b.Wait(1)

	final := anim.Surround(anim.Yellow, 0.3, b.Box(doors[1].Rect))
	label := b.Current(share)
	b.Play(1,
		anim.Transform(box, final),
		anim.FadeOut(probs[1], probs[2]),
		anim.MoveTo(share, anim.NextTo(final.Bounds(), label.Width, label.Height, anim.Up, 0.2)),
	)
	b.Wait(2)

	b.Play(1, anim.Indicate(anim.Yellow, 1.2, doors[1].Rect))
	b.Wait(2)
	return b.Timeline(), nil
}

func init() {
	core.Register(Name, func(map[string]string) core.Scene { return New() })
}
