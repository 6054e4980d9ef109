package anim

import (
	"image/color"
	"math"
)

// Animation mutates a frame towards its end state. Apply receives the frame
// as it stood when the owning step began and a progress value in [0, 1].
type Animation interface {
	Name() string
	Apply(f *Frame, alpha float64)
}

// linear marks animations that shape their own progress curve.
type linear interface {
	linearRate()
}

// Smooth is the default rate function, an ease-in-out cubic.
func Smooth(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

type add struct{ ids []ID }

// Add shows shapes immediately.
func Add(ids ...ID) Animation { return add{ids} }

func (a add) Name() string { return "add" }
func (a add) Apply(f *Frame, alpha float64) {
	for _, id := range a.ids {
		f.ensure(id)
	}
}

type fadeIn struct{ ids []ID }

// FadeIn raises opacity from zero.
func FadeIn(ids ...ID) Animation { return fadeIn{ids} }

func (a fadeIn) Name() string { return "fade-in" }
func (a fadeIn) Apply(f *Frame, alpha float64) {
	for _, id := range a.ids {
		_, existed := f.shapes[id]
		s := f.ensure(id)
		if !existed {
			s.Opacity = 0
		}
		s.Opacity += (1 - s.Opacity) * alpha
	}
}

type fadeOut struct{ ids []ID }

// FadeOut lowers opacity to zero and removes the shapes.
func FadeOut(ids ...ID) Animation { return fadeOut{ids} }

func (a fadeOut) Name() string { return "fade-out" }
func (a fadeOut) Apply(f *Frame, alpha float64) {
	for _, id := range a.ids {
		s, ok := f.shapes[id]
		if !ok {
			continue
		}
		if alpha >= 1 {
			f.remove(id)
			continue
		}
		s.Opacity *= 1 - alpha
	}
}

type create struct {
	name string
	ids  []ID
}

// Create draws outlines progressively.
func Create(ids ...ID) Animation { return create{"create", ids} }

// Write reveals text left to right.
func Write(ids ...ID) Animation { return create{"write", ids} }

func (a create) Name() string { return a.name }
func (a create) Apply(f *Frame, alpha float64) {
	for _, id := range a.ids {
		s := f.ensure(id)
		s.Progress = alpha
	}
}

type indicate struct {
	ids   []ID
	color color.NRGBA
	scale float64
}

// Indicate briefly scales shapes and tints them, then restores them.
func Indicate(c color.NRGBA, scale float64, ids ...ID) Animation {
	return indicate{ids: ids, color: c, scale: scale}
}

func (a indicate) Name() string { return "indicate" }
func (a indicate) Apply(f *Frame, alpha float64) {
	k := math.Sin(math.Pi * alpha)
	if alpha <= 0 || alpha >= 1 {
		k = 0
	}
	for _, id := range a.ids {
		s, ok := f.shapes[id]
		if !ok {
			continue
		}
		s.Scale *= 1 + (a.scale-1)*k
		s.Stroke = Blend(s.Stroke, a.color, k)
		s.Fill = Blend(s.Fill, a.color, k)
	}
}

type setFill struct {
	ids     []ID
	opacity float64
}

// SetFill animates the fill opacity; opening a door dims it this way.
func SetFill(opacity float64, ids ...ID) Animation { return setFill{ids: ids, opacity: opacity} }

func (a setFill) Name() string { return "set-fill" }
func (a setFill) Apply(f *Frame, alpha float64) {
	for _, id := range a.ids {
		if s, ok := f.shapes[id]; ok {
			s.FillOpacity += (a.opacity - s.FillOpacity) * alpha
		}
	}
}

type setColor struct {
	ids   []ID
	color color.NRGBA
}

// SetColor blends stroke and fill towards c.
func SetColor(c color.NRGBA, ids ...ID) Animation { return setColor{ids: ids, color: c} }

func (a setColor) Name() string { return "set-color" }
func (a setColor) Apply(f *Frame, alpha float64) {
	for _, id := range a.ids {
		if s, ok := f.shapes[id]; ok {
			s.Stroke = Blend(s.Stroke, a.color, alpha)
			s.Fill = Blend(s.Fill, a.color, alpha)
		}
	}
}

type moveTo struct {
	id     ID
	target Vec
}

// MoveTo slides a shape so its centre ends at target.
func MoveTo(id ID, target Vec) Animation { return moveTo{id: id, target: target} }

func (a moveTo) Name() string { return "move" }
func (a moveTo) Apply(f *Frame, alpha float64) {
	if s, ok := f.shapes[a.id]; ok {
		s.MoveTo(s.Center.Lerp(a.target, alpha))
	}
}

type transform struct {
	id     ID
	target Shape
}

// Transform morphs a shape's geometry and colours into target.
func Transform(id ID, target Shape) Animation { return transform{id: id, target: target} }

func (a transform) Name() string { return "transform" }
func (a transform) Apply(f *Frame, alpha float64) {
	s := f.ensure(a.id)
	t := a.target
	s.Width += (t.Width - s.Width) * alpha
	s.Height += (t.Height - s.Height) * alpha
	s.Radius += (t.Radius - s.Radius) * alpha
	s.Stroke = Blend(s.Stroke, t.Stroke, alpha)
	s.Fill = Blend(s.Fill, t.Fill, alpha)
	s.FillOpacity += (t.FillOpacity - s.FillOpacity) * alpha
	if len(s.Points) == len(t.Points) {
		for i := range s.Points {
			s.Points[i] = s.Points[i].Lerp(t.Points[i], alpha)
		}
	}
	s.Center = s.Center.Lerp(t.Center, alpha)
}

type lagged struct {
	anims []Animation
	lag   float64
}

// LaggedStart staggers anims so each begins lag of a sub-duration after the
// previous one.
func LaggedStart(lag float64, anims ...Animation) Animation {
	return lagged{anims: anims, lag: lag}
}

func (a lagged) linearRate() {}

func (a lagged) Name() string {
	if len(a.anims) == 0 {
		return "lagged"
	}
	return a.anims[0].Name()
}

func (a lagged) Apply(f *Frame, alpha float64) {
	n := len(a.anims)
	if n == 0 {
		return
	}
	span := 1 + float64(n-1)*a.lag
	for i, sub := range a.anims {
		start := float64(i) * a.lag / span
		end := (float64(i)*a.lag + 1) / span
		local := (alpha - start) / (end - start)
		if alpha >= 1 {
			local = 1
		}
		sub.Apply(f, Smooth(local))
	}
}
