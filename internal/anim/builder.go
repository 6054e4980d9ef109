package anim

import (
	"image/color"
	"slices"
)

// Builder assembles a Timeline. It tracks the state every shape reaches at
// the end of the steps played so far, so layout can follow earlier moves.
type Builder struct {
	t   *Timeline
	now float64
	cur *Frame
}

// NewBuilder starts an empty timeline on a black background.
func NewBuilder(name string) *Builder {
	t := &Timeline{Name: name, Background: Black}
	return &Builder{t: t, cur: newFrame(t, 0)}
}

// Background sets the clear colour.
func (b *Builder) Background(c color.NRGBA) *Builder {
	b.t.Background = c
	b.cur.Background = c
	return b
}

// Define registers a shape without showing it and returns its id.
func (b *Builder) Define(s Shape) ID {
	id := ID(len(b.t.defs))
	s.ID = id
	s.Points = slices.Clone(s.Points)
	b.t.defs = append(b.t.defs, s)
	b.cur.defs = b.t.defs
	return id
}

// Copy defines a new shape equal to the current state of id.
func (b *Builder) Copy(id ID) ID {
	return b.Define(b.Current(id))
}

// Current returns the latest state of id: as played if visible, otherwise
// as defined.
func (b *Builder) Current(id ID) Shape {
	if s, ok := b.cur.Get(id); ok {
		return s
	}
	s, _ := b.t.Shape(id)
	return s
}

// Box returns the current bounding box of id.
func (b *Builder) Box(id ID) Box { return b.Current(id).Bounds() }

// Boxes returns the union of the current boxes of ids.
func (b *Builder) Boxes(ids ...ID) Box {
	boxes := make([]Box, len(ids))
	for i, id := range ids {
		boxes[i] = b.Box(id)
	}
	return Bounds(boxes...)
}

// Play appends a step running anims for runTime seconds.
func (b *Builder) Play(runTime float64, anims ...Animation) *Builder {
	st := Step{Start: b.now, RunTime: runTime, Anims: anims}
	b.t.steps = append(b.t.steps, st)
	st.apply(b.cur, 1)
	b.now = st.End()
	return b
}

// Wait appends an idle step.
func (b *Builder) Wait(seconds float64) *Builder {
	return b.Play(seconds)
}

// Now returns the current end time of the script.
func (b *Builder) Now() float64 { return b.now }

// Timeline returns the finished script.
func (b *Builder) Timeline() *Timeline { return b.t }
