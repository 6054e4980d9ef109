// Package anim models scripted scenes as timelines of shape animations and
// evaluates them into frames at arbitrary instants.
package anim

import (
	"fmt"
	"image/color"
	"slices"
	"sort"
)

// Step runs its animations in parallel for RunTime seconds.
type Step struct {
	Start   float64
	RunTime float64
	Anims   []Animation
}

// End returns the time the step finishes.
func (s Step) End() float64 { return s.Start + s.RunTime }

// Lead returns the name of the first animation, or "wait".
func (s Step) Lead() string {
	if len(s.Anims) == 0 {
		return "wait"
	}
	return s.Anims[0].Name()
}

func (s Step) apply(f *Frame, alpha float64) {
	for _, a := range s.Anims {
		if _, ok := a.(linear); ok {
			a.Apply(f, alpha)
			continue
		}
		a.Apply(f, Smooth(alpha))
	}
}

// Timeline is a finished scene script.
type Timeline struct {
	Name       string
	Background color.NRGBA

	defs  []Shape
	steps []Step
}

// Steps returns the scripted steps in order.
func (t *Timeline) Steps() []Step { return t.steps }

// Duration returns the total running time in seconds.
func (t *Timeline) Duration() float64 {
	if len(t.steps) == 0 {
		return 0
	}
	return t.steps[len(t.steps)-1].End()
}

// Shape returns the definition of id as first declared.
func (t *Timeline) Shape(id ID) (Shape, bool) {
	if id < 0 || int(id) >= len(t.defs) {
		return Shape{}, false
	}
	return t.defs[id], true
}

// Frame evaluates the scene at the given time. Times past the end yield the
// final frame.
func (t *Timeline) Frame(at float64) *Frame {
	f := newFrame(t, at)
	for i, st := range t.steps {
		f.Step = i
		if at >= st.End() {
			st.apply(f, 1)
			continue
		}
		if at >= st.Start && st.RunTime > 0 {
			st.apply(f, (at-st.Start)/st.RunTime)
		}
		break
	}
	return f
}

// Frame is the evaluated state of a timeline at one instant.
type Frame struct {
	Time       float64
	Step       int
	Background color.NRGBA

	defs   []Shape
	shapes map[ID]*Shape
	order  []ID
}

func newFrame(t *Timeline, at float64) *Frame {
	return &Frame{Time: at, Background: t.Background, defs: t.defs, shapes: map[ID]*Shape{}}
}

func (f *Frame) ensure(id ID) *Shape {
	if s, ok := f.shapes[id]; ok {
		return s
	}
	if id < 0 || int(id) >= len(f.defs) {
		panic(fmt.Sprintf("anim: unknown shape id %d", id))
	}
	s := f.defs[id]
	s.Points = slices.Clone(s.Points)
	f.shapes[id] = &s
	f.order = append(f.order, id)
	return &s
}

func (f *Frame) remove(id ID) {
	delete(f.shapes, id)
	f.order = slices.DeleteFunc(f.order, func(x ID) bool { return x == id })
}

// Get returns the current state of a visible shape.
func (f *Frame) Get(id ID) (Shape, bool) {
	s, ok := f.shapes[id]
	if !ok {
		return Shape{}, false
	}
	return *s, true
}

// Len returns the number of visible shapes.
func (f *Frame) Len() int { return len(f.order) }

// Shapes returns visible shapes in draw order: by Z, then by appearance.
func (f *Frame) Shapes() []Shape {
	out := make([]Shape, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.shapes[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}
