package anim

import "math"

// The visible frame in scene units, centred on the origin with +Y up.
const (
	FrameHeight = 8.0
	FrameWidth  = FrameHeight * 16 / 9
)

// Standard spacing used by the layout helpers.
const (
	SmallBuff  = 0.1
	MedBuff    = 0.25
	LargeBuff  = 0.5
	DefaultRun = 1.0
)

// Vec is a point or direction in scene units.
type Vec struct {
	X, Y float64
}

// Unit directions.
var (
	Origin = Vec{}
	Up     = Vec{0, 1}
	Down   = Vec{0, -1}
	Left   = Vec{-1, 0}
	Right  = Vec{1, 0}
)

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Lerp(o Vec, t float64) Vec { return v.Add(o.Sub(v).Scale(t)) }

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec
}

// BoxAt returns a box of size w×h centred on c.
func BoxAt(c Vec, w, h float64) Box {
	return Box{Min: Vec{c.X - w/2, c.Y - h/2}, Max: Vec{c.X + w/2, c.Y + h/2}}
}

func (b Box) Center() Vec { return b.Min.Lerp(b.Max, 0.5) }
func (b Box) Width() float64 { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Top returns the midpoint of the upper edge.
func (b Box) Top() Vec { return Vec{b.Center().X, b.Max.Y} }

// Bottom returns the midpoint of the lower edge.
func (b Box) Bottom() Vec { return Vec{b.Center().X, b.Min.Y} }

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Vec{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Vec{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Pad grows the box by buff on every side.
func (b Box) Pad(buff float64) Box {
	return Box{Min: b.Min.Sub(Vec{buff, buff}), Max: b.Max.Add(Vec{buff, buff})}
}

// Bounds returns the union of boxes. It returns the zero box for no input.
func Bounds(boxes ...Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	out := boxes[0]
	for _, b := range boxes[1:] {
		out = out.Union(b)
	}
	return out
}

// NextTo returns the centre for an item of size w×h placed beside anchor in
// direction dir, separated by buff. The cross axis stays aligned with the
// anchor's centre.
func NextTo(anchor Box, w, h float64, dir Vec, buff float64) Vec {
	c := anchor.Center()
	switch {
	case dir.Y > 0:
		return Vec{c.X, anchor.Max.Y + buff + h/2}
	case dir.Y < 0:
		return Vec{c.X, anchor.Min.Y - buff - h/2}
	case dir.X > 0:
		return Vec{anchor.Max.X + buff + w/2, c.Y}
	case dir.X < 0:
		return Vec{anchor.Min.X - buff - w/2, c.Y}
	}
	return c
}

// ToEdge returns the centre that pushes an item of size w×h against the
// frame edge in direction dir, keeping the other coordinate of at.
func ToEdge(at Vec, w, h float64, dir Vec, buff float64) Vec {
	switch {
	case dir.Y > 0:
		at.Y = FrameHeight/2 - buff - h/2
	case dir.Y < 0:
		at.Y = -FrameHeight/2 + buff + h/2
	case dir.X > 0:
		at.X = FrameWidth/2 - buff - w/2
	case dir.X < 0:
		at.X = -FrameWidth/2 + buff + w/2
	}
	return at
}
