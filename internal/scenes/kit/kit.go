// Package kit holds the props shared by the scripted scenes: numbered doors,
// titles and fraction labels.
package kit

import (
	"fmt"
	"image/color"
	"strconv"

	"montyhall/internal/anim"
	"montyhall/internal/core"
)

// Door is a door rectangle with its numbered badge.
type Door struct {
	Rect   anim.ID
	Badge  anim.ID
	Number anim.ID
}

// IDs returns every shape of the door, rectangle first.
func (d Door) IDs() []anim.ID { return []anim.ID{d.Rect, d.Badge, d.Number} }

// Label returns the badge shapes.
func (d Door) Label() []anim.ID { return []anim.ID{d.Badge, d.Number} }

// DoorStyle sizes a door and its badge.
type DoorStyle struct {
	Width, Height float64
	BadgeRadius   float64
	FontSize      float64
}

// Large is the three-door layout style.
var Large = DoorStyle{Width: 1.6, Height: 3.2, BadgeRadius: 0.3, FontSize: 32}

// Medium is used for the six-door generalized strip.
var Medium = DoorStyle{Width: 0.9, Height: 1.8, BadgeRadius: 0.3, FontSize: 26}

// Small is the grid style.
var Small = DoorStyle{Width: 0.6, Height: 1, BadgeRadius: 0.15, FontSize: 18}

// NewDoor defines a closed door labelled text at c.
func NewDoor(b *anim.Builder, c anim.Vec, label string, st DoorStyle) Door {
	rect := anim.Rect(st.Width, st.Height, anim.White, anim.BlueC, 1).At(c)
	badge := anim.Circle(st.BadgeRadius, anim.White, anim.White, 1).At(c)
	badge.Z = 1
	num := anim.Text(label, st.FontSize, anim.Black).At(c)
	num.Z = 2
	return Door{Rect: b.Define(rect), Badge: b.Define(badge), Number: b.Define(num)}
}

// Row defines doors numbered from 1 at the given x positions.
func Row(b *anim.Builder, xs []float64, st DoorStyle) []Door {
	doors := make([]Door, len(xs))
	for i, x := range xs {
		doors[i] = NewDoor(b, anim.V(x, 0), strconv.Itoa(i+1), st)
	}
	return doors
}

// Grid defines n doors in rows of at most ten, numbered from 1.
func Grid(b *anim.Builder, n int, st DoorStyle, dx, dy float64) ([]Door, core.GridLayout) {
	layout := core.NewGridLayout(n, 10, dx, dy)
	doors := make([]Door, n)
	for i := 0; i < n; i++ {
		x, y := layout.Offset(i)
		doors[i] = NewDoor(b, anim.V(x, y), strconv.Itoa(i+1), st)
	}
	return doors, layout
}

// Rects returns the rectangle ids of doors.
func Rects(doors []Door) []anim.ID {
	out := make([]anim.ID, len(doors))
	for i, d := range doors {
		out[i] = d.Rect
	}
	return out
}

// Labels returns every badge id of doors.
func Labels(doors []Door) []anim.ID {
	var out []anim.ID
	for _, d := range doors {
		out = append(out, d.Label()...)
	}
	return out
}

// All returns every shape id of doors.
func All(doors []Door) []anim.ID {
	var out []anim.ID
	for _, d := range doors {
		out = append(out, d.IDs()...)
	}
	return out
}

// FadeEach returns one FadeIn per door for use with LaggedStart.
func FadeEach(doors []Door) []anim.Animation {
	out := make([]anim.Animation, len(doors))
	for i, d := range doors {
		out[i] = anim.FadeIn(d.IDs()...)
	}
	return out
}

// Title writes a heading at the centre, pauses, and lifts it to the top edge.
func Title(b *anim.Builder, text string) anim.ID {
	t := anim.Text(text, 58, anim.White)
	id := b.Define(t)
	b.Play(1.5, anim.Write(id))
	b.Wait(2)
	cur := b.Current(id)
	b.Play(1, anim.MoveTo(id, anim.ToEdge(cur.Center, cur.Width, cur.Height, anim.Up, anim.LargeBuff)))
	b.Wait(0.5)
	return id
}

// Label defines text placed beside the anchor box.
func Label(b *anim.Builder, text string, size float64, c color.NRGBA, anchor anim.Box, dir anim.Vec, buff float64) anim.ID {
	t := anim.Text(text, size, c)
	return b.Define(t.At(anim.NextTo(anchor, t.Width, t.Height, dir, buff)))
}

// Fraction formats n/d.
func Fraction(n, d int) string { return fmt.Sprintf("%d/%d", n, d) }

// Percent formats p as a rounded percentage, e.g. "67%".
func Percent(p float64) string { return fmt.Sprintf("%.0f%%", p*100) }
