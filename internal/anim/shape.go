package anim

import (
	"image"
	"image/color"
	"slices"
	"unicode/utf8"
)

// Kind identifies the geometry of a shape.
type Kind uint8

const (
	KindRect Kind = iota
	KindCircle
	KindText
	KindArrow
	KindPolyline
	KindDot
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	case KindArrow:
		return "arrow"
	case KindPolyline:
		return "polyline"
	case KindDot:
		return "dot"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// ID names a shape within one timeline.
type ID int

// Approximate glyph metrics for a 48pt line of text, in scene units.
const (
	textHeightPer48 = 0.5
	glyphAspect     = 0.55
)

// Shape is a drawable primitive and its animatable state.
type Shape struct {
	ID   ID
	Kind Kind

	Center Vec
	// Width and Height apply to rects, images and text boxes.
	Width, Height float64
	// Radius applies to circles and dots.
	Radius float64
	// Points holds absolute vertices for polylines and arrows (tail, tip).
	Points []Vec

	Text     string
	FontSize float64

	Stroke      color.NRGBA
	StrokeWidth float64
	Fill        color.NRGBA
	FillOpacity float64

	// Opacity multiplies every channel; fades drive it.
	Opacity float64
	// Scale is applied around Center when drawing.
	Scale float64
	// Progress is the drawn fraction for Create and Write.
	Progress float64

	Image image.Image
	Z     int
}

// Rect returns a stroked and filled rectangle.
func Rect(w, h float64, stroke, fill color.NRGBA, fillOpacity float64) Shape {
	return Shape{Kind: KindRect, Width: w, Height: h, Stroke: stroke, StrokeWidth: 0.04, Fill: fill, FillOpacity: fillOpacity}.defaults()
}

// Circle returns a stroked and filled circle.
func Circle(r float64, stroke, fill color.NRGBA, fillOpacity float64) Shape {
	return Shape{Kind: KindCircle, Radius: r, Stroke: stroke, StrokeWidth: 0.03, Fill: fill, FillOpacity: fillOpacity}.defaults()
}

// Dot returns a small solid circle.
func Dot(c color.NRGBA) Shape {
	return Shape{Kind: KindDot, Radius: 0.08, Stroke: c, Fill: c, FillOpacity: 1}.defaults()
}

// Text returns a single line label. Its box is estimated from the font size.
func Text(s string, fontSize float64, c color.NRGBA) Shape {
	h := fontSize / 48 * textHeightPer48
	w := float64(utf8.RuneCountInString(s)) * h * glyphAspect
	return Shape{Kind: KindText, Text: s, FontSize: fontSize, Width: w, Height: h, Stroke: c, Fill: c, FillOpacity: 1}.defaults()
}

// Arrow returns an arrow from tail to tip.
func Arrow(tail, tip Vec, c color.NRGBA) Shape {
	s := Shape{Kind: KindArrow, Points: []Vec{tail, tip}, Stroke: c, StrokeWidth: 0.06, Fill: c, FillOpacity: 1}
	s.Center = tail.Lerp(tip, 0.5)
	return s.defaults()
}

// Polyline returns an open path through points.
func Polyline(points []Vec, c color.NRGBA, width float64) Shape {
	s := Shape{Kind: KindPolyline, Points: slices.Clone(points), Stroke: c, StrokeWidth: width}
	s.Center = s.pointsBox().Center()
	return s.defaults()
}

// Picture wraps a decoded image scaled to the given height in scene units.
func Picture(img image.Image, height float64) Shape {
	b := img.Bounds()
	w := height
	if b.Dy() > 0 {
		w = height * float64(b.Dx()) / float64(b.Dy())
	}
	return Shape{Kind: KindImage, Image: img, Width: w, Height: height, FillOpacity: 1}.defaults()
}

func (s Shape) defaults() Shape {
	s.Opacity = 1
	s.Scale = 1
	s.Progress = 1
	return s
}

// At returns a copy moved to c.
func (s Shape) At(c Vec) Shape {
	s.Points = slices.Clone(s.Points)
	s.MoveTo(c)
	return s
}

// MoveTo translates the shape so its centre is c.
func (s *Shape) MoveTo(c Vec) {
	d := c.Sub(s.Center)
	for i := range s.Points {
		s.Points[i] = s.Points[i].Add(d)
	}
	s.Center = c
}

// Size returns the unscaled extent of the shape.
func (s Shape) Size() (w, h float64) {
	switch s.Kind {
	case KindCircle, KindDot:
		return 2 * s.Radius, 2 * s.Radius
	case KindArrow, KindPolyline:
		b := s.pointsBox()
		return b.Width(), b.Height()
	}
	return s.Width, s.Height
}

// Bounds returns the scaled bounding box.
func (s Shape) Bounds() Box {
	w, h := s.Size()
	k := s.Scale
	if k == 0 {
		k = 1
	}
	return BoxAt(s.Center, w*k, h*k)
}

func (s Shape) pointsBox() Box {
	if len(s.Points) == 0 {
		return BoxAt(s.Center, 0, 0)
	}
	b := Box{Min: s.Points[0], Max: s.Points[0]}
	for _, p := range s.Points[1:] {
		b = b.Union(Box{Min: p, Max: p})
	}
	return b
}

// Surround returns an unfilled rectangle enclosing boxes with buff padding.
func Surround(c color.NRGBA, buff float64, boxes ...Box) Shape {
	b := Bounds(boxes...).Pad(buff)
	r := Rect(b.Width(), b.Height(), c, Transparent, 0)
	r.Center = b.Center()
	r.StrokeWidth = 0.05
	return r
}
