package render

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"montyhall/internal/anim"
)

// Canvas rasterizes frames at a fixed pixel size. A Canvas reuses its
// buffers and is not safe for concurrent use.
type Canvas struct {
	w, h  int
	scale float64
	img   *image.RGBA
	z     *vector.Rasterizer
}

// NewCanvas allocates a canvas of w*h pixels. The scene frame is fitted to
// the canvas height.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{
		w:     w,
		h:     h,
		scale: float64(h) / anim.FrameHeight,
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Image returns the buffer the last frame was drawn into.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pixel maps a scene point to canvas pixel coordinates.
func (c *Canvas) Pixel(v anim.Vec) (float64, float64) {
	return float64(c.w)/2 + v.X*c.scale, float64(c.h)/2 - v.Y*c.scale
}

// Draw clears the canvas to the frame background and paints every visible
// shape in order. The returned image is owned by the canvas.
func (c *Canvas) Draw(f *anim.Frame) *image.RGBA {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(f.Background), image.Point{}, draw.Src)
	for _, s := range f.Shapes() {
		c.drawShape(s)
	}
	return c.img
}

func (c *Canvas) drawShape(s anim.Shape) {
	if s.Opacity <= 0 {
		return
	}
	switch s.Kind {
	case anim.KindRect:
		c.drawRect(s)
	case anim.KindCircle, anim.KindDot:
		c.drawCircle(s)
	case anim.KindText:
		c.drawText(s)
	case anim.KindArrow:
		c.drawArrow(s)
	case anim.KindPolyline:
		c.strokePath(scaled(s, s.Points), s.StrokeWidth, s.Progress, paint(s.Stroke, s.Opacity))
	case anim.KindImage:
		c.drawImage(s)
	}
}

func paint(col color.NRGBA, opacity float64) image.Image {
	return image.NewUniform(anim.WithOpacity(col, opacity))
}

// scaled applies the shape's Scale around its centre.
func scaled(s anim.Shape, pts []anim.Vec) []anim.Vec {
	if s.Scale == 1 {
		return pts
	}
	out := make([]anim.Vec, len(pts))
	for i, p := range pts {
		out[i] = s.Center.Add(p.Sub(s.Center).Scale(s.Scale))
	}
	return out
}

func (c *Canvas) fillPolygon(pts []anim.Vec, src image.Image) {
	if len(pts) < 3 {
		return
	}
	c.z.Reset(c.w, c.h)
	x, y := c.Pixel(pts[0])
	c.z.MoveTo(float32(x), float32(y))
	for _, p := range pts[1:] {
		x, y = c.Pixel(p)
		c.z.LineTo(float32(x), float32(y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// strokePath draws the first progress share of the path's length, one quad
// per segment.
func (c *Canvas) strokePath(pts []anim.Vec, width, progress float64, src image.Image) {
	pts = partial(pts, progress)
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Len()
		if l == 0 {
			continue
		}
		n := anim.V(-d.Y/l*half, d.X/l*half)
		c.fillPolygon([]anim.Vec{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, src)
	}
}

// partial truncates pts to the given fraction of its arc length.
func partial(pts []anim.Vec, progress float64) []anim.Vec {
	if progress >= 1 || len(pts) < 2 {
		return pts
	}
	if progress <= 0 {
		return nil
	}
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Len()
	}
	want := total * progress
	out := []anim.Vec{pts[0]}
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Sub(pts[i-1]).Len()
		if seg >= want {
			if seg > 0 {
				out = append(out, pts[i-1].Lerp(pts[i], want/seg))
			}
			return out
		}
		want -= seg
		out = append(out, pts[i])
	}
	return out
}

func (c *Canvas) drawRect(s anim.Shape) {
	w, h := s.Width*s.Scale/2, s.Height*s.Scale/2
	cx, cy := s.Center.X, s.Center.Y
	corners := []anim.Vec{{X: cx - w, Y: cy + h}, {X: cx + w, Y: cy + h}, {X: cx + w, Y: cy - h}, {X: cx - w, Y: cy - h}}
	if a := s.FillOpacity * s.Progress; a > 0 {
		c.fillPolygon(corners, paint(s.Fill, s.Opacity*a))
	}
	c.strokePath(append(corners, corners[0]), s.StrokeWidth, s.Progress, paint(s.Stroke, s.Opacity))
}

const circleSegments = 48

func (c *Canvas) drawCircle(s anim.Shape) {
	r := s.Radius * s.Scale
	ring := make([]anim.Vec, circleSegments+1)
	for i := range ring {
		// Start at the top and run clockwise so Create sweeps like a clock hand.
		a := math.Pi/2 - 2*math.Pi*float64(i)/circleSegments
		ring[i] = s.Center.Add(anim.V(math.Cos(a)*r, math.Sin(a)*r))
	}
	if a := s.FillOpacity * s.Progress; a > 0 {
		c.fillPolygon(ring[:circleSegments], paint(s.Fill, s.Opacity*a))
	}
	if s.Kind == anim.KindCircle && s.StrokeWidth > 0 {
		c.strokePath(ring, s.StrokeWidth, s.Progress, paint(s.Stroke, s.Opacity))
	}
}

func (c *Canvas) drawArrow(s anim.Shape) {
	if len(s.Points) != 2 {
		return
	}
	pts := scaled(s, s.Points)
	tail, tip := pts[0], pts[1]
	d := tip.Sub(tail)
	l := d.Len()
	if l == 0 || s.Progress <= 0 {
		return
	}
	col := paint(s.Stroke, s.Opacity)
	head := math.Min(0.25, l*0.4)
	u := d.Scale(1 / l)
	tip = tail.Add(u.Scale(l * math.Min(s.Progress, 1)))
	base := tip.Sub(u.Scale(head))
	c.strokePath([]anim.Vec{tail, base}, s.StrokeWidth, 1, col)
	n := anim.V(-u.Y, u.X).Scale(head * 0.6)
	c.fillPolygon([]anim.Vec{tip, base.Add(n), base.Sub(n)}, col)
}

// Glyph metrics of the bitmap face.
const (
	glyphW      = 7
	glyphH      = 13
	glyphAscent = 11
)

// drawText renders the label with the 7x13 bitmap face and scales it to the
// shape's box. Progress reveals runes left to right.
func (c *Canvas) drawText(s anim.Shape) {
	runes := utf8.RuneCountInString(s.Text)
	shown := int(math.Ceil(float64(runes) * math.Min(s.Progress, 1)))
	if shown <= 0 {
		return
	}
	text := string([]rune(s.Text)[:shown])

	mask := image.NewRGBA(image.Rect(0, 0, shown*glyphW, glyphH))
	d := font.Drawer{
		Dst:  mask,
		Src:  paint(s.Fill, s.Opacity*s.FillOpacity),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, glyphAscent),
	}
	d.DrawString(text)

	hpx := s.Height * s.Scale * c.scale
	wpx := hpx * float64(glyphW*runes) / glyphH
	x0, y0 := c.Pixel(s.Center)
	x0 -= wpx / 2
	y0 -= hpx / 2
	shownW := wpx * float64(shown) / float64(runes)
	dst := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x0+shownW)), int(math.Round(y0+hpx)))
	if dst.Empty() {
		return
	}
	draw.BiLinear.Scale(c.img, dst, mask, mask.Bounds(), draw.Over, nil)
}

func (c *Canvas) drawImage(s anim.Shape) {
	if s.Image == nil {
		return
	}
	w, h := s.Width*s.Scale*c.scale, s.Height*s.Scale*c.scale
	x, y := c.Pixel(s.Center)
	dst := image.Rect(int(math.Round(x-w/2)), int(math.Round(y-h/2)), int(math.Round(x+w/2)), int(math.Round(y+h/2)))
	if dst.Empty() {
		return
	}
	var opts *draw.Options
	if a := s.Opacity * s.FillOpacity; a < 1 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(a * 255))})}
	}
	draw.BiLinear.Scale(c.img, dst, s.Image, s.Image.Bounds(), draw.Over, opts)
}
