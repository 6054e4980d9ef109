package anim

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette used by the scenes.
var (
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.NRGBA{A: 255}
	BlueC       = MustHex("#58C4DD")
	Yellow      = MustHex("#FFFF00")
	Green       = MustHex("#83C167")
	Red         = MustHex("#FC6255")
	Grey        = MustHex("#888888")
	Charcoal    = MustHex("#1E1E1E")
	Transparent = color.NRGBA{}
)

// Hex parses "#rrggbb" into an opaque colour.
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is Hex for package-level constants; it panics on malformed input.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend mixes a towards b in RGB space. t is clamped to [0, 1].
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// WithOpacity scales the alpha channel of c by k.
func WithOpacity(c color.NRGBA, k float64) color.NRGBA {
	c.A = uint8(float64(c.A)*clamp01(k) + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
