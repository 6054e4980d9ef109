package render

import (
	"image"
	"image/color"

	"montyhall/internal/anim"
)

// blendLevels is how many opacity steps each scene colour gets in a GIF
// palette.
const blendLevels = 8

// Palette builds a GIF palette for a timeline: the background, then every
// stroke and fill colour at blendLevels opacities over the background.
// Colours beyond 256 entries are dropped.
func Palette(t *anim.Timeline) color.Palette {
	bg := t.Background
	seen := map[color.RGBA]bool{}
	var pal color.Palette
	add := func(c color.Color) {
		r, g, b, a := c.RGBA()
		key := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		if seen[key] || len(pal) >= 256 {
			return
		}
		seen[key] = true
		pal = append(pal, key)
	}
	add(opaque(bg))
	add(color.White)
	add(color.Black)
	for _, c := range sceneColors(t) {
		for i := blendLevels; i >= 1; i-- {
			add(opaque(anim.Blend(bg, c, float64(i)/blendLevels)))
		}
	}
	return pal
}

func opaque(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func sceneColors(t *anim.Timeline) []color.NRGBA {
	var out []color.NRGBA
	seen := map[color.NRGBA]bool{}
	for id := anim.ID(0); ; id++ {
		s, ok := t.Shape(id)
		if !ok {
			break
		}
		for _, c := range []color.NRGBA{s.Stroke, s.Fill} {
			c.A = 255
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	for _, c := range []color.NRGBA{anim.Yellow, anim.Green, anim.Red} {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// quantizer maps RGBA pixels onto a palette, caching lookups since a scene
// uses few distinct colours.
type quantizer struct {
	pal   color.Palette
	cache map[color.RGBA]uint8
}

func newQuantizer(pal color.Palette) *quantizer {
	return &quantizer{pal: pal, cache: map[color.RGBA]uint8{}}
}

// fillPaletted converts src into dst, which must share its bounds.
func (q *quantizer) fillPaletted(dst *image.Paletted, src *image.RGBA) {
	if len(q.pal) == 0 {
		clear(dst.Pix)
		return
	}
	for i := 0; i+3 < len(src.Pix); i += 4 {
		c := color.RGBA{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: src.Pix[i+3]}
		idx, ok := q.cache[c]
		if !ok {
			idx = uint8(q.pal.Index(c))
			q.cache[c] = idx
		}
		dst.Pix[i/4] = idx
	}
}
