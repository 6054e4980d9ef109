//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"montyhall/internal/anim"
)

// FramePainter uploads rasterized frames into a single ebiten image.
type FramePainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewFramePainter allocates a painter for w*h pixel frames.
func NewFramePainter(w, h int) *FramePainter {
	c := NewCanvas(w, h)
	w, h = c.Size()
	return &FramePainter{canvas: c, img: ebiten.NewImage(w, h)}
}

// Blit rasterizes f, uploads it and draws it at the origin of dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, f *anim.Frame) {
	rgba := fp.canvas.Draw(f)
	fp.img.ReplacePixels(rgba.Pix)
	dst.DrawImage(fp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.canvas.Size() }

// Pixel maps a scene point to painter pixel coordinates.
func (fp *FramePainter) Pixel(v anim.Vec) (float64, float64) { return fp.canvas.Pixel(v) }
