//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"montyhall/internal/anim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Projector maps scene coordinates to screen pixels.
type Projector interface {
	Pixel(v anim.Vec) (float64, float64)
}

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	proj       Projector
	showBounds bool
	showGrid   bool
	showSteps  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(proj Projector) *Overlay {
	o := &Overlay{proj: proj}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 shape bounds, 2 unit grid, 3 step bar.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBounds = !o.showBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSteps = !o.showSteps
	}
}

// Draw renders the enabled layers for frame f of tl.
func (o *Overlay) Draw(screen *ebiten.Image, tl *anim.Timeline, f *anim.Frame) {
	if o.proj == nil || f == nil {
		return
	}
	if o.showGrid {
		o.drawGrid(screen)
	}
	if o.showBounds {
		for _, s := range f.Shapes() {
			o.drawBox(screen, s.Bounds(), color.RGBA{R: 255, G: 0, B: 255, A: 160})
		}
	}
	if o.showSteps && tl != nil {
		o.drawSteps(screen, tl, f.Time)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	col := color.RGBA{R: 90, G: 130, B: 170, A: 90}
	hw, hh := math.Ceil(anim.FrameWidth/2), anim.FrameHeight/2
	for x := -hw; x <= hw; x++ {
		x1, y1 := o.proj.Pixel(anim.V(x, -hh))
		x2, y2 := o.proj.Pixel(anim.V(x, hh))
		o.drawLine(screen, x1, y1, x2, y2, 1, col)
	}
	for y := -hh; y <= hh; y++ {
		x1, y1 := o.proj.Pixel(anim.V(-hw, y))
		x2, y2 := o.proj.Pixel(anim.V(hw, y))
		o.drawLine(screen, x1, y1, x2, y2, 1, col)
	}
	cx, cy := o.proj.Pixel(anim.Origin)
	o.drawPoint(screen, cx, cy, 5, color.RGBA{R: 255, G: 255, B: 255, A: 200})
}

func (o *Overlay) drawBox(screen *ebiten.Image, b anim.Box, col color.RGBA) {
	x0, y0 := o.proj.Pixel(b.Min)
	x1, y1 := o.proj.Pixel(b.Max)
	o.drawLine(screen, x0, y0, x1, y0, 1, col)
	o.drawLine(screen, x1, y0, x1, y1, 1, col)
	o.drawLine(screen, x1, y1, x0, y1, 1, col)
	o.drawLine(screen, x0, y1, x0, y0, 1, col)
}

// drawSteps paints a bar along the bottom edge with one tick per step.
func (o *Overlay) drawSteps(screen *ebiten.Image, tl *anim.Timeline, at float64) {
	d := tl.Duration()
	if d <= 0 {
		return
	}
	left, bottom := o.proj.Pixel(anim.V(-anim.FrameWidth/2, -anim.FrameHeight/2))
	right, _ := o.proj.Pixel(anim.V(anim.FrameWidth/2, 0))
	y := bottom - 4
	span := right - left
	o.drawLine(screen, left, y, right, y, 3, color.RGBA{R: 60, G: 60, B: 70, A: 200})
	o.drawLine(screen, left, y, left+span*clamp01(at/d), y, 3, color.RGBA{R: 88, G: 196, B: 221, A: 230})
	for _, st := range tl.Steps() {
		x := left + span*st.Start/d
		o.drawLine(screen, x, y-4, x, y+4, 1, color.RGBA{R: 220, G: 220, B: 230, A: 200})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
