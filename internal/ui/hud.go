//go:build ebiten

package ui

import (
	"image/color"

	"montyhall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the side panel to the right of the scene view.
type HUD struct {
	scene    core.Scene
	width    int
	panel    *ebiten.Image
	controls *Controls
	title    string
	status   Status
}

// NewHUD constructs a HUD for the scene and panel width.
func NewHUD(sc core.Scene, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{scene: sc, width: width, controls: NewControls(sc), title: Title(sc.Name())}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records playback status and handles parameter keys. It reports
// whether a parameter changed, in which case the scene must be rebuilt.
func (h *HUD) Update(st Status) bool {
	if h == nil {
		return false
	}
	h.status = st
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.controls.Select(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		return h.controls.Adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		return h.controls.Adjust(1)
	}
	return false
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += sectionGap

	section := func(lines []string, clr color.Color) {
		for _, line := range lines {
			text.Draw(h.panel, line, face, panelPadding, y, clr)
			y += lineHeight
		}
		y += sectionGap - lineHeight
	}
	section(h.status.Lines()[1:], color.RGBA{R: 160, G: 160, B: 170, A: 255})
	if p, ok := h.scene.(core.ParameterProvider); ok {
		section(ParamLines(p.Parameters()), color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	section(h.controls.Lines(), color.RGBA{R: 88, G: 196, B: 221, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	sectionGap     = 28
)
