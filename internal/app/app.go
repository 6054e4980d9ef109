//go:build ebiten

package app

import (
	"fmt"
	"math"
	"time"

	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/render"
	"montyhall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const seekStep = 2.0

// Game adapts a scene timeline to the ebiten.Game interface.
type Game struct {
	scene   core.Scene
	tl      *anim.Timeline
	painter *render.FramePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep

	w, h   int
	at     float64
	paused bool
	seed   int64
}

// New builds the scene and prepares a player of w*h pixels plus the panel.
func New(sc core.Scene, cfg *Config) (*Game, error) {
	painter := render.NewFramePainter(cfg.Width, cfg.Height)
	g := &Game{
		scene:   sc,
		painter: painter,
		overlay: ui.NewOverlay(painter),
		hud:     ui.NewHUD(sc, cfg.Panel),
		clock:   core.NewFixedStep(cfg.TPS),
		w:       cfg.Width,
		h:       cfg.Height,
	}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds the timeline with seed and rewinds playback.
func (g *Game) Reset(seed int64) error {
	tl, err := g.scene.Build(seed)
	if err != nil {
		return fmt.Errorf("build scene %s: %w", g.scene.Name(), err)
	}
	g.tl = tl
	g.seed = seed
	g.at = 0
	g.paused = false
	return nil
}

func (g *Game) seek(at float64) {
	g.at = math.Max(0, math.Min(at, g.tl.Duration()))
}

// nextStep jumps to the start of the step after the current one.
func (g *Game) nextStep() {
	for _, st := range g.tl.Steps() {
		if st.Start > g.at+1e-9 {
			g.seek(st.Start)
			return
		}
	}
	g.seek(g.tl.Duration())
}

// Update handles input and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.at >= g.tl.Duration() {
			g.at = 0
		}
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.seek(g.at - seekStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.seek(g.at + seekStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.nextStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.at = 0
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.overlay.Update()
	if g.hud.Update(g.status()) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}

	if g.paused {
		g.clock.Resync()
	} else if dt := g.clock.Due(); dt > 0 {
		g.seek(g.at + dt)
		if g.at >= g.tl.Duration() {
			g.paused = true
		}
	}
	return nil
}

func (g *Game) status() ui.Status {
	f := g.tl.Frame(g.at)
	return ui.Status{
		Scene:    g.scene.Name(),
		Time:     g.at,
		Duration: g.tl.Duration(),
		Step:     f.Step,
		Steps:    len(g.tl.Steps()),
		Paused:   g.paused,
		Seed:     g.seed,
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.tl.Frame(g.at)
	g.painter.Blit(screen, f)
	g.overlay.Draw(screen, g.tl, f)
	g.hud.Draw(screen, g.w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w + g.hud.Width(), g.h
}
