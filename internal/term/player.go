// Package term plays scene timelines in a terminal. Each cell shows two
// vertically stacked pixels with the upper half block and truecolor.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"montyhall/internal/anim"
	"montyhall/internal/core"
	"montyhall/internal/render"
)

const (
	halfBlock = '▀'
	seekStep  = 2.0
)

// Player drives one timeline on a tcell screen.
type Player struct {
	screen tcell.Screen
	tl     *anim.Timeline
	clock  *core.FixedStep

	at     float64
	paused bool
	canvas *render.Canvas
}

// NewPlayer prepares playback of tl at fps ticks per second.
func NewPlayer(screen tcell.Screen, tl *anim.Timeline, fps int) *Player {
	return &Player{screen: screen, tl: tl, clock: core.NewFixedStep(fps)}
}

// Time returns the playback position in seconds.
func (p *Player) Time() float64 { return p.at }

// Paused reports whether playback is halted.
func (p *Player) Paused() bool { return p.paused }

// Seek moves the playhead, clamped to the timeline.
func (p *Player) Seek(at float64) {
	p.at = math.Max(0, math.Min(at, p.tl.Duration()))
}

// Advance moves the playhead by dt seconds unless paused. Reaching the end
// pauses playback.
func (p *Player) Advance(dt float64) {
	if p.paused {
		return
	}
	p.Seek(p.at + dt)
	if p.at >= p.tl.Duration() {
		p.paused = true
	}
}

// HandleEvent applies a key or resize event and reports whether playback
// should continue.
func (p *Player) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.Seek(p.at - seekStep)
		case tcell.KeyRight:
			p.Seek(p.at + seekStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				if p.at >= p.tl.Duration() {
					p.at = 0
				}
				p.paused = !p.paused
			case 'r':
				p.at = 0
				p.paused = false
			}
		}
	case *tcell.EventResize:
		p.canvas = nil
		p.screen.Sync()
	}
	return true
}

// Draw paints the current frame and the status line.
func (p *Player) Draw() {
	w, h := p.screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	rows := h - 1
	if p.canvas == nil {
		p.canvas = render.NewCanvas(w, rows*2)
	}
	img := p.canvas.Draw(p.tl.Frame(p.at))
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			top := img.RGBAAt(x, 2*y)
			bottom := img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	p.drawStatus(w, rows)
	p.screen.Show()
}

// Status returns the text of the bottom line.
func (p *Player) Status() string {
	state := "playing"
	if p.paused {
		state = "paused"
	}
	f := p.tl.Frame(p.at)
	return fmt.Sprintf(" %s  %5.1f/%.1fs  step %d/%d  %s  [space] pause [<-/->] seek [r] restart [q] quit",
		p.tl.Name, p.at, p.tl.Duration(), f.Step+1, len(p.tl.Steps()), state)
}

func (p *Player) drawStatus(w, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	status := []rune(p.Status())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		p.screen.SetContent(x, y, r, nil, style)
	}
}

// Run plays until the user quits or ctx is cancelled. The screen must be
// initialised; Run does not finalise it.
func (p *Player) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(p.clock.Step() / 2)
	defer ticker.Stop()

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if !p.HandleEvent(ev) {
				return nil
			}
			p.Draw()
		case <-ticker.C:
			if p.paused {
				p.clock.Resync()
				continue
			}
			if dt := p.clock.Due(); dt > 0 {
				p.Advance(dt)
				p.Draw()
			}
		}
	}
}
