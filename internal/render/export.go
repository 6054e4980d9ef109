// Package render rasterizes scene frames and exports them as animated GIFs
// and PNG stills.
package render

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"math"

	"montyhall/internal/anim"
)

// Options sizes and paces an export.
type Options struct {
	Width  int
	Height int
	FPS    int
}

// DefaultOptions renders 854x480 at 15 frames per second.
func DefaultOptions() Options {
	return Options{Width: 854, Height: 480, FPS: 15}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", o.Width, o.Height)
	}
	if o.FPS <= 0 || o.FPS > 100 {
		return fmt.Errorf("render: fps must be in 1..100, got %d", o.FPS)
	}
	return nil
}

// FrameTimes returns the sample instants for a timeline, ending exactly on
// its last frame.
func FrameTimes(t *anim.Timeline, fps int) []float64 {
	if fps <= 0 {
		return nil
	}
	d := t.Duration()
	n := int(math.Ceil(d*float64(fps))) + 1
	times := make([]float64, n)
	for i := range times {
		times[i] = math.Min(float64(i)/float64(fps), d)
	}
	return times
}

// Still rasterizes the frame at the given time.
func Still(t *anim.Timeline, at float64, opts Options) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return NewCanvas(opts.Width, opts.Height).Draw(t.Frame(at)), nil
}

// WritePNG encodes the frame at the given time as PNG.
func WritePNG(w io.Writer, t *anim.Timeline, at float64, opts Options) error {
	img, err := Still(t, at, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteGIF renders the whole timeline as a looping GIF. progress, when not
// nil, is called after each frame with the count done and the total.
func WriteGIF(ctx context.Context, w io.Writer, t *anim.Timeline, opts Options, progress func(done, total int)) error {
	if err := opts.validate(); err != nil {
		return err
	}
	times := FrameTimes(t, opts.FPS)
	pal := Palette(t)
	q := newQuantizer(pal)
	canvas := NewCanvas(opts.Width, opts.Height)
	delay := int(math.Round(100 / float64(opts.FPS)))

	out := &gif.GIF{LoopCount: 0}
	for i, at := range times {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame := image.NewPaletted(canvas.Image().Bounds(), pal)
		q.fillPaletted(frame, canvas.Draw(t.Frame(at)))
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
		if progress != nil {
			progress(i+1, len(times))
		}
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
