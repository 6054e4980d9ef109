// Package audio renders a cue track for a scene: one short tone at the start
// of every animated step, pitched by the kind of animation that leads it.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"montyhall/internal/anim"
)

// Options configures the cue track.
type Options struct {
	SampleRate int
	// Cue is the longest a single tone lasts.
	Cue    time.Duration
	Volume float64
}

// DefaultOptions returns 44.1kHz cues of 250ms at half volume.
func DefaultOptions() Options {
	return Options{SampleRate: 44100, Cue: 250 * time.Millisecond, Volume: 0.5}
}

type voice struct {
	freq float64
	wave Wave
}

var voices = map[string]voice{
	"write":     {523.25, WaveSine},
	"create":    {523.25, WaveSine},
	"fade-in":   {659.25, WaveSine},
	"fade-out":  {392.00, WaveSine},
	"indicate":  {880.00, WaveSquare},
	"set-fill":  {329.63, WaveSaw},
	"set-color": {698.46, WaveSine},
	"move":      {587.33, WaveSine},
	"transform": {587.33, WaveSine},
}

// Pitch returns the tone frequency and wave used for a step led by name.
func Pitch(name string) (float64, Wave) {
	if v, ok := voices[name]; ok {
		return v.freq, v.wave
	}
	return 440, WaveSine
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Track returns a stereo streamer as long as the timeline.
func Track(t *anim.Timeline, opts Options) (beep.Streamer, beep.Format, error) {
	if opts.SampleRate <= 0 {
		return nil, beep.Format{}, fmt.Errorf("audio: invalid sample rate %d", opts.SampleRate)
	}
	rate := beep.SampleRate(opts.SampleRate)
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	cue := rate.N(opts.Cue)
	ramp := rate.N(5 * time.Millisecond)

	var parts []beep.Streamer
	cursor := 0
	for _, st := range t.Steps() {
		if len(st.Anims) == 0 || st.RunTime <= 0 {
			continue
		}
		start := rate.N(seconds(st.Start))
		end := rate.N(seconds(st.End()))
		if start < cursor {
			start = cursor
		}
		length := min(cue, end-start)
		if length <= 0 {
			continue
		}
		if start > cursor {
			parts = append(parts, beep.Silence(start-cursor))
		}
		freq, wave := Pitch(st.Lead())
		tone := newEnvelope(newOscillator(freq, length, wave, rate), length, ramp, ramp*4)
		parts = append(parts, newVolume(tone, opts.Volume))
		cursor = start + length
	}
	if total := rate.N(seconds(t.Duration())); total > cursor {
		parts = append(parts, beep.Silence(total-cursor))
	}
	return beep.Seq(parts...), format, nil
}

// WriteWAV encodes the cue track of t as a 16-bit stereo WAV file.
func WriteWAV(w io.WriteSeeker, t *anim.Timeline, opts Options) error {
	s, format, err := Track(t, opts)
	if err != nil {
		return err
	}
	if err := wav.Encode(w, s, format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}

// Cues returns the number of steps that can carry a tone: every step with at
// least one animation and a positive run time.
func Cues(t *anim.Timeline) int {
	n := 0
	for _, st := range t.Steps() {
		if len(st.Anims) > 0 && st.RunTime > 0 {
			n++
		}
	}
	return n
}
