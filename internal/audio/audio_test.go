package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
)

func cueTimeline() *anim.Timeline {
	b := anim.NewBuilder("cues")
	sq := b.Define(anim.Rect(1, 1, anim.White, anim.BlueC, 1))
	b.Play(1, anim.FadeIn(sq))
	b.Wait(1)
	b.Play(0.5, anim.Indicate(anim.Yellow, 1.2, sq))
	return b.Timeline()
}

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw} {
		out := drain(t, newOscillator(440, 1000, w, rate))
		assert.Len(t, out, 1000)
		assert.LessOrEqual(t, peak(out), 1.0)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(8000)
	out := drain(t, newEnvelope(newOscillator(0, 100, WaveSquare, rate), 100, 10, 10))
	require.Len(t, out, 100)
	assert.Equal(t, 0.0, out[0][0])
	assert.Equal(t, 1.0, out[50][0])
	assert.InDelta(t, 0.1, out[99][0], 1e-9)
}

func TestTrackAlignsCuesWithSteps(t *testing.T) {
	opts := Options{SampleRate: 8000, Cue: 200 * time.Millisecond, Volume: 1}
	s, format, err := Track(cueTimeline(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, format.NumChannels)

	out := drain(t, s)
	require.Len(t, out, 8000*5/2)
	assert.Greater(t, peak(out[0:1600]), 0.5)
	assert.Zero(t, peak(out[1600:16000]))
	assert.Greater(t, peak(out[16000:17600]), 0.5)
	assert.Zero(t, peak(out[17600:]))
}

func TestCuesSkipsWaits(t *testing.T) {
	assert.Equal(t, 2, Cues(cueTimeline()))
}

func TestPitch(t *testing.T) {
	f, w := Pitch("indicate")
	assert.Equal(t, 880.0, f)
	assert.Equal(t, WaveSquare, w)
	f, _ = Pitch("wait")
	assert.Equal(t, 440.0, f)
}

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cues.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteWAV(f, cueTimeline(), Options{SampleRate: 8000, Cue: 100 * time.Millisecond, Volume: 0.5}))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()
	s, format, err := wav.Decode(in)
	require.NoError(t, err)
	assert.Equal(t, beep.SampleRate(8000), format.SampleRate)
	assert.Equal(t, 20000, s.Len())

	_, _, err = Track(cueTimeline(), Options{})
	assert.Error(t, err)
}
