package wincurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
)

func TestFromMap(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
	assert.Equal(t, Config{From: 5, To: 20, Stay: false}, FromMap(map[string]string{"from": "5", "to": "20", "stay": "false"}))
	c := FromMap(map[string]string{"from": "50", "to": "10"})
	assert.Greater(t, c.To, c.From)
}

func TestPlotSpansChart(t *testing.T) {
	s := New(DefaultConfig())
	assert.Equal(t, plotMin, s.Plot(3, 0))
	assert.InDelta(t, plotMax.X, s.Plot(100, 1).X, 1e-9)
	assert.InDelta(t, plotMax.Y, s.Plot(100, 1).Y, 1e-9)
}

func TestCurveLabels(t *testing.T) {
	tl, err := New(DefaultConfig()).Build(0)
	require.NoError(t, err)
	var texts []string
	var curves int
	for _, sh := range tl.Frame(tl.Duration()).Shapes() {
		switch sh.Kind {
		case anim.KindText:
			texts = append(texts, sh.Text)
		case anim.KindPolyline:
			if len(sh.Points) == 98 {
				curves++
			}
		}
	}
	assert.Contains(t, texts, "N=3: 0.667")
	assert.Contains(t, texts, "N=100: 0.99")
	assert.Equal(t, 2, curves)
}
