package generalizedn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
)

func TestFromMap(t *testing.T) {
	for _, tc := range []struct {
		in   map[string]string
		want int
	}{
		{nil, 0},
		{map[string]string{"doors": "5"}, 0},
		{map[string]string{"doors": "6"}, 6},
		{map[string]string{"doors": "250"}, 250},
		{map[string]string{"doors": "x"}, 0},
		{map[string]string{"doors": "-10"}, 0},
	} {
		assert.Equal(t, Config{Doors: tc.want}, FromMap(tc.in), "%v", tc.in)
	}
}

func TestLabels(t *testing.T) {
	for _, tc := range []struct {
		doors      int
		last       []string
		pick, rest string
	}{
		{0, []string{"N-2", "N-1", "N"}, "1/N", "1 - 1/N"},
		{6, []string{"4", "5", "6"}, "1/6", "5/6 = 83%"},
		{10, []string{"8", "9", "10"}, "1/10", "9/10 = 90%"},
		{100, []string{"98", "99", "100"}, "1/100", "99/100 = 99%"},
	} {
		last, pick, rest := New(Config{Doors: tc.doors}).labels()
		assert.Equal(t, tc.last, last, "doors=%d", tc.doors)
		assert.Equal(t, tc.pick, pick, "doors=%d", tc.doors)
		assert.Equal(t, tc.rest, rest, "doors=%d", tc.doors)
	}
}

func TestFinalFrameShowsConcreteSplit(t *testing.T) {
	tl, err := New(Config{Doors: 10}).Build(0)
	require.NoError(t, err)
	var texts []string
	for _, sh := range tl.Frame(tl.Duration()).Shapes() {
		if sh.Kind == anim.KindText {
			texts = append(texts, sh.Text)
		}
	}
	assert.Contains(t, texts, "1/10")
	assert.Contains(t, texts, "9/10 = 90%")
	assert.Contains(t, texts, "10")
	assert.NotContains(t, texts, "N")
}
