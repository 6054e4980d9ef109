package doorsgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
	"montyhall/internal/scenes/kit"
)

func TestFromMap(t *testing.T) {
	for _, tc := range []struct {
		in   map[string]string
		want int
	}{
		{nil, 40},
		{map[string]string{"doors": "1"}, 1},
		{map[string]string{"doors": "50"}, 50},
		{map[string]string{"doors": "0"}, 40},
		{map[string]string{"doors": "51"}, 40},
		{map[string]string{"doors": "many"}, 40},
	} {
		assert.Equal(t, tc.want, FromMap(tc.in).Doors, "%v", tc.in)
	}
}

func TestSetIntParameterMatchesControls(t *testing.T) {
	s := New(DefaultConfig())
	controls := s.ParameterControls()
	require.Len(t, controls, 1)
	c := controls[0]

	assert.True(t, s.SetIntParameter(c.Key, c.Min))
	assert.True(t, s.SetIntParameter(c.Key, c.Max))
	assert.False(t, s.SetIntParameter(c.Key, c.Max+1))
	assert.False(t, s.SetIntParameter(c.Key, c.Min-1))
	assert.False(t, s.SetIntParameter("rows", 3))
	assert.Equal(t, MaxDoors, s.cfg.Doors)
}

func TestGridDrawsEveryDoor(t *testing.T) {
	tl, err := New(Config{Doors: 23}).Build(0)
	require.NoError(t, err)
	var rects int
	var labels []string
	for _, sh := range tl.Frame(tl.Duration()).Shapes() {
		switch sh.Kind {
		case anim.KindRect:
			if sh.Width == kit.Small.Width {
				rects++
			}
		case anim.KindText:
			labels = append(labels, sh.Text)
		}
	}
	assert.Equal(t, 23, rects)
	assert.Contains(t, labels, "1")
	assert.Contains(t, labels, "23")
	assert.NotContains(t, labels, "24")
}
