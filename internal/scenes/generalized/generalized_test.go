package generalized

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
)

func TestFromMap(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
	c := FromMap(map[string]string{"doors": "12", "pick": "4", "keep": "random"})
	assert.Equal(t, Config{Doors: 12, Pick: 3, Keep: -1}, c)
	assert.Equal(t, 10, FromMap(map[string]string{"doors": "2"}).Doors)
}

func TestResolveNeverKeepsThePick(t *testing.T) {
	s := New(Config{Doors: 10, Pick: 4, Keep: 4})
	for seed := int64(0); seed < 50; seed++ {
		pick, keep := s.resolve(seed)
		assert.Equal(t, 4, pick)
		assert.NotEqual(t, pick, keep)
		assert.True(t, keep >= 0 && keep < 10)
	}
}

func TestHostLeavesTwoDoorsClosed(t *testing.T) {
	s := New(DefaultConfig())
	tl, err := s.Build(1)
	require.NoError(t, err)
	final := tl.Frame(tl.Duration())

	closed := 0
	for _, sh := range final.Shapes() {
		if sh.Kind == anim.KindRect && sh.FillOpacity == 1 {
			closed++
		}
	}
	assert.Equal(t, 2, closed)
}
