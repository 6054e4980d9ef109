package classic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
	"montyhall/internal/scenes/kit"
)

func TestShareCollapsesOntoDoorTwo(t *testing.T) {
	tl, err := New().Build(0)
	require.NoError(t, err)

	var thirds, shares []anim.Shape
	var outline, opened *anim.Shape
	for _, sh := range tl.Frame(tl.Duration()).Shapes() {
		switch {
		case sh.Kind == anim.KindText && sh.Text == "1/3":
			thirds = append(thirds, sh)
		case sh.Kind == anim.KindText && sh.Text == "2/3":
			shares = append(shares, sh)
		case sh.Kind == anim.KindRect && math.Abs(sh.Width-(kit.Large.Width+0.6)) < 1e-9:
			outline = &sh
		case sh.Kind == anim.KindRect && sh.Center.X == 4 && sh.Width == kit.Large.Width:
			opened = &sh
		}
	}

	require.Len(t, thirds, 1)
	assert.InDelta(t, -4, thirds[0].Center.X, 1e-9)

	require.Len(t, shares, 1)
	assert.InDelta(t, 0, shares[0].Center.X, 1e-9)

	require.NotNil(t, outline)
	assert.InDelta(t, 0, outline.Center.X, 1e-9)
	assert.InDelta(t, kit.Large.Height+0.6, outline.Height, 1e-9)

	require.NotNil(t, opened)
	assert.InDelta(t, 0.2, opened.FillOpacity, 1e-9)
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := New().Build(1)
	require.NoError(t, err)
	b, err := New().Build(99)
	require.NoError(t, err)
	assert.Equal(t, a.Duration(), b.Duration())
	assert.Equal(t, len(a.Steps()), len(b.Steps()))
}
