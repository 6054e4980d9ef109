package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
	"montyhall/internal/core"
)

func TestOrderMatchesRegistry(t *testing.T) {
	assert.ElementsMatch(t, Order, core.Names())
}

func TestEveryScenePlaysThrough(t *testing.T) {
	for _, name := range Order {
		t.Run(name, func(t *testing.T) {
			sc, err := core.Lookup(name, nil)
			require.NoError(t, err)
			assert.Equal(t, name, sc.Name())

			tl, err := sc.Build(7)
			require.NoError(t, err)
			require.NotEmpty(t, tl.Steps())
			assert.Greater(t, tl.Duration(), 0.0)

			final := tl.Frame(tl.Duration())
			assert.Positive(t, final.Len())
			for _, s := range final.Shapes() {
				assert.InDelta(t, 1, s.Opacity, 1e-9, "shape %d (%s) not fully shown", s.ID, s.Kind)
			}
		})
	}
}

func TestBuildIsDeterministicPerSeed(t *testing.T) {
	for _, name := range Order {
		sc, err := core.Lookup(name, nil)
		require.NoError(t, err)
		a, err := sc.Build(42)
		require.NoError(t, err)
		b, err := sc.Build(42)
		require.NoError(t, err)
		assert.Equal(t, a.Frame(a.Duration()).Shapes(), b.Frame(b.Duration()).Shapes(), name)
	}
}

func TestParameterProviders(t *testing.T) {
	for _, name := range Order {
		sc, err := core.Lookup(name, nil)
		require.NoError(t, err)
		if p, ok := sc.(core.ParameterProvider); ok {
			assert.NotEmpty(t, p.Parameters().Groups, name)
		}
		if c, ok := sc.(core.ParameterControlsProvider); ok {
			setter, ok := sc.(core.IntParameterSetter)
			require.True(t, ok, "%s exposes controls without a setter", name)
			for _, ctl := range c.ParameterControls() {
				assert.True(t, setter.SetIntParameter(ctl.Key, ctl.Min), name)
				assert.False(t, setter.SetIntParameter(ctl.Key, ctl.Max+1), name)
			}
		}
	}
}

func countText(f *anim.Frame, text string) int {
	n := 0
	for _, s := range f.Shapes() {
		if s.Kind == anim.KindText && s.Text == text {
			n++
		}
	}
	return n
}

func TestMontyHallRevealsOneCar(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		sc, err := core.Lookup("monty-hall", nil)
		require.NoError(t, err)
		tl, err := sc.Build(seed)
		require.NoError(t, err)
		final := tl.Frame(tl.Duration())
		assert.Equal(t, 1, countText(final, "Car"), "seed %d", seed)
		assert.Equal(t, 2, countText(final, "Goat"), "seed %d", seed)
	}
}
