package monty

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/pkg/core"
)

func TestShuffleHasExactlyOneCar(t *testing.T) {
	rng := core.NewRNG(7).Source()
	for _, n := range []int{1, 3, 5, 40} {
		doors := Shuffle(rng, n)
		require.Len(t, doors, n)
		cars := 0
		for _, p := range doors {
			if p == Car {
				cars++
			}
		}
		assert.Equal(t, 1, cars, "n=%d", n)
		assert.Len(t, doors.Goats(), n-1)
	}
	assert.Empty(t, Shuffle(rng, 0))
}

func TestClassicShuffleIsUniform(t *testing.T) {
	rng := core.NewRNG(2024).Source()
	const trials = 30000
	var counts [3]int
	for i := 0; i < trials; i++ {
		counts[Classic(rng).CarIndex()]++
	}
	for door, c := range counts {
		freq := float64(c) / trials
		assert.InDelta(t, 1.0/3.0, freq, 0.015, "door %d", door+1)
	}
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := Classic(core.NewRNG(99).Source())
	b := Classic(core.NewRNG(99).Source())
	assert.Equal(t, a, b)
}

func TestSwitchCurve(t *testing.T) {
	points := SwitchCurve(3, 100)
	require.Len(t, points, 98)
	assert.Equal(t, 3, points[0].N)
	assert.Equal(t, 100, points[len(points)-1].N)
	assert.Equal(t, 2.0/3.0, points[0].P)
	assert.InDelta(t, 0.99, points[len(points)-1].P, 1e-12)
	for i, p := range points {
		assert.Greater(t, p.P, 0.0)
		assert.Less(t, p.P, 1.0)
		if i > 0 {
			assert.Greater(t, p.P, points[i-1].P, "not increasing at N=%d", p.N)
		}
	}
}

func TestWinProbability(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		strategy Strategy
		variant  Variant
		want     float64
	}{
		{"classic switch", 3, Switch, RevealAll, 2.0 / 3.0},
		{"classic stay", 3, Stay, RevealAll, 1.0 / 3.0},
		{"classic reveal one switch", 3, Switch, RevealOne, 2.0 / 3.0},
		{"ten doors switch", 10, Switch, RevealAll, 0.9},
		{"ten doors reveal one", 10, Switch, RevealOne, 9.0 / 80.0},
		{"ten doors stay", 10, Stay, RevealOne, 0.1},
		{"clamped", 1, Switch, RevealAll, 2.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WinProbability(tt.n, tt.strategy, tt.variant), 1e-12)
		})
	}
}

func TestHostNeverOpensPickOrPrize(t *testing.T) {
	for _, variant := range []Variant{RevealAll, RevealOne} {
		g := NewGame(8, variant, core.NewRNG(5).Source())
		for i := 0; i < 500; i++ {
			prize := g.Deal()
			pick := i % g.Doors()
			opened := g.HostOpens(prize, pick)
			assert.NotContains(t, opened, prize)
			assert.NotContains(t, opened, pick)
			if variant == RevealAll {
				assert.Len(t, opened, g.Doors()-2)
			} else {
				assert.Len(t, opened, 1)
			}
		}
	}
}

func TestRoundSwitchLandsOnClosedDoor(t *testing.T) {
	g := NewGame(5, RevealAll, core.NewRNG(11).Source())
	for i := 0; i < 200; i++ {
		r := g.Play(Switch)
		assert.True(t, r.Switched)
		assert.NotEqual(t, r.Pick, r.Final)
		assert.NotContains(t, r.Opened, r.Final)
		assert.ElementsMatch(t, []int{r.Pick, r.Final}, r.Closed())
		assert.Equal(t, r.Final == r.Prize, r.Won())
	}
}

func TestSimulationConvergesToClosedForm(t *testing.T) {
	const trials = 20000
	for _, variant := range []Variant{RevealAll, RevealOne} {
		for _, n := range []int{3, 6} {
			g := NewGame(n, variant, core.NewRNG(int64(n)).Source())
			sw, st := g.Compare(trials)
			assert.Equal(t, trials, sw.Trials)
			assert.Equal(t, trials, sw.Wins+sw.Losses())
			assert.InDelta(t, WinProbability(n, Switch, variant), sw.Rate(), 0.02, "switch n=%d %s", n, variant)
			assert.InDelta(t, WinProbability(n, Stay, variant), st.Rate(), 0.02, "stay n=%d %s", n, variant)
		}
	}
}

func TestNewGameClampsDoors(t *testing.T) {
	assert.Equal(t, MinDoors, NewGame(1, RevealAll, nil).Doors())
	assert.Equal(t, 12, NewGame(12, RevealAll, nil).Doors())
	assert.Equal(t, MaxDoors, NewGame(100000000, RevealOne, nil).Doors())
}

func TestRevealOneDrawsEveryGoatDoorUniformly(t *testing.T) {
	const rounds = 30000
	g := NewGame(6, RevealOne, core.NewRNG(21).Source())
	counts := make([]int, g.Doors())
	for i := 0; i < rounds; i++ {
		opened := g.HostOpens(4, 1)
		require.Len(t, opened, 1)
		counts[opened[0]]++
	}
	assert.Zero(t, counts[1])
	assert.Zero(t, counts[4])
	for _, d := range []int{0, 2, 3, 5} {
		assert.InDelta(t, 0.25, float64(counts[d])/rounds, 0.02, "door %d", d)
	}

	counts = make([]int, g.Doors())
	for i := 0; i < rounds; i++ {
		counts[g.HostOpens(2, 2)[0]]++
	}
	assert.Zero(t, counts[2])
	for _, d := range []int{0, 1, 3, 4, 5} {
		assert.InDelta(t, 0.2, float64(counts[d])/rounds, 0.02, "door %d", d)
	}
}

func TestRevealAllLeavesPrizeClosedAndSorted(t *testing.T) {
	g := NewGame(7, RevealAll, core.NewRNG(8).Source())
	assert.Equal(t, []int{0, 2, 3, 4, 6}, g.HostOpens(5, 1))

	kept := map[int]int{}
	for i := 0; i < 6000; i++ {
		opened := g.HostOpens(3, 3)
		require.Len(t, opened, 5)
		assert.True(t, slices.IsSorted(opened))
		r := Round{Doors: 7, Pick: 3, Opened: opened}
		closed := r.Closed()
		require.Len(t, closed, 2)
		for _, d := range closed {
			if d != 3 {
				kept[d]++
			}
		}
	}
	assert.Len(t, kept, 6)
	for d, n := range kept {
		assert.InDelta(t, 1.0/6, float64(n)/6000, 0.03, "door %d", d)
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("ONE")
	require.NoError(t, err)
	assert.Equal(t, RevealOne, v)
	v, err = ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, RevealAll, v)
	_, err = ParseVariant("some")
	assert.Error(t, err)
}

func TestTallyRateEmpty(t *testing.T) {
	assert.False(t, math.IsNaN(Tally{}.Rate()))
	assert.Zero(t, Tally{}.Rate())
}
