package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(r *RNG, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Source().IntN(1000)
	}
	return out
}

func TestDeriveIsReproducibleAndIndependent(t *testing.T) {
	assert.Equal(t, draw(Derive(7, 3), 8), draw(Derive(7, 3), 8))
	assert.NotEqual(t, draw(Derive(7, 3), 8), draw(Derive(7, 4), 8))
	assert.NotEqual(t, draw(NewRNG(7), 8), draw(Derive(7, 0), 8))
}

func TestPick(t *testing.T) {
	r := NewRNG(1).Source()
	assert.Equal(t, -1, Pick(r, nil))
	for i := 0; i < 20; i++ {
		assert.Contains(t, []int{4, 9}, Pick(r, []int{4, 9}))
	}
}
