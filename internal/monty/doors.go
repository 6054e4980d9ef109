// Package monty implements the rules of the Monty Hall game: dealing the
// prize, the host's reveals, the stay/switch strategies and the closed-form
// win probabilities they converge to.
package monty

import (
	"math/rand/v2"
	"slices"
)

// Prize is what hides behind a door.
type Prize uint8

const (
	Goat Prize = iota
	Car
)

func (p Prize) String() string {
	if p == Car {
		return "Car"
	}
	return "Goat"
}

// Doors holds the contents of each door in display order.
type Doors []Prize

// Shuffle returns n doors holding one car and n-1 goats in a uniformly random
// order. n below 1 yields an empty set.
func Shuffle(r *rand.Rand, n int) Doors {
	if n <= 0 {
		return Doors{}
	}
	doors := make(Doors, n)
	doors[0] = Car
	r.Shuffle(n, func(i, j int) { doors[i], doors[j] = doors[j], doors[i] })
	return doors
}

// Classic returns the three-door car/goat/goat assignment.
func Classic(r *rand.Rand) Doors { return Shuffle(r, 3) }

// CarIndex returns the index of the door hiding the car, or -1.
func (d Doors) CarIndex() int {
	for i, p := range d {
		if p == Car {
			return i
		}
	}
	return -1
}

// Goats returns the indices of goat doors, skipping any listed in except.
func (d Doors) Goats(except ...int) []int {
	var out []int
	for i, p := range d {
		if p != Goat || slices.Contains(except, i) {
			continue
		}
		out = append(out, i)
	}
	return out
}
