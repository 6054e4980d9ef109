package monty

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"montyhall/pkg/core"
)

// Door count bounds of a playable game.
const (
	MinDoors = 3
	MaxDoors = 1000
)

// Strategy is the player's decision after the host has opened doors.
type Strategy int

const (
	Stay Strategy = iota
	Switch
)

func (s Strategy) String() string {
	if s == Switch {
		return "switch"
	}
	return "stay"
}

// Variant selects how many doors the host opens.
type Variant int

const (
	// RevealAll opens every goat door except one, leaving two closed doors.
	RevealAll Variant = iota
	// RevealOne opens a single goat door regardless of the door count.
	RevealOne
)

func (v Variant) String() string {
	if v == RevealOne {
		return "one"
	}
	return "all"
}

// ParseVariant maps "all" / "one" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return RevealAll, nil
	case "one":
		return RevealOne, nil
	default:
		return RevealAll, fmt.Errorf("unknown reveal variant %q (want all or one)", s)
	}
}

// Set implements flag.Value.
func (v *Variant) Set(s string) error {
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Round records a single played game.
type Round struct {
	Doors    int
	Prize    int
	Pick     int
	Opened   []int
	Final    int
	Switched bool
}

// Won reports whether the final pick is the prize door.
func (r Round) Won() bool { return r.Final == r.Prize }

// Closed returns the doors still closed after the host's reveal.
func (r Round) Closed() []int {
	out := make([]int, 0, r.Doors-len(r.Opened))
	for i := 0; i < r.Doors; i++ {
		if !slices.Contains(r.Opened, i) {
			out = append(out, i)
		}
	}
	return out
}

// Game deals rounds with a fixed door count.
type Game struct {
	doors   int
	variant Variant
	rng     *rand.Rand
}

// NewGame returns a game with the given number of doors, clamped to
// [MinDoors, MaxDoors].
func NewGame(doors int, variant Variant, rng *rand.Rand) *Game {
	doors = max(MinDoors, min(doors, MaxDoors))
	if rng == nil {
		rng = core.NewRNG(1).Source()
	}
	return &Game{doors: doors, variant: variant, rng: rng}
}

// Doors returns the door count.
func (g *Game) Doors() int { return g.doors }

// Variant returns the host behaviour.
func (g *Game) Variant() Variant { return g.variant }

// Deal places the car behind a uniformly random door.
func (g *Game) Deal() int { return g.rng.IntN(g.doors) }

// HostOpens returns the doors the host opens after the player picked pick,
// sorted. The host never opens the pick or the prize. Under RevealAll one
// door besides the pick stays closed; when the pick is the prize that door
// is chosen uniformly. Under RevealOne a single goat door is drawn.
func (g *Game) HostOpens(prize, pick int) []int {
	if g.variant == RevealOne {
		return []int{g.otherThan(prize, pick)}
	}
	closed := prize
	if prize == pick {
		closed = g.otherThan(pick, pick)
	}
	opened := make([]int, 0, g.doors-2)
	for i := 0; i < g.doors; i++ {
		if i != pick && i != closed {
			opened = append(opened, i)
		}
	}
	return opened
}

// otherThan draws a door uniformly from those that are neither a nor b.
func (g *Game) otherThan(a, b int) int {
	if a > b {
		a, b = b, a
	}
	excluded := 2
	if a == b {
		excluded = 1
	}
	d := g.rng.IntN(g.doors - excluded)
	if d >= a {
		d++
	}
	if excluded == 2 && d >= b {
		d++
	}
	return d
}

// SwitchFrom returns a uniformly chosen closed door other than pick.
func (g *Game) SwitchFrom(pick int, opened []int) int {
	if len(opened) == 1 {
		return g.otherThan(pick, opened[0])
	}
	var choices []int
	for i := 0; i < g.doors; i++ {
		if i != pick && !slices.Contains(opened, i) {
			choices = append(choices, i)
		}
	}
	if len(choices) == 0 {
		return pick
	}
	return core.Pick(g.rng, choices)
}

// Resolve finishes a round given the prize, first pick and decision.
func (g *Game) Resolve(prize, pick int, strategy Strategy) Round {
	opened := g.HostOpens(prize, pick)
	final := pick
	if strategy == Switch {
		final = g.SwitchFrom(pick, opened)
	}
	return Round{
		Doors:    g.doors,
		Prize:    prize,
		Pick:     pick,
		Opened:   opened,
		Final:    final,
		Switched: strategy == Switch,
	}
}

// Play deals and resolves a round with a random first pick.
func (g *Game) Play(strategy Strategy) Round {
	prize := g.Deal()
	pick := g.rng.IntN(g.doors)
	return g.Resolve(prize, pick, strategy)
}

// Tally counts the outcome of repeated rounds for one strategy.
type Tally struct {
	Strategy Strategy
	Trials   int
	Wins     int
}

// Losses returns Trials - Wins.
func (t Tally) Losses() int { return t.Trials - t.Wins }

// Rate returns the empirical win rate, 0 when no trials ran.
func (t Tally) Rate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Trials)
}

// Simulate plays trials rounds with the given strategy.
func (g *Game) Simulate(trials int, strategy Strategy) Tally {
	t := Tally{Strategy: strategy}
	for i := 0; i < trials; i++ {
		if g.Play(strategy).Won() {
			t.Wins++
		}
		t.Trials++
	}
	return t
}

// Compare runs trials rounds for each strategy, switching first.
func (g *Game) Compare(trials int) (switched, stayed Tally) {
	return g.Simulate(trials, Switch), g.Simulate(trials, Stay)
}
