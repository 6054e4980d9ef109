package console

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/monty"
	"montyhall/internal/stats"
	"montyhall/pkg/core"
)

func newConsole(t *testing.T, input string) (*Console, *bytes.Buffer, *stats.Log) {
	t.Helper()
	var out bytes.Buffer
	log := stats.NewLog(filepath.Join(t.TempDir(), "stats.txt"))
	return New(strings.NewReader(input), &out, core.NewRNG(3).Source(), log), &out, log
}

func TestIntroDiagram(t *testing.T) {
	var buf bytes.Buffer
	IntroDiagram(&buf, 3)
	out := buf.String()
	assert.Contains(t, out, "MONTY HALL - 3 DOORS")
	assert.Contains(t, out, "    [1]     [2]     [3]     \n")
	assert.Contains(t, out, "   | ??? | | ??? | | ??? | \n")
}

func TestDisplayDoors(t *testing.T) {
	var buf bytes.Buffer
	DisplayDoors(&buf, 3, []int{2}, 0, false)
	assert.Contains(t, buf.String(), "   | ??? | | ??? | |GOAT | \n")

	buf.Reset()
	DisplayDoors(&buf, 3, nil, 1, true)
	assert.Contains(t, buf.String(), "   |GOAT | | CAR | |GOAT | \n")
}

func TestPlaySwitchRound(t *testing.T) {
	c, out, log := newConsole(t, "2\ny\n")
	round, err := c.Play(3)
	require.NoError(t, err)

	assert.Equal(t, 1, round.Pick)
	assert.True(t, round.Switched)
	assert.Len(t, round.Opened, 1)
	assert.NotEqual(t, round.Pick, round.Final)
	assert.NotContains(t, round.Opened, round.Prize)
	assert.Contains(t, out.String(), "Monty opens 1 goat doors:")
	if round.Won() {
		assert.Contains(t, out.String(), "You WON the car!")
	} else {
		assert.Contains(t, out.String(), "You got a goat.")
	}

	records, _, err := log.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, stats.ModeInteractive, records[0].Mode)
	assert.True(t, records[0].Switched)
	assert.Equal(t, round.Won(), records[0].Won)
}

func TestPlayRepromptsInvalidInput(t *testing.T) {
	c, out, _ := newConsole(t, "abc\n0\n9\n4\nmaybe\nno\n")
	round, err := c.Play(5)
	require.NoError(t, err)
	assert.Equal(t, 3, round.Pick)
	assert.Equal(t, 3, round.Final)
	assert.Len(t, round.Opened, 3)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input. Try again."))
	assert.Contains(t, out.String(), "Please answer y or n.")
}

func TestPlayClampsDoors(t *testing.T) {
	c, out, _ := newConsole(t, "1\nn\n")
	round, err := c.Play(1)
	require.NoError(t, err)
	assert.Equal(t, 3, round.Doors)
	assert.Contains(t, out.String(), "MONTY HALL - 3 DOORS")
}

func TestPlayEOF(t *testing.T) {
	c, _, _ := newConsole(t, "2\n")
	_, err := c.Play(3)
	assert.ErrorIs(t, err, io.EOF)
}

func TestMenuFlow(t *testing.T) {
	c, out, _ := newConsole(t, "5\n7\n4\n10\n200\ny\n1\n1\ny\n5\n6\n")
	require.NoError(t, c.Menu())
	s := out.String()
	assert.Contains(t, s, "No statistics recorded yet.")
	assert.Contains(t, s, "Invalid choice. Try again.")
	assert.Contains(t, s, "Number of Doors: 10")
	assert.Contains(t, s, "Simulations per Strategy: 200")
	assert.Contains(t, s, "Doors Opened by Monty: 8")
	assert.Contains(t, s, "Expected  -> Switch: 90.0%, Stay: 10.0%")
	assert.Contains(t, s, "=== Game History ===")
	assert.Contains(t, s, "Mode: Interactive, Doors: 3, Switched: Yes")
	assert.Contains(t, s, "=== Summary ===")
	assert.True(t, strings.HasSuffix(s, "Goodbye!\n"))
}

func TestMenuEndsOnEOF(t *testing.T) {
	c, out, _ := newConsole(t, "3\n")
	require.NoError(t, c.Menu())
	assert.Contains(t, out.String(), "Enter number of simulations: ")
}

func TestMenuSimulationAsksHostVariant(t *testing.T) {
	c, out, _ := newConsole(t, "4\n5\n20000\nmaybe\nn\n6\n")
	require.NoError(t, c.Menu())
	s := out.String()
	assert.Contains(t, s, "Should Monty open every other goat door? (y/n): ")
	assert.Contains(t, s, "Please answer y or n.")
	assert.Contains(t, s, "Doors Opened by Monty: 1")
	assert.Contains(t, s, "Expected  -> Switch: 26.7%, Stay: 20.0%")
}

func TestMenuThreeDoorSimulationOpensOneDoor(t *testing.T) {
	c, out, _ := newConsole(t, "3\n100\n6\n")
	require.NoError(t, c.Menu())
	assert.Contains(t, out.String(), "Doors Opened by Monty: 1")
	assert.Contains(t, out.String(), "Expected  -> Switch: 66.7%, Stay: 33.3%")
}

func TestSimulateRevealOneRates(t *testing.T) {
	c, _, _ := newConsole(t, "")
	switched, stayed := c.Simulate(10, 20000, monty.RevealOne)
	assert.InDelta(t, 9.0/80, switched.Rate(), 0.015)
	assert.InDelta(t, 0.1, stayed.Rate(), 0.015)

	switched, _ = c.Simulate(10, 20000, monty.RevealAll)
	assert.InDelta(t, 0.9, switched.Rate(), 0.015)
}

func TestMenuDoorsPromptRejectsAboveMax(t *testing.T) {
	c, out, _ := newConsole(t, "4\n1001\n2\n1000\n10\ny\n6\n")
	require.NoError(t, c.Menu())
	s := out.String()
	assert.Contains(t, s, "Enter number of doors (3 to 1000): ")
	assert.Equal(t, 2, strings.Count(s, "Invalid input. Try again."))
	assert.Contains(t, s, "Number of Doors: 1000")
	assert.Contains(t, s, "Doors Opened by Monty: 998")
}
