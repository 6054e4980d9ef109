package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/core"
	"montyhall/internal/scenes"
)

// run executes the command tree with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScenesListFollowsRunningOrder(t *testing.T) {
	out, err := run(t, "", "scenes", "list")
	require.NoError(t, err)

	last := -1
	for _, name := range scenes.Order {
		i := strings.Index(out, name+" ")
		require.GreaterOrEqual(t, i, 0, "missing %s", name)
		assert.Greater(t, i, last, "%s out of order", name)
		last = i
	}
}

func TestScenesShowPrintsParametersAndSteps(t *testing.T) {
	out, err := run(t, "", "scenes", "show", "generalized")
	require.NoError(t, err)
	assert.Contains(t, out, "doors = 10")
	assert.Contains(t, out, "keep = 2  # door the host leaves closed, or random")
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "indicate")
}

func TestUnknownSceneMapsToExitCode(t *testing.T) {
	_, err := run(t, "", "render", "png", "no-such-scene")
	require.Error(t, err)

	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, ExitUnknownScene, cliErr.Code)
	assert.ErrorIs(t, err, core.ErrUnknownScene)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, "cannot load scene", os.ErrNotExist)
	assert.Equal(t, "Error: cannot load scene: file does not exist\n", buf.String())

	buf.Reset()
	printError(&buf, "trials must be positive", nil)
	assert.Equal(t, "Error: trials must be positive\n", buf.String())
}

func TestCurve(t *testing.T) {
	out, err := run(t, "", "curve", "--from", "3", "--to", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "0.6667")
	assert.Contains(t, out, "0.3333")
	assert.Contains(t, out, "0.7500")
	assert.Equal(t, 3, strings.Count(out, "\n"))

	_, err = run(t, "", "curve", "--from", "2")
	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, ExitUsage, cliErr.Code)
}

func TestSimulateRecordsRounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.txt")
	out, err := run(t, "", "simulate", "--doors", "4", "--trials", "50", "--record", "--stats-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Number of Doors: 4")
	assert.Contains(t, out, "Simulations per Strategy: 50")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 100, strings.Count(string(data), "Mode: Simulation, Doors: 4"))

	out, err = run(t, "", "stats", "--summary", "--stats-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Switched  -> Rounds: 50")
	assert.Contains(t, out, "Stayed    -> Rounds: 50")
}

func TestDoorsOutOfRange(t *testing.T) {
	for _, args := range [][]string{
		{"simulate", "--doors", "2"},
		{"simulate", "--doors", "1001"},
		{"game", "--doors", "2"},
		{"game", "--doors", "100000000"},
	} {
		_, err := run(t, "", args...)
		var cliErr *CLIError
		require.ErrorAs(t, err, &cliErr, args)
		assert.Equal(t, ExitUsage, cliErr.Code, args)
		assert.Equal(t, "doors must be between 3 and 1000", cliErr.Message, args)
	}
}

func TestCurveRejectsRangeAboveMax(t *testing.T) {
	_, err := run(t, "", "curve", "--to", "1001")
	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, ExitUsage, cliErr.Code)
}

func TestSimulateRevealOne(t *testing.T) {
	out, err := run(t, "", "simulate", "--doors", "5", "--trials", "100", "--variant", "one")
	require.NoError(t, err)
	assert.Contains(t, out, "Doors Opened by Monty: 1")
	assert.Contains(t, out, "Expected  -> Switch: 26.7%, Stay: 20.0%")
}

func TestSweepBridgesFlagSet(t *testing.T) {
	out, err := run(t, "", "sweep", "--from", "3", "--to", "5", "--trials", "200", "--workers", "2", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "N=  3")
	assert.Contains(t, out, "N=  5")
	assert.Contains(t, out, "Largest deviations")
	assert.Contains(t, out, " 1) ")
}

func TestGameRound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.txt")
	out, err := run(t, "1\ny\n", "game", "--stats-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MONTY HALL - 3 DOORS")
	assert.Contains(t, out, "Final Reveal:")

	out, err = run(t, "", "stats", "--stats-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Mode: Interactive, Doors: 3, Switched: Yes")

	_, err = run(t, "", "stats", "--clear", "--stats-file", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestGameEndsEarlyOnEOF(t *testing.T) {
	_, err := run(t, "", "game", "--stats-file", filepath.Join(t.TempDir(), "stats.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input ended")
}

func TestMenuExits(t *testing.T) {
	out, err := run(t, "6\n", "menu", "--stats-file", filepath.Join(t.TempDir(), "stats.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye!")
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classic.png")
	out, err := run(t, "", "render", "png", "classic", "--width", "160", "--height", "90", "--at", "1", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "t=1.00s")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestAudioWritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cues.wav")
	out, err := run(t, "", "audio", "monty-hall", "-o", path, "--cue", "100ms")
	require.NoError(t, err)
	assert.Contains(t, out, "cues)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
}

func TestConfigFileSetsSceneParameters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nscenes:\n  generalized:\n    doors: 12\n"), 0o644))

	out, err := run(t, "", "scenes", "show", "generalized", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "doors = 12")

	_, err = run(t, "", "scenes", "list", "--config", filepath.Join(dir, "missing.yaml"))
	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, ExitUsage, cliErr.Code)
}

func TestPlayStopsWhenCancelled(t *testing.T) {
	prev := newScreen
	t.Cleanup(func() { newScreen = prev })
	newScreen = func() (tcell.Screen, error) { return tcell.NewSimulationScreen("UTF-8"), nil }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"play", "classic"})
	assert.NoError(t, root.ExecuteContext(ctx))
}
