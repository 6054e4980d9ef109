package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "montyhall.yaml", `
seed: 42
render:
  width: 640
scenes:
  doors-grid:
    doors: 25
  monty-hall:
    pick: 2
    image: car.png
  win-curve:
    stay: false
`)
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), f.Seed)
	assert.Equal(t, 640, f.Render.Width)
	assert.Equal(t, Default().Render.Height, f.Render.Height)
	assert.Equal(t, map[string]string{"doors": "25"}, f.SceneParams("doors-grid"))
	assert.Equal(t, map[string]string{"pick": "2", "image": "car.png"}, f.SceneParams("monty-hall"))
	assert.Equal(t, "false", f.SceneParams("win-curve")["stay"])
	assert.Nil(t, f.SceneParams("classic"))
	assert.Equal(t, []string{"doors-grid", "monty-hall", "win-curve"}, f.SceneNames())
}

func TestLoadJSONC(t *testing.T) {
	path := write(t, "montyhall.jsonc", `{
  // export settings
  "render": {"fps": 24},
  "audio": {"cue_ms": 120, "volume": 0.25},
  "stats": {"path": "rounds.txt"},
  "scenes": {"generalized": {"doors": 12, "keep": "random"},},
}`)
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, f.RenderOptions().FPS)
	assert.Equal(t, 854, f.RenderOptions().Width)
	assert.Equal(t, 120*time.Millisecond, f.AudioOptions().Cue)
	assert.Equal(t, 0.25, f.AudioOptions().Volume)
	assert.Equal(t, "rounds.txt", f.Stats.Path)
	assert.Equal(t, map[string]string{"doors": "12", "keep": "random"}, f.SceneParams("generalized"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(write(t, "settings.toml", "seed = 1"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(write(t, "bad.yaml", "render: [1, 2"))
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	f := Default()
	assert.Equal(t, int64(1), f.Seed)
	assert.Equal(t, 15, f.Render.FPS)
	assert.Equal(t, 44100, f.AudioOptions().SampleRate)
	assert.Equal(t, "game_stats.txt", f.Stats.Path)
}
