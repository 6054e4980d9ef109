// Package config loads the optional montyhall settings file. YAML (.yaml,
// .yml) and JSON with comments (.json, .jsonc) are accepted.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"montyhall/internal/audio"
	"montyhall/internal/render"
	"montyhall/internal/stats"
)

// Render holds export settings.
type Render struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
	FPS    int `yaml:"fps" json:"fps"`
}

// Audio holds cue track settings.
type Audio struct {
	SampleRate int     `yaml:"sample_rate" json:"sample_rate"`
	CueMillis  int     `yaml:"cue_ms" json:"cue_ms"`
	Volume     float64 `yaml:"volume" json:"volume"`
}

// File is the parsed settings file.
type File struct {
	Seed   int64  `yaml:"seed" json:"seed"`
	Render Render `yaml:"render" json:"render"`
	Audio  Audio  `yaml:"audio" json:"audio"`
	Stats  struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"stats" json:"stats"`
	// Scenes maps a scene name to its parameters.
	Scenes map[string]map[string]any `yaml:"scenes" json:"scenes"`
}

// Default returns the settings used when no file is given.
func Default() File {
	r := render.DefaultOptions()
	a := audio.DefaultOptions()
	f := File{
		Seed:   1,
		Render: Render{Width: r.Width, Height: r.Height, FPS: r.FPS},
		Audio:  Audio{SampleRate: a.SampleRate, CueMillis: int(a.Cue / time.Millisecond), Volume: a.Volume},
	}
	f.Stats.Path = stats.DefaultPath
	return f
}

// Load reads path over the defaults. Fields absent from the file keep their
// default values.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, filepath.Ext(path), &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data according to the file extension ext.
func Parse(data []byte, ext string, f *File) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, f)
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), f)
	}
	return fmt.Errorf("unsupported config format %q", ext)
}

// SceneParams returns the parameters for a scene as strings, ready for the
// scene factories.
func (f File) SceneParams(name string) map[string]string {
	raw := f.Scenes[name]
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// SceneNames lists the scenes the file configures.
func (f File) SceneNames() []string {
	names := make([]string, 0, len(f.Scenes))
	for name := range f.Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderOptions converts the render section.
func (f File) RenderOptions() render.Options {
	return render.Options{Width: f.Render.Width, Height: f.Render.Height, FPS: f.Render.FPS}
}

// AudioOptions converts the audio section.
func (f File) AudioOptions() audio.Options {
	return audio.Options{
		SampleRate: f.Audio.SampleRate,
		Cue:        time.Duration(f.Audio.CueMillis) * time.Millisecond,
		Volume:     f.Audio.Volume,
	}
}
