package app

import "flag"

// Config represents the command-line parameters of the GUI player.
type Config struct {
	Scene  string
	Width  int
	Height int
	Panel  int
	TPS    int
	Seed   int64
	File   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scene: "monty-hall", Width: 960, Height: 540, Panel: 240, TPS: 60, Seed: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to play")
	fs.IntVar(&c.Width, "width", c.Width, "scene view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "scene view height in pixels")
	fs.IntVar(&c.Panel, "panel", c.Panel, "side panel width in pixels, 0 hides it")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for door contents")
	fs.StringVar(&c.File, "config", c.File, "settings file (yaml or jsonc)")
}
