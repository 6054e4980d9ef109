//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"montyhall/internal/app"
	"montyhall/internal/config"
	"montyhall/internal/core"
	_ "montyhall/internal/scenes"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings := config.Default()
	if cfg.File != "" {
		loaded, err := config.Load(cfg.File)
		if err != nil {
			log.Fatal(err)
		}
		settings = loaded
	}

	sc, err := core.Lookup(cfg.Scene, settings.SceneParams(cfg.Scene))
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(sc, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("montyhall - " + sc.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+max(cfg.Panel, 0), cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
