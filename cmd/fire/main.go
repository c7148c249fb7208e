//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"doomfire/internal/app"
	"doomfire/internal/sims/fire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	sim, err := fire.NewSim(simCfg)
	if err != nil {
		log.Fatalf("create fire: %v", err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("doomfire")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
