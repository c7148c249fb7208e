package main

import (
	"flag"
	"log"

	"doomfire/internal/sims/fire"
	"doomfire/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := term.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	cols, rows := screen.Size()
	simCfg, err := cfg.SimConfig(cols, rows)
	if err != nil {
		screen.Fini()
		log.Fatalf("invalid configuration: %v", err)
	}
	sim, err := fire.NewSim(simCfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("create fire: %v", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	frontend := term.NewFrontend(screen, sim, term.NewRenderer(sim.Palette(), cfg.Mono), cfg)
	runErr := frontend.Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
