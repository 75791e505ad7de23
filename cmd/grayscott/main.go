//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"grayscott/internal/app"
	"grayscott/internal/core"
	"grayscott/internal/engine"
	_ "grayscott/internal/sims/grayscott"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["gray-scott"]
	if !ok {
		log.Fatal("gray-scott sim not registered")
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("configure sim: %v", err)
	}
	state, ok := sim.(engine.State)
	if !ok {
		log.Fatalf("sim %q does not expose a steppable field pair", sim.Name())
	}

	eng := engine.New(state, cfg.Batch)
	game := app.New(sim, eng, cfg)
	game.Start()

	size := sim.Size()
	ebiten.SetWindowTitle("gray-scott — " + cfg.Preset)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	err = ebiten.RunGame(game)
	game.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
