//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"cascade-ca/internal/app"
	"cascade-ca/internal/core"
	"cascade-ca/internal/logs"
	_ "cascade-ca/internal/sims/cascade"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.LoadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logs.New("ca", cfg.Log, os.Stderr)
	defer func() { _ = log.Sync() }()

	factory, ok := core.Sims()[cfg.Viewer.Sim]
	if !ok {
		log.Fatal("unknown sim", zap.String("sim", cfg.Viewer.Sim), zap.Strings("available", core.SimNames()))
	}
	sim, err := factory(app.SimOptions(cfg))
	if err != nil {
		log.Fatal("build sim", zap.Error(err))
	}

	game := app.New(sim, cfg.Viewer, log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cascade-ca - " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("viewer stopped", zap.Error(err))
	}
}
