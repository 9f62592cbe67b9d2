//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"rainfall/internal/app"
	"rainfall/internal/core"
	_ "rainfall/internal/rain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	opts := map[string]string{"seed": strconv.FormatInt(cfg.Seed, 10)}
	if cfg.Scene != "" {
		opts["scene"] = cfg.Scene
	}
	sim := factory(opts)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("rainfall — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
