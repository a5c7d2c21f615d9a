//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"tomato-ca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.SetupLogging(cfg, os.Stderr)
	runner, err := app.NewRunner(cfg)
	if err != nil {
		logger.Error("startup failed", "err", err)
		log.Fatalf("ca: %v", err)
	}

	game := app.New(runner, cfg.Scale, cfg.Seed)
	size := runner.Size()

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
