// Command ca-snapshot runs one automaton headless and writes the final board
// as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"tomato-ca/internal/app"
	"tomato-ca/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 4
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.SetupLogging(cfg, os.Stderr)
	runner, err := app.NewRunner(cfg)
	if err != nil {
		logger.Error("startup failed", "err", err)
		log.Fatalf("ca-snapshot: %v", err)
	}

	n := runner.Run(cfg.Steps)
	a := runner.Current()
	if err := render.SavePNG(cfg.Out, runner.Board(), render.ForAutomaton(a), cfg.Scale); err != nil {
		logger.Error("snapshot failed", "path", cfg.Out, "err", err)
		log.Fatalf("ca-snapshot: %v", err)
	}
	logger.Info("snapshot written", "path", cfg.Out, "name", a.Name, "generations", n, "quiescent", runner.Halted())
	fmt.Printf("%s: %s after %d generations\n", cfg.Out, a.Name, n)
}
