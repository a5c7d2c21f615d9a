package app

import (
	"fmt"
	"io"
	"log/slog"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/catalog"
	"tomato-ca/internal/core"
	"tomato-ca/internal/sim"
)

// SetupLogging installs a text logger on w at the configured level.
func SetupLogging(c *Config, w io.Writer) *slog.Logger {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: core.ParseLevel(c.LogLevel)}))
	core.SetLogger(l)
	return l
}

// NewRunner builds the catalog and a runner with the configured automaton
// selected and the board seeded.
func NewRunner(c *Config) (*sim.Runner, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, fmt.Errorf("app: board must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	fi, ai, ok := cat.Lookup(c.Family, c.Automaton)
	if !ok {
		return nil, fmt.Errorf("app: unknown automaton %q in family %q", c.Automaton, c.Family)
	}
	r := sim.New(cat, automata.NewEngine(automata.WithWorkers(c.Workers)), c.Rows, c.Cols)
	if err := r.Select(fi, ai); err != nil {
		return nil, err
	}
	r.SetIntParameter("delay", c.Delay)
	r.Reset(c.Seed)
	return r, nil
}
