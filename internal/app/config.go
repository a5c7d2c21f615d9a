package app

import (
	"flag"
	"strconv"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/core"
	"tomato-ca/internal/sim"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Family    string
	Automaton string
	Rows      int
	Cols      int
	Scale     int
	TPS       int
	Delay     int
	Seed      int64
	Workers   int
	LogLevel  string

	// Steps and Out are only read by the snapshot tool.
	Steps int
	Out   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Family:   string(automata.FamilyLife),
		Rows:     core.DefaultBoardSize,
		Cols:     core.DefaultBoardSize,
		Scale:    6,
		TPS:      60,
		Delay:    sim.DefaultDelay,
		Seed:     42,
		Workers:  1,
		LogLevel: "info",
		Steps:    100,
		Out:      "snapshot.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Family, "family", c.Family, "initial rule family")
	fs.StringVar(&c.Automaton, "automaton", c.Automaton, "initial automaton name (empty selects the first of the family)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Delay, "delay", c.Delay, "index into the generation delay table")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated in parallel per generation")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run before writing output")
	fs.StringVar(&c.Out, "out", c.Out, "output file")
}

// FromMap builds a Config from key/value pairs, keeping the default for any
// key that is missing or does not parse.
func FromMap(cfg map[string]string) *Config {
	c := NewConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["family"]; ok && v != "" {
		c.Family = v
	}
	if v, ok := cfg["automaton"]; ok {
		c.Automaton = v
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("rows", &c.Rows)
	positive("cols", &c.Cols)
	positive("scale", &c.Scale)
	positive("tps", &c.TPS)
	positive("workers", &c.Workers)
	positive("steps", &c.Steps)
	if v, ok := cfg["delay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < len(sim.Delays) {
			c.Delay = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["log_level"]; ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := cfg["out"]; ok && v != "" {
		c.Out = v
	}
	return c
}
