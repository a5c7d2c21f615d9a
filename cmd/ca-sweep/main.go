// Command ca-sweep runs every catalog automaton from a random board and
// reports how long each takes to reach a fixed point.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"tomato-ca/internal/app"
	"tomato-ca/internal/automata"
	"tomato-ca/internal/catalog"
	"tomato-ca/internal/sim"
)

type job struct {
	family, index int
}

type result struct {
	family    automata.Family
	name      string
	order     int
	steps     int
	quiescent bool
	live      int
	elapsed   time.Duration
}

func main() {
	cfg := app.NewConfig()
	cfg.Family = ""
	cfg.Rows, cfg.Cols = 64, 64
	cfg.Steps = 500
	fs := flag.CommandLine
	fs.StringVar(&cfg.Family, "family", cfg.Family, "only sweep this family (empty sweeps all)")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "board rows")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "board columns")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the initial board")
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "generation limit per automaton")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	logger := app.SetupLogging(cfg, os.Stderr)
	cat, err := catalog.Load()
	if err != nil {
		logger.Error("catalog failed to build", "err", err)
		log.Fatalf("ca-sweep: %v", err)
	}

	var jobs []job
	for fi, g := range cat.Families() {
		if cfg.Family != "" && string(g.Family) != cfg.Family {
			continue
		}
		for ai := range g.Automata {
			jobs = append(jobs, job{family: fi, index: ai})
		}
	}
	if len(jobs) == 0 {
		log.Fatalf("ca-sweep: no automata in family %q", cfg.Family)
	}

	fmt.Printf("Sweeping %d automata (%d workers, %d steps, %dx%d board)\n", len(jobs), *workers, cfg.Steps, cfg.Rows, cfg.Cols)

	queue := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Langton's Ant keeps state in its rule, so workers must not
			// share automata.
			own, err := catalog.Load()
			if err != nil {
				logger.Error("worker catalog failed", "err", err)
				return
			}
			r := sim.New(own, automata.NewEngine(), cfg.Rows, cfg.Cols)
			for j := range queue {
				results <- runOne(r, j, cfg)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].order < all[j].order })

	for _, res := range all {
		status := "running"
		if res.quiescent {
			status = "fixed"
		}
		fmt.Printf("%-18s %-22s %-7s steps=%-5d live=%-6d %s\n",
			res.family, res.name, status, res.steps, res.live, res.elapsed.Round(time.Millisecond))
	}
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
}

func runOne(r *sim.Runner, j job, cfg *app.Config) result {
	start := time.Now()
	if err := r.Select(j.family, j.index); err != nil {
		log.Fatalf("ca-sweep: %v", err)
	}
	r.Reset(cfg.Seed)
	n := r.Run(cfg.Steps)
	live := 0
	for _, c := range r.Cells() {
		if c != 0 {
			live++
		}
	}
	a := r.Current()
	return result{
		family:    a.Family(),
		name:      a.Name,
		order:     j.family*1000 + j.index,
		steps:     n,
		quiescent: r.Halted(),
		live:      live,
		elapsed:   time.Since(start),
	}
}
