package automata

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"tomato-ca/internal/core"
	"tomato-ca/internal/neighborhood"
)

// Engine applies rules to boards. It owns the neighborhood offset table,
// which is built once in NewEngine and only read afterwards.
type Engine struct {
	counter *neighborhood.Counter
	workers int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithWorkers splits every generation into n row bands evaluated
// concurrently. Values below 2 evaluate serially.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) { e.workers = n }
}

// WithCounter shares an existing counter, and so its offset table, between
// engines.
func WithCounter(c *neighborhood.Counter) EngineOption {
	return func(e *Engine) { e.counter = c }
}

// NewEngine builds an Engine. Without WithCounter it precomputes a fresh
// offset table.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.counter == nil {
		e.counter = neighborhood.NewCounter(neighborhood.NewOffsets())
	}
	return e
}

// Counter exposes the engine's neighbor counter.
func (e *Engine) Counter() *neighborhood.Counter { return e.counter }

// Workers reports the configured band count.
func (e *Engine) Workers() int { return e.workers }

// Rewrite computes the generation after b. The input board is never modified;
// the result is a fresh board. changed reports whether any cell differs.
func (e *Engine) Rewrite(a *Automaton, b *core.Board) (*core.Board, bool) {
	c := e.counter
	switch r := a.Rule.(type) {
	case *Generations:
		return e.generation(b, func(row, col int, s uint8) uint8 { return r.next(c, b, row, col, s) })
	case *Cyclic:
		return e.generation(b, func(row, col int, s uint8) uint8 { return r.next(c, b, row, col, s) })
	case *LargerThanLife:
		return e.generation(b, func(row, col int, s uint8) uint8 { return r.next(c, b, row, col, s) })
	case *NeumannBinary:
		return e.generation(b, func(row, col int, s uint8) uint8 { return r.next(c, b, row, col) })
	case *RulesTable:
		return e.generation(b, func(row, col int, s uint8) uint8 { return r.next(c, b, row, col, s) })
	case *WeightedLife:
		return e.generation(b, func(row, col int, s uint8) uint8 { return r.next(c, b, row, col, s) })
	case *LangtonsAnt:
		return r.rewrite(b)
	default:
		panic(fmt.Sprintf("automata: unsupported rule %T", a.Rule))
	}
}

// cellFunc returns the next state of (row, col), whose current state is s.
type cellFunc func(row, col int, s uint8) uint8

// generation evaluates next for every cell of src into a fresh board.
func (e *Engine) generation(src *core.Board, next cellFunc) (*core.Board, bool) {
	dst := core.NewBoard(src.Rows, src.Cols)
	bands := e.workers
	if bands > src.Rows {
		bands = src.Rows
	}
	if bands < 2 {
		return dst, evalRows(src, dst, 0, src.Rows, next)
	}

	changed := make([]bool, bands)
	per := (src.Rows + bands - 1) / bands
	var g errgroup.Group
	for i := 0; i < bands; i++ {
		lo := i * per
		hi := min(lo+per, src.Rows)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			changed[i] = evalRows(src, dst, lo, hi, next)
			return nil
		})
	}
	_ = g.Wait()
	for _, c := range changed {
		if c {
			return dst, true
		}
	}
	return dst, false
}

func evalRows(src, dst *core.Board, lo, hi int, next cellFunc) bool {
	cur := src.Cells()
	out := dst.Cells()
	changed := false
	for row := lo; row < hi; row++ {
		for col := 0; col < src.Cols; col++ {
			idx := src.Index(row, col)
			s := cur[idx]
			n := next(row, col, s)
			out[idx] = n
			if n != s {
				changed = true
			}
		}
	}
	return changed
}
