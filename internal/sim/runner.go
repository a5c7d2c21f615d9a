// Package sim drives a catalog automaton tick by tick on a single board.
package sim

import (
	"fmt"
	"strconv"
	"time"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/catalog"
	"tomato-ca/internal/core"
)

// Delays lists the selectable pause between generations, fastest first.
var Delays = []time.Duration{
	0,
	10 * time.Millisecond,
	25 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
	400 * time.Millisecond,
	800 * time.Millisecond,
}

// DefaultDelay indexes Delays.
const DefaultDelay = 3

// Runner owns the board and the currently selected automaton. It stops
// stepping on its own once a generation changes nothing.
type Runner struct {
	engine  *automata.Engine
	catalog *catalog.Catalog
	board   *core.Board

	family, index int
	generation    int
	halted        bool
	autoHalt      bool

	delay      int
	paintState uint8
}

// New creates a Runner on a cleared rows×cols board with the first catalog
// automaton selected.
func New(cat *catalog.Catalog, eng *automata.Engine, rows, cols int) *Runner {
	r := &Runner{
		engine:   eng,
		catalog:  cat,
		board:    core.NewBoard(rows, cols),
		autoHalt: true,
		delay:    DefaultDelay,
	}
	_ = r.Select(0, 0)
	return r
}

// Current returns the selected automaton.
func (r *Runner) Current() *automata.Automaton {
	return r.catalog.Family(r.family).Automata[r.index]
}

// Selection returns the selected family and automaton indices.
func (r *Runner) Selection() (family, index int) { return r.family, r.index }

// Catalog exposes the catalog the runner selects from.
func (r *Runner) Catalog() *catalog.Catalog { return r.catalog }

// Select switches to automaton index of family. The board is cleared so all
// cells are valid states for the new automaton.
func (r *Runner) Select(family, index int) error {
	if family < 0 || family >= r.catalog.Len() {
		return fmt.Errorf("sim: family %d out of range [0, %d)", family, r.catalog.Len())
	}
	g := r.catalog.Family(family)
	if index < 0 || index >= len(g.Automata) {
		return fmt.Errorf("sim: %s automaton %d out of range [0, %d)", g.Family, index, len(g.Automata))
	}
	r.family, r.index = family, index
	r.paintState = min(r.paintState, uint8(r.Current().NumStates-1))
	r.Clear()
	core.Logger().Info("automaton selected",
		"family", string(g.Family), "name", r.Current().Name, "rules", r.Current().Rules, "states", r.Current().NumStates)
	return nil
}

// Cycle moves the selection by delta automata within the current family,
// wrapping around.
func (r *Runner) Cycle(delta int) {
	n := len(r.catalog.Family(r.family).Automata)
	_ = r.Select(r.family, ((r.index+delta)%n+n)%n)
}

// CycleFamily moves the selection by delta families and picks the first
// automaton of the new family.
func (r *Runner) CycleFamily(delta int) {
	n := r.catalog.Len()
	_ = r.Select(((r.family+delta)%n+n)%n, 0)
}

// Name implements core.Sim.
func (r *Runner) Name() string { return r.Current().Name }

// Size implements core.Sim.
func (r *Runner) Size() core.Size { return core.Size{W: r.board.Cols, H: r.board.Rows} }

// Cells implements core.Sim.
func (r *Runner) Cells() []uint8 { return r.board.Cells() }

// Board returns the current board. Callers must not retain it across steps.
func (r *Runner) Board() *core.Board { return r.board }

// Reset implements core.Sim by filling the board with random valid states.
func (r *Runner) Reset(seed int64) {
	r.board.Randomize(core.NewRNG(seed), r.Current().SeedStates())
	r.restart()
}

// Clear zeroes the board.
func (r *Runner) Clear() {
	r.board.Clear()
	r.restart()
}

func (r *Runner) restart() {
	r.Current().ResetState()
	r.generation = 0
	r.halted = false
}

// Step implements core.Sim.
func (r *Runner) Step() { r.Advance() }

// Advance computes one generation unless the runner is halted. It reports
// whether the board changed.
func (r *Runner) Advance() bool {
	if r.halted {
		return false
	}
	next, changed := r.engine.Rewrite(r.Current(), r.board)
	r.board = next
	r.generation++
	if !changed && r.autoHalt {
		r.halted = true
		core.Logger().Info("board quiescent", "name", r.Current().Name, "generation", r.generation)
	}
	return changed
}

// Run advances up to steps generations, stopping early once halted. It
// returns the number of generations computed.
func (r *Runner) Run(steps int) int {
	n := 0
	for n < steps && !r.halted {
		r.Advance()
		n++
	}
	return n
}

// Generation reports how many generations have been computed since the last
// reset.
func (r *Runner) Generation() int { return r.generation }

// Halted reports whether stepping stopped after a quiescent generation.
func (r *Runner) Halted() bool { return r.halted }

// Resume clears the halted flag.
func (r *Runner) Resume() { r.halted = false }

// SetAutoHalt controls whether a quiescent generation halts stepping.
func (r *Runner) SetAutoHalt(on bool) {
	r.autoHalt = on
	if !on {
		r.halted = false
	}
}

// Paint sets one cell, wrapping coordinates and clamping state into
// [0, NumStates). Painting resumes a halted runner.
func (r *Runner) Paint(row, col int, state uint8) {
	state = min(state, uint8(r.Current().NumStates-1))
	r.board.Set(row, col, state)
	r.halted = false
}

// PaintState is the state applied by front-end painting.
func (r *Runner) PaintState() uint8 { return r.paintState }

// Delay returns the pause between generations.
func (r *Runner) Delay() time.Duration { return Delays[r.delay] }

// DelayIndex returns the position of Delay in Delays.
func (r *Runner) DelayIndex() int { return r.delay }

// ParameterControls exposes the adjustable runner settings.
func (r *Runner) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "delay", Label: "Speed", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: len(Delays) - 1},
		{Key: "paint_state", Label: "Paint state", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: r.Current().NumStates - 1},
	}
}

// SetIntParameter updates a runner setting, clamping to its bounds.
func (r *Runner) SetIntParameter(key string, value int) bool {
	switch key {
	case "delay":
		r.delay = clamp(value, 0, len(Delays)-1)
	case "paint_state":
		r.paintState = uint8(clamp(value, 0, r.Current().NumStates-1))
	default:
		return false
	}
	return true
}

// Parameters snapshots the selection and run state for display.
func (r *Runner) Parameters() core.ParameterSnapshot {
	a := r.Current()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Automaton",
			Params: []core.Parameter{
				textParam("family", "Family", string(a.Family())),
				textParam("name", "Name", a.Name),
				textParam("rules", "Rules", a.Rules),
				intParam("states", "States", a.NumStates),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", r.generation),
				boolParam("halted", "Halted", r.halted),
				intParam("delay", "Speed", r.delay),
				textParam("delay_ms", "Delay", r.Delay().String()),
				intParam("paint_state", "Paint state", int(r.paintState)),
			},
		},
	}}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
