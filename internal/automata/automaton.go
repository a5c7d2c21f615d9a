// Package automata parses cellular automaton rule notations and advances
// boards one synchronous generation at a time.
//
// Each family has its own compact rule grammar, parsed once by New into an
// immutable Rule. An Engine then applies the rule with Rewrite:
//
//	eng := automata.NewEngine()
//	life, err := automata.New(automata.FamilyLife, "Conway's Life", "23/3")
//	if err != nil {
//		return err
//	}
//	next, changed := eng.Rewrite(life, board)
package automata

import (
	"fmt"

	"tomato-ca/internal/core"
)

// MaxStates is the largest state count a uint8 cell can hold.
const MaxStates = 256

// Family names an automaton family.
type Family string

const (
	FamilyGenerations    Family = "Generations"
	FamilyLife           Family = "Life"
	FamilyCyclic         Family = "Cyclic"
	FamilyLargerThanLife Family = "Larger than Life"
	FamilyNeumannBinary  Family = "Neumann Binary"
	FamilyRulesTable     Family = "Rules Table"
	FamilyWeightedLife   Family = "Weighted Life"
	FamilyLangtonsAnt    Family = "Langton's Ant"
)

// Families lists every family in presentation order.
var Families = []Family{
	FamilyGenerations,
	FamilyLife,
	FamilyCyclic,
	FamilyLargerThanLife,
	FamilyNeumannBinary,
	FamilyRulesTable,
	FamilyWeightedLife,
	FamilyLangtonsAnt,
}

// Rule is the parsed, family-specific transition rule. The set of
// implementations is closed: *Generations, *Cyclic, *LargerThanLife,
// *NeumannBinary, *RulesTable, *WeightedLife and *LangtonsAnt.
type Rule interface {
	Family() Family
	NumStates() int
	isRule()
}

// Stateful is implemented by rules that carry simulation state between
// rewrites. ResetState returns that state to its initial value.
type Stateful interface {
	ResetState()
}

// Automaton is a named, parsed rule ready for use with an Engine.
type Automaton struct {
	Name string
	// Rules holds the source notation as given.
	Rules     string
	NumStates int
	// ColorOverride is nil or holds exactly NumStates colours.
	ColorOverride core.Palette
	Rule          Rule
}

// Family reports the automaton's family.
func (a *Automaton) Family() Family { return a.Rule.Family() }

// Stateful reports whether the automaton keeps state across rewrites.
func (a *Automaton) Stateful() bool {
	_, ok := a.Rule.(Stateful)
	return ok
}

// ResetState resets per-instance simulation state, if any.
func (a *Automaton) ResetState() {
	if s, ok := a.Rule.(Stateful); ok {
		s.ResetState()
	}
}

// SeedStates is the number of states a random fill may use. It is NumStates
// unless a state marks an agent that the fill must not create.
func (a *Automaton) SeedStates() int {
	if s, ok := a.Rule.(interface{ seedStates() int }); ok {
		return s.seedStates()
	}
	return a.NumStates
}

func (a *Automaton) String() string {
	return fmt.Sprintf("%s (%s %q, %d states)", a.Name, a.Family(), a.Rules, a.NumStates)
}

// Option customises an Automaton built by New.
type Option func(*Automaton) error

// WithColorOverride fixes the display palette. The palette must hold exactly
// one colour per state.
func WithColorOverride(p core.Palette) Option {
	return func(a *Automaton) error {
		if len(p) != a.NumStates {
			return &ParseError{
				Family: a.Family(),
				Rules:  a.Rules,
				Field:  "palette",
				Kind:   ErrFieldCount,
				Detail: fmt.Sprintf("%d colours for %d states", len(p), a.NumStates),
			}
		}
		a.ColorOverride = append(core.Palette(nil), p...)
		return nil
	}
}

type parseFunc func(rules string) (Rule, error)

var parsers = map[Family]parseFunc{}

func register(f Family, fn parseFunc) {
	if f == "" || fn == nil {
		return
	}
	parsers[f] = fn
}

// New parses rules in the notation of family f. Construction either succeeds
// completely or returns a *ParseError.
func New(f Family, name, rules string, opts ...Option) (*Automaton, error) {
	parse, ok := parsers[f]
	if !ok {
		return nil, &ParseError{Family: f, Rules: rules, Kind: ErrUnknownFamily}
	}
	rule, err := parse(rules)
	if err != nil {
		return nil, err
	}
	a := &Automaton{Name: name, Rules: rules, NumStates: rule.NumStates(), Rule: rule}
	if d, ok := rule.(interface{ defaultPalette() core.Palette }); ok {
		a.ColorOverride = d.defaultPalette()
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// MustNew is like New but panics on error. It is intended for literal rules
// in tests and examples.
func MustNew(f Family, name, rules string, opts ...Option) *Automaton {
	a, err := New(f, name, rules, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// nextState is the decay step shared by the Generations-style families.
func nextState(s uint8, numStates int) uint8 {
	return uint8((int(s) + 1) % numStates)
}
