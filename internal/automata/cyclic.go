package automata

import (
	"strings"

	"tomato-ca/internal/core"
	"tomato-ca/internal/neighborhood"
)

// Cyclic is the cyclic cellular automaton. A cell advances to its successor
// state when at least Threshold neighbors within Range already hold that
// successor. In Greenberg-Hastings mode only excited (state 1) neighbors
// count, and every non-resting cell advances unconditionally.
//
// Notation: Rr/Tt/Cc/N[/GH], where N is NM (Moore) or NN (Von Neumann).
type Cyclic struct {
	rng               int
	threshold         int
	numStates         int
	shape             neighborhood.Shape
	greenbergHastings bool
}

func (*Cyclic) isRule()                     {}
func (*Cyclic) Family() Family              { return FamilyCyclic }
func (c *Cyclic) NumStates() int            { return c.numStates }
func (c *Cyclic) Range() int                { return c.rng }
func (c *Cyclic) Threshold() int            { return c.threshold }
func (c *Cyclic) Shape() neighborhood.Shape { return c.shape }
func (c *Cyclic) GreenbergHastings() bool   { return c.greenbergHastings }

// excited is the firing set used in Greenberg-Hastings mode.
var excited = neighborhood.NewStateSet(1)

func (c *Cyclic) next(cnt *neighborhood.Counter, b *core.Board, row, col int, s uint8) uint8 {
	succ := nextState(s, c.numStates)
	if c.greenbergHastings && s != 0 {
		return succ
	}
	firing := excited
	if !c.greenbergHastings {
		firing = neighborhood.StateSet{succ}
	}
	if cnt.CountExtended(b, c.shape, row, col, firing, c.rng) >= c.threshold {
		return succ
	}
	return s
}

func init() {
	register(FamilyCyclic, func(rules string) (Rule, error) { return parseCyclic(rules) })
}

func parseCyclic(rules string) (*Cyclic, error) {
	p := parser{family: FamilyCyclic, rules: rules}
	fields := strings.Split(rules, "/")
	if len(fields) != 4 && len(fields) != 5 {
		return nil, p.fail(ErrFieldCount, "", "got %d fields, want Rr/Tt/Cc/N[/GH]", len(fields))
	}

	c := &Cyclic{}
	var err error
	if c.rng, err = taggedInt(p, fields[0], "R", 1, neighborhood.MaxRange); err != nil {
		return nil, err
	}
	if c.threshold, err = taggedInt(p, fields[1], "T", 0, 1<<16); err != nil {
		return nil, err
	}
	if c.numStates, err = taggedInt(p, fields[2], "C", 2, MaxStates); err != nil {
		return nil, err
	}
	if c.shape, err = parseShape(p, fields[3]); err != nil {
		return nil, err
	}
	if len(fields) == 5 {
		if fields[4] != "GH" {
			return nil, p.fail(ErrBadToken, fields[4], "want GH")
		}
		c.greenbergHastings = true
	}
	return c, nil
}

// taggedInt parses a field of the form <tag><integer>.
func taggedInt(p parser, field, tag string, lo, hi int) (int, error) {
	rest, ok := strings.CutPrefix(field, tag)
	if !ok {
		return 0, p.fail(ErrUnknownTag, field, "want %s prefix", tag)
	}
	return p.intIn(field, rest, lo, hi)
}

// parseShape reads NM (Moore) or NN (Von Neumann).
func parseShape(p parser, field string) (neighborhood.Shape, error) {
	switch field {
	case "NM":
		return neighborhood.Moore, nil
	case "NN":
		return neighborhood.VonNeumann, nil
	}
	if !strings.HasPrefix(field, "N") {
		return 0, p.fail(ErrUnknownTag, field, "want NM or NN")
	}
	return 0, p.fail(ErrBadToken, field, "want NM or NN")
}
