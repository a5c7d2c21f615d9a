package automata

import (
	"strings"

	"tomato-ca/internal/core"
	"tomato-ca/internal/neighborhood"
)

// Generations is the S/B/C family: Life-like birth and survival on the Moore
// neighborhood, with states above 1 decaying one step per generation. Life
// is the two-state case.
type Generations struct {
	family    Family
	survive   [9]bool
	birth     [9]bool
	numStates int
}

func (*Generations) isRule()               {}
func (g *Generations) Family() Family      { return g.family }
func (g *Generations) NumStates() int      { return g.numStates }
func (g *Generations) Survives(n int) bool { return n >= 0 && n < 9 && g.survive[n] }
func (g *Generations) Births(n int) bool   { return n >= 0 && n < 9 && g.birth[n] }

func (g *Generations) next(c *neighborhood.Counter, b *core.Board, row, col int, s uint8) uint8 {
	switch s {
	case 0:
		if g.birth[c.Count(b, neighborhood.Moore, row, col, 0)] {
			return 1
		}
		return 0
	case 1:
		if g.survive[c.Count(b, neighborhood.Moore, row, col, 0)] {
			return 1
		}
	}
	return nextState(s, g.numStates)
}

func init() {
	register(FamilyGenerations, func(rules string) (Rule, error) {
		return parseGenerations(FamilyGenerations, rules)
	})
	register(FamilyLife, func(rules string) (Rule, error) {
		return parseGenerations(FamilyLife, rules)
	})
}

// parseGenerations reads "S/B/C". For Life the C field may be omitted and,
// when present, must be 2.
func parseGenerations(f Family, rules string) (*Generations, error) {
	p := parser{family: f, rules: rules}
	fields := strings.Split(rules, "/")
	g := &Generations{family: f, numStates: 2}

	switch {
	case len(fields) == 3:
		hi := MaxStates
		lo := 2
		if f == FamilyLife {
			hi = 2
		}
		n, err := p.intIn("C", fields[2], lo, hi)
		if err != nil {
			return nil, err
		}
		g.numStates = n
	case len(fields) == 2 && f == FamilyLife:
	default:
		return nil, p.fail(ErrFieldCount, "", "got %d fields, want S/B/C", len(fields))
	}

	if err := parseCounts(p, "S", fields[0], &g.survive); err != nil {
		return nil, err
	}
	if err := parseCounts(p, "B", fields[1], &g.birth); err != nil {
		return nil, err
	}
	return g, nil
}

// parseCounts reads a string of single-digit Moore neighbor counts.
func parseCounts(p parser, field, s string, dst *[9]bool) error {
	for i := 0; i < len(s); i++ {
		n, err := p.digit(field, s[i], 8)
		if err != nil {
			return err
		}
		dst[n] = true
	}
	return nil
}
