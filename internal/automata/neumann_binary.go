package automata

import (
	"tomato-ca/internal/core"
	"tomato-ca/internal/neighborhood"
)

// NeumannBinary looks up each cell's next state in a table indexed by its Von
// Neumann configuration read as a base-NumStates number, self most
// significant and west least.
//
// Notation: the base (2, 3 or 4) followed by base^5 single-digit states.
type NeumannBinary struct {
	numStates int
	table     []uint8
}

func (*NeumannBinary) isRule()          {}
func (*NeumannBinary) Family() Family   { return FamilyNeumannBinary }
func (n *NeumannBinary) NumStates() int { return n.numStates }

// Lookup returns the table entry for index i.
func (n *NeumannBinary) Lookup(i int) uint8 { return n.table[i] }

// Index converts a (self, N, E, S, W) configuration into its table index.
// Digits at or above NumStates are clamped to NumStates-1.
func (n *NeumannBinary) Index(cfg [5]uint8) int {
	idx := 0
	top := uint8(n.numStates - 1)
	for _, v := range cfg {
		idx = idx*n.numStates + int(min(v, top))
	}
	return idx
}

func (n *NeumannBinary) next(c *neighborhood.Counter, b *core.Board, row, col int) uint8 {
	return n.table[n.Index(c.Configuration(b, row, col))]
}

func init() {
	register(FamilyNeumannBinary, func(rules string) (Rule, error) { return parseNeumannBinary(rules) })
}

func parseNeumannBinary(rules string) (*NeumannBinary, error) {
	p := parser{family: FamilyNeumannBinary, rules: rules}
	if rules == "" {
		return nil, p.fail(ErrFieldCount, "", "missing base")
	}
	base, err := p.digit("base", rules[0], 9)
	if err != nil {
		return nil, err
	}
	if base < 2 || base > 4 {
		return nil, p.fail(ErrOutOfRange, "base", "base %d not in [2, 4]", base)
	}

	size := base * base * base * base * base
	body := rules[1:]
	if len(body) != size {
		return nil, p.fail(ErrFieldCount, "table", "got %d entries, want %d", len(body), size)
	}
	n := &NeumannBinary{numStates: base, table: make([]uint8, size)}
	for i := 0; i < size; i++ {
		v, err := p.digit("table", body[i], base-1)
		if err != nil {
			return nil, err
		}
		n.table[i] = uint8(v)
	}
	return n, nil
}
