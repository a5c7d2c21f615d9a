package automata

import (
	"strings"

	"tomato-ca/internal/core"
	"tomato-ca/internal/neighborhood"
)

// tableRowLength is the number of neighbor-count columns per state row.
const tableRowLength = 10

// RulesTable maps (current state, range-1 neighbor count) to the next state.
//
// Notation: shape (1 Moore, 2 Von Neumann), count-center flag (0/1),
// plane-1 firing flag (0/1), then the table row-major with ten columns per
// state. The final row may omit trailing zeros.
type RulesTable struct {
	shape                 neighborhood.Shape
	countCenterCell       bool
	firstBitplaneIsFiring bool
	table                 [][tableRowLength]uint8
}

func (*RulesTable) isRule()                     {}
func (*RulesTable) Family() Family              { return FamilyRulesTable }
func (t *RulesTable) NumStates() int            { return len(t.table) }
func (t *RulesTable) Shape() neighborhood.Shape { return t.shape }
func (t *RulesTable) CountsCenter() bool        { return t.countCenterCell }
func (t *RulesTable) BitplaneFiring() bool      { return t.firstBitplaneIsFiring }

// Entry returns table[state][count].
func (t *RulesTable) Entry(state, count int) uint8 { return t.table[state][count] }

func (t *RulesTable) next(c *neighborhood.Counter, b *core.Board, row, col int, s uint8) uint8 {
	var mask uint8
	if t.firstBitplaneIsFiring {
		mask = 1
	}
	n := c.Count(b, t.shape, row, col, mask)
	if t.countCenterCell && s == 1 {
		n++
	}
	return t.table[min(int(s), len(t.table)-1)][n]
}

func init() {
	register(FamilyRulesTable, func(rules string) (Rule, error) { return parseRulesTable(rules) })
}

func parseRulesTable(rules string) (*RulesTable, error) {
	p := parser{family: FamilyRulesTable, rules: rules}
	fields := strings.Split(rules, ",")
	if len(fields) < 4 {
		return nil, p.fail(ErrFieldCount, "", "got %d fields, want 3 flags and at least one table entry", len(fields))
	}

	t := &RulesTable{}
	switch fields[0] {
	case "1":
		t.shape = neighborhood.Moore
	case "2":
		t.shape = neighborhood.VonNeumann
	default:
		return nil, p.fail(ErrBadToken, fields[0], "shape must be 1 or 2")
	}
	var err error
	if t.countCenterCell, err = parseFlag(p, fields[1]); err != nil {
		return nil, err
	}
	if t.firstBitplaneIsFiring, err = parseFlag(p, fields[2]); err != nil {
		return nil, err
	}

	entries := fields[3:]
	rows := (len(entries) + tableRowLength - 1) / tableRowLength
	if rows < 2 {
		return nil, p.fail(ErrFieldCount, "", "table needs at least two rows")
	}
	if rows > MaxStates {
		return nil, p.fail(ErrOutOfRange, "", "%d rows exceed %d states", rows, MaxStates)
	}
	t.table = make([][tableRowLength]uint8, rows)
	for i, e := range entries {
		v, err := p.intIn(e, e, 0, 9)
		if err != nil {
			return nil, err
		}
		if v >= rows {
			return nil, p.fail(ErrOutOfRange, e, "state %d but only %d rows", v, rows)
		}
		t.table[i/tableRowLength][i%tableRowLength] = uint8(v)
	}
	return t, nil
}

func parseFlag(p parser, field string) (bool, error) {
	switch field {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, p.fail(ErrBadToken, field, "flag must be 0 or 1")
}
