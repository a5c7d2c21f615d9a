package automata

import (
	"strings"

	"tomato-ca/internal/core"
)

const (
	antOff uint8 = iota
	antOn
	antMarker
)

// Heading is the direction the ant faces.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
	numHeadings
)

var headingMoves = [numHeadings][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// DefaultAntStart is the centre of the reference board.
var DefaultAntStart = [2]int{core.DefaultBoardSize / 2, core.DefaultBoardSize / 2}

// LangtonsAnt is a turtle on a two-colour board. It is the only stateful
// rule: the ant's position, heading and the state of the square beneath it
// persist between rewrites.
//
// Notation: empty for DefaultAntStart, or "row,col".
type LangtonsAnt struct {
	startRow, startCol int

	row, col int
	heading  Heading
	under    uint8
}

func (*LangtonsAnt) isRule()        {}
func (*LangtonsAnt) Family() Family { return FamilyLangtonsAnt }
func (*LangtonsAnt) NumStates() int { return 3 }

func (*LangtonsAnt) seedStates() int { return 2 }

func (*LangtonsAnt) defaultPalette() core.Palette {
	return core.Palette{{255, 255, 255}, {0, 0, 0}, {255, 0, 0}}
}

// Position returns the ant's current (row, col) and heading.
func (a *LangtonsAnt) Position() (row, col int, h Heading) { return a.row, a.col, a.heading }

// ResetState returns the ant to its start square facing up.
func (a *LangtonsAnt) ResetState() {
	a.row, a.col = a.startRow, a.startCol
	a.heading = Up
	a.under = antOff
}

func (a *LangtonsAnt) rewrite(b *core.Board) (*core.Board, bool) {
	next := b.Clone()
	a.row, a.col = b.Wrap(a.row, a.col)

	if b.At(a.row, a.col) != antMarker {
		a.under = b.At(a.row, a.col)
		next.Set(a.row, a.col, antMarker)
		return next, true
	}

	if a.under == antOn {
		next.Set(a.row, a.col, antOff)
		a.heading = (a.heading + numHeadings - 1) % numHeadings
	} else {
		next.Set(a.row, a.col, antOn)
		a.heading = (a.heading + 1) % numHeadings
	}

	move := headingMoves[a.heading]
	a.row, a.col = b.Wrap(a.row+move[0], a.col+move[1])
	a.under = b.At(a.row, a.col)
	next.Set(a.row, a.col, antMarker)
	return next, true
}

func init() {
	register(FamilyLangtonsAnt, func(rules string) (Rule, error) { return parseLangtonsAnt(rules) })
}

func parseLangtonsAnt(rules string) (*LangtonsAnt, error) {
	p := parser{family: FamilyLangtonsAnt, rules: rules}
	a := &LangtonsAnt{startRow: DefaultAntStart[0], startCol: DefaultAntStart[1]}
	if rules != "" {
		rowText, colText, ok := strings.Cut(rules, ",")
		if !ok {
			return nil, p.fail(ErrFieldCount, "", "want row,col")
		}
		var err error
		if a.startRow, err = p.intIn(rowText, rowText, 0, 1<<20); err != nil {
			return nil, err
		}
		if a.startCol, err = p.intIn(colText, colText, 0, 1<<20); err != nil {
			return nil, err
		}
	}
	a.ResetState()
	return a, nil
}
