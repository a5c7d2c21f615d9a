package automata

import (
	"strings"

	"tomato-ca/internal/core"
	"tomato-ca/internal/neighborhood"
)

// countRange is an inclusive range of neighbor counts. An empty range has
// lo > hi.
type countRange struct {
	lo, hi int
}

func (r countRange) contains(n int) bool { return n >= r.lo && n <= r.hi }

var emptyRange = countRange{lo: 1, hi: 0}

// LargerThanLife generalises Life to ranges up to neighborhood.MaxRange with
// survival and birth given as count intervals.
//
// Notation: comma-separated tagged fields in any order, e.g.
// R5,C0,M1,S34..58,B34..45,NM.
type LargerThanLife struct {
	rng             int
	numStates       int
	countCenterCell bool
	survive         countRange
	birth           countRange
	shape           neighborhood.Shape
}

func (*LargerThanLife) isRule()                     {}
func (*LargerThanLife) Family() Family              { return FamilyLargerThanLife }
func (l *LargerThanLife) NumStates() int            { return l.numStates }
func (l *LargerThanLife) Range() int                { return l.rng }
func (l *LargerThanLife) Shape() neighborhood.Shape { return l.shape }
func (l *LargerThanLife) CountsCenter() bool        { return l.countCenterCell }

// SurviveRange returns the inclusive survival interval.
func (l *LargerThanLife) SurviveRange() (lo, hi int) { return l.survive.lo, l.survive.hi }

// BirthRange returns the inclusive birth interval.
func (l *LargerThanLife) BirthRange() (lo, hi int) { return l.birth.lo, l.birth.hi }

func (l *LargerThanLife) next(c *neighborhood.Counter, b *core.Board, row, col int, s uint8) uint8 {
	if s > 1 {
		return nextState(s, l.numStates)
	}
	n := c.CountExtended(b, l.shape, row, col, excited, l.rng)
	if l.countCenterCell && s == 1 {
		n++
	}
	if s == 0 {
		if l.birth.contains(n) {
			return 1
		}
		return 0
	}
	if l.survive.contains(n) {
		return 1
	}
	return nextState(s, l.numStates)
}

func init() {
	register(FamilyLargerThanLife, func(rules string) (Rule, error) { return parseLargerThanLife(rules) })
}

func parseLargerThanLife(rules string) (*LargerThanLife, error) {
	p := parser{family: FamilyLargerThanLife, rules: rules}
	l := &LargerThanLife{
		rng:       1,
		numStates: 2,
		survive:   emptyRange,
		birth:     emptyRange,
		shape:     neighborhood.Moore,
	}
	// Counts never exceed the full range-10 Moore block.
	const maxCount = (2*neighborhood.MaxRange + 1) * (2*neighborhood.MaxRange + 1)

	for _, field := range strings.Split(rules, ",") {
		if field == "" {
			return nil, p.fail(ErrFieldCount, "", "empty field")
		}
		var err error
		switch field[0] {
		case 'R':
			l.rng, err = p.intIn(field, field[1:], 1, neighborhood.MaxRange)
		case 'C':
			l.numStates, err = p.intIn(field, field[1:], 0, MaxStates)
			l.numStates = max(l.numStates, 2)
		case 'M':
			var m int
			m, err = p.intIn(field, field[1:], 0, 1)
			l.countCenterCell = m == 1
		case 'S':
			l.survive, err = parseCountRange(p, field, maxCount)
		case 'B':
			l.birth, err = parseCountRange(p, field, maxCount)
		case 'N':
			l.shape, err = parseShape(p, field)
		default:
			err = p.fail(ErrUnknownTag, field, "want one of R C M S B N")
		}
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

// parseCountRange reads the body of an S or B field: "a..b" or a single "a".
func parseCountRange(p parser, field string, maxCount int) (countRange, error) {
	body := field[1:]
	loText, hiText, found := strings.Cut(body, "..")
	if !found {
		hiText = loText
	}
	lo, err := p.intIn(field, loText, 0, maxCount)
	if err != nil {
		return countRange{}, err
	}
	hi, err := p.intIn(field, hiText, 0, maxCount)
	if err != nil {
		return countRange{}, err
	}
	if hi < lo {
		return countRange{}, p.fail(ErrOutOfRange, field, "range end %d before start %d", hi, lo)
	}
	return countRange{lo: lo, hi: hi}, nil
}
