package automata

import (
	"slices"
	"strings"

	"tomato-ca/internal/core"
	"tomato-ca/internal/neighborhood"
)

// maxWeight bounds the magnitude of each direction weight.
const maxWeight = 256

// WeightedLife sums per-direction weights of live range-1 neighbors (and
// optionally the cell itself) and applies Life-style birth and survival to
// the sum.
//
// Notation: comma-separated tokens NWn NNn NEn WWn MEn EEn SWn SSn SEn, HIn
// for the state count, and any number of RSn / RBn survival and birth sums.
type WeightedLife struct {
	weights   neighborhood.Weights
	survive   []int
	birth     []int
	numStates int
}

func (*WeightedLife) isRule()                         {}
func (*WeightedLife) Family() Family                  { return FamilyWeightedLife }
func (w *WeightedLife) NumStates() int                { return w.numStates }
func (w *WeightedLife) Weights() neighborhood.Weights { return w.weights }
func (w *WeightedLife) Survives(sum int) bool         { return slices.Contains(w.survive, sum) }
func (w *WeightedLife) Births(sum int) bool           { return slices.Contains(w.birth, sum) }

func (w *WeightedLife) next(c *neighborhood.Counter, b *core.Board, row, col int, s uint8) uint8 {
	switch s {
	case 0:
		if w.Births(c.CountWeighted(b, row, col, w.weights)) {
			return 1
		}
		return 0
	case 1:
		if w.Survives(c.CountWeighted(b, row, col, w.weights)) {
			return 1
		}
	}
	return nextState(s, w.numStates)
}

func init() {
	register(FamilyWeightedLife, func(rules string) (Rule, error) { return parseWeightedLife(rules) })
}

func parseWeightedLife(rules string) (*WeightedLife, error) {
	p := parser{family: FamilyWeightedLife, rules: rules}
	w := &WeightedLife{numStates: 2}
	// A weighted sum can never leave this interval.
	const sumLimit = 9 * maxWeight

	for _, tok := range strings.Split(rules, ",") {
		if len(tok) < 3 {
			return nil, p.fail(ErrFieldCount, tok, "token too short")
		}
		tag, body := tok[:2], tok[2:]
		if d, ok := neighborhood.ParseDirection(tag); ok {
			v, err := p.intIn(tok, body, -maxWeight, maxWeight)
			if err != nil {
				return nil, err
			}
			w.weights[d] = v
			continue
		}
		switch tag {
		case "HI":
			v, err := p.intIn(tok, body, 0, MaxStates)
			if err != nil {
				return nil, err
			}
			w.numStates = max(v, 2)
		case "RS":
			v, err := p.intIn(tok, body, -sumLimit, sumLimit)
			if err != nil {
				return nil, err
			}
			w.survive = append(w.survive, v)
		case "RB":
			v, err := p.intIn(tok, body, -sumLimit, sumLimit)
			if err != nil {
				return nil, err
			}
			w.birth = append(w.birth, v)
		default:
			return nil, p.fail(ErrUnknownTag, tok, "unknown tag %q", tag)
		}
	}
	return w, nil
}
