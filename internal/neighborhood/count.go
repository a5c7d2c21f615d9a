package neighborhood

import (
	"fmt"

	"tomato-ca/internal/core"
)

// Direction names one of the nine cells of a range-1 Moore block.
type Direction uint8

const (
	NW Direction = iota
	NN
	NE
	WW
	ME
	EE
	SW
	SS
	SE
	numDirections
)

var directionTags = [numDirections]string{"NW", "NN", "NE", "WW", "ME", "EE", "SW", "SS", "SE"}

var directionOffsets = [numDirections]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (d Direction) String() string {
	if d < numDirections {
		return directionTags[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Offset returns the relative position of the direction. ME is (0, 0).
func (d Direction) Offset() Offset { return directionOffsets[d] }

// ParseDirection resolves a two-letter tag such as "NW" or "ME".
func ParseDirection(tag string) (Direction, bool) {
	for i, t := range directionTags {
		if t == tag {
			return Direction(i), true
		}
	}
	return 0, false
}

// Weights assigns an integer weight to each direction. Unset directions weigh
// zero.
type Weights [numDirections]int

// StateSet is a small explicit set of firing states.
type StateSet []uint8

// NewStateSet returns a set containing the given states.
func NewStateSet(states ...uint8) StateSet { return StateSet(states) }

// Contains reports whether s is a member of the set.
func (fs StateSet) Contains(s uint8) bool {
	for _, v := range fs {
		if v == s {
			return true
		}
	}
	return false
}

// Counter counts neighbors against a shared, read-only offset table.
type Counter struct {
	offsets *Offsets
}

// NewCounter returns a Counter backed by o. A nil o builds a fresh table.
func NewCounter(o *Offsets) *Counter {
	if o == nil {
		o = NewOffsets()
	}
	return &Counter{offsets: o}
}

// Offsets exposes the table the counter reads from.
func (c *Counter) Offsets() *Offsets { return c.offsets }

// Count counts range-1 neighbors of (row, col). With a zero bitmask a
// neighbor fires when its state is exactly 1; otherwise it fires when its
// state shares a bit with bitmask.
func (c *Counter) Count(b *core.Board, shape Shape, row, col int, bitmask uint8) int {
	n := 0
	for _, off := range c.offsets.Get(shape, 1) {
		s := b.At(row+off.DR, col+off.DC)
		if bitmask == 0 {
			if s == 1 {
				n++
			}
		} else if s&bitmask != 0 {
			n++
		}
	}
	return n
}

// CountExtended counts neighbors within range r whose state is in firing.
func (c *Counter) CountExtended(b *core.Board, shape Shape, row, col int, firing StateSet, r int) int {
	n := 0
	for _, off := range c.offsets.Get(shape, r) {
		if firing.Contains(b.At(row+off.DR, col+off.DC)) {
			n++
		}
	}
	return n
}

// CountWeighted sums the weight of every direction whose cell is in state 1.
// The ME weight applies to the cell itself.
func (c *Counter) CountWeighted(b *core.Board, row, col int, w Weights) int {
	sum := 0
	for d, off := range directionOffsets {
		if w[d] == 0 {
			continue
		}
		if b.At(row+off.DR, col+off.DC) == 1 {
			sum += w[d]
		}
	}
	return sum
}

// Configuration returns the states of (self, north, east, south, west).
func (c *Counter) Configuration(b *core.Board, row, col int) [5]uint8 {
	return [5]uint8{
		b.At(row, col),
		b.At(row-1, col),
		b.At(row, col+1),
		b.At(row+1, col),
		b.At(row, col-1),
	}
}
