// Package neighborhood precomputes neighbor offsets for Moore and Von Neumann
// neighborhoods and counts neighbors on a toroidal board.
package neighborhood

import "fmt"

// MaxRange is the largest neighborhood range any rule family uses.
const MaxRange = 10

// Shape selects which cells around a center count as neighbors.
type Shape uint8

const (
	// Moore includes every cell within Chebyshev distance r.
	Moore Shape = iota
	// VonNeumann includes every cell within Manhattan distance r.
	VonNeumann
)

func (s Shape) String() string {
	switch s {
	case Moore:
		return "moore"
	case VonNeumann:
		return "von-neumann"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Offset is a relative (row, col) delta from a center cell.
type Offset struct {
	DR, DC int
}

// Offsets holds the precomputed offset lists for both shapes and every range
// in 1..MaxRange. It is read-only after NewOffsets returns.
type Offsets struct {
	moore      [MaxRange][]Offset
	vonNeumann [MaxRange][]Offset
}

// NewOffsets builds the offset tables for all supported ranges.
func NewOffsets() *Offsets {
	o := &Offsets{}
	for r := 1; r <= MaxRange; r++ {
		o.moore[r-1] = generate(Moore, r)
		o.vonNeumann[r-1] = generate(VonNeumann, r)
	}
	return o
}

// Get returns the offsets for the shape at range r in row-major order. The
// returned slice must not be modified. It returns nil when r is outside
// 1..MaxRange.
func (o *Offsets) Get(shape Shape, r int) []Offset {
	if r < 1 || r > MaxRange {
		return nil
	}
	if shape == VonNeumann {
		return o.vonNeumann[r-1]
	}
	return o.moore[r-1]
}

func generate(shape Shape, r int) []Offset {
	var out []Offset
	for dr := -r; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if shape == VonNeumann && abs(dr)+abs(dc) > r {
				continue
			}
			out = append(out, Offset{DR: dr, DC: dc})
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
