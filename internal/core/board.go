package core

// DefaultBoardSize is the edge length of the reference square board.
const DefaultBoardSize = 100

// Board stores a toroidal grid of cell states in row-major order.
type Board struct {
	Rows, Cols int
	data       []uint8
}

// NewBoard allocates a zeroed board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Board{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.data }

// Index returns the linear slice index for (row, col). Coordinates must
// already be in range.
func (b *Board) Index(row, col int) int { return row*b.Cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(row, col int) (int, int) {
	row = (row%b.Rows + b.Rows) % b.Rows
	col = (col%b.Cols + b.Cols) % b.Cols
	return row, col
}

// At returns the state at (row, col), wrapping out-of-range coordinates.
func (b *Board) At(row, col int) uint8 {
	row, col = b.Wrap(row, col)
	return b.data[row*b.Cols+col]
}

// Set writes the state at (row, col), wrapping out-of-range coordinates.
func (b *Board) Set(row, col int, v uint8) {
	row, col = b.Wrap(row, col)
	b.data[row*b.Cols+col] = v
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{Rows: b.Rows, Cols: b.Cols, data: make([]uint8, len(b.data))}
	copy(c.data, b.data)
	return c
}

// Equal reports whether both boards have the same size and contents.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.Rows != o.Rows || b.Cols != o.Cols {
		return false
	}
	for i, v := range b.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Clear fills the board with zeros.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Randomize fills the board with uniformly distributed states in
// [0, numStates).
func (b *Board) Randomize(rng *RNG, numStates int) {
	FillStates(rng.Source(), b.data, numStates)
}
