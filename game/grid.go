package game

//
// Board state + helpers.
//
// The board is a fixed 9-cell array so it can live on the stack inside
// the guest. Marks are only ever added; nothing clears a cell.
//

// Board is the 3x3 grid in row-major order (rows 0-2, 3-5, 6-8).
type Board [BoardSize]Cell

// winningLines is checked in order: rows, then columns, then diagonals.
var winningLines = [8][3]uint8{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Apply marks pos for side. It fails without touching the board when pos
// is off the grid, the cell is taken, or side is not a player mark.
func (b *Board) Apply(pos uint64, side Cell) bool {
	if pos >= BoardSize || (side != Human && side != Opponent) {
		return false
	}
	if b[pos] != Empty {
		return false
	}
	b[pos] = side
	return true
}

// Winner returns the owner of the first complete line, if any.
func (b Board) Winner() (Cell, bool) {
	for _, w := range winningLines {
		a, c, d := w[0], w[1], w[2]
		if b[a] != Empty && b[a] == b[c] && b[c] == b[d] {
			return b[a], true
		}
	}
	return Empty, false
}

// EmptyCells returns the indices of empty cells in ascending order.
// Only the first n entries of the array are meaningful.
func (b Board) EmptyCells() (cells [BoardSize]uint8, n int) {
	for i, c := range b {
		if c == Empty {
			cells[n] = uint8(i)
			n++
		}
	}
	return cells, n
}

// IsFull reports whether every cell is marked.
func (b Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Candidates returns the empty cells as a non-empty list, or false when
// the board is full.
func (b Board) Candidates() (Candidates, bool) {
	cells, n := b.EmptyCells()
	if n == 0 {
		return Candidates{}, false
	}
	return Candidates{cells: cells, last: uint8(n - 1)}, true
}

// String renders the board the way the terminal session shows it:
// empty cells show their index, marks show Z or K.
func (b Board) String() string {
	out := make([]byte, 0, 30)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			i := r*3 + c
			if b[i] == Empty {
				out = append(out, byte('0'+i))
			} else {
				out = append(out, b[i].Symbol())
			}
			if c < 2 {
				out = append(out, '|')
			}
		}
		out = append(out, '\n')
		if r < 2 {
			out = append(out, "-+-+-\n"...)
		}
	}
	return string(out)
}

// Candidates is an ascending, non-empty list of empty cell indices.
// It stores the index of its last element rather than its length, so the
// zero value still holds one candidate and an empty list cannot exist.
type Candidates struct {
	cells [BoardSize]uint8
	last  uint8
}

// Len returns the number of candidates; always at least 1.
func (c Candidates) Len() int { return int(c.last) + 1 }

// At returns the i-th candidate cell.
func (c Candidates) At(i int) uint8 { return c.cells[i] }
