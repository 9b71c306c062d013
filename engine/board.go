package engine

import "fmt"

// Board holds the fixed (locked) cells of the playfield. Row 0 is the top;
// the active piece is kept separately and only merged in when it locks.
//
// A flat bool slice; the playfield is small enough that bit packing buys
// nothing over the simple get/set contract.
type Board struct {
	rows, cols int
	cells      []bool
}

// NewBoard creates an empty rows x cols board.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("engine: invalid board dimensions %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the row count.
func (b *Board) Rows() int { return b.rows }

// Cols returns the column count.
func (b *Board) Cols() int { return b.cols }

// index validates (row, col) and returns the flat cell index. Out-of-bounds
// access is a programming error, never a silent no-op.
func (b *Board) index(row, col int) int {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		panic(fmt.Sprintf("engine: board access out of bounds: (%d,%d) on %dx%d", row, col, b.rows, b.cols))
	}
	return row*b.cols + col
}

// At reports whether the cell at (row, col) is occupied.
func (b *Board) At(row, col int) bool {
	return b.cells[b.index(row, col)]
}

// Set marks the cell at (row, col) occupied or empty.
func (b *Board) Set(row, col int, occupied bool) {
	b.cells[b.index(row, col)] = occupied
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

// RowComplete reports whether every column of the row is occupied.
func (b *Board) RowComplete(row int) bool {
	for c := 0; c < b.cols; c++ {
		if !b.At(row, c) {
			return false
		}
	}
	return true
}

// CollapseRow removes the (presumed complete) row: every row above it
// shifts down by one and row 0 becomes empty. Rows below are untouched, so
// simultaneously complete rows can be collapsed one by one in a single
// top-to-bottom scan without index adjustment.
func (b *Board) CollapseRow(row int) {
	for r := row; r > 0; r-- {
		for c := 0; c < b.cols; c++ {
			b.Set(r, c, b.At(r-1, c))
		}
	}
	for c := 0; c < b.cols; c++ {
		b.Set(0, c, false)
	}
}
