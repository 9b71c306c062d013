package engine

import "github.com/emard/tetris4terminals/piece"

// ActivePiece is the currently falling piece: its kind, rotation index and
// the board position of the mask's top-left corner. The anchor row may be
// negative or point above the visible window; only occupied mask cells are
// subject to the fit test.
type ActivePiece struct {
	Kind     piece.Kind
	Rotation int
	Row, Col int
}

// Mask returns the piece's current 4x4 occupancy mask.
func (p ActivePiece) Mask() piece.Mask {
	return piece.Shape(p.Kind, p.Rotation)
}

// Each calls fn for every occupied cell of the piece in absolute board
// coordinates. Cells may lie above row 0.
func (p ActivePiece) Each(fn func(row, col int)) {
	m := p.Mask()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if m.At(i, j) {
				fn(p.Row+i, p.Col+j)
			}
		}
	}
}

// Fits reports whether every occupied cell of the piece lies within the
// side and bottom bounds and on an empty board cell. There is no top
// bound: pieces spawn at the top margin and may extend above it.
//
// Fits is a pure predicate; it never mutates the board or the piece.
func Fits(b *Board, p ActivePiece) bool {
	m := p.Mask()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !m.At(i, j) {
				continue
			}
			col := p.Col + j
			if col < 0 || col >= b.Cols() {
				return false
			}
			row := p.Row + i
			if row >= b.Rows() {
				return false
			}
			if row >= 0 && b.At(row, col) {
				return false
			}
		}
	}
	return true
}

// MoveLeft shifts the piece one column left if it still fits, reporting
// whether the move was committed. A rejected move leaves the piece exactly
// where it was.
func (p *ActivePiece) MoveLeft(b *Board) bool {
	p.Col--
	if Fits(b, *p) {
		return true
	}
	p.Col++
	return false
}

// MoveRight shifts the piece one column right if it still fits.
func (p *ActivePiece) MoveRight(b *Board) bool {
	p.Col++
	if Fits(b, *p) {
		return true
	}
	p.Col--
	return false
}

// Rotate turns the piece by dir quarter-turns through the rotation table.
// The undo on rejection is the exact algebraic inverse (subtracting dir),
// so repeated failed rotations cannot drift the state.
func (p *ActivePiece) Rotate(b *Board, dir int) bool {
	p.Rotation += dir
	if Fits(b, *p) {
		return true
	}
	p.Rotation -= dir
	return false
}

// Fall advances the piece one row down if it still fits.
func (p *ActivePiece) Fall(b *Board) bool {
	p.Row++
	if Fits(b, *p) {
		return true
	}
	p.Row--
	return false
}
