package render

import (
	"fmt"

	"github.com/emard/tetris4terminals/constants"
	"github.com/emard/tetris4terminals/engine"
	"github.com/emard/tetris4terminals/piece"
)

// Display glyphs. Plain ASCII so any terminal can render the board.
const (
	glyphSpace  = ' '
	glyphWall   = '|'
	glyphFloor  = '|'
	glyphActive = 'H'
	glyphFixed  = 'X'
)

// Layout describes the on-screen geometry of the board window.
type Layout struct {
	// Rows and Cols are the board dimensions. The window shows the bottom
	// Rows-1 rows; the spawn row stays hidden above it.
	Rows, Cols int

	// XOffset is the left margin in board cells before the border column
	XOffset int

	// GlyphWidth is cells per board column: 1 single, 2 double-width
	GlyphWidth int

	// Scroll selects the scroll-region shift on line clears instead of a
	// full board repaint
	Scroll bool
}

// DefaultLayout returns the layout for a board of the given dimensions.
func DefaultLayout(rows, cols int) Layout {
	return Layout{
		Rows:       rows,
		Cols:       cols,
		XOffset:    constants.BoardXOffset,
		GlyphWidth: constants.DefaultGlyphWidth,
		Scroll:     true,
	}
}

// Differ implements engine.Painter against a Sink. It never repaints the
// whole board for a one-step fall: a piece transition costs one
// cursor+glyph pair per occupied cell, erase then repaint.
type Differ struct {
	sink Sink
	l    Layout
}

// NewDiffer creates a differ for the given sink and layout.
func NewDiffer(sink Sink, l Layout) *Differ {
	if l.Rows < 2 || l.Cols < 1 || l.GlyphWidth < 1 {
		panic(fmt.Sprintf("render: invalid layout %+v", l))
	}
	return &Differ{sink: sink, l: l}
}

// topRow is the first board row inside the visible window.
func (d *Differ) topRow() int { return 1 }

// visibleRows is the window height in board rows.
func (d *Differ) visibleRows() int { return d.l.Rows - 1 }

// windowRow converts a board row to a window row.
func (d *Differ) windowRow(boardRow int) int { return boardRow - d.topRow() }

// cellCol converts a board column to the sink column of its left edge.
func (d *Differ) cellCol(boardCol int) int {
	return (d.l.XOffset + boardCol) * d.l.GlyphWidth
}

// PaintPiece draws or erases the piece's occupied cells inside the window.
func (d *Differ) PaintPiece(p engine.ActivePiece, mode engine.PaintMode) {
	var ch rune
	switch mode {
	case engine.PaintActive:
		ch = glyphActive
		d.sink.SetPieceColor(p.Kind)
	case engine.PaintFixed:
		ch = glyphFixed
		d.sink.SetPieceColor(p.Kind)
	default:
		ch = glyphSpace
		d.sink.SetPieceColor(piece.KindNone)
	}

	p.Each(func(row, col int) {
		if row < d.topRow() || row >= d.l.Rows {
			return
		}
		if col < 0 || col >= d.l.Cols {
			return
		}
		d.sink.MoveCursor(d.windowRow(row), d.cellCol(col))
		d.sink.WriteGlyph(ch, d.l.GlyphWidth)
	})
}

// PaintBoard redraws rowCount window rows from the top, borders included.
// Painting the full window also draws the floor line beneath it.
func (d *Differ) PaintBoard(b *engine.Board, rowCount int) {
	d.sink.SetPieceColor(piece.KindNone)

	for r := 0; r < rowCount; r++ {
		d.sink.MoveCursor(r, d.cellCol(-1))
		d.sink.WriteGlyph(glyphWall, d.l.GlyphWidth)
		for c := 0; c < d.l.Cols; c++ {
			ch := rune(glyphSpace)
			if b.At(r+d.topRow(), c) {
				ch = glyphFixed
			}
			d.sink.WriteGlyph(ch, d.l.GlyphWidth)
		}
		d.sink.WriteGlyph(glyphWall, d.l.GlyphWidth)
	}

	if rowCount == d.visibleRows() {
		d.sink.MoveCursor(d.visibleRows(), d.cellCol(-1))
		d.sink.WriteGlyph(glyphFloor, d.l.GlyphWidth*(d.l.Cols+2))
	}
}

// PaintScore overwrites the fixed level/score text region.
func (d *Differ) PaintScore(level, score int) {
	d.sink.SetPieceColor(piece.KindNone)
	d.writeText(constants.ScoreRow, constants.ScoreCol, fmt.Sprintf("Level: %d", level))
	d.writeText(constants.ScoreRow+1, constants.ScoreCol, fmt.Sprintf("Score: %d", score))
}

// ClearScreen blanks the screen.
func (d *Differ) ClearScreen() {
	d.sink.SetPieceColor(piece.KindNone)
	d.sink.ClearScreen()
}

// BeginLineClear resets the paint color and, when scrolling, blanks the
// score region so the region shift cannot smear its text.
func (d *Differ) BeginLineClear() {
	d.sink.SetPieceColor(piece.KindNone)
	if d.l.Scroll {
		for r := constants.ScoreRow; r < constants.ScoreRow+2; r++ {
			d.sink.MoveCursor(r, constants.ScoreCol)
			d.sink.ClearToEndOfLine()
		}
	}
}

// RowCleared compensates one collapsed board row. In scroll mode the
// terminal shifts the rows visually; otherwise EndLineClear repaints.
func (d *Differ) RowCleared(row int) {
	if !d.l.Scroll {
		return
	}
	d.sink.ScrollRegionDown(d.windowRow(row))
}

// EndLineClear rings the bell and repaints what the clears disturbed: in
// scroll mode only the rows that scrolled in from the top (restoring their
// borders), otherwise the whole window.
func (d *Differ) EndLineClear(b *engine.Board, cleared int) {
	d.sink.Beep()
	if d.l.Scroll {
		d.PaintBoard(b, cleared)
	} else {
		d.PaintBoard(b, d.visibleRows())
	}
}

// Flush forwards to the sink.
func (d *Differ) Flush() {
	d.sink.Flush()
}

func (d *Differ) writeText(row, col int, text string) {
	d.sink.MoveCursor(row, col)
	for _, ch := range text {
		d.sink.WriteGlyph(ch, 1)
	}
}
