package engine

// PaintMode selects how piece cells are drawn.
type PaintMode uint8

const (
	// Erase overwrites the piece's cells with spaces
	Erase PaintMode = iota
	// PaintActive draws the falling piece
	PaintActive
	// PaintFixed draws the piece as locked board material
	PaintFixed
)

// Painter is the engine's view of the incremental renderer. The engine
// decides what changed and in which order; the painter owns glyphs, colors
// and screen geometry.
//
// One event's paint calls are always bracketed by a single Flush, so a
// partially painted transition is never observable on the sink.
type Painter interface {
	// PaintPiece draws or erases the piece's occupied cells that fall
	// inside the visible window.
	PaintPiece(p ActivePiece, mode PaintMode)

	// PaintBoard redraws rowCount visible rows including borders. Only
	// used on start, explicit redraw and line-clear compensation.
	PaintBoard(b *Board, rowCount int)

	// PaintScore overwrites the level/score text region.
	PaintScore(level, score int)

	// ClearScreen blanks the whole screen.
	ClearScreen()

	// BeginLineClear, RowCleared and EndLineClear bracket a clear pass:
	// BeginLineClear runs once before the first collapse, RowCleared after
	// each collapsed board row, EndLineClear once after the last with the
	// total count.
	BeginLineClear()
	RowCleared(row int)
	EndLineClear(b *Board, cleared int)

	// Flush makes the queued draw operations visible.
	Flush()
}
