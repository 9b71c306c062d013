// Package render translates engine state transitions into a minimal
// ordered sequence of draw operations on a terminal sink.
package render

import "github.com/emard/tetris4terminals/piece"

// Sink is the draw-command consumer behind the differ: a cursor-addressed
// glyph protocol in the spirit of a VT100 connection. Implementations may
// translate coordinates to whatever the underlying display needs; the
// differ only assumes (row, col) addressing with row 0 at the top.
type Sink interface {
	// MoveCursor positions the write cursor (0-indexed).
	MoveCursor(row, col int)

	// WriteGlyph writes ch repeat times, advancing the cursor by repeat
	// columns. Repetition honors double-width rendering.
	WriteGlyph(ch rune, repeat int)

	// SetPieceColor selects the background color of a piece kind for
	// subsequent writes; KindNone resets to the default background. A
	// monochrome sink treats every call as a no-op.
	SetPieceColor(k piece.Kind)

	// ClearToEndOfLine blanks from the cursor to the right edge.
	ClearToEndOfLine()

	// ClearScreen blanks everything and homes the cursor.
	ClearScreen()

	// ScrollRegionDown shifts rows 0..atRow down by one, blanking row 0.
	ScrollRegionDown(atRow int)

	// Beep rings the terminal bell.
	Beep()

	// Flush makes queued writes visible.
	Flush()
}
