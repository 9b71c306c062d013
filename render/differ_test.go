package render

import (
	"strings"
	"testing"

	"github.com/emard/tetris4terminals/constants"
	"github.com/emard/tetris4terminals/engine"
	"github.com/emard/tetris4terminals/piece"
)

// fakeSink records draw operations into a character grid so tests can
// assert both the final picture and the operation counts.
type fakeSink struct {
	grid     [30][100]rune
	row, col int
	color    piece.Kind

	moves, writes int
	scrolls       []int
	beeps         int
	flushes       int
	screenClears  int
	lineClears    int
}

func newFakeSink() *fakeSink {
	s := &fakeSink{}
	s.blank()
	return s
}

func (s *fakeSink) blank() {
	for r := range s.grid {
		for c := range s.grid[r] {
			s.grid[r][c] = ' '
		}
	}
}

func (s *fakeSink) MoveCursor(row, col int) {
	s.row, s.col = row, col
	s.moves++
}

func (s *fakeSink) WriteGlyph(ch rune, repeat int) {
	for i := 0; i < repeat; i++ {
		s.grid[s.row][s.col] = ch
		s.col++
	}
	s.writes++
}

func (s *fakeSink) SetPieceColor(k piece.Kind) { s.color = k }

func (s *fakeSink) ClearToEndOfLine() {
	for c := s.col; c < len(s.grid[s.row]); c++ {
		s.grid[s.row][c] = ' '
	}
	s.lineClears++
}

func (s *fakeSink) ClearScreen() {
	s.blank()
	s.row, s.col = 0, 0
	s.screenClears++
}

func (s *fakeSink) ScrollRegionDown(atRow int) {
	for r := atRow; r > 0; r-- {
		s.grid[r] = s.grid[r-1]
	}
	for c := range s.grid[0] {
		s.grid[0][c] = ' '
	}
	s.scrolls = append(s.scrolls, atRow)
}

func (s *fakeSink) Beep()  { s.beeps++ }
func (s *fakeSink) Flush() { s.flushes++ }

func (s *fakeSink) rowText(r, from, to int) string {
	var b strings.Builder
	for c := from; c < to; c++ {
		b.WriteRune(s.grid[r][c])
	}
	return b.String()
}

func testLayout() Layout {
	return DefaultLayout(constants.BoardRows, constants.BoardCols)
}

// TestPaintErasesInverse verifies erasing a piece restores the blank
// picture a paint produced it from.
func TestPaintErasesInverse(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())
	before := sink.grid

	p := engine.ActivePiece{Kind: piece.KindT, Rotation: 0, Row: 10, Col: 4}
	d.PaintPiece(p, engine.PaintActive)
	if sink.grid == before {
		t.Fatal("Expected paint to change the picture")
	}

	d.PaintPiece(p, engine.Erase)
	if sink.grid != before {
		t.Error("Expected erase to restore the picture exactly")
	}
	if sink.color != piece.KindNone {
		t.Error("Expected erase to reset the piece color")
	}
}

// TestPaintPieceOpCount verifies a piece transition costs one cursor move
// and one glyph run per occupied cell, never a board repaint.
func TestPaintPieceOpCount(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())

	p := engine.ActivePiece{Kind: piece.KindSquare, Row: 10, Col: 4}
	d.PaintPiece(p, engine.PaintActive)

	if sink.moves != 4 || sink.writes != 4 {
		t.Errorf("Expected 4 moves and 4 writes for one piece, got %d and %d", sink.moves, sink.writes)
	}
}

// TestPaintPieceGeometry verifies window clipping and the column scale:
// the spawn row stays hidden, cells below it land at (XOffset+col)*width.
func TestPaintPieceGeometry(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())

	// square at the spawn anchor: mask rows 1-2, board cols 5-6
	p := engine.ActivePiece{Kind: piece.KindSquare, Row: 0, Col: 4}
	d.PaintPiece(p, engine.PaintActive)

	// board rows 1,2 map to window rows 0,1; col 5 starts at (3+5)*2
	for _, r := range []int{0, 1} {
		if got := sink.rowText(r, 16, 20); got != "HHHH" {
			t.Errorf("Expected active glyphs on window row %d, got %q", r, got)
		}
	}
	if sink.moves != 4 {
		t.Errorf("Expected all 4 square cells visible, got %d moves", sink.moves)
	}

	// a piece entirely on the spawn row paints nothing
	sink = newFakeSink()
	d = NewDiffer(sink, testLayout())
	bar := engine.ActivePiece{Kind: piece.KindBar, Rotation: 1, Row: -1, Col: 4}
	d.PaintPiece(bar, engine.PaintActive)
	if sink.moves != 0 || sink.writes != 0 {
		t.Errorf("Expected hidden piece to paint nothing, got %d moves", sink.moves)
	}
}

// TestPaintPieceModes verifies the glyph per mode and the color protocol.
func TestPaintPieceModes(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())
	p := engine.ActivePiece{Kind: piece.KindZ, Row: 10, Col: 4}

	d.PaintPiece(p, engine.PaintActive)
	if sink.color != piece.KindZ {
		t.Errorf("Expected piece color selected, got %d", sink.color)
	}
	// mask row 1 holds cols 1-2: board row 11, window row 10, sink col 16
	if got := sink.rowText(10, 16, 20); got != "HHHH" {
		t.Errorf("Expected active glyph row, got %q", got)
	}

	d.PaintPiece(p, engine.PaintFixed)
	if got := sink.rowText(10, 16, 20); got != "XXXX" {
		t.Errorf("Expected fixed glyph row, got %q", got)
	}
}

// TestPaintBoard verifies walls, fixed cells and the floor line under the
// full window.
func TestPaintBoard(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())

	b := engine.NewBoard(constants.BoardRows, constants.BoardCols)
	b.Set(23, 0, true)
	b.Set(23, 9, true)
	d.PaintBoard(b, constants.BoardRows-1)

	// walls at both edges of every window row
	for r := 0; r < 23; r++ {
		if sink.rowText(r, 4, 6) != "||" || sink.rowText(r, 26, 28) != "||" {
			t.Errorf("Expected walls on window row %d", r)
		}
	}

	// board row 23 is window row 22
	if got := sink.rowText(22, 6, 26); got != "XX                XX" {
		t.Errorf("Expected fixed cells at the bottom corners, got %q", got)
	}

	// floor line spans the walls and the playfield
	if got := sink.rowText(23, 4, 28); got != strings.Repeat("|", 24) {
		t.Errorf("Expected floor line, got %q", got)
	}
}

// TestPaintBoardPartial verifies a partial repaint covers only the top
// rows and leaves the floor untouched.
func TestPaintBoardPartial(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())

	b := engine.NewBoard(constants.BoardRows, constants.BoardCols)
	d.PaintBoard(b, 2)

	for _, r := range []int{0, 1} {
		if sink.rowText(r, 4, 6) != "||" {
			t.Errorf("Expected wall on repainted row %d", r)
		}
	}
	if sink.rowText(2, 4, 6) != "  " {
		t.Error("Expected rows below the partial repaint untouched")
	}
	if sink.rowText(23, 4, 6) != "  " {
		t.Error("Expected no floor line after a partial repaint")
	}
}

// TestPaintScore verifies the fixed text region.
func TestPaintScore(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())

	d.PaintScore(3, 128)

	if got := sink.rowText(constants.ScoreRow, constants.ScoreCol, constants.ScoreCol+8); got != "Level: 3" {
		t.Errorf("Expected level text, got %q", got)
	}
	if got := sink.rowText(constants.ScoreRow+1, constants.ScoreCol, constants.ScoreCol+10); got != "Score: 128" {
		t.Errorf("Expected score text, got %q", got)
	}
}

// TestLineClearScroll verifies the scroll path: score region blanked,
// one region shift per cleared board row, bell, and only the scrolled-in
// rows repainted.
func TestLineClearScroll(t *testing.T) {
	sink := newFakeSink()
	d := NewDiffer(sink, testLayout())
	b := engine.NewBoard(constants.BoardRows, constants.BoardCols)

	d.PaintScore(1, 10)
	d.BeginLineClear()
	if got := sink.rowText(constants.ScoreRow, constants.ScoreCol, constants.ScoreCol+8); got != "        " {
		t.Errorf("Expected score region blanked before scrolling, got %q", got)
	}

	d.RowCleared(23)
	d.RowCleared(23)
	d.EndLineClear(b, 2)

	if len(sink.scrolls) != 2 {
		t.Fatalf("Expected 2 region shifts, got %d", len(sink.scrolls))
	}
	for _, atRow := range sink.scrolls {
		if atRow != 22 {
			t.Errorf("Expected shift at window row 22, got %d", atRow)
		}
	}
	if sink.beeps != 1 {
		t.Errorf("Expected one bell, got %d", sink.beeps)
	}

	// the two rows scrolled in from the top got their borders back
	for _, r := range []int{0, 1} {
		if sink.rowText(r, 4, 6) != "||" || sink.rowText(r, 26, 28) != "||" {
			t.Errorf("Expected borders restored on scrolled-in row %d", r)
		}
	}
}

// TestLineClearNoScroll verifies the repaint path: no shifts, the whole
// window redrawn after the collapse.
func TestLineClearNoScroll(t *testing.T) {
	layout := testLayout()
	layout.Scroll = false
	sink := newFakeSink()
	d := NewDiffer(sink, layout)
	b := engine.NewBoard(constants.BoardRows, constants.BoardCols)
	b.Set(23, 5, true)

	d.BeginLineClear()
	d.RowCleared(23)
	d.EndLineClear(b, 1)

	if len(sink.scrolls) != 0 {
		t.Errorf("Expected no region shifts, got %d", len(sink.scrolls))
	}
	if sink.beeps != 1 {
		t.Errorf("Expected one bell, got %d", sink.beeps)
	}
	// full window repaint includes the floor line
	if got := sink.rowText(23, 4, 28); got != strings.Repeat("|", 24) {
		t.Errorf("Expected floor after full repaint, got %q", got)
	}
	if sink.grid[22][16] != 'X' {
		t.Error("Expected the surviving fixed cell repainted")
	}
}

// TestSingleWidthLayout verifies the single-width column scale.
func TestSingleWidthLayout(t *testing.T) {
	layout := testLayout()
	layout.GlyphWidth = 1
	sink := newFakeSink()
	d := NewDiffer(sink, layout)

	p := engine.ActivePiece{Kind: piece.KindSquare, Row: 10, Col: 4}
	d.PaintPiece(p, engine.PaintActive)

	// col 5 lands at 3+5 with width 1; mask row 1 is window row 10
	if got := sink.rowText(10, 8, 10); got != "HH" {
		t.Errorf("Expected single-width glyphs at col 8, got %q", got)
	}
}

// TestInvalidLayoutPanics verifies construction rejects degenerate
// geometry.
func TestInvalidLayoutPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for a zero-width layout")
		}
	}()
	NewDiffer(newFakeSink(), Layout{Rows: 24, Cols: 10, GlyphWidth: 0})
}
