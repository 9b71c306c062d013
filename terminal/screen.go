// Package terminal adapts a tcell screen to the engine's draw protocol
// and turns its event stream into timed game commands.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/emard/tetris4terminals/piece"
)

// Screen implements render.Sink on top of a tcell screen. tcell owns raw
// mode, the alternate buffer and output diffing; Screen only tracks the
// cursor position and the currently selected piece color.
type Screen struct {
	tc    tcell.Screen
	row   int
	col   int
	style tcell.Style
	color bool
}

// NewScreen initializes the terminal. color=false makes SetPieceColor a
// no-op for monochrome terminals.
func NewScreen(color bool) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return initScreen(tc, color)
}

// initScreen finishes setup on any tcell screen, including the simulation
// screen used by tests.
func initScreen(tc tcell.Screen, color bool) (*Screen, error) {
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.HideCursor()
	return &Screen{
		tc:    tc,
		style: tcell.StyleDefault,
		color: color,
	}, nil
}

// Fini restores the terminal. Safe to call on the way out of a panic.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// MoveCursor positions the write cursor.
func (s *Screen) MoveCursor(row, col int) {
	s.row, s.col = row, col
}

// WriteGlyph writes ch repeat times, advancing the cursor.
func (s *Screen) WriteGlyph(ch rune, repeat int) {
	for i := 0; i < repeat; i++ {
		s.tc.SetContent(s.col, s.row, ch, nil, s.style)
		s.col++
	}
}

// SetPieceColor selects the background color keyed by piece kind.
func (s *Screen) SetPieceColor(k piece.Kind) {
	if !s.color {
		return
	}
	if k == piece.KindNone {
		s.style = tcell.StyleDefault
		return
	}
	s.style = tcell.StyleDefault.Background(piece.Color(k))
}

// ClearToEndOfLine blanks from the cursor to the right edge.
func (s *Screen) ClearToEndOfLine() {
	width, _ := s.tc.Size()
	for x := s.col; x < width; x++ {
		s.tc.SetContent(x, s.row, ' ', nil, tcell.StyleDefault)
	}
}

// ClearScreen blanks everything and homes the cursor.
func (s *Screen) ClearScreen() {
	s.tc.Clear()
	s.row, s.col = 0, 0
}

// ScrollRegionDown shifts rows 0..atRow down by one, blanking row 0.
// tcell exposes no scroll-region primitive, so the shift is emulated by
// cell readback; the terminal still only repaints cells that changed.
func (s *Screen) ScrollRegionDown(atRow int) {
	width, height := s.tc.Size()
	if atRow >= height {
		atRow = height - 1
	}
	for y := atRow; y > 0; y-- {
		for x := 0; x < width; x++ {
			ch, comb, style, _ := s.tc.GetContent(x, y-1)
			s.tc.SetContent(x, y, ch, comb, style)
		}
	}
	for x := 0; x < width; x++ {
		s.tc.SetContent(x, 0, ' ', nil, tcell.StyleDefault)
	}
}

// Beep rings the terminal bell.
func (s *Screen) Beep() {
	s.tc.Beep()
}

// Flush writes the pending cell updates to the terminal.
func (s *Screen) Flush() {
	s.tc.Show()
}
