// Package engine implements the falling-block game: the board, the active
// piece with its fit test, line clearing with scoring, and the state
// machine driven by tick and command events.
package engine

import (
	"math/rand"
	"time"

	"github.com/emard/tetris4terminals/constants"
	"github.com/emard/tetris4terminals/input"
	"github.com/emard/tetris4terminals/piece"
)

// Status is the session's position in the state machine.
type Status uint8

const (
	// StatusIdle is the pre-spawn state before the first Start
	StatusIdle Status = iota
	// StatusRunning is normal play
	StatusRunning
	// StatusGameOver freezes the board until Start or Quit
	StatusGameOver
)

// State tracks the session's progress counters. Score and Level only ever
// grow within a session; Step only ever shrinks.
type State struct {
	Score  int
	Lines  int // cleared lines since the last level-up
	Level  int
	Step   time.Duration
	Status Status
}

// Game owns the board, the active piece and the session state for one
// process lifetime. All mutation happens inside a single Tick or Apply
// call; there is no internal concurrency and no locking.
type Game struct {
	cfg     Config
	board   *Board
	active  ActivePiece
	state   State
	rng     *rand.Rand
	painter Painter
}

// New creates a game in StatusIdle. Call Start to begin play.
func New(cfg Config, painter Painter) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:     cfg,
		board:   NewBoard(cfg.Rows, cfg.Cols),
		rng:     rand.New(rand.NewSource(seed)),
		painter: painter,
	}
}

// Board exposes the fixed cells, primarily for tests.
func (g *Game) Board() *Board { return g.board }

// Active returns a copy of the falling piece.
func (g *Game) Active() ActivePiece { return g.active }

// State returns a copy of the progress counters.
func (g *Game) State() State { return g.state }

// StepInterval is the poll deadline for the input source. It doubles as
// the tick period; while the board is frozen it stretches out so the idle
// loop does not spin.
func (g *Game) StepInterval() time.Duration {
	if g.state.Status == StatusGameOver {
		return constants.GameOverPollInterval
	}
	if g.state.Status == StatusIdle {
		return g.cfg.InitialStep
	}
	return g.state.Step
}

// Start begins a new session: the board is cleared, counters reset, the
// first piece spawned and everything painted. Also serves as restart,
// giving up a running game.
func (g *Game) Start() {
	g.board.Clear()
	g.state = State{
		Level: 1,
		Step:  g.cfg.InitialStep,
	}
	g.painter.ClearScreen()
	g.painter.PaintBoard(g.board, g.visibleRows())
	g.state.Status = StatusRunning
	g.spawn()
	g.painter.Flush()
}

// Tick attempts to advance the falling piece by one row. While frozen or
// idle the tick is consumed without effect.
func (g *Game) Tick() {
	if g.state.Status != StatusRunning {
		return
	}
	g.painter.PaintPiece(g.active, Erase)
	if g.active.Fall(g.board) {
		g.painter.PaintPiece(g.active, PaintActive)
	} else {
		g.lock()
	}
	g.painter.Flush()
}

// Apply handles one user command, reporting false when the process should
// terminate. Unknown commands arrive as CmdNone and do nothing.
func (g *Game) Apply(cmd input.Command) bool {
	if cmd == input.CmdQuit {
		return false
	}

	// a frozen board only honors restart
	if g.state.Status != StatusRunning {
		if cmd == input.CmdStart {
			g.Start()
		}
		return true
	}

	switch cmd {
	case input.CmdLeft:
		g.nudge((*ActivePiece).MoveLeft)

	case input.CmdRight:
		g.nudge((*ActivePiece).MoveRight)

	case input.CmdRotateCW:
		// table order is counter-clockwise, so clockwise steps backwards
		g.painter.PaintPiece(g.active, Erase)
		g.active.Rotate(g.board, -1)
		g.painter.PaintPiece(g.active, PaintActive)
		g.painter.Flush()

	case input.CmdRotateCCW:
		g.painter.PaintPiece(g.active, Erase)
		g.active.Rotate(g.board, 1)
		g.painter.PaintPiece(g.active, PaintActive)
		g.painter.Flush()

	case input.CmdDrop:
		g.painter.PaintPiece(g.active, Erase)
		for g.active.Fall(g.board) {
		}
		g.lock()
		g.painter.Flush()

	case input.CmdRedraw:
		g.redraw()

	case input.CmdStart:
		g.Start()
	}
	return true
}

// nudge runs a sideways move bracketed by erase/repaint.
func (g *Game) nudge(move func(*ActivePiece, *Board) bool) {
	g.painter.PaintPiece(g.active, Erase)
	move(&g.active, g.board)
	g.painter.PaintPiece(g.active, PaintActive)
	g.painter.Flush()
}

// redraw repaints the whole screen without touching game state.
func (g *Game) redraw() {
	g.painter.ClearScreen()
	g.painter.PaintBoard(g.board, g.visibleRows())
	g.painter.PaintScore(g.state.Level, g.state.Score)
	g.painter.PaintPiece(g.active, PaintActive)
	g.painter.Flush()
}

// lock merges the stuck piece into the board, clears completed rows and
// spawns the next piece. A piece stuck within the game-over margin of the
// spawn row freezes the board instead of spawning.
func (g *Game) lock() {
	if g.active.Row <= g.cfg.SpawnRow+constants.GameOverMargin {
		g.state.Status = StatusGameOver
	}

	g.painter.PaintPiece(g.active, PaintFixed)
	g.active.Each(func(row, col int) {
		if row >= 0 {
			g.board.Set(row, col, true)
		}
	})

	g.clearCompletedRows()

	if g.state.Status == StatusGameOver {
		return
	}
	g.spawn()
}

// spawn creates the next random piece at the spawn anchor and credits the
// per-piece score. A spawn that does not fit freezes the board without
// painting the unplaceable piece.
func (g *Game) spawn() {
	g.active = ActivePiece{
		Kind: piece.Random(g.rng),
		Row:  g.cfg.SpawnRow,
		Col:  g.cfg.SpawnCol,
	}
	g.state.Score += g.cfg.ScorePerPiece

	if !Fits(g.board, g.active) {
		g.state.Status = StatusGameOver
		return
	}
	g.painter.PaintPiece(g.active, PaintActive)
}

// clearCompletedRows scans once from the top, collapsing each complete row
// and advancing the counters. Continuing the scan at the next index after
// a collapse is sound: CollapseRow only moves rows that were already
// scanned, and none of them was complete.
func (g *Game) clearCompletedRows() {
	cleared := 0
	for r := 0; r < g.board.Rows(); r++ {
		if !g.board.RowComplete(r) {
			continue
		}
		if cleared == 0 {
			g.painter.BeginLineClear()
		}
		g.board.CollapseRow(r)
		g.painter.RowCleared(r)
		cleared++

		g.state.Score += g.cfg.ScorePerRow
		g.state.Lines++
		if g.state.Lines >= g.cfg.LinesPerLevel {
			g.state.Lines = 0
			g.levelUp()
		}
	}

	if cleared > 0 {
		g.painter.EndLineClear(g.board, cleared)
		g.painter.PaintScore(g.state.Level, g.state.Score)
	}
}

// levelUp advances the speed curve: level climbs to the cap, the step
// interval shrinks to 3/4 down to the configured floor.
func (g *Game) levelUp() {
	if g.state.Level >= g.cfg.MaxLevel {
		return
	}
	g.state.Level++
	step := g.state.Step * 3 / 4
	if step < g.cfg.MinStep {
		step = g.cfg.MinStep
	}
	g.state.Step = step
}

// visibleRows is the on-screen window height: everything but the hidden
// spawn row at the top.
func (g *Game) visibleRows() int {
	return g.cfg.Rows - 1
}
