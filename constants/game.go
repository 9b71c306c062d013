package constants

import "time"

// Board Geometry
const (
	// BoardRows and BoardCols are the default playfield dimensions
	BoardRows = 24
	BoardCols = 10

	// SpawnRow and SpawnCol are the anchor of a freshly created piece.
	// The spawn row sits above the visible window.
	SpawnRow = 0
	SpawnCol = 4

	// GameOverMargin is the distance from the spawn row within which a
	// stuck piece ends the game
	GameOverMargin = 2
)

// Timing & Speed Curve
const (
	// InitialStepInterval is the fall cadence at level 1
	InitialStepInterval = time.Second

	// MinStepInterval is the floor of the speed curve; the step interval
	// shrinks by 3/4 per level-up but never below this
	MinStepInterval = 10 * time.Millisecond

	// GameOverPollInterval replaces the step interval while the board is
	// frozen, so the idle loop does not spin
	GameOverPollInterval = time.Second
)

// Scoring & Leveling
const (
	// ScorePerPiece is credited for every spawned piece, including the
	// first one at game start
	ScorePerPiece = 1

	// RowBonus is the optional per-cleared-row credit. The baseline rules
	// leave it off; historical variants disagree on its value.
	RowBonus = 20

	// DefaultLinesPerLevel is the cleared-line count that triggers a
	// level-up. Historical variants used 1 or 3; it stays configurable.
	DefaultLinesPerLevel = 1

	// DefaultMaxLevel caps the speed curve; HardMaxLevel enables the
	// "no delay" level 10
	DefaultMaxLevel = 9
	HardMaxLevel    = 10
)

// Screen Layout
const (
	// BoardXOffset is the left margin, in board cells, before the border
	// column
	BoardXOffset = 3

	// ScoreRow and ScoreCol anchor the two-line level/score text region
	ScoreRow = 20
	ScoreCol = 40

	// DefaultGlyphWidth doubles every board cell horizontally, which looks
	// square-ish with 8x16 terminal fonts
	DefaultGlyphWidth = 2
)
