package engine

import (
	"time"

	"github.com/emard/tetris4terminals/constants"
)

// Config is the tunable surface of a game session. Zero-value fields are
// not defaulted at run time; callers start from DefaultConfig.
type Config struct {
	Rows, Cols int

	// SpawnRow and SpawnCol anchor freshly created pieces
	SpawnRow, SpawnCol int

	// MaxLevel caps the speed curve
	MaxLevel int

	// LinesPerLevel is the cleared-line threshold that triggers a
	// level-up. Historical variants used 1 or 3.
	LinesPerLevel int

	// ScorePerPiece is credited on every spawn; ScorePerRow is the
	// optional per-cleared-row bonus, 0 under the baseline rules
	ScorePerPiece int
	ScorePerRow   int

	// InitialStep is the fall interval at level 1; MinStep is the floor
	// the 3/4 speed curve may not cross
	InitialStep time.Duration
	MinStep     time.Duration

	// Seed selects the piece sequence. 0 seeds from the clock; any other
	// value gives a reproducible run.
	Seed int64
}

// DefaultConfig returns the standard 24x10 game.
func DefaultConfig() Config {
	return Config{
		Rows:          constants.BoardRows,
		Cols:          constants.BoardCols,
		SpawnRow:      constants.SpawnRow,
		SpawnCol:      constants.SpawnCol,
		MaxLevel:      constants.DefaultMaxLevel,
		LinesPerLevel: constants.DefaultLinesPerLevel,
		ScorePerPiece: constants.ScorePerPiece,
		ScorePerRow:   0,
		InitialStep:   constants.InitialStepInterval,
		MinStep:       constants.MinStepInterval,
		Seed:          1,
	}
}
