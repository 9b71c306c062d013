// Tetris for terminals: a falling-block game driven by a fixed-rate tick
// and single-key commands, drawn incrementally.
//
// Keys: j/l move, k/i rotate, space drop, r redraw, s (re)start, q quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/emard/tetris4terminals/constants"
	"github.com/emard/tetris4terminals/engine"
	"github.com/emard/tetris4terminals/render"
	"github.com/emard/tetris4terminals/terminal"
)

var (
	monoFlag     = flag.Bool("mono", false, "monochrome board, no piece colors")
	singleFlag   = flag.Bool("single", false, "single-width glyphs, for 8x8 terminal fonts")
	noScrollFlag = flag.Bool("noscroll", false, "repaint the board on line clears instead of scrolling")
	hardFlag     = flag.Bool("hard", false, "enable level 10: no delay between steps")
	seedFlag     = flag.Int64("seed", 1, "piece sequence seed; 0 seeds from the clock")
	rowsFlag     = flag.Int("rows", constants.BoardRows, "board rows")
	colsFlag     = flag.Int("cols", constants.BoardCols, "board columns")
	linesFlag    = flag.Int("lines-per-level", constants.DefaultLinesPerLevel, "cleared lines per level-up")
	rowBonusFlag = flag.Int("row-bonus", 0, "extra score per cleared row")
)

func main() {
	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.Rows = *rowsFlag
	cfg.Cols = *colsFlag
	cfg.LinesPerLevel = *linesFlag
	cfg.ScorePerRow = *rowBonusFlag
	cfg.Seed = *seedFlag
	if *hardFlag {
		cfg.MaxLevel = constants.HardMaxLevel
	}
	if cfg.Rows < 4 || cfg.Cols < 4 {
		fmt.Fprintf(os.Stderr, "Board too small: %dx%d (minimum 4x4)\n", cfg.Rows, cfg.Cols)
		os.Exit(1)
	}

	scr, err := terminal.NewScreen(!*monoFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, otherwise it lands on the alternate screen and vanishes
	defer func() {
		if r := recover(); r != nil {
			scr.Fini()
			fmt.Fprintf(os.Stderr, "\nTETRIS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer scr.Fini()

	layout := render.DefaultLayout(cfg.Rows, cfg.Cols)
	if *singleFlag {
		layout.GlyphWidth = 1
	}
	if *noScrollFlag {
		layout.Scroll = false
	}

	game := engine.New(cfg, render.NewDiffer(scr, layout))
	source := terminal.NewInputSource(scr)

	game.Start()

	// One event per iteration: the erase/mutate/repaint sequence for it
	// completes before the next poll
	for {
		cmd, tick := source.Next(game.StepInterval())
		if tick {
			game.Tick()
			continue
		}
		if !game.Apply(cmd) {
			return // exit code 0; deferred Fini restores the terminal
		}
	}
}
