// Package input maps terminal events to game commands.
package input

import "github.com/gdamore/tcell/v2"

// Command is one user intent. Exactly one command is produced per poll;
// unrecognized input maps to CmdNone.
type Command uint8

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdRotateCW
	CmdRotateCCW
	CmdDrop
	CmdRedraw
	CmdStart
	CmdQuit
)

// runeCommands holds the letter bindings: home-row movement plus the
// one-shot session keys.
var runeCommands = map[rune]Command{
	'j': CmdLeft,
	'l': CmdRight,
	'k': CmdRotateCCW,
	'i': CmdRotateCW,
	' ': CmdDrop,
	'r': CmdRedraw,
	's': CmdStart,
	'q': CmdQuit,
}

// specialCommands covers non-rune keys. Arrow keys alias the letter
// bindings; a resize forces a full repaint since tcell clears its back
// buffer on resize.
var specialCommands = map[tcell.Key]Command{
	tcell.KeyCtrlC: CmdQuit,
	tcell.KeyLeft:  CmdLeft,
	tcell.KeyRight: CmdRight,
	tcell.KeyUp:    CmdRotateCW,
	tcell.KeyDown:  CmdDrop,
}

// Translate maps one terminal event to a command.
func Translate(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if cmd, ok := runeCommands[ev.Rune()]; ok {
				return cmd
			}
			return CmdNone
		}
		if cmd, ok := specialCommands[ev.Key()]; ok {
			return cmd
		}
	case *tcell.EventResize:
		return CmdRedraw
	}
	return CmdNone
}
