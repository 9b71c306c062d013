package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/emard/tetris4terminals/input"
)

// maxSkew bounds how far the fall deadline may lag behind the wall clock
// before it is realigned instead of firing a burst of catch-up ticks.
const maxSkew = 1500 * time.Millisecond

// InputSource yields exactly one event per poll: the next user command, or
// a tick when the fall deadline passes first. The deadline is absolute and
// advances by the step interval on every tick, so a flood of keystrokes
// cannot starve the fall cadence.
type InputSource struct {
	events   chan tcell.Event
	deadline time.Time
}

// NewInputSource starts the event pump for the screen.
func NewInputSource(s *Screen) *InputSource {
	src := &InputSource{
		events: make(chan tcell.Event, 64),
	}
	go src.pump(s.tc)
	return src
}

// pump forwards terminal events to the poll channel. PollEvent returns nil
// once the screen is finalized, which ends the goroutine.
func (src *InputSource) pump(tc tcell.Screen) {
	for {
		ev := tc.PollEvent()
		if ev == nil {
			return
		}
		src.events <- ev
	}
}

// Next blocks until the next user command or until the fall deadline,
// whichever comes first, and returns either the mapped command or
// tick=true. The deadline is checked before the command queue, so a tick
// due now wins over a simultaneously pending keystroke.
func (src *InputSource) Next(step time.Duration) (cmd input.Command, tick bool) {
	now := time.Now()
	if src.deadline.IsZero() || now.Sub(src.deadline) > maxSkew {
		// first poll, or the process stalled; realign instead of bursting
		src.deadline = now.Add(step)
	}

	wait := time.Until(src.deadline)
	if wait <= 0 {
		src.deadline = src.deadline.Add(step)
		return input.CmdNone, true
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case ev := <-src.events:
		return input.Translate(ev), false
	case <-timer.C:
		src.deadline = src.deadline.Add(step)
		return input.CmdNone, true
	}
}
