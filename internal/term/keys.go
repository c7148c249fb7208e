package term

import (
	"doomfire/internal/sims/fire"

	"github.com/gdamore/tcell/v2"
)

type action uint8

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionStep
	actionReset
	actionReseed
	actionHelp
)

// Terminals only report key presses, so every key event maps to exactly one
// command.
func commandFor(ev *tcell.EventKey) (fire.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return fire.CommandWindLeft, true
	case tcell.KeyRight:
		return fire.CommandWindRight, true
	case tcell.KeyUp:
		return fire.CommandIncreaseSource, true
	case tcell.KeyDown:
		return fire.CommandDecreaseSource, true
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'n' || r == 'N' {
			return fire.CommandWindNone, true
		}
	}
	return 0, false
}

func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case ' ':
			return actionPause
		case '.':
			return actionStep
		case 'r', 'R':
			return actionReset
		case 's', 'S':
			return actionReseed
		case 'h', 'H':
			return actionHelp
		}
	}
	return actionNone
}
