package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/park285/cheese-termchess/internal/config"
	"github.com/park285/cheese-termchess/internal/session"
)

// Keymap decodes tcell key events into session intents.
type Keymap struct {
	runes map[rune]session.Intent
}

func NewKeymap(keys config.Keys) *Keymap {
	km := &Keymap{runes: make(map[rune]session.Intent)}
	bind := func(list []string, in session.Intent) {
		for _, k := range list {
			for _, r := range k {
				km.runes[r] = in
				break
			}
		}
	}
	bind(keys.Up, session.CursorUp)
	bind(keys.Down, session.CursorDown)
	bind(keys.Left, session.CursorLeft)
	bind(keys.Right, session.CursorRight)
	bind(keys.Confirm, session.Confirm)
	return km
}

// Decode maps a key event to an intent. quit is true for Esc and Ctrl-C,
// which end the loop and never reach the session.
func (km *Keymap) Decode(ev *tcell.EventKey) (in session.Intent, quit bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return session.CursorUp, false
	case tcell.KeyDown:
		return session.CursorDown, false
	case tcell.KeyLeft:
		return session.CursorLeft, false
	case tcell.KeyRight:
		return session.CursorRight, false
	case tcell.KeyEnter:
		return session.Confirm, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.IntentOther, true
	case tcell.KeyRune:
		if in, ok := km.runes[ev.Rune()]; ok {
			return in, false
		}
	}
	return session.IntentOther, false
}

// MovementRunes lists the extra cursor runes in up, down, left, right order,
// one per direction, for the help line.
func MovementRunes(keys config.Keys) []string {
	var out []string
	for _, list := range [][]string{keys.Up, keys.Down, keys.Left, keys.Right} {
		if len(list) > 0 {
			out = append(out, list[0])
		}
	}
	return out
}
