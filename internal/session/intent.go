package session

// Intent is a neutral input signal. Decoders map raw keys onto it; anything
// they don't recognise becomes IntentOther.
type Intent uint8

const (
	IntentOther Intent = iota
	CursorUp
	CursorDown
	CursorLeft
	CursorRight
	Confirm
)

func (i Intent) String() string {
	switch i {
	case CursorUp:
		return "up"
	case CursorDown:
		return "down"
	case CursorLeft:
		return "left"
	case CursorRight:
		return "right"
	case Confirm:
		return "confirm"
	default:
		return "other"
	}
}

// ParseIntent is the inverse of Intent.String. Unknown names map to IntentOther.
func ParseIntent(s string) Intent {
	switch s {
	case "up":
		return CursorUp
	case "down":
		return CursorDown
	case "left":
		return CursorLeft
	case "right":
		return CursorRight
	case "confirm":
		return Confirm
	default:
		return IntentOther
	}
}

// Outcome says what an applied intent did.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCursor
	OutcomeSelected
	OutcomeMoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCursor:
		return "cursor"
	case OutcomeSelected:
		return "selected"
	case OutcomeMoved:
		return "moved"
	default:
		return "none"
	}
}
