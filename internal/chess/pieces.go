package chess

import "fmt"

// Label returns the two-character code renderers draw for the piece.
func (p Piece) Label() string {
	switch p.Kind {
	case Pawn:
		return "PA"
	case King:
		return "KI"
	case Queen:
		return "QU"
	case Bishop:
		return "BI"
	case Knight:
		return "KN"
	case Rook:
		return "TO"
	}
	return "??"
}

func (p Piece) String() string {
	return p.Kind.String()
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case King:
		return "king"
	case Queen:
		return "queen"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	default:
		return fmt.Sprintf("kind(%d)", int8(k))
	}
}
