package chess

import "fmt"

// Side identifies the owner of a piece.
type Side int8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("side(%d)", int8(s))
	}
}

// Kind is the closed set of piece kinds.
type Kind int8

const (
	Pawn Kind = iota
	King
	Queen
	Bishop
	Knight
	Rook
)

// Piece is a kind plus the only mutable sub-state a piece carries.
// Moved is meaningful for pawns only and gates the two-square advance.
type Piece struct {
	Kind  Kind
	Moved bool
}

func NewPawn(moved bool) Piece { return Piece{Kind: Pawn, Moved: moved} }

// Occupant is what a board square holds.
type Occupant struct {
	Piece Piece
	Side  Side
}

const (
	MinCoord uint8 = 1
	MaxCoord uint8 = 8
)

// Square is a (file, rank) pair, each in [1,8].
type Square struct {
	File uint8
	Rank uint8
}

func Sq(file, rank uint8) Square { return Square{File: file, Rank: rank} }

func (s Square) Valid() bool {
	return s.File >= MinCoord && s.File <= MaxCoord && s.Rank >= MinCoord && s.Rank <= MaxCoord
}

func (s Square) String() string { return fmt.Sprintf("(%d,%d)", s.File, s.Rank) }

// Clamp pulls a signed coordinate back into [1,8].
func Clamp(v int) uint8 {
	if v < int(MinCoord) {
		return MinCoord
	}
	if v > int(MaxCoord) {
		return MaxCoord
	}
	return uint8(v)
}
