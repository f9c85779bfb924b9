package chess

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

// Files map 1..8 onto a..h and ranks 1..8 onto 1..8, so Black's home ranks
// appear at the bottom of the placement string.

func toSquare(sq Square) nchess.Square {
	return nchess.NewSquare(nchess.File(sq.File-1), nchess.Rank(sq.Rank-1))
}

func fromSquare(sq nchess.Square) Square {
	return Sq(uint8(sq.File())+1, uint8(sq.Rank())+1)
}

func toPiece(o Occupant) nchess.Piece {
	white := o.Side == White
	switch o.Piece.Kind {
	case Pawn:
		if white {
			return nchess.WhitePawn
		}
		return nchess.BlackPawn
	case King:
		if white {
			return nchess.WhiteKing
		}
		return nchess.BlackKing
	case Queen:
		if white {
			return nchess.WhiteQueen
		}
		return nchess.BlackQueen
	case Bishop:
		if white {
			return nchess.WhiteBishop
		}
		return nchess.BlackBishop
	case Knight:
		if white {
			return nchess.WhiteKnight
		}
		return nchess.BlackKnight
	case Rook:
		if white {
			return nchess.WhiteRook
		}
		return nchess.BlackRook
	}
	return nchess.NoPiece
}

func fromPieceType(t nchess.PieceType) (Kind, bool) {
	switch t {
	case nchess.Pawn:
		return Pawn, true
	case nchess.King:
		return King, true
	case nchess.Queen:
		return Queen, true
	case nchess.Bishop:
		return Bishop, true
	case nchess.Knight:
		return Knight, true
	case nchess.Rook:
		return Rook, true
	}
	return 0, false
}

// pawnHomeRank is the rank a side's pawns start on.
func pawnHomeRank(side Side) uint8 {
	if side == Black {
		return 2
	}
	return 7
}

// EncodeFEN returns the placement field of a FEN string for b.
// Pawn moved flags are not represented.
func EncodeFEN(b *Board) string {
	m := make(map[nchess.Square]nchess.Piece, b.Len())
	b.Each(func(sq Square, o Occupant) {
		m[toSquare(sq)] = toPiece(o)
	})
	return nchess.NewBoard(m).String()
}

// DecodeFEN builds a board from a FEN placement field. Extra FEN fields after
// the placement are ignored. Pawns away from their home rank come out moved.
func DecodeFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, ErrInvalidFEN
	}
	if i := nonASCII(fields[0]); i >= 0 {
		return nil, fmt.Errorf("%w: non-ASCII byte at offset %d", ErrInvalidFEN, i)
	}
	var nb nchess.Board
	if err := nb.UnmarshalText([]byte(fields[0])); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	b := NewBoard()
	for nsq, np := range nb.SquareMap() {
		kind, ok := fromPieceType(np.Type())
		if !ok {
			continue
		}
		side := White
		if np.Color() == nchess.Black {
			side = Black
		}
		sq := fromSquare(nsq)
		p := Piece{Kind: kind}
		if kind == Pawn {
			p.Moved = sq.Rank != pawnHomeRank(side)
		}
		if err := b.Place(sq, Occupant{Piece: p, Side: side}); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// nonASCII returns the offset of the first byte outside ASCII, or -1. The
// placement parser indexes a 128-entry table by byte and cannot take them.
func nonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}
