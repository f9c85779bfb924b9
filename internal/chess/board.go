package chess

import "fmt"

// Board maps squares to occupants. A missing key means the square is empty.
// The zero value is not usable; use NewBoard or InitialSetup.
type Board struct {
	squares map[Square]Occupant
}

func NewBoard() *Board {
	return &Board{squares: make(map[Square]Occupant, 32)}
}

type placement struct {
	file uint8
	kind Kind
}

// back rank layout, identical for both sides
var backRank = []placement{
	{1, Rook}, {8, Rook},
	{2, Bishop}, {7, Bishop},
	{3, Knight}, {6, Knight},
	{4, King},
	{5, Queen},
}

// InitialSetup places Black on ranks 1-2 and White on ranks 7-8.
func InitialSetup() *Board {
	b := NewBoard()
	for _, p := range backRank {
		b.squares[Sq(p.file, 1)] = Occupant{Piece: Piece{Kind: p.kind}, Side: Black}
		b.squares[Sq(p.file, 8)] = Occupant{Piece: Piece{Kind: p.kind}, Side: White}
	}
	for file := MinCoord; file <= MaxCoord; file++ {
		b.squares[Sq(file, 2)] = Occupant{Piece: NewPawn(false), Side: Black}
		b.squares[Sq(file, 7)] = Occupant{Piece: NewPawn(false), Side: White}
	}
	return b
}

// At returns the occupant of sq, if any.
func (b *Board) At(sq Square) (Occupant, bool) {
	o, ok := b.squares[sq]
	return o, ok
}

func (b *Board) Occupied(sq Square) bool {
	_, ok := b.squares[sq]
	return ok
}

// Place puts o on sq, replacing whatever was there. Used for setup only.
func (b *Board) Place(sq Square, o Occupant) error {
	if !sq.Valid() {
		return fmt.Errorf("place %s: %w", sq, ErrInvalidState)
	}
	b.squares[sq] = o
	return nil
}

// Relocate moves the occupant of from onto to. Any piece already on to is
// discarded, which is how captures happen. A pawn always comes out marked as
// moved.
func (b *Board) Relocate(from, to Square) error {
	o, ok := b.squares[from]
	if !ok {
		return fmt.Errorf("relocate from empty square %s: %w", from, ErrInvalidState)
	}
	if !to.Valid() {
		return fmt.Errorf("relocate to %s: %w", to, ErrInvalidState)
	}
	if o.Piece.Kind == Pawn {
		o.Piece.Moved = true
	}
	delete(b.squares, from)
	b.squares[to] = o
	return nil
}

func (b *Board) Len() int { return len(b.squares) }

// Squares returns every square in draw order: rank-major, file-minor.
func Squares() []Square {
	out := make([]Square, 0, 64)
	for rank := MinCoord; rank <= MaxCoord; rank++ {
		for file := MinCoord; file <= MaxCoord; file++ {
			out = append(out, Sq(file, rank))
		}
	}
	return out
}

// Each calls fn for every occupied square in draw order.
func (b *Board) Each(fn func(Square, Occupant)) {
	for _, sq := range Squares() {
		if o, ok := b.squares[sq]; ok {
			fn(sq, o)
		}
	}
}

func (b *Board) Clone() *Board {
	nb := &Board{squares: make(map[Square]Occupant, len(b.squares))}
	for sq, o := range b.squares {
		nb.squares[sq] = o
	}
	return nb
}
