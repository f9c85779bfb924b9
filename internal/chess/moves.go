package chess

// AvailableBlocks holds the squares a piece may move into (empty) and the
// squares it may capture on (occupied).
type AvailableBlocks struct {
	Moves   []Square
	Attacks []Square
}

func (a AvailableBlocks) Empty() bool { return len(a.Moves) == 0 && len(a.Attacks) == 0 }

func (a AvailableBlocks) HasMove(sq Square) bool { return containsSquare(a.Moves, sq) }
func (a AvailableBlocks) HasAttack(sq Square) bool { return containsSquare(a.Attacks, sq) }

// Contains reports whether sq is a move or an attack destination.
func (a AvailableBlocks) Contains(sq Square) bool {
	return a.HasMove(sq) || a.HasAttack(sq)
}

func containsSquare(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}

// Available computes destinations for the piece standing on at.
// Only pawns generate anything yet; every other kind yields empty blocks.
func Available(p Piece, side Side, b *Board, at Square) AvailableBlocks {
	var blocks AvailableBlocks
	switch p.Kind {
	case Pawn:
		genPawnBlocks(b, at, p.Moved, side, &blocks)
	case King, Queen, Bishop, Knight, Rook:
		// no generation
	}
	return blocks
}

// AvailableAt is Available for whatever occupies at. An empty square yields
// empty blocks.
func AvailableAt(b *Board, at Square) AvailableBlocks {
	o, ok := b.At(at)
	if !ok {
		return AvailableBlocks{}
	}
	return Available(o.Piece, o.Side, b, at)
}

// addIfEmpty appends sq to list when nothing stands on it. Saturated ranks
// can repeat a square, so lists stay duplicate-free.
func addIfEmpty(list *[]Square, b *Board, sq Square) bool {
	if !sq.Valid() || b.Occupied(sq) || containsSquare(*list, sq) {
		return false
	}
	*list = append(*list, sq)
	return true
}

// addIfOccupied appends sq to list when something stands on it.
func addIfOccupied(list *[]Square, b *Board, sq Square) bool {
	if !sq.Valid() || !b.Occupied(sq) || containsSquare(*list, sq) {
		return false
	}
	*list = append(*list, sq)
	return true
}
