package chess

// advance moves a rank n steps in the side's direction, saturating at the
// board edge. Black heads toward rank 8, White toward rank 1.
func advance(rank, n uint8, side Side) uint8 {
	if side == Black {
		return Clamp(int(rank) + int(n))
	}
	return Clamp(int(rank) - int(n))
}

func genPawnBlocks(b *Board, at Square, moved bool, side Side, blocks *AvailableBlocks) {
	// The double step is tested on its own; the square in between may be occupied.
	if !moved {
		addIfEmpty(&blocks.Moves, b, Sq(at.File, advance(at.Rank, 2, side)))
	}
	one := advance(at.Rank, 1, side)
	addIfEmpty(&blocks.Moves, b, Sq(at.File, one))

	// Any occupied diagonal counts, whoever owns it. Files off the board are skipped.
	for _, df := range []int{+1, -1} {
		file := int(at.File) + df
		if file < int(MinCoord) || file > int(MaxCoord) {
			continue
		}
		addIfOccupied(&blocks.Attacks, b, Sq(uint8(file), one))
	}
}
