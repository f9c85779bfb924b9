package chessdto

// Highlight marks how a renderer should paint a square.
type Highlight uint8

const (
	HighlightNone Highlight = iota
	HighlightMove
	HighlightAttack
)

// Cell is one square as a renderer sees it.
type Cell struct {
	File      uint8
	Rank      uint8
	Label     string // two characters, blank when empty
	Occupied  bool
	White     bool
	Highlight Highlight
	Cursor    bool
}

// Square is a (file, rank) pair in [1,8].
type Square struct {
	File uint8
	Rank uint8
}

// Frame is a read-only snapshot of a session, produced once per redraw.
// Cells is indexed [rank-1][file-1] so iterating it is rank-major, file-minor.
type Frame struct {
	SessionID   string
	Cells       [8][8]Cell
	Cursor      Square
	Selected    *Square
	MoveCount   int
	AttackCount int
	LastIntent  string
	FEN         string
	Status      string
}

// Cell returns the cell at (file, rank).
func (f *Frame) Cell(file, rank uint8) Cell {
	return f.Cells[rank-1][file-1]
}

func (f *Frame) HasSelection() bool { return f.Selected != nil }
