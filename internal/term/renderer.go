package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/park285/cheese-termchess/pkg/chessdto"
)

const (
	cellWidth = 2
	boardSize = 8
	// blank row between the board and the status block
	statusRow = boardSize + 1
)

// ScreenRenderer paints frames onto a tcell screen. Each Render replaces the
// previous frame entirely.
type ScreenRenderer struct {
	screen tcell.Screen
	theme  Theme
	help   string
}

func NewScreenRenderer(screen tcell.Screen, theme Theme, help string) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, theme: theme, help: help}
}

// CellStyle picks the style for one square: checkered base, then move/attack
// highlight, then the cursor on top.
func (r *ScreenRenderer) CellStyle(c chessdto.Cell) tcell.Style {
	var st tcell.Style
	if c.File%2 == c.Rank%2 {
		st = tcell.StyleDefault.Background(r.theme.LightSquare).Foreground(r.theme.LightText)
	} else {
		st = tcell.StyleDefault.Background(r.theme.DarkSquare).Foreground(r.theme.DarkText)
	}
	switch c.Highlight {
	case chessdto.HighlightMove:
		st = st.Background(r.theme.MoveBlock)
	case chessdto.HighlightAttack:
		st = st.Background(r.theme.AttackBlock)
	}
	if c.Cursor {
		st = st.Background(r.theme.Cursor)
	}
	if c.Occupied && c.White {
		st = st.Bold(true)
	}
	return st
}

func (r *ScreenRenderer) Render(frame chessdto.Frame) error {
	r.screen.Clear()
	for rank := uint8(1); rank <= boardSize; rank++ {
		for file := uint8(1); file <= boardSize; file++ {
			c := frame.Cell(file, rank)
			label := c.Label
			if len(label) < cellWidth {
				label = (label + "  ")[:cellWidth]
			}
			drawText(r.screen, int(file-1)*cellWidth, int(rank-1), r.CellStyle(c), label)
		}
	}
	y := statusRow
	for _, line := range strings.Split(frame.Status, "\n") {
		if line == "" {
			continue
		}
		drawText(r.screen, 0, y, tcell.StyleDefault, line)
		y++
	}
	if r.help != "" {
		drawText(r.screen, 0, y+1, tcell.StyleDefault.Dim(true), r.help)
	}
	r.screen.Show()
	return nil
}

func drawText(s tcell.Screen, x, y int, st tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, st)
		x++
	}
}
