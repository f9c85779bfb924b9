package chesspresenter

import (
	"fmt"
	"strings"

	"github.com/park285/cheese-termchess/internal/msgcat"
	"github.com/park285/cheese-termchess/pkg/chessdto"
)

// Formatter turns frames into status and help lines using the message catalog.
type Formatter struct {
	cat     *msgcat.Catalog
	showFEN bool
}

func NewFormatter(cat *msgcat.Catalog, showFEN bool) *Formatter {
	return &Formatter{cat: cat, showFEN: showFEN}
}

func squareText(sq chessdto.Square) string {
	return fmt.Sprintf("(%d,%d)", sq.File, sq.Rank)
}

// Status renders the line shown under the board. With ShowFEN a second line
// carries the placement.
func (f *Formatter) Status(fr *chessdto.Frame) string {
	cursor := squareText(fr.Cursor)
	var line string
	if fr.HasSelection() {
		data := map[string]any{
			"Cursor":   cursor,
			"Selected": squareText(*fr.Selected),
			"Moves":    fr.MoveCount,
			"Attacks":  fr.AttackCount,
			"Intent":   fr.LastIntent,
		}
		line = f.cat.MustRender("status.selected", data,
			fmt.Sprintf("%s selected %s", cursor, squareText(*fr.Selected)))
	} else {
		data := map[string]any{"Cursor": cursor, "Intent": fr.LastIntent}
		line = f.cat.MustRender("status.idle", data, cursor)
	}
	if f.showFEN && fr.FEN != "" {
		line += "\n" + f.cat.MustRender("status.fen", map[string]any{"FEN": fr.FEN}, fr.FEN)
	}
	return line
}

// Help renders the key hint, listing the extra runes bound for cursor movement.
func (f *Formatter) Help(extra []string) string {
	joined := strings.Join(extra, "")
	return f.cat.MustRender("help.keys", map[string]any{"Extra": joined}, "arrows move, enter select, esc quit")
}

// Message renders an arbitrary catalog key, falling back to the key itself.
func (f *Formatter) Message(key string, data map[string]any) string {
	return f.cat.MustRender(key, data, key)
}
