package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/park285/cheese-termchess/internal/config"
)

// Theme is the resolved colour scheme for the board.
type Theme struct {
	LightSquare tcell.Color
	DarkSquare  tcell.Color
	LightText   tcell.Color
	DarkText    tcell.Color
	MoveBlock   tcell.Color
	AttackBlock tcell.Color
	Cursor      tcell.Color
}

// ANSI names that tcell spells differently.
var colorAliases = map[string]tcell.Color{
	"magenta": tcell.ColorPurple,
	"cyan":    tcell.ColorTeal,
}

func parseColor(field, name string) (tcell.Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "default" {
		return tcell.ColorDefault, nil
	}
	if c, ok := colorAliases[n]; ok {
		return c, nil
	}
	c := tcell.GetColor(n)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("theme.%s: unknown colour %q", field, name)
	}
	return c, nil
}

// NewTheme resolves colour names from the config.
func NewTheme(t config.Theme) (Theme, error) {
	var th Theme
	fields := []struct {
		name string
		src  string
		dst  *tcell.Color
	}{
		{"light_square", t.LightSquare, &th.LightSquare},
		{"dark_square", t.DarkSquare, &th.DarkSquare},
		{"light_text", t.LightText, &th.LightText},
		{"dark_text", t.DarkText, &th.DarkText},
		{"move_block", t.MoveBlock, &th.MoveBlock},
		{"attack_block", t.AttackBlock, &th.AttackBlock},
		{"cursor", t.Cursor, &th.Cursor},
	}
	for _, f := range fields {
		c, err := parseColor(f.name, f.src)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = c
	}
	return th, nil
}
