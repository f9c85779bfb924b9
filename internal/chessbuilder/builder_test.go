package chessbuilder

import (
	"errors"
	"strings"
	"testing"

	"github.com/park285/cheese-termchess/internal/chess"
	"github.com/park285/cheese-termchess/internal/config"
)

func TestNewDefaults(t *testing.T) {
	deps, err := New(config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if deps.Session.Board().Len() != 32 {
		t.Fatalf("expected standard setup")
	}
	if len(deps.Warnings) != 0 {
		t.Fatalf("unexpected warnings %+v", deps.Warnings)
	}
	if !strings.Contains(deps.Help, "kjhl") {
		t.Fatalf("help = %q", deps.Help)
	}
}

func TestNewStartFEN(t *testing.T) {
	cfg := config.Default()
	cfg.StartFEN = "8/8/8/8/8/8/4p3/8 w - - 0 1"
	cfg.ShowFEN = true
	deps, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := deps.Session.Frame().FEN; got != "8/8/8/8/8/8/4p3/8" {
		t.Fatalf("frame FEN = %q", got)
	}
	b := deps.Session.Board()
	if b.Len() != 1 {
		t.Fatalf("expected one piece, got %d", b.Len())
	}
	o, ok := b.At(chess.Sq(5, 2))
	if !ok || o.Side != chess.Black || o.Piece.Moved {
		t.Fatalf("unexpected occupant %+v", o)
	}
}

func TestNewInvalidStartFENFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.StartFEN = "garbage"
	deps, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if deps.Session.Board().Len() != 32 {
		t.Fatalf("expected fallback to standard setup")
	}
	if len(deps.Warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", deps.Warnings)
	}
	w := deps.Warnings[0]
	if w.Code != "start_fen" || !errors.Is(w, chess.ErrInvalidFEN) || !strings.Contains(w.Error(), "garbage") {
		t.Fatalf("unexpected warning %+v", w)
	}
}

func TestNewNonASCIIStartFENFallsBack(t *testing.T) {
	for _, fen := range []string{"♜7/8/8/8/8/8/8/8", "\xff/8/8/8/8/8/8/8"} {
		cfg := config.Default()
		cfg.StartFEN = fen
		deps, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("New(%q): %v", fen, err)
		}
		if deps.Session.Board().Len() != 32 {
			t.Fatalf("%q: expected fallback to standard setup", fen)
		}
		if len(deps.Warnings) != 1 || deps.Warnings[0].Code != "start_fen" {
			t.Fatalf("%q: unexpected warnings %+v", fen, deps.Warnings)
		}
	}
}

func TestNewRejectsBadTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Theme.Cursor = "ultraviolet"
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected theme error")
	}
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected nil config error")
	}
}
