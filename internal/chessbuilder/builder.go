package chessbuilder

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/park285/cheese-termchess/internal/adapter/chesspresenter"
	"github.com/park285/cheese-termchess/internal/chess"
	"github.com/park285/cheese-termchess/internal/config"
	"github.com/park285/cheese-termchess/internal/msgcat"
	"github.com/park285/cheese-termchess/internal/session"
	"github.com/park285/cheese-termchess/internal/term"
	"github.com/park285/cheese-termchess/pkg/chessdto"
)

// Deps is everything a front end needs to drive one session.
type Deps struct {
	Session   *session.Session
	Formatter *chesspresenter.Formatter
	Theme     term.Theme
	Keymap    *term.Keymap
	Help      string
	// Warnings are recoverable problems found while building, such as an
	// unusable start position.
	Warnings []chessdto.DomainError
}

func New(cfg *config.AppConfig, logger *zap.Logger) (*Deps, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return nil, fmt.Errorf("init messages: %w", err)
	}
	theme, err := term.NewTheme(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("init theme: %w", err)
	}
	formatter := chesspresenter.NewFormatter(cat, cfg.ShowFEN)

	deps := &Deps{
		Formatter: formatter,
		Theme:     theme,
		Keymap:    term.NewKeymap(cfg.Keys),
		Help:      formatter.Help(term.MovementRunes(cfg.Keys)),
	}

	board, warn := startBoard(cfg.StartFEN, formatter)
	if warn != nil {
		logger.Warn("start_fen_invalid", zap.String("fen", cfg.StartFEN), zap.Error(warn.Err))
		deps.Warnings = append(deps.Warnings, *warn)
	}
	deps.Session = session.New(
		session.WithBoard(board),
		session.WithFEN(cfg.ShowFEN),
		session.WithLogger(logger),
	)
	return deps, nil
}

// startBoard decodes the configured placement, falling back to the standard
// setup when it is empty or invalid.
func startBoard(fen string, f *chesspresenter.Formatter) (*chess.Board, *chessdto.DomainError) {
	if strings.TrimSpace(fen) == "" {
		return chess.InitialSetup(), nil
	}
	b, err := chess.DecodeFEN(fen)
	if err == nil {
		return b, nil
	}
	code := "start_fen"
	if !errors.Is(err, chess.ErrInvalidFEN) {
		code = "start_board"
	}
	return chess.InitialSetup(), &chessdto.DomainError{
		Code:    code,
		Message: f.Message("error.start_fen", map[string]any{"FEN": fen}),
		Err:     err,
	}
}
