package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/park285/cheese-termchess/internal/chess"
	"github.com/park285/cheese-termchess/pkg/chessdto"
)

// Session owns one board plus the cursor/selection state driving it.
// It is not safe for concurrent use; exactly one input loop drives it.
type Session struct {
	id       string
	board    *chess.Board
	cursor   chess.Square
	selected *chess.Square
	last     Intent
	withFEN  bool
	log      *zap.Logger
}

type Option func(*Session)

// WithBoard starts the session from a copy of b instead of the standard setup.
func WithBoard(b *chess.Board) Option {
	return func(s *Session) {
		if b != nil {
			s.board = b.Clone()
		}
	}
}

// WithFEN makes Frame fill in the placement FEN.
func WithFEN(on bool) Option {
	return func(s *Session) { s.withFEN = on }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		cursor: chess.Sq(chess.MinCoord, chess.MinCoord),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.board == nil {
		s.board = chess.InitialSetup()
	}
	s.log = s.log.With(zap.String("session_id", s.id))
	return s
}

func (s *Session) ID() string { return s.id }
func (s *Session) Cursor() chess.Square { return s.cursor }

// Board exposes the board for reading. Callers must not mutate it.
func (s *Session) Board() *chess.Board { return s.board }

func (s *Session) Selected() (chess.Square, bool) {
	if s.selected == nil {
		return chess.Square{}, false
	}
	return *s.selected, true
}

// Blocks returns the destinations of the selected piece, or empty blocks when
// nothing is selected.
func (s *Session) Blocks() chess.AvailableBlocks {
	if s.selected == nil {
		return chess.AvailableBlocks{}
	}
	return chess.AvailableAt(s.board, *s.selected)
}

// Apply runs one intent to completion. The error is non-nil only when a board
// invariant broke; callers should abort rather than retry.
func (s *Session) Apply(in Intent) (Outcome, error) {
	s.last = in
	switch in {
	case CursorUp:
		return s.moveCursor(0, -1), nil
	case CursorDown:
		return s.moveCursor(0, +1), nil
	case CursorLeft:
		return s.moveCursor(-1, 0), nil
	case CursorRight:
		return s.moveCursor(+1, 0), nil
	case Confirm:
		return s.confirm()
	default:
		return OutcomeNone, nil
	}
}

func (s *Session) moveCursor(df, dr int) Outcome {
	next := chess.Sq(chess.Clamp(int(s.cursor.File)+df), chess.Clamp(int(s.cursor.Rank)+dr))
	if next == s.cursor {
		return OutcomeNone
	}
	s.cursor = next
	s.log.Debug("cursor_move", zap.Stringer("cursor", s.cursor))
	return OutcomeCursor
}

func (s *Session) confirm() (Outcome, error) {
	blocks := s.Blocks()
	if s.selected != nil && blocks.Contains(s.cursor) {
		from := *s.selected
		captured, capture := s.board.At(s.cursor)
		if err := s.board.Relocate(from, s.cursor); err != nil {
			return OutcomeNone, fmt.Errorf("commit move %s -> %s: %w", from, s.cursor, err)
		}
		s.selected = nil
		fields := []zap.Field{zap.Stringer("from", from), zap.Stringer("to", s.cursor)}
		if capture {
			fields = append(fields, zap.Stringer("captured", captured.Piece), zap.Stringer("captured_side", captured.Side))
		}
		s.log.Info("piece_move", fields...)
		return OutcomeMoved, nil
	}
	if o, ok := s.board.At(s.cursor); ok {
		sq := s.cursor
		s.selected = &sq
		s.log.Debug("piece_select",
			zap.Stringer("square", sq),
			zap.Stringer("piece", o.Piece),
			zap.Stringer("side", o.Side),
		)
		return OutcomeSelected, nil
	}
	return OutcomeNone, nil
}

// Frame snapshots the session for renderers.
func (s *Session) Frame() chessdto.Frame {
	blocks := s.Blocks()
	f := chessdto.Frame{
		SessionID:   s.id,
		Cursor:      chessdto.Square{File: s.cursor.File, Rank: s.cursor.Rank},
		MoveCount:   len(blocks.Moves),
		AttackCount: len(blocks.Attacks),
		LastIntent:  s.last.String(),
	}
	if s.withFEN {
		f.FEN = chess.EncodeFEN(s.board)
	}
	if s.selected != nil {
		f.Selected = &chessdto.Square{File: s.selected.File, Rank: s.selected.Rank}
	}
	for _, sq := range chess.Squares() {
		c := chessdto.Cell{File: sq.File, Rank: sq.Rank, Label: "  ", Cursor: sq == s.cursor}
		if o, ok := s.board.At(sq); ok {
			c.Label = o.Piece.Label()
			c.Occupied = true
			c.White = o.Side == chess.White
		}
		switch {
		case blocks.HasMove(sq):
			c.Highlight = chessdto.HighlightMove
		case blocks.HasAttack(sq):
			c.Highlight = chessdto.HighlightAttack
		}
		f.Cells[sq.Rank-1][sq.File-1] = c
	}
	return f
}
