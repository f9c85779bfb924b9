package chess

import "errors"

var (
	// ErrInvalidState reports a caller invariant violation, such as relocating
	// from an empty square. It is never expected under normal driving.
	ErrInvalidState = errors.New("invalid board state")
	ErrInvalidFEN   = errors.New("invalid FEN placement")
)
