package schaakmg

import "errors"

var (
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidSquare = errors.New("invalid square")
)
