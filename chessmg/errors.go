package chessmg

import "errors"

var (
	ErrInvalidSquare    = errors.New("invalid square")
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	ErrInvalidFEN       = errors.New("invalid FEN")
)
