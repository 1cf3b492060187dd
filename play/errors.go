package play

import "errors"

var (
	ErrGameNotFound = errors.New("play: game not found")
	ErrGameOver     = errors.New("play: game is over")
	ErrIllegalMove  = errors.New("play: illegal move")
)
