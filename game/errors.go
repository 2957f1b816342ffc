package game

import "errors"

var (
	ErrOutOfRange = errors.New("cell is outside the board")
	ErrOccupied   = errors.New("cell is already taken")
)
