package apperror

import "errors"

var (
	ErrOutOfRange        = errors.New("column is out of range")
	ErrColumnFull        = errors.New("column is full")
	ErrOutOfBounds       = errors.New("coordinate is out of bounds")
	ErrInvalidPiece      = errors.New("invalid piece")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidInput      = errors.New("invalid input")
	ErrGameFinished      = errors.New("game is already finished")
)
