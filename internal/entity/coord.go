package entity

import (
	"fmt"

	"github.com/opethe1st/connect4/internal/apperror"
)

// Coord - a cell position. Row 0 is the bottom row.
type Coord struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (that Coord) Step(direction Direction) Coord {
	return Coord{
		Row:    that.Row + direction.Row,
		Column: that.Column + direction.Column,
	}
}

func (that Coord) String() string {
	return fmt.Sprintf("(row %d, column %d)", that.Row, that.Column)
}

// Direction - a one cell step along the board.
type Direction struct {
	Row    int
	Column int
}

func (that Direction) Reverse() Direction {
	return Direction{Row: -that.Row, Column: -that.Column}
}

// Dimensions - the size of a board, fixed when the board is created.
type Dimensions struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

func (that Dimensions) Validate() error {
	if that.Height < 1 || that.Width < 1 {
		return fmt.Errorf("%w: height %d, width %d", apperror.ErrInvalidDimensions, that.Height, that.Width)
	}

	return nil
}

func (that Dimensions) Contains(at Coord) bool {
	return at.Row >= 0 && at.Row < that.Height && at.Column >= 0 && at.Column < that.Width
}

func (that Dimensions) Cells() int {
	return that.Height * that.Width
}

// Move - a piece that has been placed on the board.
type Move struct {
	Piece Piece `json:"piece"`
	At    Coord `json:"at"`
}
