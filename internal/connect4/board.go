package connect4

import (
	"fmt"

	"github.com/opethe1st/connect4/internal/apperror"
	"github.com/opethe1st/connect4/internal/entity"
)

// Board - a connect four grid stored column by column. Each column holds only
// the pieces dropped into it, bottom first; every cell above them is empty.
type Board struct {
	dimensions entity.Dimensions
	columns    [][]entity.Piece
}

func NewBoard(dimensions entity.Dimensions) (*Board, error) {
	if err := dimensions.Validate(); err != nil {
		return nil, err
	}

	columns := make([][]entity.Piece, dimensions.Width)
	for i := range columns {
		columns[i] = make([]entity.Piece, 0, dimensions.Height)
	}

	return &Board{
		dimensions: dimensions,
		columns:    columns,
	}, nil
}

func (that *Board) Dimensions() entity.Dimensions {
	return that.dimensions
}

// ValidateMove - checks if a piece can be dropped into the column.
func (that *Board) ValidateMove(column int) error {
	if column < 0 || column >= that.dimensions.Width {
		return fmt.Errorf("%w: column %d, width %d", apperror.ErrOutOfRange, column, that.dimensions.Width)
	}

	if len(that.columns[column]) >= that.dimensions.Height {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	return nil
}

// PlacePiece - drops the piece into the column and returns the row it lands in.
// The board is left untouched when the move is rejected.
func (that *Board) PlacePiece(piece entity.Piece, column int) (int, error) {
	if !piece.IsPlayer() {
		return 0, fmt.Errorf("%w: %s", apperror.ErrInvalidPiece, piece)
	}

	if err := that.ValidateMove(column); err != nil {
		return 0, err
	}

	row := len(that.columns[column])
	that.columns[column] = append(that.columns[column], piece)

	return row, nil
}

// PieceAt - returns the piece at the cell. Asking for a cell outside the board
// is a caller bug and panics.
func (that *Board) PieceAt(at entity.Coord) entity.Piece {
	if !that.dimensions.Contains(at) {
		panic(fmt.Errorf("%w: %s on a %dx%d board", apperror.ErrOutOfBounds, at, that.dimensions.Height, that.dimensions.Width))
	}

	column := that.columns[at.Column]
	if at.Row < len(column) {
		return column[at.Row]
	}

	return entity.Empty
}

// ColumnHeight - the number of pieces in the column. Panics outside the board.
func (that *Board) ColumnHeight(column int) int {
	if column < 0 || column >= that.dimensions.Width {
		panic(fmt.Errorf("%w: column %d on a board %d wide", apperror.ErrOutOfBounds, column, that.dimensions.Width))
	}

	return len(that.columns[column])
}

func (that *Board) IsFull() bool {
	for _, column := range that.columns {
		if len(column) < that.dimensions.Height {
			return false
		}
	}

	return true
}

// Columns - a copy of every column's pieces, bottom first.
func (that *Board) Columns() [][]entity.Piece {
	columns := make([][]entity.Piece, len(that.columns))
	for i, column := range that.columns {
		columns[i] = make([]entity.Piece, len(column))
		copy(columns[i], column)
	}

	return columns
}

// CheckGameEnd - decides the game result after the last move. Only lines
// through the last move are searched, since any earlier win would already
// have ended the game.
func (that *Board) CheckGameEnd(last entity.Move) entity.GameResult {
	if ConnectsFour(that, last.At) {
		return entity.Won(last.Piece)
	}

	if that.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}
