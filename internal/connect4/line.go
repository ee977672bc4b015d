package connect4

import "github.com/opethe1st/connect4/internal/entity"

const WinLength = 4

var (
	Vertical        = entity.Direction{Row: 1, Column: 0}
	Horizontal      = entity.Direction{Row: 0, Column: 1}
	DiagonalRising  = entity.Direction{Row: 1, Column: 1}
	DiagonalFalling = entity.Direction{Row: 1, Column: -1}

	// each axis is walked in its direction and in reverse
	axes = [...]entity.Direction{Vertical, Horizontal, DiagonalRising, DiagonalFalling}
)

// ConnectsFour - reports whether the piece at anchor is part of a run of at
// least four along any axis.
func ConnectsFour(board *Board, anchor entity.Coord) bool {
	return len(WinningLine(board, anchor)) > 0
}

// WinningLine - returns the cells of the first winning run through anchor,
// ordered along the axis, or nil when there is none.
func WinningLine(board *Board, anchor entity.Coord) []entity.Coord {
	piece := board.PieceAt(anchor)
	if piece == entity.Empty {
		return nil
	}

	for _, axis := range axes {
		if line := runAlong(board, anchor, axis, piece); len(line) >= WinLength {
			return line
		}
	}

	return nil
}

func runAlong(board *Board, anchor entity.Coord, axis entity.Direction, piece entity.Piece) []entity.Coord {
	backward := walk(board, anchor, axis.Reverse(), piece)
	forward := walk(board, anchor, axis, piece)

	line := make([]entity.Coord, 0, len(backward)+1+len(forward))
	for i := len(backward) - 1; i >= 0; i-- {
		line = append(line, backward[i])
	}
	line = append(line, anchor)

	return append(line, forward...)
}

// walk - collects matching cells from anchor in one direction, stopping at the
// first cell that does not match or at the board edge.
func walk(board *Board, anchor entity.Coord, direction entity.Direction, piece entity.Piece) []entity.Coord {
	var cells []entity.Coord

	dimensions := board.Dimensions()
	for at := anchor.Step(direction); dimensions.Contains(at); at = at.Step(direction) {
		if board.PieceAt(at) != piece {
			break
		}
		cells = append(cells, at)
	}

	return cells
}
