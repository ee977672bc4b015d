package entity

import (
	"fmt"

	"github.com/opethe1st/connect4/internal/apperror"
)

// Piece - the value of a single board cell.
type Piece int

const (
	Empty Piece = iota
	PlayerA
	PlayerB
)

func (that Piece) IsPlayer() bool {
	return that == PlayerA || that == PlayerB
}

// Opponent - returns the player who moves after this one.
func (that Piece) Opponent() Piece {
	if that == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Name - the name shown to players.
func (that Piece) Name() string {
	switch that {
	case PlayerA:
		return "Blue"
	case PlayerB:
		return "Red"
	default:
		return ""
	}
}

// Glyph - the rune drawn for the piece on the board.
func (that Piece) Glyph() rune {
	switch that {
	case PlayerA:
		return 'X'
	case PlayerB:
		return 'O'
	default:
		return ' '
	}
}

func (that Piece) String() string {
	switch that {
	case Empty:
		return "empty"
	case PlayerA:
		return "blue"
	case PlayerB:
		return "red"
	default:
		return fmt.Sprintf("piece(%d)", int(that))
	}
}

func (that Piece) MarshalText() ([]byte, error) {
	switch that {
	case Empty, PlayerA, PlayerB:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPiece, int(that))
	}
}

func (that *Piece) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*that = Empty
	case "blue":
		*that = PlayerA
	case "red":
		*that = PlayerB
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPiece, text)
	}

	return nil
}
