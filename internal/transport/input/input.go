package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/opethe1st/connect4/internal/apperror"
	"github.com/opethe1st/connect4/internal/entity"
)

// ParseColumn - turns the 1-indexed column typed by a player into the
// 0-indexed column used by the board. Range checks are left to the board.
func ParseColumn(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: no column given", apperror.ErrInvalidInput)
	}

	column, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, text)
	}

	return column - 1, nil
}

// Prompt - the line asking the current player for a column.
func Prompt(player entity.Piece, width int) string {
	return fmt.Sprintf("%s's move: select a column between 1 and %d: ", player.Name(), width)
}

// Reason - explains a rejected move to the player.
func Reason(err error, width int) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		return fmt.Sprintf("Please enter a number between 1 and %d.", width)
	case errors.Is(err, apperror.ErrOutOfRange):
		return fmt.Sprintf("That column does not exist. Pick one between 1 and %d.", width)
	case errors.Is(err, apperror.ErrColumnFull):
		return "That column is full. Pick another one."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over."
	default:
		return "Something went wrong, try again."
	}
}

// Outcome - announces how a finished game ended.
func Outcome(result entity.GameResult) string {
	switch {
	case result.IsWon():
		return fmt.Sprintf("%s wins!", result.Winner.Name())
	case result.IsDraw():
		return "It's a draw."
	default:
		return ""
	}
}

// Scoreboard - one line summary of finished games.
func Scoreboard(tally *entity.Tally) string {
	return fmt.Sprintf("%s %d - %d %s, draws %d",
		entity.PlayerA.Name(), tally.PlayerAWins,
		tally.PlayerBWins, entity.PlayerB.Name(),
		tally.Draws,
	)
}
