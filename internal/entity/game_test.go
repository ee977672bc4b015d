package entity

import (
	"encoding/json"
	"testing"

	"github.com/opethe1st/connect4/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameResult_Status(t *testing.T) {
	t.Run("InProgress is not finished", func(t *testing.T) {
		// Given: a result for a game that is still running
		result := InProgress()

		// Then: it is in progress and has no winner
		assert.True(t, result.IsInProgress())
		assert.False(t, result.IsFinished())
		assert.Equal(t, Empty, result.Winner)
	})

	t.Run("Won is finished with a winner", func(t *testing.T) {
		// Given: a result won by player B
		result := Won(PlayerB)

		// Then: it is finished and names player B
		assert.True(t, result.IsWon())
		assert.True(t, result.IsFinished())
		assert.Equal(t, PlayerB, result.Winner)
	})

	t.Run("Draw is finished without a winner", func(t *testing.T) {
		// Given: a drawn result
		result := Draw()

		// Then: it is finished and nobody won
		assert.True(t, result.IsDraw())
		assert.True(t, result.IsFinished())
		assert.Equal(t, Empty, result.Winner)
	})
}

func TestTally_Add(t *testing.T) {
	// Given: an empty tally
	tally := Tally{}

	// When: three wins and a draw are added
	tally.Add(Won(PlayerA))
	tally.Add(Won(PlayerA))
	tally.Add(Won(PlayerB))
	tally.Add(Draw())
	tally.Add(InProgress())

	// Then: unfinished games are not counted
	assert.Equal(t, Tally{PlayerAWins: 2, PlayerBWins: 1, Draws: 1}, tally)
	assert.Equal(t, 4, tally.Total())
}

func TestPiece(t *testing.T) {
	t.Run("Opponent toggles between players", func(t *testing.T) {
		assert.Equal(t, PlayerB, PlayerA.Opponent())
		assert.Equal(t, PlayerA, PlayerB.Opponent())
	})

	t.Run("Names and glyphs", func(t *testing.T) {
		assert.Equal(t, "Blue", PlayerA.Name())
		assert.Equal(t, "Red", PlayerB.Name())
		assert.Equal(t, 'X', PlayerA.Glyph())
		assert.Equal(t, 'O', PlayerB.Glyph())
		assert.Equal(t, ' ', Empty.Glyph())
	})

	t.Run("Encodes as text in JSON", func(t *testing.T) {
		// Given: a won result
		result := Won(PlayerA)

		// When: it is encoded and decoded
		data, err := json.Marshal(result)
		require.NoError(t, err)

		var decoded GameResult
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: the winner is stored by name and survives the trip
		assert.JSONEq(t, `{"status":"won","winner":"blue"}`, string(data))
		assert.Equal(t, result, decoded)
	})

	t.Run("Rejects unknown pieces", func(t *testing.T) {
		var piece Piece

		err := piece.UnmarshalText([]byte("green"))
		require.ErrorIs(t, err, apperror.ErrInvalidPiece)

		_, err = Piece(7).MarshalText()
		require.ErrorIs(t, err, apperror.ErrInvalidPiece)
	})
}

func TestDimensions(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, Dimensions{Height: 6, Width: 7}.Validate())
		require.ErrorIs(t, Dimensions{Height: 0, Width: 7}.Validate(), apperror.ErrInvalidDimensions)
		require.ErrorIs(t, Dimensions{Height: 6, Width: -1}.Validate(), apperror.ErrInvalidDimensions)
	})

	t.Run("Contains", func(t *testing.T) {
		// Given: a 2x3 board
		dims := Dimensions{Height: 2, Width: 3}

		// Then: only cells inside the grid are contained
		assert.True(t, dims.Contains(Coord{Row: 0, Column: 0}))
		assert.True(t, dims.Contains(Coord{Row: 1, Column: 2}))
		assert.False(t, dims.Contains(Coord{Row: 2, Column: 0}))
		assert.False(t, dims.Contains(Coord{Row: 0, Column: 3}))
		assert.False(t, dims.Contains(Coord{Row: -1, Column: 0}))
	})

	t.Run("Step and Reverse", func(t *testing.T) {
		// Given: a rising diagonal step
		direction := Direction{Row: 1, Column: 1}

		// Then: stepping forwards and back returns to the start
		start := Coord{Row: 2, Column: 3}
		assert.Equal(t, Coord{Row: 3, Column: 4}, start.Step(direction))
		assert.Equal(t, start, start.Step(direction).Step(direction.Reverse()))
	})
}
