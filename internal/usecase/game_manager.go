package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/opethe1st/connect4/internal/apperror"
	"github.com/opethe1st/connect4/internal/connect4"
	"github.com/opethe1st/connect4/internal/entity"
)

type resultRepo interface {
	Record(ctx context.Context, record *entity.GameRecord) error
	Tally(ctx context.Context) (*entity.Tally, error)
}

// GameManager - one game session: the board, whose turn it is and the result.
// A new board is created for every game.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
	dimensions entity.Dimensions
	now        func() time.Time

	gameID        string
	board         *connect4.Board
	currentPlayer entity.Piece
	result        entity.GameResult
	moves         []entity.Move
	winningLine   []entity.Coord
}

func NewGameManager(logger *slog.Logger, dimensions entity.Dimensions, resultRepo resultRepo) (*GameManager, error) {
	manager := &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,
		dimensions: dimensions,
		now:        time.Now,
	}

	if err := manager.NewGame(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return manager, nil
}

// NewGame - discards the current board and starts over with player A.
func (that *GameManager) NewGame() error {
	board, err := connect4.NewBoard(that.dimensions)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	that.gameID = uuid.NewString()
	that.board = board
	that.currentPlayer = entity.PlayerA
	that.result = entity.InProgress()
	that.moves = nil
	that.winningLine = nil

	that.logger.Info("game started",
		"game_id", that.gameID,
		"height", that.dimensions.Height,
		"width", that.dimensions.Width,
	)

	return nil
}

// MakeTurn - drops the current player's piece into the column. On a
// rejected move the board and the turn stay as they were.
func (that *GameManager) MakeTurn(ctx context.Context, column int) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", that.gameID)

	if that.result.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	piece := that.currentPlayer

	row, err := that.board.PlacePiece(piece, column)
	if err != nil {
		log.Debug("move rejected", "piece", piece, "column", column, "error", err)
		return entity.Move{}, fmt.Errorf("failed to place piece: %w", err)
	}

	move := entity.Move{Piece: piece, At: entity.Coord{Row: row, Column: column}}
	that.moves = append(that.moves, move)

	log.Debug("piece placed", "piece", piece, "row", row, "column", column)

	that.result = that.board.CheckGameEnd(move)
	if that.result.IsInProgress() {
		that.currentPlayer = piece.Opponent()
		return move, nil
	}

	that.winningLine = connect4.WinningLine(that.board, move.At)

	log.Info("game finished", "status", that.result.Status, "winner", that.result.Winner, "moves", len(that.moves))

	that.recordGame(ctx)

	return move, nil
}

func (that *GameManager) recordGame(ctx context.Context) {
	log := that.logger.With("method", "recordGame", "game_id", that.gameID)

	record := &entity.GameRecord{
		ID:         that.gameID,
		Dimensions: that.dimensions,
		Result:     that.result,
		Moves:      that.Moves(),
		FinishedAt: that.now().UTC(),
	}

	if err := that.resultRepo.Record(ctx, record); err != nil {
		log.Error("failed to record game", "error", err)
	}
}

// Tally - finished game counts from the results repository.
func (that *GameManager) Tally(ctx context.Context) (*entity.Tally, error) {
	tally, err := that.resultRepo.Tally(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

func (that *GameManager) Board() *connect4.Board {
	return that.board
}

func (that *GameManager) GameID() string {
	return that.gameID
}

func (that *GameManager) CurrentPlayer() entity.Piece {
	return that.currentPlayer
}

func (that *GameManager) Result() entity.GameResult {
	return that.result
}

// WinningLine - the cells of the winning run, nil unless the game was won.
func (that *GameManager) WinningLine() []entity.Coord {
	return that.winningLine
}

func (that *GameManager) Moves() []entity.Move {
	return append([]entity.Move(nil), that.moves...)
}

func (that *GameManager) LastMove() (entity.Move, bool) {
	if len(that.moves) == 0 {
		return entity.Move{}, false
	}

	return that.moves[len(that.moves)-1], true
}
