package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/opethe1st/connect4/internal/entity"
	"github.com/redis/go-redis/v9"
)

const (
	tallyKey   = "connect4:tally"
	historyKey = "connect4:games"

	fieldPlayerAWins = "player_a_wins"
	fieldPlayerBWins = "player_b_wins"
	fieldDraws       = "draws"
)

var ErrGameNotFinished = errors.New("game is not finished")

type ResultRepository interface {
	Record(ctx context.Context, record *entity.GameRecord) error
	Tally(ctx context.Context) (*entity.Tally, error)
	Recent(ctx context.Context, limit int) ([]*entity.GameRecord, error)
}

type dbResult struct {
	client       *redis.Client
	historyLimit int64
}

// NewResultRepository - stores finished games in Redis, keeping at most historyLimit records.
func NewResultRepository(client *redis.Client, historyLimit int) ResultRepository {
	return &dbResult{
		client:       client,
		historyLimit: int64(historyLimit),
	}
}

func (that *dbResult) Record(ctx context.Context, record *entity.GameRecord) error {
	field, err := tallyField(record.Result)
	if err != nil {
		return err
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, tallyKey, field, 1)
		pipe.LPush(ctx, historyKey, recordJSON)
		if that.historyLimit > 0 {
			pipe.LTrim(ctx, historyKey, 0, that.historyLimit-1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}

	return nil
}

func (that *dbResult) Tally(ctx context.Context) (*entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, tallyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &entity.Tally{}
	for field, value := range fields {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tally field %s: %w", field, err)
		}

		switch field {
		case fieldPlayerAWins:
			tally.PlayerAWins = count
		case fieldPlayerBWins:
			tally.PlayerBWins = count
		case fieldDraws:
			tally.Draws = count
		}
	}

	return tally, nil
}

// Recent - the last finished games, newest first.
func (that *dbResult) Recent(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	response, err := that.client.LRange(ctx, historyKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent games: %w", err)
	}

	records := make([]*entity.GameRecord, 0, len(response))
	for _, item := range response {
		var record entity.GameRecord
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}

func tallyField(result entity.GameResult) (string, error) {
	switch {
	case result.IsWon() && result.Winner == entity.PlayerA:
		return fieldPlayerAWins, nil
	case result.IsWon() && result.Winner == entity.PlayerB:
		return fieldPlayerBWins, nil
	case result.IsDraw():
		return fieldDraws, nil
	default:
		return "", fmt.Errorf("%w: status %s", ErrGameNotFinished, result.Status)
	}
}
