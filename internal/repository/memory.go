package repository

import (
	"context"
	"fmt"

	"github.com/opethe1st/connect4/internal/entity"
)

type memoryResult struct {
	tally        entity.Tally
	history      []*entity.GameRecord
	historyLimit int
}

// NewMemoryResultRepository - keeps finished games for the life of the process.
func NewMemoryResultRepository(historyLimit int) ResultRepository {
	return &memoryResult{
		historyLimit: historyLimit,
	}
}

func (that *memoryResult) Record(_ context.Context, record *entity.GameRecord) error {
	if !record.Result.IsFinished() {
		return fmt.Errorf("%w: status %s", ErrGameNotFinished, record.Result.Status)
	}

	that.tally.Add(record.Result)

	that.history = append([]*entity.GameRecord{record}, that.history...)
	if that.historyLimit > 0 && len(that.history) > that.historyLimit {
		that.history = that.history[:that.historyLimit]
	}

	return nil
}

func (that *memoryResult) Tally(_ context.Context) (*entity.Tally, error) {
	tally := that.tally
	return &tally, nil
}

func (that *memoryResult) Recent(_ context.Context, limit int) ([]*entity.GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	if limit > len(that.history) {
		limit = len(that.history)
	}

	return append([]*entity.GameRecord(nil), that.history[:limit]...), nil
}
