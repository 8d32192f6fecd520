package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

type ScoreRepository interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (*entity.Scoreboard, error)
}

// memScore keeps the scoreboard in process memory only; counters live exactly
// as long as the process and are never written to disk.
type memScore struct {
	mu    sync.Mutex
	board entity.Scoreboard
}

func NewScoreRepository() ScoreRepository {
	return &memScore{}
}

func (that *memScore) Record(_ context.Context, result entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.board.Record(result)

	return nil
}

func (that *memScore) Get(_ context.Context) (*entity.Scoreboard, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := that.board
	snapshot.Results = append([]entity.Result(nil), that.board.Results...)

	return &snapshot, nil
}
