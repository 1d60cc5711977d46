package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
)

type moveRepo interface {
	Save(ctx context.Context, key string, cell entity.Cell) error
	GetByKey(ctx context.Context, key string) (entity.Cell, error)
}

// CachedStrategy - looks positions up in the opening book before asking the
// wrapped strategy, and records what it answered. Only wrap strategies that
// always return the same move for the same position.
type CachedStrategy struct {
	logger   *slog.Logger
	moveRepo moveRepo
	inner    strategy.Strategy
}

func NewCachedStrategy(logger *slog.Logger, moveRepo moveRepo, inner strategy.Strategy) *CachedStrategy {
	return &CachedStrategy{
		logger:   logger.With("component", "opening_book"),
		moveRepo: moveRepo,
		inner:    inner,
	}
}

func (that *CachedStrategy) Mark() entity.Mark {
	return that.inner.Mark()
}

func (that *CachedStrategy) Level() strategy.Level {
	return that.inner.Level()
}

// SelectMove - book failures are logged and fall through to a live search.
func (that *CachedStrategy) SelectMove(ctx context.Context, board *entity.Board) (entity.Cell, error) {
	key := BookKey(that.inner, board)
	log := that.logger.With("method", "SelectMove", "key", key)

	cell, err := that.moveRepo.GetByKey(ctx, key)
	switch {
	case err == nil && board.IsFree(cell):
		log.Debug("book hit", "cell", cell.String())
		return cell, nil
	case err == nil:
		log.Warn("book move is not playable, searching", "cell", cell.String())
	case !errors.Is(err, repository.ErrMoveNotFound):
		log.Warn("failed to read opening book", "error", err)
	}

	cell, err = that.inner.SelectMove(ctx, board)
	if err != nil {
		return entity.Cell{}, err
	}

	if err = that.moveRepo.Save(ctx, key, cell); err != nil {
		log.Warn("failed to update opening book", "error", err)
	}

	return cell, nil
}

// BookKey - level, mark and position, e.g. "hard:O:X___O____".
func BookKey(s strategy.Strategy, board *entity.Board) string {
	return string(s.Level()) + ":" + s.Mark().String() + ":" + board.Key()
}
