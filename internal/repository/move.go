package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository - opening book of best moves keyed by position.
type MoveRepository interface {
	Save(ctx context.Context, key string, cell entity.Cell) error
	GetByKey(ctx context.Context, key string) (entity.Cell, error)
	DeleteByKey(ctx context.Context, key string) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository - a zero ttl keeps entries forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Save(ctx context.Context, key string, cell entity.Cell) error {
	cellJSON, err := json.Marshal(cell)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, "move:"+key, cellJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByKey(ctx context.Context, key string) (entity.Cell, error) {
	response, err := that.client.Get(ctx, "move:"+key).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Cell{}, ErrMoveNotFound
	}

	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to get move: %w", err)
	}

	var cell entity.Cell
	if err = json.Unmarshal([]byte(response), &cell); err != nil {
		return entity.Cell{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return cell, nil
}

func (that *dbMove) DeleteByKey(ctx context.Context, key string) error {
	deleted, err := that.client.Del(ctx, "move:"+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move: %w", err)
	}

	if deleted == 0 {
		return ErrMoveNotFound
	}

	return nil
}
