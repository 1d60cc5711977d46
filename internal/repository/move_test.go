package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	moveRepo := NewMoveRepository(st.Storage, 0)

	// Given: a best move for a position
	cell := entity.Cell{Row: 1, Col: 1}

	// When: Save is called
	err := moveRepo.Save(ctx, "hard:X:X________", cell)

	// Then: no error should be returned, and the move is stored
	require.NoError(t, err)
}

func TestMoveRepository_GetByKey(t *testing.T) {
	t.Run("GetByKey_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: a stored move
		cell := entity.Cell{Row: 2, Col: 0}
		err := moveRepo.Save(ctx, "hard:O:X___O___X", cell)
		require.NoError(t, err)

		// When: GetByKey is called with the same key
		retrieved, err := moveRepo.GetByKey(ctx, "hard:O:X___O___X")

		// Then: the stored move is returned
		require.NoError(t, err)
		assert.Equal(t, cell, retrieved)
	})

	t.Run("GetByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// When: GetByKey is called with an unknown key
		retrieved, err := moveRepo.GetByKey(ctx, "hard:X:_________")

		// Then: an ErrMoveNotFound error should be returned
		require.ErrorIs(t, err, ErrMoveNotFound)
		assert.Equal(t, entity.Cell{}, retrieved)
	})

	t.Run("Save_WithTTL", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, time.Second)

		// Given: a move stored with a short ttl
		err := moveRepo.Save(ctx, "hard:X:_________", entity.Cell{})
		require.NoError(t, err)

		// When: the remaining ttl is read
		ttl, err := st.Storage.TTL(ctx, "move:hard:X:_________").Result()

		// Then: the key carries the expiry
		require.NoError(t, err)
		assert.Positive(t, ttl)
		assert.LessOrEqual(t, ttl, time.Second)
	})
}

func TestMoveRepository_DeleteByKey(t *testing.T) {
	t.Run("DeleteByKey_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: a stored move
		err := moveRepo.Save(ctx, "hard:X:_________", entity.Cell{})
		require.NoError(t, err)

		// When: DeleteByKey is called
		err = moveRepo.DeleteByKey(ctx, "hard:X:_________")

		// Then: no error is returned and the move is gone
		require.NoError(t, err)

		_, err = moveRepo.GetByKey(ctx, "hard:X:_________")
		require.ErrorIs(t, err, ErrMoveNotFound)
	})

	t.Run("DeleteByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// When: DeleteByKey is called with an unknown key
		err := moveRepo.DeleteByKey(ctx, "hard:O:_________")

		// Then: an ErrMoveNotFound error should be returned
		require.ErrorIs(t, err, ErrMoveNotFound)
	})
}
