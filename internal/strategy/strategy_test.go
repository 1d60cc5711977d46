package strategy

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// scriptedInput - returns the queued coordinate pairs in order.
type scriptedInput struct {
	coords [][2]int
	err    error
}

func (that *scriptedInput) ReadCoordinates(_ context.Context) (int, int, error) {
	if that.err != nil {
		return 0, 0, that.err
	}

	next := that.coords[0]
	that.coords = that.coords[1:]

	return next[0], next[1], nil
}

// playOut - alternates the two strategies from the board until the game ends.
func playOut(t *testing.T, board *entity.Board, first, second Strategy) *entity.Board {
	t.Helper()

	players := [2]Strategy{first, second}
	for turn := 0; board.EvaluateStatus() == entity.StatusInProgress; turn = 1 - turn {
		cell, err := players[turn].SelectMove(context.Background(), board)
		require.NoError(t, err)
		require.True(t, board.IsFree(cell), "strategy %s offered occupied cell %s", players[turn].Level(), cell)

		board.Mark(cell, players[turn].Mark())
	}

	return board
}

func newSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestParseLevel(t *testing.T) {
	t.Run("Known words", func(t *testing.T) {
		for _, word := range []string{"user", "easy", "medium", "hard"} {
			level, err := ParseLevel(word)
			require.NoError(t, err)
			assert.Equal(t, Level(word), level)
		}
	})

	t.Run("Unknown word", func(t *testing.T) {
		_, err := ParseLevel("impossible")
		assert.ErrorIs(t, err, apperror.ErrUnknownLevel)
	})
}

func TestNew(t *testing.T) {
	deps := Dependencies{Input: &scriptedInput{}, Rand: newSeeded(1)}

	tests := []struct {
		level Level
		want  Strategy
	}{
		{LevelUser, &Human{}},
		{LevelEasy, &Random{}},
		{LevelMedium, &Heuristic{}},
		{LevelHard, &Minimax{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			// When: a strategy is built for O
			s, err := New(tt.level, entity.PlayerO, deps)

			// Then: it has the matching type, level and mark
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			assert.Equal(t, tt.level, s.Level())
			assert.Equal(t, entity.PlayerO, s.Mark())
		})
	}

	t.Run("Unknown level", func(t *testing.T) {
		_, err := New("expert", entity.PlayerX, deps)
		assert.ErrorIs(t, err, apperror.ErrUnknownLevel)
	})
}
