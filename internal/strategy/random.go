package strategy

import (
	"context"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"golang.org/x/exp/rand"
)

// Random - picks uniformly among the free cells.
type Random struct {
	mark entity.Mark
	rnd  *rand.Rand
}

// NewRandom - a nil source is replaced by one seeded from the clock.
func NewRandom(mark entity.Mark, rnd *rand.Rand) *Random {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return &Random{
		mark: mark,
		rnd:  rnd,
	}
}

func (that *Random) Mark() entity.Mark {
	return that.mark
}

func (that *Random) Level() Level {
	return LevelEasy
}

func (that *Random) SelectMove(_ context.Context, board *entity.Board) (entity.Cell, error) {
	availableCells := board.FreeCells()
	if len(availableCells) == 0 {
		return entity.Cell{}, apperror.ErrNoFreeCells
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}
