package strategy

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"golang.org/x/exp/rand"
)

// Level - the command word that selects a strategy.
type Level string

const (
	LevelUser   Level = "user"
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Strategy - selects a free cell for its mark. The board is read only; the
// caller applies the returned move.
type Strategy interface {
	Mark() entity.Mark
	Level() Level
	SelectMove(ctx context.Context, board *entity.Board) (entity.Cell, error)
}

// Dependencies - collaborators a strategy may need.
type Dependencies struct {
	Input CoordinateReader
	Rand  *rand.Rand
}

// ParseLevel - maps a command word onto a level.
func ParseLevel(word string) (Level, error) {
	switch level := Level(word); level {
	case LevelUser, LevelEasy, LevelMedium, LevelHard:
		return level, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownLevel, word)
	}
}

// New - builds the strategy for the level.
func New(level Level, mark entity.Mark, deps Dependencies) (Strategy, error) {
	switch level {
	case LevelUser:
		return NewHuman(mark, deps.Input), nil
	case LevelEasy:
		return NewRandom(mark, deps.Rand), nil
	case LevelMedium:
		return NewHeuristic(mark, NewRandom(mark, deps.Rand)), nil
	case LevelHard:
		return NewMinimax(mark), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownLevel, level)
	}
}
