package strategy

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// CoordinateReader - supplies 1-based coordinates already validated as numbers in [1, 3].
type CoordinateReader interface {
	ReadCoordinates(ctx context.Context) (int, int, error)
}

type Human struct {
	mark  entity.Mark
	input CoordinateReader
}

func NewHuman(mark entity.Mark, input CoordinateReader) *Human {
	return &Human{
		mark:  mark,
		input: input,
	}
}

func (that *Human) Mark() entity.Mark {
	return that.mark
}

func (that *Human) Level() Level {
	return LevelUser
}

// SelectMove - reads one coordinate pair. Input errors and occupied cells are
// returned as is so the caller can prompt again.
func (that *Human) SelectMove(ctx context.Context, board *entity.Board) (entity.Cell, error) {
	x, y, err := that.input.ReadCoordinates(ctx)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to read coordinates: %w", err)
	}

	return Choose(board, x, y)
}

// Choose - maps the input pair onto the board and accepts the cell only if it is free.
func Choose(board *entity.Board, x, y int) (entity.Cell, error) {
	if x < 1 || x > entity.Dimension || y < 1 || y > entity.Dimension {
		return entity.Cell{}, fmt.Errorf("%w: %d %d", apperror.ErrOutOfRange, x, y)
	}

	cell := ToCell(x, y)
	if !board.IsFree(cell) {
		return entity.Cell{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	return cell, nil
}

// ToCell - x counts columns from the left, y counts rows from the bottom.
func ToCell(x, y int) entity.Cell {
	return entity.Cell{
		Row: entity.Dimension - y,
		Col: x - 1,
	}
}
