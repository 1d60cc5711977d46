package strategy

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Heuristic - one-ply lookahead: takes the first free cell that completes or
// blocks a two-in-a-row, otherwise defers to the fallback.
type Heuristic struct {
	mark     entity.Mark
	fallback Strategy
}

func NewHeuristic(mark entity.Mark, fallback Strategy) *Heuristic {
	return &Heuristic{
		mark:     mark,
		fallback: fallback,
	}
}

func (that *Heuristic) Mark() entity.Mark {
	return that.mark
}

func (that *Heuristic) Level() Level {
	return LevelMedium
}

func (that *Heuristic) SelectMove(ctx context.Context, board *entity.Board) (entity.Cell, error) {
	if cell, ok := FindTwoInARow(board); ok {
		return cell, nil
	}

	return that.fallback.SelectMove(ctx, board)
}

// FindTwoInARow - scans free cells in row-major order and returns the first one
// whose row, column or diagonal holds two marks of one player. Own and
// opponent lines are not told apart.
func FindTwoInARow(board *entity.Board) (entity.Cell, bool) {
	rows := board.Rows()
	columns := entity.Columns(board)
	diagonals := entity.Diagonals(board)

	for _, cell := range board.FreeCells() {
		if entity.MatchesAny(rows[cell.Row], entity.TwoInARowPatterns) ||
			entity.MatchesAny(columns[cell.Col], entity.TwoInARowPatterns) ||
			(cell.OnMainDiagonal() && entity.MatchesAny(diagonals[0], entity.TwoInARowPatterns)) ||
			(cell.OnAntiDiagonal() && entity.MatchesAny(diagonals[1], entity.TwoInARowPatterns)) {
			return cell, true
		}
	}

	return entity.Cell{}, false
}
