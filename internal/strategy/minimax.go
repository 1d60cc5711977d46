package strategy

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

// ScoredMove - a candidate move and the value of its subtree.
type ScoredMove struct {
	Cell  entity.Cell
	Score int
}

// Minimax - exhaustive search. Wins score +10 and losses -10 regardless of
// depth, so the fastest win is not preferred over a slower one.
type Minimax struct {
	mark entity.Mark
}

func NewMinimax(mark entity.Mark) *Minimax {
	return &Minimax{mark: mark}
}

func (that *Minimax) Mark() entity.Mark {
	return that.mark
}

func (that *Minimax) Level() Level {
	return LevelHard
}

// SelectMove - the first free cell in row-major order with the maximal score.
func (that *Minimax) SelectMove(_ context.Context, board *entity.Board) (entity.Cell, error) {
	moves := that.Scores(board)
	if len(moves) == 0 {
		return entity.Cell{}, apperror.ErrNoFreeCells
	}

	best := moves[0]
	for _, move := range moves[1:] {
		if move.Score > best.Score {
			best = move
		}
	}

	return best.Cell, nil
}

// Scores - the value of every free cell, in row-major order. The search runs
// on a private copy of the board.
func (that *Minimax) Scores(board *entity.Board) []ScoredMove {
	scratch := *board

	cells := scratch.FreeCells()
	moves := make([]ScoredMove, 0, len(cells))
	for _, cell := range cells {
		moves = append(moves, ScoredMove{
			Cell:  cell,
			Score: that.score(&scratch, cell, that.mark),
		})
	}

	return moves
}

// score - plays the cell for mark, scores the reply tree and undoes the move.
func (that *Minimax) score(scratch *entity.Board, cell entity.Cell, mark entity.Mark) int {
	scratch.Mark(cell, mark)
	score := that.minimax(scratch, mark.Opponent())
	scratch.Clear(cell)

	return score
}

func (that *Minimax) minimax(scratch *entity.Board, toMove entity.Mark) int {
	switch scratch.EvaluateStatus() {
	case entity.StatusDraw:
		return scoreDraw
	case entity.StatusWon:
		if scratch.Winner() == that.mark {
			return scoreWin
		}
		return scoreLoss
	}

	maximizing := toMove == that.mark

	best := scoreWin
	if maximizing {
		best = scoreLoss
	}

	for _, cell := range scratch.FreeCells() {
		score := that.score(scratch, cell, toMove)

		// nothing better exists for the side choosing here
		if maximizing {
			if score == scoreWin {
				return score
			}
			best = max(best, score)
		} else {
			if score == scoreLoss {
				return score
			}
			best = min(best, score)
		}
	}

	return best
}
