package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
)

var ErrIllegalMove = errors.New("strategy offered an occupied cell")

type display interface {
	ShowBoard(board *entity.Board)
	ShowMoveLevel(level strategy.Level)
	ShowInputError(err error)
	ShowResult(board *entity.Board)
}

// GameController - owns the live board of one game at a time and alternates the players on it.
type GameController struct {
	logger  *slog.Logger
	display display
}

func NewGameController(logger *slog.Logger, display display) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		display: display,
	}
}

// Play - runs a game to its end. X moves first.
func (that *GameController) Play(ctx context.Context, playerX, playerO strategy.Strategy) (*entity.Board, error) {
	log := that.logger.With("method", "Play", "game_id", uuid.NewString())
	log.Info("game started", "x", playerX.Level(), "o", playerO.Level())

	board := entity.NewBoard()
	that.display.ShowBoard(board)

	players := [2]strategy.Strategy{playerX, playerO}
	for turn := 0; ; turn = 1 - turn {
		player := players[turn]

		cell, err := that.selectMove(ctx, log, board, player)
		if err != nil {
			return board, fmt.Errorf("player %s failed to move: %w", player.Mark(), err)
		}

		board.Mark(cell, player.Mark())
		that.display.ShowBoard(board)

		if board.EvaluateStatus() != entity.StatusInProgress {
			break
		}
	}

	that.display.ShowResult(board)
	log.Info("game finished", "status", board.Status().String(), "winner", board.Winner().String())

	return board, nil
}

// selectMove - asks the player until it returns a usable cell. Retryable
// input errors are shown and the player is asked again.
func (that *GameController) selectMove(
	ctx context.Context,
	log *slog.Logger,
	board *entity.Board,
	player strategy.Strategy,
) (entity.Cell, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Cell{}, fmt.Errorf("game interrupted: %w", err)
		}

		cell, err := player.SelectMove(ctx, board)
		if apperror.IsRetryable(err) {
			log.Debug("move rejected", "mark", player.Mark().String(), "error", err)
			that.display.ShowInputError(err)

			continue
		}

		if err != nil {
			return entity.Cell{}, err
		}

		if !board.IsFree(cell) {
			return entity.Cell{}, fmt.Errorf("%w: %s", ErrIllegalMove, cell)
		}

		if player.Level() != strategy.LevelUser {
			that.display.ShowMoveLevel(player.Level())
		}

		log.Debug("move selected", "mark", player.Mark().String(), "level", player.Level(), "cell", cell.String())

		return cell, nil
	}
}
