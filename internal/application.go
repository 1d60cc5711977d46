package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"golang.org/x/exp/rand"
)

// RunApp - runs the menu on stdin/stdout until exit, end of input or a signal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	menu := NewMenu(logger, console.New(os.Stdin, os.Stdout), newRand(conf.Seed))

	if conf.OpeningBook.Enabled {
		client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to opening book storage: %w", err)
		}

		defer func() {
			if err = client.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		menu.UseOpeningBook(repository.NewMoveRepository(client, conf.OpeningBook.TTL))
		log.Info("Opening book enabled", "redis", conf.Redis.GetRedisAddr())
	}

	// the menu blocks on stdin, which a signal cannot interrupt
	menuErrCh := make(chan error, 1)
	go func() {
		menuErrCh <- menu.Run(ctx)
	}()

	select {
	case err := <-menuErrCh:
		return err
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(seed))
}

type terminal interface {
	ReadCommand(ctx context.Context) (console.Command, error)
	ReadCoordinates(ctx context.Context) (int, int, error)
	ShowBoard(board *entity.Board)
	ShowMoveLevel(level strategy.Level)
	ShowInputError(err error)
	ShowBadCommand()
	ShowResult(board *entity.Board)
}

// Menu - reads commands and starts games until exit.
type Menu struct {
	logger     *slog.Logger
	terminal   terminal
	controller *tictactoe.GameController
	rnd        *rand.Rand
	book       repository.MoveRepository
}

func NewMenu(logger *slog.Logger, terminal terminal, rnd *rand.Rand) *Menu {
	return &Menu{
		logger:     logger.With("component", "menu"),
		terminal:   terminal,
		controller: tictactoe.NewGameController(logger, terminal),
		rnd:        rnd,
	}
}

// UseOpeningBook - hard players consult the book before searching.
func (that *Menu) UseOpeningBook(book repository.MoveRepository) {
	that.book = book
}

// Run - returns nil on exit or end of input.
func (that *Menu) Run(ctx context.Context) error {
	for {
		command, err := that.terminal.ReadCommand(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, apperror.ErrBadCommand):
			that.logger.Debug("bad command", "error", err)
			that.terminal.ShowBadCommand()
			continue
		case err != nil:
			return fmt.Errorf("failed to read command: %w", err)
		}

		if command.Name == console.CommandExit {
			return nil
		}

		if err = that.startGame(ctx, command.Players); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (that *Menu) startGame(ctx context.Context, levels [2]strategy.Level) error {
	playerX, err := that.newPlayer(levels[0], entity.PlayerX)
	if err != nil {
		return err
	}

	playerO, err := that.newPlayer(levels[1], entity.PlayerO)
	if err != nil {
		return err
	}

	if _, err = that.controller.Play(ctx, playerX, playerO); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func (that *Menu) newPlayer(level strategy.Level, mark entity.Mark) (strategy.Strategy, error) {
	player, err := strategy.New(level, mark, strategy.Dependencies{
		Input: that.terminal,
		Rand:  that.rnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player %s: %w", mark, err)
	}

	// only the deterministic search is safe to cache
	if that.book != nil && level == strategy.LevelHard {
		return service.NewCachedStrategy(that.logger, that.book, player), nil
	}

	return player, nil
}
