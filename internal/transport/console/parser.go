package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
)

const (
	CommandStart = "start"
	CommandExit  = "exit"
)

// Command - a parsed menu line. Players is set for start only: X first, O second.
type Command struct {
	Name    string
	Players [2]strategy.Level
}

// ParseCommand - accepts "start <p1> <p2>" and "exit".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", apperror.ErrBadCommand)
	}

	switch fields[0] {
	case CommandExit:
		return Command{Name: CommandExit}, nil
	case CommandStart:
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("%w: start needs two players", apperror.ErrBadCommand)
		}

		command := Command{Name: CommandStart}
		for i, word := range fields[1:] {
			level, err := strategy.ParseLevel(word)
			if err != nil {
				return Command{}, fmt.Errorf("%w: %w", apperror.ErrBadCommand, err)
			}
			command.Players[i] = level
		}

		return command, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrBadCommand, fields[0])
	}
}

// ParseCoordinates - two unsigned decimal numbers in [1, Dimension].
func ParseCoordinates(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || !isDigits(fields[0]) || !isDigits(fields[1]) {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInputFormat, line)
	}

	x, err := atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}

	y, err := atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	if x < 1 || x > entity.Dimension || y < 1 || y > entity.Dimension {
		return 0, 0, fmt.Errorf("%w: %d %d", apperror.ErrOutOfRange, x, y)
	}

	return x, y, nil
}

// atoi - numbers too large for int are out of range rather than malformed.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, s)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInputFormat, err)
	}

	return n, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return s != ""
}
