package console

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Run("Start with two players", func(t *testing.T) {
		// When: a start command is parsed
		command, err := ParseCommand("start user hard")

		// Then: X is the first player and O the second
		require.NoError(t, err)
		assert.Equal(t, Command{
			Name:    CommandStart,
			Players: [2]strategy.Level{strategy.LevelUser, strategy.LevelHard},
		}, command)
	})

	t.Run("Exit", func(t *testing.T) {
		command, err := ParseCommand("  exit ")

		require.NoError(t, err)
		assert.Equal(t, CommandExit, command.Name)
	})

	badCommands := []string{
		"",
		"start",
		"start easy",
		"start easy medium hard",
		"start easy expert",
		"play easy easy",
	}
	for _, line := range badCommands {
		t.Run("Bad command "+line, func(t *testing.T) {
			_, err := ParseCommand(line)
			assert.ErrorIs(t, err, apperror.ErrBadCommand)
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	t.Run("Valid pair", func(t *testing.T) {
		x, y, err := ParseCoordinates("1 3")

		require.NoError(t, err)
		assert.Equal(t, 1, x)
		assert.Equal(t, 3, y)
	})

	tests := []struct {
		line string
		want error
	}{
		{"one two", apperror.ErrInvalidInputFormat},
		{"1", apperror.ErrInvalidInputFormat},
		{"1 2 3", apperror.ErrInvalidInputFormat},
		{"-1 2", apperror.ErrInvalidInputFormat},
		{"", apperror.ErrInvalidInputFormat},
		{"0 2", apperror.ErrOutOfRange},
		{"4 1", apperror.ErrOutOfRange},
		{"2 99999999999999999999999", apperror.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, _, err := ParseCoordinates(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
