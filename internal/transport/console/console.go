package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/strategy"
)

const border = "---------"

// Console - line based terminal front end: reads commands and coordinates, prints the game.
type Console struct {
	scanner *bufio.Scanner
	out     *termenv.Output
}

func New(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     termenv.NewOutput(out, opts...),
	}
}

// ReadCommand - prompts for and parses one menu command. Returns io.EOF when input ends.
func (that *Console) ReadCommand(ctx context.Context) (Command, error) {
	line, err := that.readLine(ctx, "Input command: ")
	if err != nil {
		return Command{}, err
	}

	return ParseCommand(line)
}

// ReadCoordinates - prompts for one "x y" pair of numbers in [1, 3].
func (that *Console) ReadCoordinates(ctx context.Context) (int, int, error) {
	line, err := that.readLine(ctx, "Enter the coordinates: ")
	if err != nil {
		return 0, 0, err
	}

	return ParseCoordinates(line)
}

func (that *Console) ShowBoard(board *entity.Board) {
	var sb strings.Builder

	sb.WriteString(border)
	for _, row := range board.Rows() {
		sb.WriteString("\n|")
		for _, mark := range row {
			sb.WriteString(" ")
			sb.WriteString(that.styled(mark))
		}
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	sb.WriteString(border)

	that.println(sb.String())
}

func (that *Console) ShowMoveLevel(level strategy.Level) {
	that.println(fmt.Sprintf("Making move level %q", level))
}

func (that *Console) ShowInputError(err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidInputFormat):
		that.println("You should enter numbers!")
	case errors.Is(err, apperror.ErrOutOfRange):
		that.println(fmt.Sprintf("Coordinates should be from 1 to %d!", entity.Dimension))
	case errors.Is(err, apperror.ErrCellOccupied):
		that.println("This cell is occupied! Choose another one!")
	default:
		that.println(err.Error())
	}
}

func (that *Console) ShowBadCommand() {
	that.println("Bad parameters!")
}

func (that *Console) ShowResult(board *entity.Board) {
	if board.Status() == entity.StatusWon {
		that.println(fmt.Sprintf("%s %s", that.styled(board.Winner()), board.Status()))
		return
	}

	that.println(board.Status().String())
}

func (that *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read interrupted: %w", err)
	}

	fmt.Fprint(that.out, prompt)

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return that.scanner.Text(), nil
}

func (that *Console) styled(mark entity.Mark) string {
	style := that.out.String(mark.String())

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.out.Color("1")).Bold()
	case entity.PlayerO:
		style = style.Foreground(that.out.Color("4")).Bold()
	}

	return style.String()
}

func (that *Console) println(s string) {
	fmt.Fprintln(that.out, s)
}
