package entity

import "strings"

const Dimension = 3

// Board - the 3x3 grid and the status derived from it by EvaluateStatus.
//
// Board is a value type: assigning it copies the grid, which is how search
// strategies obtain a private scratch board.
type Board struct {
	grid   [Dimension][Dimension]Mark
	status Status
	winner Mark
}

func NewBoard() *Board {
	return &Board{}
}

// Mark - puts the mark into the cell. The caller guarantees the cell is valid and free.
func (that *Board) Mark(cell Cell, mark Mark) {
	that.grid[cell.Row][cell.Col] = mark
	that.resetStatus()
}

// Clear - empties the cell, undoing a previous Mark.
func (that *Board) Clear(cell Cell) {
	that.grid[cell.Row][cell.Col] = Empty
	that.resetStatus()
}

func (that *Board) At(cell Cell) Mark {
	return that.grid[cell.Row][cell.Col]
}

func (that *Board) IsFree(cell Cell) bool {
	return that.At(cell) == Empty
}

// FreeCells - returns empty cells in row-major order.
func (that *Board) FreeCells() []Cell {
	cells := make([]Cell, 0, Dimension*Dimension)
	for row := 0; row < Dimension; row++ {
		for col := 0; col < Dimension; col++ {
			if that.grid[row][col] == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) HasEmptyCells() bool {
	for _, line := range that.grid {
		for _, mark := range line {
			if mark == Empty {
				return true
			}
		}
	}

	return false
}

// EvaluateStatus - recomputes the status from the grid. X is checked before O,
// so a grid holding complete lines for both players is reported as won by X.
func (that *Board) EvaluateStatus() Status {
	lines := Lines(that)
	for _, pattern := range WinningPatterns {
		for _, line := range lines {
			if line == pattern {
				that.status = StatusWon
				that.winner = pattern[0]

				return that.status
			}
		}
	}

	that.winner = Empty
	if that.HasEmptyCells() {
		that.status = StatusInProgress
	} else {
		that.status = StatusDraw
	}

	return that.status
}

func (that *Board) Status() Status {
	return that.status
}

// Winner - the winning mark, Empty unless the status is StatusWon.
func (that *Board) Winner() Mark {
	return that.winner
}

func (that *Board) IsFinished() bool {
	return that.status != StatusInProgress
}

// Rows - the grid rows as given.
func (that *Board) Rows() [Dimension]Line {
	var rows [Dimension]Line
	for row := 0; row < Dimension; row++ {
		rows[row] = Line(that.grid[row])
	}

	return rows
}

// Key - compact row-major encoding of the grid, e.g. "XX_OO____".
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Dimension * Dimension)
	for _, line := range that.grid {
		for _, mark := range line {
			sb.WriteString(mark.String())
		}
	}

	return sb.String()
}

// ParseBoard - builds a board from the Key encoding. Unknown symbols are treated as empty.
func ParseBoard(key string) *Board {
	board := NewBoard()
	for i, symbol := range key {
		if i >= Dimension*Dimension {
			break
		}

		cell := Cell{Row: i / Dimension, Col: i % Dimension}
		switch symbol {
		case 'X':
			board.grid[cell.Row][cell.Col] = PlayerX
		case 'O':
			board.grid[cell.Row][cell.Col] = PlayerO
		}
	}

	return board
}

func (that *Board) resetStatus() {
	that.status = StatusInProgress
	that.winner = Empty
}
