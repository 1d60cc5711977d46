package entity

// Line - three cells of one row, column or diagonal.
type Line [Dimension]Mark

var (
	// WinningPatterns - the complete lines, X first.
	WinningPatterns = []Line{
		{PlayerX, PlayerX, PlayerX},
		{PlayerO, PlayerO, PlayerO},
	}

	// TwoInARowPatterns - lines one mark away from completion, for both players.
	TwoInARowPatterns = []Line{
		{PlayerX, PlayerX, Empty},
		{PlayerX, Empty, PlayerX},
		{Empty, PlayerX, PlayerX},
		{PlayerO, PlayerO, Empty},
		{PlayerO, Empty, PlayerO},
		{Empty, PlayerO, PlayerO},
	}

	mainDiagonal = [Dimension]Cell{{0, 0}, {1, 1}, {2, 2}}
	antiDiagonal = [Dimension]Cell{{2, 0}, {1, 1}, {0, 2}}
)

// Columns - the grid transposed.
func Columns(board *Board) [Dimension]Line {
	var columns [Dimension]Line
	for row := 0; row < Dimension; row++ {
		for col := 0; col < Dimension; col++ {
			columns[col][row] = board.grid[row][col]
		}
	}

	return columns
}

// Diagonals - the main diagonal (0,0)-(2,2) followed by the anti-diagonal (2,0)-(0,2).
func Diagonals(board *Board) [2]Line {
	var diagonals [2]Line
	for i := 0; i < Dimension; i++ {
		diagonals[0][i] = board.At(mainDiagonal[i])
		diagonals[1][i] = board.At(antiDiagonal[i])
	}

	return diagonals
}

// Lines - all eight lines: rows, then columns, then diagonals.
func Lines(board *Board) []Line {
	rows, columns, diagonals := board.Rows(), Columns(board), Diagonals(board)

	lines := make([]Line, 0, 2*Dimension+2)
	lines = append(lines, rows[:]...)
	lines = append(lines, columns[:]...)
	lines = append(lines, diagonals[:]...)

	return lines
}

// HasWinningLine - reports whether any line is entirely filled with the mark.
func HasWinningLine(board *Board, mark Mark) bool {
	pattern := Line{mark, mark, mark}
	for _, line := range Lines(board) {
		if line == pattern {
			return true
		}
	}

	return false
}

// MatchesAny - reports whether the line equals one of the patterns exactly.
func MatchesAny(line Line, patterns []Line) bool {
	for _, pattern := range patterns {
		if line == pattern {
			return true
		}
	}

	return false
}

// OnMainDiagonal - (0,0), (1,1) and (2,2).
func (that Cell) OnMainDiagonal() bool {
	return that.Row == that.Col
}

// OnAntiDiagonal - (2,0), (1,1) and (0,2).
func (that Cell) OnAntiDiagonal() bool {
	return that.Row+that.Col == Dimension-1
}
