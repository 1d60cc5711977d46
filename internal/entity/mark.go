package entity

import "fmt"

// Mark - the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "_"
	}
}

// Opponent - returns the mark of the other player. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Cell - zero-based row-major coordinate on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Status - outcome of the last board evaluation.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusDraw
	StatusWon
)

func (that Status) String() string {
	switch that {
	case StatusDraw:
		return "Draw"
	case StatusWon:
		return "wins"
	default:
		return "Game not finished"
	}
}
