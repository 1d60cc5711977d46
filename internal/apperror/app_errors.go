package apperror

import "errors"

var (
	ErrInvalidInputFormat = errors.New("coordinates should be numbers")
	ErrOutOfRange         = errors.New("coordinates are out of range")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrBadCommand         = errors.New("bad command")
	ErrNoFreeCells        = errors.New("no free cells")
	ErrUnknownLevel       = errors.New("unknown player level")
)

// IsRetryable - reports whether the error asks the caller to prompt for another move.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrInvalidInputFormat) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrCellOccupied)
}
