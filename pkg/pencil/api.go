package pencil

import (
	"fmt"
)

// Strategy implementations narrow the candidate sets of a Board by
// applying a single deduction rule.
type Strategy interface {
	// Name returns a stable name for this strategy, suitable for
	// diagnostics and for selecting strategies by name.
	Name() string
	// Apply applies the strategy to the input board and returns a new
	// board; the input board is never modified. A non-nil error
	// indicates a defect in the strategy implementation and should be
	// treated as fatal rather than retried.
	Apply(board Board) (Board, error)
}

// InvalidDigitError is returned when a digit outside [1,9] is passed
// to a candidate-removal operation.
type InvalidDigitError int

func (e InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %d: digits must be between 1 and 9", int(e))
}

// RemoveSolvedDigitError is returned when a removal targets the digit
// a cell is already solved as. No correct strategy should ever attempt
// this, so it signals a logic defect upstream.
type RemoveSolvedDigitError int

func (e RemoveSolvedDigitError) Error() string {
	return fmt.Sprintf("attempt to remove digit %d from the cell solved as %d", int(e), int(e))
}

// ParseLengthError is returned when a board string does not contain
// exactly one character per board position.
type ParseLengthError int

func (e ParseLengthError) Error() string {
	return fmt.Sprintf("board string must be %d characters, got %d", BoardSize, int(e))
}
