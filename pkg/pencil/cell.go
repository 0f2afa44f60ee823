package pencil

import (
	"math/bits"
)

// fullCandidates has one bit set per digit 1..9.
const fullCandidates uint16 = 0x1ff

// Cell is the value held at a single board position: either a solved
// digit, or the set of digits the position could still be (sometimes
// called pencil marks). Cell is a comparable value type; two unsolved
// cells are equal exactly when their candidate sets are identical,
// which NakedPair relies on to bucket cells by candidate-set identity.
type Cell struct {
	digit      int    // nonzero once the cell is solved
	candidates uint16 // 9-bit candidate mask, zero once solved
}

func candidateBit(digit int) uint16 {
	return 1 << (digit - 1)
}

// NewCell returns an unsolved cell that could hold any digit.
func NewCell() Cell {
	return Cell{candidates: fullCandidates}
}

// CellFromDigits builds a cell whose candidate set is exactly the
// given digits. A set with a single member normalizes to a solved
// cell. Digits outside [1,9] yield an InvalidDigitError.
func CellFromDigits(digits ...int) (Cell, error) {
	var mask uint16
	for _, digit := range digits {
		if digit < 1 || digit > 9 {
			return Cell{}, InvalidDigitError(digit)
		}
		mask |= candidateBit(digit)
	}
	if bits.OnesCount16(mask) == 1 {
		return Cell{digit: bits.TrailingZeros16(mask) + 1}, nil
	}
	return Cell{candidates: mask}, nil
}

// cellFromByte maps one character of a board string to a cell:
// '1'..'9' is a solved cell, anything else (including '0') is a fresh
// cell with every digit still possible.
func cellFromByte(ch byte) Cell {
	if ch >= '1' && ch <= '9' {
		return Cell{digit: int(ch - '0')}
	}
	return NewCell()
}

// Remove removes digit from the cell's candidate set and returns the
// resulting cell. This is the single state-transition point of the
// engine: when a removal leaves exactly one candidate, the returned
// cell is solved as that digit. Removing a solved cell's own digit
// returns a RemoveSolvedDigitError; removing any other digit from a
// solved cell is a no-op.
func (c Cell) Remove(digit int) (Cell, error) {
	if digit < 1 || digit > 9 {
		return c, InvalidDigitError(digit)
	}
	if c.digit != 0 {
		if c.digit == digit {
			return c, RemoveSolvedDigitError(digit)
		}
		return c, nil
	}
	remaining := c.candidates &^ candidateBit(digit)
	if bits.OnesCount16(remaining) == 1 {
		return Cell{digit: bits.TrailingZeros16(remaining) + 1}, nil
	}
	return Cell{candidates: remaining}, nil
}

// IsSolved reports whether the cell holds a determined digit.
func (c Cell) IsSolved() bool {
	return c.digit != 0
}

// Digit returns the solved digit, or 0 if the cell is unsolved.
func (c Cell) Digit() int {
	return c.digit
}

// Has reports whether digit is still possible for this cell.
func (c Cell) Has(digit int) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	if c.digit != 0 {
		return c.digit == digit
	}
	return c.candidates&candidateBit(digit) != 0
}

// Count returns the number of digits this cell could still be.
func (c Cell) Count() int {
	if c.digit != 0 {
		return 1
	}
	return bits.OnesCount16(c.candidates)
}

// Digits returns the digits this cell could still be, in ascending
// order. For a solved cell that is the single solved digit.
func (c Cell) Digits() []int {
	if c.digit != 0 {
		return []int{c.digit}
	}
	digits := make([]int, 0, bits.OnesCount16(c.candidates))
	for digit := 1; digit <= 9; digit++ {
		if c.candidates&candidateBit(digit) != 0 {
			digits = append(digits, digit)
		}
	}
	return digits
}
