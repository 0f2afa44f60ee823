package pencil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCellFromDigits(t *testing.T, digits ...int) Cell {
	t.Helper()
	c, err := CellFromDigits(digits...)
	require.NoError(t, err)
	return c
}

func TestNewCellHoldsEveryDigit(t *testing.T) {
	assert.Equal(t, mustCellFromDigits(t, 1, 2, 3, 4, 5, 6, 7, 8, 9), NewCell())
	assert.Equal(t, 9, NewCell().Count())
	assert.False(t, NewCell().IsSolved())
}

func TestCellFromDigits(t *testing.T) {
	c := mustCellFromDigits(t, 2, 5, 9)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, []int{2, 5, 9}, c.Digits())
	assert.True(t, c.Has(5))
	assert.False(t, c.Has(4))
}

func TestCellFromDigitsNormalizesSingleton(t *testing.T) {
	c := mustCellFromDigits(t, 7)
	assert.True(t, c.IsSolved())
	assert.Equal(t, 7, c.Digit())
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, []int{7}, c.Digits())
}

func TestCellFromDigitsRejectsInvalidDigit(t *testing.T) {
	for _, digit := range []int{-1, 0, 10} {
		_, err := CellFromDigits(digit)
		var invalid InvalidDigitError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, digit, int(invalid))
	}
}

func TestCellRemove(t *testing.T) {
	c, err := NewCell().Remove(4)
	require.NoError(t, err)
	assert.Equal(t, mustCellFromDigits(t, 1, 2, 3, 5, 6, 7, 8, 9), c)
}

func TestCellRemoveToSolved(t *testing.T) {
	c := NewCell()
	for _, digit := range []int{1, 2, 3, 4, 5, 6, 8, 9} { // leave 7 in
		var err error
		c, err = c.Remove(digit)
		require.NoError(t, err)
	}
	assert.True(t, c.IsSolved())
	assert.Equal(t, 7, c.Digit())
	assert.Equal(t, mustCellFromDigits(t, 7), c)
}

func TestCellRemoveFromSolved(t *testing.T) {
	solved := mustCellFromDigits(t, 4)
	for digit := 1; digit <= 9; digit++ {
		c, err := solved.Remove(digit)
		if digit == 4 {
			var removeSolved RemoveSolvedDigitError
			require.ErrorAs(t, err, &removeSolved)
			assert.Equal(t, 4, int(removeSolved))
			continue
		}
		// removing any other digit is a no-op
		require.NoError(t, err)
		assert.Equal(t, solved, c)
	}
}

func TestCellRemoveInvalidDigit(t *testing.T) {
	for _, digit := range []int{-1, 0, 10} {
		_, err := NewCell().Remove(digit)
		var invalid InvalidDigitError
		assert.True(t, errors.As(err, &invalid))
	}
}
