package solver

import (
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/puzzle-framework/pencil/pkg/pencil"
)

// ErrNotCompletable is returned when no assignment of digits is
// consistent with the board's solved cells and surviving candidate
// sets.
var ErrNotCompletable = errors.New("board cannot be completed")

const satisfiable = 1

// lit returns the positive literal for "cell idx holds digit".
// Variables are numbered 1..729.
func lit(idx, digit int) z.Lit {
	return z.Var(idx*pencil.GroupSize + digit).Pos()
}

// Complete fills in every unsolved cell of the board by encoding it as
// a SAT problem: one variable per (cell, digit), a clause per cell
// over its surviving candidates, at most one digit per cell, and at
// most one occurrence of each digit per group. Strategy eliminations
// carry over, since excluded candidates never enter the encoding.
func Complete(board pencil.Board) (pencil.Board, error) {
	g := gini.New()

	for idx := 0; idx < pencil.BoardSize; idx++ {
		// the cell holds at least one of its candidates; for a solved
		// cell this is a unit clause pinning the given digit
		for _, digit := range board.CellAt(idx).Digits() {
			g.Add(lit(idx, digit))
		}
		g.Add(z.LitNull)

		// at most one digit per cell
		for a := 1; a <= pencil.GroupSize; a++ {
			for b := a + 1; b <= pencil.GroupSize; b++ {
				g.Add(lit(idx, a).Not())
				g.Add(lit(idx, b).Not())
				g.Add(z.LitNull)
			}
		}
	}

	// each digit appears at most once per group
	for _, group := range pencil.AllGroups() {
		for digit := 1; digit <= pencil.GroupSize; digit++ {
			for i, a := range group {
				for _, b := range group[i+1:] {
					g.Add(lit(a, digit).Not())
					g.Add(lit(b, digit).Not())
					g.Add(z.LitNull)
				}
			}
		}
	}

	if g.Solve() != satisfiable {
		return pencil.Board{}, ErrNotCompletable
	}

	digits := make([]byte, pencil.BoardSize)
	for idx := 0; idx < pencil.BoardSize; idx++ {
		for digit := 1; digit <= pencil.GroupSize; digit++ {
			if g.Value(lit(idx, digit)) {
				digits[idx] = byte('0' + digit)
				break
			}
		}
	}
	return pencil.Parse(string(digits))
}
