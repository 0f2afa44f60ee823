package strategy

import (
	"fmt"

	"github.com/puzzle-framework/pencil/pkg/pencil"
)

var _ pencil.Strategy = &RemoveSolvedFromNeighbors{}

// RemoveSolvedFromNeighbors eliminates every solved cell's digit from
// the candidate sets of all 20 of its neighbors. Removal is idempotent
// and unrelated digits commute, so the processing order of solved
// cells does not affect the result. A single pass does not propagate
// from cells that became solved during the pass; re-apply for that.
type RemoveSolvedFromNeighbors struct{}

func NewRemoveSolvedFromNeighbors() *RemoveSolvedFromNeighbors {
	return &RemoveSolvedFromNeighbors{}
}

func (*RemoveSolvedFromNeighbors) Name() string {
	return "RemoveSolvedFromNeighbors"
}

func (*RemoveSolvedFromNeighbors) Apply(board pencil.Board) (pencil.Board, error) {
	result := board

	for idx := 0; idx < pencil.BoardSize; idx++ {
		cell := board.CellAt(idx)
		if !cell.IsSolved() {
			continue
		}
		for _, neighbor := range pencil.AllNeighbors(idx) {
			if err := result.Remove(neighbor, cell.Digit()); err != nil {
				return board, fmt.Errorf("removing %d from cell %d: %w", cell.Digit(), neighbor, err)
			}
		}
	}

	return result, nil
}
