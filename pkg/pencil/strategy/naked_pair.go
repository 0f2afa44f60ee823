package strategy

import (
	"fmt"

	"github.com/puzzle-framework/pencil/pkg/pencil"
)

var _ pencil.Strategy = &NakedPair{}

// NakedPair finds, within each of the 27 groups, exactly two cells
// sharing an identical 2-candidate set. Those two digits must land in
// those two cells, so they are removed from every other cell of the
// group. Three or more cells sharing the same 2-candidate set is a
// contradiction; detecting that is Valid's job, not this rule's.
type NakedPair struct{}

func NewNakedPair() *NakedPair {
	return &NakedPair{}
}

func (*NakedPair) Name() string {
	return "NakedPair"
}

func (*NakedPair) Apply(board pencil.Board) (pencil.Board, error) {
	result := board

	for _, group := range pencil.AllGroups() {
		// bucket the group's 2-candidate cells by candidate-set identity
		pairs := make(map[pencil.Cell][]pencil.GroupCell)
		for _, gc := range board.GroupCells(group) {
			if !gc.Cell.IsSolved() && gc.Cell.Count() == 2 {
				pairs[gc.Cell] = append(pairs[gc.Cell], gc)
			}
		}

		for cell, members := range pairs {
			if len(members) != 2 {
				continue
			}
			for _, digit := range cell.Digits() {
				for _, idx := range group {
					if idx == members[0].BoardIndex || idx == members[1].BoardIndex {
						continue
					}
					if err := result.Remove(idx, digit); err != nil {
						return board, fmt.Errorf("removing %d from cell %d: %w", digit, idx, err)
					}
				}
			}
		}
	}

	return result, nil
}
