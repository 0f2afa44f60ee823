package pencil

// Board is a fixed collection of 81 cells in row-major order. Board is
// a value type: strategies receive their input by value and edit a
// private copy, so a caller's board is never mutated underneath it.
type Board struct {
	cells [BoardSize]Cell
}

// NewBoard returns a board where every cell could hold any digit.
func NewBoard() Board {
	var b Board
	for idx := range b.cells {
		b.cells[idx] = NewCell()
	}
	return b
}

// Parse builds a board from a linear 81-character string in row-major
// order. Characters '1'..'9' become solved cells; any other character
// (including '0') becomes a fully open unsolved cell. Any other length
// yields a ParseLengthError.
func Parse(s string) (Board, error) {
	if len(s) != BoardSize {
		return Board{}, ParseLengthError(len(s))
	}
	var b Board
	for idx := 0; idx < BoardSize; idx++ {
		b.cells[idx] = cellFromByte(s[idx])
	}
	return b, nil
}

// CellAt returns the cell at the given board index.
func (b Board) CellAt(idx int) Cell {
	checkIndex(idx)
	return b.cells[idx]
}

// Remove removes digit from the candidate set of the cell at idx,
// routing through Cell.Remove so the cell transitions to solved the
// instant a single candidate remains.
func (b *Board) Remove(idx, digit int) error {
	checkIndex(idx)
	cell, err := b.cells[idx].Remove(digit)
	if err != nil {
		return err
	}
	b.cells[idx] = cell
	return nil
}

// Valid reports whether no two solved cells sharing a group hold the
// same digit. Each violating pair is detected from either side; the
// redundancy is harmless.
func (b Board) Valid() bool {
	for idx := 0; idx < BoardSize; idx++ {
		cell := b.cells[idx]
		if !cell.IsSolved() {
			continue
		}
		for _, n := range AllNeighbors(idx) {
			if b.cells[n] == cell {
				return false
			}
		}
	}
	return true
}

// Solved reports whether the board is valid and every cell is solved.
func (b Board) Solved() bool {
	if !b.Valid() {
		return false
	}
	for _, cell := range b.cells {
		if !cell.IsSolved() {
			return false
		}
	}
	return true
}

// GroupCell pairs a cell value with its position within a group and
// its board index.
type GroupCell struct {
	Cell       Cell
	GroupIndex int
	BoardIndex int
}

// GroupCells returns the cells of a group along with their positions,
// in group order. Group-scoped strategies use this to bucket cells by
// candidate-set identity while retaining where they sit on the board.
func (b Board) GroupCells(group []int) []GroupCell {
	cells := make([]GroupCell, len(group))
	for groupIdx, boardIdx := range group {
		checkIndex(boardIdx)
		cells[groupIdx] = GroupCell{
			Cell:       b.cells[boardIdx],
			GroupIndex: groupIdx,
			BoardIndex: boardIdx,
		}
	}
	return cells
}
