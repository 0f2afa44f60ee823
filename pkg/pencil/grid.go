package pencil

import (
	"fmt"
	"sort"
)

const (
	// GroupSize is the number of cells in every row, column and box.
	GroupSize = 9
	// BoardSize is the number of cells on a board, indexed 0..80 in
	// row-major order (index = row*9 + column).
	BoardSize = GroupSize * GroupSize
	// NeighborCount is the number of distinct cells sharing at least
	// one group with any given cell.
	NeighborCount = 20
)

func checkIndex(idx int) {
	if idx < 0 || idx >= BoardSize {
		panic(fmt.Sprintf("cell index %d out of range [0,%d)", idx, BoardSize))
	}
}

// RowNeighbors returns the indices of the other eight cells in idx's row.
func RowNeighbors(idx int) []int {
	checkIndex(idx)
	rowStart := idx - idx%GroupSize
	neighbors := make([]int, 0, GroupSize-1)
	for n := rowStart; n < rowStart+GroupSize; n++ {
		if n != idx {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ColumnNeighbors returns the indices of the other eight cells in
// idx's column.
func ColumnNeighbors(idx int) []int {
	checkIndex(idx)
	col := idx % GroupSize
	neighbors := make([]int, 0, GroupSize-1)
	for row := 0; row < GroupSize; row++ {
		n := col + row*GroupSize
		if n != idx {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// BoxNeighbors returns the indices of the other eight cells in idx's
// 3x3 box.
func BoxNeighbors(idx int) []int {
	checkIndex(idx)
	row := idx / GroupSize
	col := idx % GroupSize
	// top-left anchor of the box holding this cell
	boxRow := row - row%3
	boxCol := col - col%3
	neighbors := make([]int, 0, GroupSize-1)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n := (boxRow+r)*GroupSize + boxCol + c
			if n != idx {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// AllNeighbors returns the sorted, deduplicated union of idx's row,
// column and box neighbors: exactly 20 indices for any position.
func AllNeighbors(idx int) []int {
	neighbors := RowNeighbors(idx)
	neighbors = append(neighbors, ColumnNeighbors(idx)...)
	neighbors = append(neighbors, BoxNeighbors(idx)...)
	sort.Ints(neighbors)
	deduped := neighbors[:1]
	for _, n := range neighbors[1:] {
		if n != deduped[len(deduped)-1] {
			deduped = append(deduped, n)
		}
	}
	return deduped
}

// Rows returns the nine rows as lists of cell indices.
func Rows() [][]int {
	rows := make([][]int, GroupSize)
	for r := range rows {
		rows[r] = make([]int, GroupSize)
		for c := range rows[r] {
			rows[r][c] = r*GroupSize + c
		}
	}
	return rows
}

// Columns returns the nine columns as lists of cell indices.
func Columns() [][]int {
	columns := make([][]int, GroupSize)
	for c := range columns {
		columns[c] = make([]int, GroupSize)
		for r := range columns[c] {
			columns[c][r] = c + r*GroupSize
		}
	}
	return columns
}

// Boxes returns the nine 3x3 boxes as lists of cell indices.
func Boxes() [][]int {
	boxes := make([][]int, GroupSize)
	for b := range boxes {
		anchorRow := (b / 3) * 3
		anchorCol := (b % 3) * 3
		boxes[b] = make([]int, 0, GroupSize)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				boxes[b] = append(boxes[b], (anchorRow+r)*GroupSize+anchorCol+c)
			}
		}
	}
	return boxes
}

// AllGroups returns the fixed partition of the board into 27 groups:
// nine rows, nine columns and nine boxes, in that order. Group
// membership never changes at runtime.
func AllGroups() [][]int {
	groups := Rows()
	groups = append(groups, Columns()...)
	groups = append(groups, Boxes()...)
	return groups
}
