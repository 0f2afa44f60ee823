package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/puzzle-framework/pencil/pkg/pencil"
)

const (
	// GridLines is the number of output lines a rendered board
	// occupies, separators included.
	GridLines = 35

	singleSeparator = "---+---+---++---+---+---++---+---+---"
	doubleSeparator = "===+===+===++===+===+===++===+===+==="
)

// Renderer draws a board as a text grid where every cell occupies a
// 3x3 character block: the digit centered for a solved cell, or each
// surviving candidate at its fixed sub-position for an unsolved one.
// Single lines divide cells, double lines divide boxes.
type Renderer struct {
	candidate lipgloss.Style
}

// New returns a renderer that dims candidate digits so solved cells
// stand out.
func New() *Renderer {
	return &Renderer{candidate: lipgloss.NewStyle().Faint(true)}
}

// Plain returns a renderer with no styling, for deterministic output.
func Plain() *Renderer {
	return &Renderer{}
}

// Lines renders the board to its 35 output lines. Line layout: when
// lineno%12 == 11 a double (box) separator is emitted, when
// lineno%4 == 3 a single separator, and otherwise one of the three
// character rows of the nine cells in the current board row.
func (r *Renderer) Lines(b pencil.Board) []string {
	cellBlocks := make([][3]string, pencil.BoardSize)
	for idx := 0; idx < pencil.BoardSize; idx++ {
		cellBlocks[idx] = r.cellBlock(b.CellAt(idx))
	}

	lines := make([]string, 0, GridLines)
	for lineno := 0; lineno < GridLines; lineno++ {
		switch {
		case lineno%12 == 11:
			lines = append(lines, doubleSeparator)
		case lineno%4 == 3:
			lines = append(lines, singleSeparator)
		default:
			start := (lineno / 4) * pencil.GroupSize // first cell of this board row
			row := lineno % 4                        // character row within each cell block
			parts := make([]string, 0, pencil.GroupSize)
			for c := 0; c < pencil.GroupSize; c++ {
				parts = append(parts, cellBlocks[start+c][row])
			}
			lines = append(lines, fmt.Sprintf("%s|%s|%s||%s|%s|%s||%s|%s|%s",
				parts[0], parts[1], parts[2],
				parts[3], parts[4], parts[5],
				parts[6], parts[7], parts[8]))
		}
	}
	return lines
}

// Write renders the board to w, one line at a time.
func (r *Renderer) Write(w io.Writer, b pencil.Board) error {
	for _, line := range r.Lines(b) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) cellBlock(c pencil.Cell) [3]string {
	if c.IsSolved() {
		return [3]string{
			"   ",
			fmt.Sprintf(" %d ", c.Digit()),
			"   ",
		}
	}

	marks := make([]string, 0, pencil.GroupSize)
	for digit := 1; digit <= 9; digit++ {
		if c.Has(digit) {
			marks = append(marks, r.candidate.Render(fmt.Sprintf("%d", digit)))
		} else {
			marks = append(marks, " ")
		}
	}

	return [3]string{
		strings.Join(marks[0:3], ""),
		strings.Join(marks[3:6], ""),
		strings.Join(marks[6:9], ""),
	}
}
