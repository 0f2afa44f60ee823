package complete

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzle-framework/pencil/internal/solver"
	"github.com/puzzle-framework/pencil/pkg/pencil"
)

func NewCompleteCommand() *cobra.Command {
	var boardString string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Completes a puzzle with a SAT solver",
		Long: `Parses an 81-character puzzle string and fills in every open cell
with an assignment consistent with the given digits, or reports that
no completion exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return complete(boardString)
		},
	}

	cmd.Flags().StringVar(&boardString, "board", "", "81-character puzzle string, row-major")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		panic(err)
	}

	return cmd
}

func complete(boardString string) error {
	board, err := pencil.Parse(boardString)
	if err != nil {
		return fmt.Errorf("error parsing board: %w", err)
	}

	completed, err := solver.Complete(board)
	if errors.Is(err, solver.ErrNotCompletable) {
		fmt.Println("no completion found")
		return nil
	}
	if err != nil {
		return err
	}

	for row := 0; row < pencil.GroupSize; row++ {
		for col := 0; col < pencil.GroupSize; col++ {
			if col > 0 {
				fmt.Print(" ")
			}
			fmt.Print(completed.CellAt(row*pencil.GroupSize + col).Digit())
		}
		fmt.Println()
	}

	return nil
}
