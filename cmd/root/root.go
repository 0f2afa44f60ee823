package root

import (
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/pencil/cmd/complete"

	"github.com/puzzle-framework/pencil/cmd/propagate"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pencil",
		Short: "Pencil is a candidate-propagation engine for 9x9 logic puzzles",
		Long: `A constraint-propagation engine for 9x9 logic puzzles written in Go.
It tracks the digits still possible in every cell and applies deduction
strategies that narrow those sets until cells become determined.`,
	}

	// add sub-commands
	rootCmd.AddCommand(propagate.NewPropagateCommand())
	rootCmd.AddCommand(complete.NewCompleteCommand())

	return rootCmd
}
