package propagate

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/puzzle-framework/pencil/internal/render"
	"github.com/puzzle-framework/pencil/pkg/pencil"
	"github.com/puzzle-framework/pencil/pkg/pencil/strategy"
)

// defaultBoard is the demo puzzle shown when no --board is given.
const defaultBoard = "5...27..9..41......1..5.3...92.6.8...5......66..7..29.8...7...2.......8...9..36.."

func NewPropagateCommand() *cobra.Command {
	var (
		boardString string
		names       []string
		passes      int
		trace       bool
	)

	cmd := &cobra.Command{
		Use:   "propagate",
		Short: "Applies deduction strategies to a puzzle and shows the candidate grid",
		Long: `Parses an 81-character puzzle string ('1'-'9' for given digits, any
other character for an open cell), applies the selected strategies and
prints the resulting candidate grid after each pass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return propagate(boardString, names, passes, trace)
		},
	}

	cmd.Flags().StringVar(&boardString, "board", defaultBoard, "81-character puzzle string, row-major")
	cmd.Flags().StringSliceVar(&names, "strategies", nil, "strategies to apply, in order (default: all)")
	cmd.Flags().IntVar(&passes, "passes", 1, "number of times to run the strategy sequence")
	cmd.Flags().BoolVar(&trace, "trace", false, "log candidate eliminations per strategy pass")

	return cmd
}

func propagate(boardString string, names []string, passes int, trace bool) error {
	board, err := pencil.Parse(boardString)
	if err != nil {
		return fmt.Errorf("error parsing board: %w", err)
	}

	strategies, err := selectStrategies(names)
	if err != nil {
		return err
	}

	var tracer strategy.Tracer = strategy.DefaultTracer{}
	if trace {
		tracer = strategy.LoggingTracer{Writer: os.Stderr}
	}

	renderer := render.New()
	fmt.Println("Loaded board:")
	if err := renderer.Write(os.Stdout, board); err != nil {
		return err
	}

	for pass := 1; pass <= passes; pass++ {
		board, err = strategy.ApplyAll(board, tracer, strategies...)
		if err != nil {
			return err
		}

		fmt.Printf("\nAfter pass %d:\n", pass)
		if err := renderer.Write(os.Stdout, board); err != nil {
			return err
		}
	}

	if board.Solved() {
		fmt.Println("\nBoard is solved.")
	} else if !board.Valid() {
		fmt.Println("\nBoard is contradictory.")
	}

	return nil
}

func selectStrategies(names []string) ([]pencil.Strategy, error) {
	if len(names) == 0 {
		return strategy.All(), nil
	}
	strategies := make([]pencil.Strategy, 0, len(names))
	for _, name := range names {
		s, ok := strategy.ByName(name)
		if !ok {
			known := make([]string, 0, len(strategy.All()))
			for _, s := range strategy.All() {
				known = append(known, s.Name())
			}
			return nil, fmt.Errorf("unknown strategy %q (known: %s)", name, strings.Join(known, ", "))
		}
		strategies = append(strategies, s)
	}
	return strategies, nil
}
