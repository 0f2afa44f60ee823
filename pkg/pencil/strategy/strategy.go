package strategy

import (
	"fmt"
	"io"

	"github.com/puzzle-framework/pencil/pkg/pencil"
)

// All returns the ordered list of available strategies. Cheaper
// strategies come first; callers select and sequence from here.
func All() []pencil.Strategy {
	return []pencil.Strategy{
		NewRemoveSolvedFromNeighbors(),
		NewNakedPair(),
	}
}

// ByName returns the strategy with the given name, if one exists.
func ByName(name string) (pencil.Strategy, bool) {
	for _, s := range All() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Pass describes one completed strategy application.
type Pass struct {
	Strategy     string
	Eliminations int
	SolvedCells  int
}

// Tracer observes strategy passes.
type Tracer interface {
	Trace(p Pass)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Pass) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p Pass) {
	fmt.Fprintf(t.Writer, "%s: removed %d candidates, %d cells solved\n",
		p.Strategy, p.Eliminations, p.SolvedCells)
}

// ApplyAll applies each strategy once, in order, threading the board
// through and tracing every pass. It does not iterate to a fixed
// point: re-running until nothing changes is the caller's call.
func ApplyAll(board pencil.Board, tracer Tracer, strategies ...pencil.Strategy) (pencil.Board, error) {
	if tracer == nil {
		tracer = DefaultTracer{}
	}
	for _, s := range strategies {
		next, err := s.Apply(board)
		if err != nil {
			return board, fmt.Errorf("applying %s: %w", s.Name(), err)
		}
		tracer.Trace(Pass{
			Strategy:     s.Name(),
			Eliminations: eliminations(board, next),
			SolvedCells:  solvedCells(next),
		})
		board = next
	}
	return board, nil
}

func eliminations(before, after pencil.Board) int {
	removed := 0
	for idx := 0; idx < pencil.BoardSize; idx++ {
		removed += before.CellAt(idx).Count() - after.CellAt(idx).Count()
	}
	return removed
}

func solvedCells(b pencil.Board) int {
	solved := 0
	for idx := 0; idx < pencil.BoardSize; idx++ {
		if b.CellAt(idx).IsSolved() {
			solved++
		}
	}
	return solved
}
