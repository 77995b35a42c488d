package hashi

import (
	"fmt"
	"io"

	"github.com/ricbit/constraint/pkg/constraint"
)

// WriteDot emits a GraphViz rendering of the solved puzzle: one node per
// island, positioned at its grid coordinates, and one edge per unit of
// bridge multiplicity (so a bridge valued 2 prints as two parallel
// edges), matching hashi.cc's print().
func WriteDot(w io.Writer, p *Puzzle, s *constraint.Solver) error {
	if _, err := fmt.Fprintln(w, "graph {"); err != nil {
		return err
	}
	for i, n := range p.Nodes {
		fmt.Fprintf(w, "n%d_%d [label=%d\npos=\"%d,%d!\"]\n", i, n.Size, n.Size, n.X, p.Height-n.Y-1)
	}
	for _, l := range p.Links {
		count, err := s.Value(l.Var)
		if err != nil {
			return err
		}
		for i := int32(0); i < count; i++ {
			fmt.Fprintf(w, "n%d_%d -- n%d_%d;\n", l.A, p.Nodes[l.A].Size, l.B, p.Nodes[l.B].Size)
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
