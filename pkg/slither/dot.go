package slither

import (
	"fmt"
	"io"

	"github.com/ricbit/constraint/pkg/constraint"
)

// WriteDot emits a GraphViz rendering of the solved puzzle: a point
// node per grid corner, a labelled node per numbered cell, and an edge
// per selected grid edge, positioned exactly as slither.cc's print().
func WriteDot(w io.Writer, p *Puzzle, s *constraint.Solver) error {
	if _, err := fmt.Fprintln(w, "graph {"); err != nil {
		return err
	}
	for j := 0; j <= p.Height; j++ {
		for i := 0; i <= p.Width; i++ {
			fmt.Fprintf(w, "n%d_%d [label=\"\"\nshape=point\npos=\"%d,%d!\"]\n", j, i, 2*j, 2*i)
		}
	}
	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			if i < len(p.Grid[j]) && p.Grid[j][i] >= '0' && p.Grid[j][i] <= '9' {
				fmt.Fprintf(w, "x%d_%d [label=%c\npos=\"%d,%d!\"]\n", j, i, p.Grid[j][i], 2*j+1, 2*i+1)
			}
		}
	}
	for j := 0; j < p.Height; j++ {
		for i := 0; i <= p.Width; i++ {
			v, err := s.Value(p.Vert[j][i])
			if err != nil {
				return err
			}
			if v > 0 {
				fmt.Fprintf(w, "n%d_%d -- n%d_%d;\n", j, i, j+1, i)
			}
		}
	}
	for j := 0; j <= p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			v, err := s.Value(p.Horiz[j][i])
			if err != nil {
				return err
			}
			if v > 0 {
				fmt.Fprintf(w, "n%d_%d -- n%d_%d;\n", j, i, j, i+1)
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
