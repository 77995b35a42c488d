// Package slither builds and solves Slitherlink ("loop the loop")
// puzzles on top of the bounded-linear-sum constraint solver in
// github.com/ricbit/constraint/pkg/constraint.
//
// A Slitherlink grid is a set of numbered cells; each cell's four
// surrounding edges must sum to the cell's number, and the edges
// selected across the whole grid must form a single simple loop: every
// grid point touches either zero or exactly two selected edges, never
// one, and never more than two. This is recovered from
// original_source/slither.cc's solve/print pipeline: the edge-grid
// construction and the per-point degree predicate are puzzle logic;
// the search itself is the shared solver.
//
// The model built here checks the per-point degree rule only: it does
// not require the selected edges to form one connected loop, so a
// solution may consist of several separate loops.
package slither

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ricbit/constraint/pkg/constraint"
)

// Puzzle is a parsed Slitherlink instance, ready to be turned into a
// constraint.Model via Build.
type Puzzle struct {
	Width, Height int
	Grid          []string

	// Vert[j][i] is the variable for the vertical edge between grid
	// points (j,i) and (j+1,i), for j in [0,Height), i in [0,Width+1).
	Vert [][]constraint.VarID
	// Horiz[j][i] is the variable for the horizontal edge between grid
	// points (j,i) and (j,i+1), for j in [0,Height+1), i in [0,Width).
	Horiz [][]constraint.VarID
}

// Parse reads "width height" on the first line followed by height grid
// lines, exactly as original_source/slither.cc's main() does. Grid
// cells holding a digit carry a clue; any other character is blank.
func Parse(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("slither: missing header line")
	}
	var width, height int
	if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &width, &height); err != nil {
		return nil, fmt.Errorf("slither: parsing header: %w", err)
	}

	grid := make([]string, 0, height)
	for len(grid) < height {
		if !scanner.Scan() {
			return nil, fmt.Errorf("slither: expected %d grid lines, got %d", height, len(grid))
		}
		grid = append(grid, scanner.Text())
	}

	return &Puzzle{Width: width, Height: height, Grid: grid}, nil
}

// Build constructs the constraint model: a vertical edge variable per
// (j,i) in Height x (Width+1), a horizontal edge variable per
// (Height+1) x Width, one linear constraint per numbered cell summing
// its four edges to the clue, and one PointConstraint external
// predicate per grid corner, ported verbatim from slither.cc.
func (p *Puzzle) Build(m *constraint.Model) error {
	p.Vert = make([][]constraint.VarID, p.Height)
	for j := 0; j < p.Height; j++ {
		p.Vert[j] = make([]constraint.VarID, p.Width+1)
		for i := 0; i <= p.Width; i++ {
			v, err := m.NewVariable(0, 1)
			if err != nil {
				return err
			}
			p.Vert[j][i] = v
		}
	}

	p.Horiz = make([][]constraint.VarID, p.Height+1)
	for j := 0; j <= p.Height; j++ {
		p.Horiz[j] = make([]constraint.VarID, p.Width)
		for i := 0; i < p.Width; i++ {
			v, err := m.NewVariable(0, 1)
			if err != nil {
				return err
			}
			p.Horiz[j][i] = v
		}
	}

	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			if i >= len(p.Grid[j]) || p.Grid[j][i] < '0' || p.Grid[j][i] > '9' {
				continue
			}
			size := int32(p.Grid[j][i] - '0')
			cons, err := m.NewConstraint(size, size)
			if err != nil {
				return err
			}
			for _, v := range []constraint.VarID{
				p.Horiz[j][i], p.Horiz[j+1][i], p.Vert[j][i], p.Vert[j][i+1],
			} {
				if err := m.AddVariable(cons, v); err != nil {
					return err
				}
			}
		}
	}

	for j := 0; j <= p.Height; j++ {
		for i := 0; i <= p.Width; i++ {
			pc := PointConstraint{y: j, x: i, width: p.Width, height: p.Height, vert: p.Vert, horiz: p.Horiz}
			if err := m.AddExternalConstraint(pc); err != nil {
				return err
			}
		}
	}

	return nil
}

// PointConstraint is the external predicate recovered from
// slither.cc's PointConstraint: the edges incident to a grid point
// must sum to at most 2, and once every incident edge is determined
// the point's degree must be 0 or 2, never 1 — a loop never dangles.
type PointConstraint struct {
	y, x, width, height int
	vert, horiz         [][]constraint.VarID
}

func (pc PointConstraint) Check(b constraint.Bounds) bool {
	var minsum, detsum, detvalue, alllinks int32

	consider := func(v constraint.VarID) {
		minsum += b.LMin(v)
		alllinks++
		if b.LMin(v) == b.LMax(v) {
			detsum++
			detvalue += b.LMin(v)
		}
	}

	if pc.x < pc.width {
		consider(pc.horiz[pc.y][pc.x])
	}
	if pc.x > 0 {
		consider(pc.horiz[pc.y][pc.x-1])
	}
	if pc.y < pc.height {
		consider(pc.vert[pc.y][pc.x])
	}
	if pc.y > 0 {
		consider(pc.vert[pc.y-1][pc.x])
	}

	if minsum > 2 {
		return false
	}
	if alllinks != detsum {
		return true
	}
	return detvalue == 0 || detvalue == 2
}
