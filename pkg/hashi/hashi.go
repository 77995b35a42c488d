// Package hashi builds and solves Hashiwokakero ("bridges") puzzles on
// top of the bounded-linear-sum constraint solver in
// github.com/ricbit/constraint/pkg/constraint.
//
// A Hashiwokakero grid is a set of numbered islands; each island must
// end up connected by horizontal or vertical bridges whose total count
// equals the island's number, bridges never cross, and at most two
// bridges run between the same pair of islands. This is recovered from
// original_source/hashi.cc's degeometrize/solve/print pipeline: the
// grid-to-network construction (degeometrize) and the no-crossing
// predicate are puzzle logic; the actual search is now the shared
// solver.
package hashi

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/ricbit/constraint/pkg/constraint"
)

// Node is an island: a numbered cell whose incident bridges must sum to
// Size.
type Node struct {
	X, Y int
	Size int32
	// Links holds the indices into Puzzle.Links of every bridge
	// incident to this node.
	Links []int
}

// Link is a candidate bridge between two islands that share a row or
// column with no island between them. Var is the solver variable
// tracking how many bridges (0, 1, or 2) run along this link.
type Link struct {
	A, B       int // indices into Puzzle.Nodes
	Horizontal bool
	Var        constraint.VarID
	// For a horizontal link, Forbidden holds the indices of every
	// vertical link it would cross on the grid; at most one of a crossing
	// pair may be nonzero. It is empty for vertical links.
	Forbidden []int
}

// Puzzle is a parsed and degeometrized Hashiwokakero instance, ready to
// be turned into a constraint.Model via Build.
type Puzzle struct {
	Width, Height int
	Nodes         []Node
	Links         []Link
}

// Parse reads "width height" on the first line followed by height grid
// lines, exactly as original_source/hashi.cc's main() does, then
// degeometrizes the grid into islands and candidate bridges.
func Parse(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("hashi: missing header line")
	}
	var width, height int
	if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &width, &height); err != nil {
		return nil, fmt.Errorf("hashi: parsing header: %w", err)
	}

	grid := make([]string, 0, height)
	for len(grid) < height {
		if !scanner.Scan() {
			return nil, fmt.Errorf("hashi: expected %d grid lines, got %d", height, len(grid))
		}
		grid = append(grid, scanner.Text())
	}

	p := &Puzzle{Width: width, Height: height}
	p.degeometrize(grid)
	return p, nil
}

// degeometrize extracts islands from the grid and, for every pair of
// islands sharing a row or column with no island between them, a
// candidate bridge. It then computes, for every horizontal bridge, the
// set of vertical bridges it would cross. This mirrors hashi.cc's
// HashiSolver::degeometrize verbatim.
func (p *Puzzle) degeometrize(grid []string) {
	id := make([][]int, p.Height)
	for j := range id {
		id[j] = make([]int, p.Width)
		for i := range id[j] {
			id[j][i] = -1
		}
	}

	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width && i < len(grid[j]); i++ {
			ch := grid[j][i]
			if unicode.IsDigit(rune(ch)) {
				id[j][i] = len(p.Nodes)
				p.Nodes = append(p.Nodes, Node{X: i, Y: j, Size: int32(ch - '0')})
			}
		}
	}

	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			if id[j][i] == -1 {
				continue
			}
			for ii := i + 1; ii < p.Width; ii++ {
				if id[j][ii] != -1 {
					p.addLink(id[j][i], id[j][ii], true)
					break
				}
			}
			for jj := j + 1; jj < p.Height; jj++ {
				if id[jj][i] != -1 {
					p.addLink(id[j][i], id[jj][i], false)
					break
				}
			}
		}
	}

	for li := range p.Links {
		l1 := &p.Links[li]
		if !l1.Horizontal {
			continue
		}
		y := p.Nodes[l1.A].Y
		for lj := range p.Links {
			l2 := &p.Links[lj]
			x := p.Nodes[l2.A].X
			if y > p.Nodes[l2.A].Y && y < p.Nodes[l2.B].Y &&
				x > p.Nodes[l1.A].X && x < p.Nodes[l1.B].X {
				l1.Forbidden = append(l1.Forbidden, lj)
			}
		}
	}
}

func (p *Puzzle) addLink(a, b int, horizontal bool) {
	idx := len(p.Links)
	p.Links = append(p.Links, Link{A: a, B: b, Horizontal: horizontal})
	p.Nodes[a].Links = append(p.Nodes[a].Links, idx)
	p.Nodes[b].Links = append(p.Nodes[b].Links, idx)
}

// Build constructs the constraint model: one variable per link in
// [0,2], one linear constraint per node summing its incident links to
// Size, and the no-crossing external predicate.
func (p *Puzzle) Build(m *constraint.Model) error {
	for i := range p.Links {
		v, err := m.NewVariable(0, 2)
		if err != nil {
			return err
		}
		p.Links[i].Var = v
	}

	for _, n := range p.Nodes {
		cons, err := m.NewConstraint(n.Size, n.Size)
		if err != nil {
			return err
		}
		for _, li := range n.Links {
			if err := m.AddVariable(cons, p.Links[li].Var); err != nil {
				return err
			}
		}
	}

	return m.AddExternalConstraint(noCross{links: p.Links})
}

// noCross is the external predicate recovered from hashi.cc's
// NoCrossConstraint: for every pair of bridges that would cross on the
// grid, at most one may be nonzero.
type noCross struct {
	links []Link
}

func (n noCross) Check(b constraint.Bounds) bool {
	for _, l := range n.links {
		if b.LMin(l.Var) == 0 {
			continue
		}
		for _, fi := range l.Forbidden {
			if b.LMin(n.links[fi].Var) > 0 {
				return false
			}
		}
	}
	return true
}
