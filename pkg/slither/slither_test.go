package slither

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricbit/constraint/pkg/constraint"
)

// TestSingleCellUnsatisfiable covers spec §8 scenario 5: a 1x1 grid
// with clue 3 is unsatisfiable. Every grid point in a 1x1 puzzle has
// exactly two candidate edges, and PointConstraint forces them equal
// (degree 0 or 2, never 1); that pins all four edges of the single
// cell to the same value, whose sum can only be 0 or 4, never 3.
func TestSingleCellUnsatisfiable(t *testing.T) {
	p, err := Parse(strings.NewReader("1 1\n3\n"))
	require.NoError(t, err)

	m := constraint.NewModel()
	require.NoError(t, p.Build(m))

	s := constraint.NewSolver(m, constraint.WithLogger(zerolog.Nop()))
	outcome, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, constraint.Unsatisfiable, outcome)
}

// TestSingleCellSatisfiable is the same grid with a satisfiable clue:
// all four edges selected forms a valid 1x1 loop.
func TestSingleCellSatisfiable(t *testing.T) {
	p, err := Parse(strings.NewReader("1 1\n4\n"))
	require.NoError(t, err)

	m := constraint.NewModel()
	require.NoError(t, p.Build(m))

	s := constraint.NewSolver(m, constraint.WithLogger(zerolog.Nop()))
	outcome, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, constraint.Solved, outcome)

	for j := 0; j < p.Height; j++ {
		for i := 0; i <= p.Width; i++ {
			v, err := s.Value(p.Vert[j][i])
			require.NoError(t, err)
			assert.Equal(t, int32(1), v, "vert[%d][%d]", j, i)
		}
	}
	for j := 0; j <= p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			v, err := s.Value(p.Horiz[j][i])
			require.NoError(t, err)
			assert.Equal(t, int32(1), v, "horiz[%d][%d]", j, i)
		}
	}
}

func TestParseRejectsShortGrid(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2\n3\n"))
	assert.Error(t, err)
}

func TestWriteDot(t *testing.T) {
	p, err := Parse(strings.NewReader("1 1\n4\n"))
	require.NoError(t, err)

	m := constraint.NewModel()
	require.NoError(t, p.Build(m))

	s := constraint.NewSolver(m, constraint.WithLogger(zerolog.Nop()))
	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteDot(&buf, p, s))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}
