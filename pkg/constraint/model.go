// Package constraint implements a finite-domain constraint solver
// specialised for problems whose constraints are linear sums of integer
// variables with inclusive bounds, augmented by an extension point for
// arbitrary user-supplied predicates.
//
// The package combines a fixed-point bounds-propagation engine, a
// worklist-driven incremental version of that engine using dirty
// marking, depth-first backtracking search with full-state save/restore
// at each decision, and a most-constrained-first branching heuristic.
package constraint

import "fmt"

// VarID identifies a variable within a Model. IDs are dense and assigned
// in creation order, starting at 0.
type VarID int

// ConsID identifies a linear constraint within a Model. IDs are dense
// and assigned in creation order, starting at 0.
type ConsID int

// variable is the immutable metadata for a decision variable: its id,
// its initial bounds, and the list of constraints it participates in.
// The list is appended to during model construction and frozen once
// Solve begins; it is read-only during search.
type variable struct {
	id          VarID
	initLMin    int32
	initLMax    int32
	constraints []ConsID
}

// linearConstraint is the immutable description of a bounded linear sum:
// the sum of the referenced variables must lie in [lmin, lmax].
type linearConstraint struct {
	id        ConsID
	lmin      int32
	lmax      int32
	variables []VarID
}

// Model is the immutable description of a constraint problem: the
// variables (with their constant initial bounds) and the linear
// constraints they appear in. A Model is built once, through the
// operations below, and never mutated once a Solver built from it has
// begun solving.
//
// External predicates are registered on the Model too (they evaluate
// against the live bounds store during search, not against Model state)
// so that NewSolver can see the full problem from a single value.
type Model struct {
	variables   []variable
	constraints []linearConstraint
	external    []ExternalConstraint
	frozen      bool
}

// NewModel creates an empty constraint model.
func NewModel() *Model {
	return &Model{}
}

// NewVariable creates a variable with initial bounds [lmin, lmax] and
// returns its dense id. Requires lmin <= lmax.
func (m *Model) NewVariable(lmin, lmax int32) (VarID, error) {
	if m.frozen {
		return 0, ErrModelFrozen
	}
	if lmin > lmax {
		return 0, fmt.Errorf("%w: got [%d, %d]", ErrInvalidBounds, lmin, lmax)
	}
	id := VarID(len(m.variables))
	m.variables = append(m.variables, variable{id: id, initLMin: lmin, initLMax: lmax})
	return id, nil
}

// NewConstraint creates a linear constraint with target bounds
// [lmin, lmax] and no member variables yet. Requires lmin <= lmax.
func (m *Model) NewConstraint(lmin, lmax int32) (ConsID, error) {
	if m.frozen {
		return 0, ErrModelFrozen
	}
	if lmin > lmax {
		return 0, fmt.Errorf("%w: got [%d, %d]", ErrInvalidBounds, lmin, lmax)
	}
	id := ConsID(len(m.constraints))
	m.constraints = append(m.constraints, linearConstraint{id: id, lmin: lmin, lmax: lmax})
	return id, nil
}

// AddVariable appends v to cons's member list and records cons in v's
// reverse index. Callers must not add the same variable twice to the
// same constraint: the linear-sum semantics treat the member list as a
// set of coefficient-1 terms, and no call site in this package needs
// higher coefficients.
func (m *Model) AddVariable(cons ConsID, v VarID) error {
	if m.frozen {
		return ErrModelFrozen
	}
	if int(cons) < 0 || int(cons) >= len(m.constraints) {
		return fmt.Errorf("%w: %d", ErrUnknownConstraint, cons)
	}
	if int(v) < 0 || int(v) >= len(m.variables) {
		return fmt.Errorf("%w: %d", ErrUnknownVariable, v)
	}
	m.constraints[cons].variables = append(m.constraints[cons].variables, v)
	m.variables[v].constraints = append(m.variables[v].constraints, cons)
	return nil
}

// AddExternalConstraint registers a borrowed predicate. Registration
// order is preserved and defines evaluation order during search.
func (m *Model) AddExternalConstraint(p ExternalConstraint) error {
	if m.frozen {
		return ErrModelFrozen
	}
	m.external = append(m.external, p)
	return nil
}

// NumVariables returns the number of variables created so far.
func (m *Model) NumVariables() int { return len(m.variables) }

// NumConstraints returns the number of linear constraints created so far.
func (m *Model) NumConstraints() int { return len(m.constraints) }

// freeze marks the model immutable. Called once by NewSolver.
func (m *Model) freeze() { m.frozen = true }
