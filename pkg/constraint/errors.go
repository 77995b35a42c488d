package constraint

import "errors"

// Sentinel errors for model-build failures (spec: programmer errors,
// fail fast with a descriptive diagnostic).
var (
	// ErrModelFrozen is returned when a build operation is attempted
	// after the model has been passed to NewSolver.
	ErrModelFrozen = errors.New("constraint: model frozen after solve started")

	// ErrInvalidBounds is returned when lmin > lmax at construction time.
	ErrInvalidBounds = errors.New("constraint: lmin must be <= lmax")

	// ErrUnknownVariable is returned when a variable id is not known to the model.
	ErrUnknownVariable = errors.New("constraint: unknown variable id")

	// ErrUnknownConstraint is returned when a constraint id is not known to the model.
	ErrUnknownConstraint = errors.New("constraint: unknown constraint id")

	// ErrNotSolved is returned by Value when called before a successful Solve.
	ErrNotSolved = errors.New("constraint: value requested before a successful solve")

	// ErrSearchLimitReached is returned when MaxRecursion is exceeded.
	// This is a feasibility-neutral outcome distinct from Unsatisfiable:
	// the search was aborted, not exhausted.
	ErrSearchLimitReached = errors.New("constraint: search limit reached")
)
