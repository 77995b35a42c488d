package constraint

import (
	"context"
	"fmt"
)

// Outcome is the result of a completed Solve call.
type Outcome int

const (
	// Unsatisfiable means the search exhausted every branch without
	// finding an assignment that satisfies all constraints.
	Unsatisfiable Outcome = iota
	// Solved means a fully-fixed, feasible assignment was found and
	// captured in the bounds-store snapshot.
	Solved
)

func (o Outcome) String() string {
	if o == Solved {
		return "Solved"
	}
	return "Unsatisfiable"
}

// counters collects the diagnostics Solve prints (spec §6).
type counters struct {
	recursionNodes     int
	constraintsChecked int
}

// searchDriver is the depth-first backtracking engine. At each node it
// picks a branching variable via the heuristic, tries each candidate
// value in ascending order, and recurses — restoring the bounds store
// from an in-memory snapshot between attempts (spec §4.4, §5: "Snapshot
// vs. trail" notes a trail-based undo log is a permitted optimisation;
// this implementation takes the simpler full-copy approach the note
// describes as correct either way).
type searchDriver struct {
	model        *Model
	prop         propagator
	maxRecursion int
}

// ErrSearchLimitReached-wrapping sentinel surfaced when maxRecursion is
// exceeded; see errors.go.
type searchLimitError struct{ limit int }

func (e *searchLimitError) Error() string {
	return fmt.Sprintf("%s: limit %d", ErrSearchLimitReached, e.limit)
}
func (e *searchLimitError) Unwrap() error { return ErrSearchLimitReached }

// run performs the recursive search described in spec §4.4. It returns
// true if a fully-fixed feasible assignment was found (and has already
// been written into store's snapshot), false if the branch is exhausted.
func (d *searchDriver) run(ctx context.Context, store *boundsStore, c *counters) (bool, error) {
	c.recursionNodes++
	if d.maxRecursion > 0 && c.recursionNodes > d.maxRecursion {
		return false, &searchLimitError{limit: d.maxRecursion}
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	branchVar, ok := chooseBranchVariable(d.model, store)
	if !ok {
		store.takeSnapshot()
		return true, nil
	}

	lo, hi := store.LMin(branchVar), store.LMax(branchVar)
	saved := store.clone()

	for k := lo; k <= hi; k++ {
		store.restore(saved)
		store.fix(branchVar, k)
		d.prop.log.branchAttempt(branchVar, k)

		w := newWorklist(len(d.model.constraints))
		w.pushAll(d.model.variables[branchVar].constraints)

		if err := d.prop.propagate(store, w, &c.constraintsChecked); err != nil {
			if _, ok := err.(infeasible); ok {
				continue
			}
			return false, err
		}

		if !dispatchExternalLogged(d.model.external, store, d.prop.log) {
			continue
		}

		found, err := d.run(ctx, store, c)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	store.restore(saved)
	return false, nil
}

// dispatchExternalLogged runs every registered predicate in order,
// stopping at the first rejection, while emitting per-predicate debug
// verdicts, mirroring the original's
// "external constraints checked" / per-predicate tracing.
func dispatchExternalLogged(predicates []ExternalConstraint, store *boundsStore, log logSink) bool {
	b := liveBounds{store: store}
	for i, p := range predicates {
		ok := p.Check(b)
		log.externalVerdict(i, ok)
		if !ok {
			return false
		}
	}
	return true
}
