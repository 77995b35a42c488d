package constraint

import "fmt"

// boundsStore is the mutable map from variable id to current [lmin, lmax],
// held as dense parallel arrays indexed by VarID, plus a solution snapshot
// written at most once per Solve call. Pure data: it has no awareness of
// constraints and does not itself enforce consistency.
type boundsStore struct {
	lmin, lmax []int32
	// snapshot holds the last fully-fixed assignment accepted by the
	// search driver. It is nil until Solve succeeds.
	snapshot []int32
}

func newBoundsStore(vars []variable) *boundsStore {
	b := &boundsStore{
		lmin: make([]int32, len(vars)),
		lmax: make([]int32, len(vars)),
	}
	for _, v := range vars {
		b.lmin[v.id] = v.initLMin
		b.lmax[v.id] = v.initLMax
	}
	return b
}

// clone returns a full dense copy of the current bounds, suitable for
// restoration after a failed branch. It intentionally does not copy the
// snapshot: the snapshot is solver-session state, not per-node state.
func (b *boundsStore) clone() *boundsStore {
	c := &boundsStore{
		lmin: make([]int32, len(b.lmin)),
		lmax: make([]int32, len(b.lmax)),
	}
	copy(c.lmin, b.lmin)
	copy(c.lmax, b.lmax)
	return c
}

// restore overwrites the current bounds with those in saved. Used by the
// search driver to backtrack.
func (b *boundsStore) restore(saved *boundsStore) {
	copy(b.lmin, saved.lmin)
	copy(b.lmax, saved.lmax)
}

func (b *boundsStore) LMin(v VarID) int32 { return b.lmin[v] }
func (b *boundsStore) LMax(v VarID) int32 { return b.lmax[v] }

func (b *boundsStore) fixed(v VarID) bool { return b.lmin[v] == b.lmax[v] }

// fix sets v's bounds to the single value k.
func (b *boundsStore) fix(v VarID, k int32) {
	b.lmin[v] = k
	b.lmax[v] = k
}

// takeSnapshot copies the current bounds into the snapshot slot. Only
// ever called when every variable is fixed.
func (b *boundsStore) takeSnapshot() {
	b.snapshot = make([]int32, len(b.lmin))
	copy(b.snapshot, b.lmin)
}

// snapshotValue returns the solved value of v. Callers must check that a
// snapshot exists first.
func (b *boundsStore) snapshotValue(v VarID) int32 { return b.snapshot[v] }

// liveBounds adapts the in-progress bounds store to the Bounds interface
// seen by external predicates during search. Value is only legal once
// the variable is fixed, matching the contract in spec §6.
type liveBounds struct{ store *boundsStore }

func (l liveBounds) LMin(v VarID) int32 { return l.store.lmin[v] }
func (l liveBounds) LMax(v VarID) int32 { return l.store.lmax[v] }
func (l liveBounds) Fixed(v VarID) bool { return l.store.fixed(v) }
func (l liveBounds) Value(v VarID) (int32, error) {
	if !l.store.fixed(v) {
		return 0, fmt.Errorf("constraint: variable %d is not fixed", v)
	}
	return l.store.lmin[v], nil
}
