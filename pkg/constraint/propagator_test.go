package constraint

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func newTestPropagator(m *Model) propagator {
	return propagator{model: m, log: logSink{log: zerolog.Nop()}}
}

// TestPropagateTightensBothBounds exercises the rule of spec §4.2
// directly: a,b in [0,2], sum in [3,3] tightens both to [1,2]. The
// tightening re-enqueues the constraint once, and the second pass finds
// nothing to change, so the rule is applied twice.
func TestPropagateTightensBothBounds(t *testing.T) {
	m := NewModel()
	a, _ := m.NewVariable(0, 2)
	b, _ := m.NewVariable(0, 2)
	cons, _ := m.NewConstraint(3, 3)
	_ = m.AddVariable(cons, a)
	_ = m.AddVariable(cons, b)

	store := newBoundsStore(m.variables)
	w := newWorklist(len(m.constraints))
	w.push(cons)

	p := newTestPropagator(m)
	var checked int
	if err := p.propagate(store, w, &checked); err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if store.LMin(a) != 1 || store.LMax(a) != 2 {
		t.Fatalf("a = [%d,%d], want [1,2]", store.LMin(a), store.LMax(a))
	}
	if store.LMin(b) != 1 || store.LMax(b) != 2 {
		t.Fatalf("b = [%d,%d], want [1,2]", store.LMin(b), store.LMax(b))
	}
	if checked != 1 {
		t.Fatalf("checked = %d, want 1", checked)
	}
}

// TestPropagateInfeasible exercises the bounds-mismatch contradiction.
func TestPropagateInfeasible(t *testing.T) {
	m := NewModel()
	a, _ := m.NewVariable(0, 1)
	b, _ := m.NewVariable(0, 1)
	cons, _ := m.NewConstraint(3, 3)
	_ = m.AddVariable(cons, a)
	_ = m.AddVariable(cons, b)

	store := newBoundsStore(m.variables)
	w := newWorklist(len(m.constraints))
	w.push(cons)

	p := newTestPropagator(m)
	var checked int
	err := p.propagate(store, w, &checked)
	if err == nil {
		t.Fatal("expected infeasible error")
	}
	if _, ok := err.(infeasible); !ok {
		t.Fatalf("got %T, want infeasible", err)
	}
}

// TestPropagateIdempotent is the idempotence law of spec §8: running
// propagation again with an empty worklist is a no-op.
func TestPropagateIdempotent(t *testing.T) {
	m := NewModel()
	a, _ := m.NewVariable(0, 2)
	b, _ := m.NewVariable(0, 2)
	cons, _ := m.NewConstraint(3, 3)
	_ = m.AddVariable(cons, a)
	_ = m.AddVariable(cons, b)

	store := newBoundsStore(m.variables)
	w := newWorklist(len(m.constraints))
	w.push(cons)
	p := newTestPropagator(m)
	var checked int
	if err := p.propagate(store, w, &checked); err != nil {
		t.Fatalf("propagate: %v", err)
	}

	before := []int32{store.LMin(a), store.LMax(a), store.LMin(b), store.LMax(b)}

	w2 := newWorklist(len(m.constraints)) // empty
	if err := p.propagate(store, w2, &checked); err != nil {
		t.Fatalf("second propagate: %v", err)
	}
	after := []int32{store.LMin(a), store.LMax(a), store.LMin(b), store.LMax(b)}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("propagation was not idempotent: before=%v after=%v", before, after)
		}
	}
}

// TestPropagateMonotonic verifies propagation only tightens, never
// widens, bounds.
func TestPropagateMonotonic(t *testing.T) {
	m := NewModel()
	a, _ := m.NewVariable(0, 5)
	b, _ := m.NewVariable(0, 5)
	c, _ := m.NewVariable(0, 5)
	cons, _ := m.NewConstraint(10, 10)
	_ = m.AddVariable(cons, a)
	_ = m.AddVariable(cons, b)
	_ = m.AddVariable(cons, c)

	store := newBoundsStore(m.variables)
	initLMin := []int32{store.LMin(a), store.LMin(b), store.LMin(c)}
	initLMax := []int32{store.LMax(a), store.LMax(b), store.LMax(c)}

	w := newWorklist(len(m.constraints))
	w.push(cons)
	p := newTestPropagator(m)
	var checked int
	if err := p.propagate(store, w, &checked); err != nil {
		t.Fatalf("propagate: %v", err)
	}
	vars := []VarID{a, b, c}
	for i, v := range vars {
		if store.LMin(v) < initLMin[i] {
			t.Fatalf("lmin widened for var %d", v)
		}
		if store.LMax(v) > initLMax[i] {
			t.Fatalf("lmax widened for var %d", v)
		}
	}
}

// TestClampInt32 verifies overflow handling saturates instead of
// wrapping, per spec §4.2 "Overflow handling".
func TestClampInt32(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32},
		{int64(math.MaxInt32) + 100, math.MaxInt32},
		{int64(math.MinInt32) - 100, math.MinInt32},
	}
	for _, c := range cases {
		if got := clampInt32(c.in); got != c.want {
			t.Errorf("clampInt32(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestPropagateNearOverflowDoesNotTighten exercises a constraint whose
// arithmetic would push a bound outside int32 range: the clamp must
// leave the affected bound untightened rather than corrupting it, per
// spec §4.2/§7.
func TestPropagateNearOverflowDoesNotTighten(t *testing.T) {
	m := NewModel()
	a, _ := m.NewVariable(0, math.MaxInt32)
	b, _ := m.NewVariable(0, math.MaxInt32)
	cons, _ := m.NewConstraint(math.MinInt32, math.MaxInt32)
	_ = m.AddVariable(cons, a)
	_ = m.AddVariable(cons, b)

	store := newBoundsStore(m.variables)
	w := newWorklist(len(m.constraints))
	w.push(cons)
	p := newTestPropagator(m)
	var checked int
	if err := p.propagate(store, w, &checked); err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if store.LMin(a) != 0 || store.LMax(a) != math.MaxInt32 {
		t.Fatalf("a = [%d,%d], want unchanged [0,%d]", store.LMin(a), store.LMax(a), math.MaxInt32)
	}
}
