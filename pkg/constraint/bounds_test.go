package constraint

import "testing"

func TestBoundsCloneRestore(t *testing.T) {
	m := NewModel()
	a, _ := m.NewVariable(0, 5)
	store := newBoundsStore(m.variables)

	saved := store.clone()
	store.fix(a, 3)
	if store.LMin(a) != 3 || store.LMax(a) != 3 {
		t.Fatalf("fix did not apply")
	}

	store.restore(saved)
	if store.LMin(a) != 0 || store.LMax(a) != 5 {
		t.Fatalf("restore did not roll back: got [%d,%d]", store.LMin(a), store.LMax(a))
	}
}

func TestWorklistDedup(t *testing.T) {
	w := newWorklist(3)
	w.push(ConsID(1))
	w.push(ConsID(1)) // duplicate, must not double-enqueue
	w.push(ConsID(2))

	var popped []ConsID
	for {
		c, ok := w.pop()
		if !ok {
			break
		}
		popped = append(popped, c)
	}
	if len(popped) != 2 {
		t.Fatalf("popped %v, want 2 unique ids", popped)
	}
	if popped[0] != 1 || popped[1] != 2 {
		t.Fatalf("popped %v, want FIFO order [1,2]", popped)
	}
}

func TestWorklistDrainClearsQueued(t *testing.T) {
	w := newWorklist(3)
	w.push(ConsID(0))
	w.push(ConsID(1))
	w.drain()
	if w.fifo.Len() != 0 {
		t.Fatalf("drain left %d items queued", w.fifo.Len())
	}
	// After drain, pushing the same id again must succeed (queued bit cleared).
	w.push(ConsID(0))
	if w.fifo.Len() != 1 {
		t.Fatalf("re-push after drain failed")
	}
}
