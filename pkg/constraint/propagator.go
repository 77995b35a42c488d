package constraint

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/gammazero/deque"
)

// errInfeasible is a package-internal sentinel distinguishing
// "propagation proved the current branch impossible" from a Go error:
// infeasibility is an ordinary outcome (spec §7), not a programmer
// error, so it never crosses the public API as an error value.
type infeasible struct{}

// worklist is the FIFO of dirty constraint ids plus the parallel
// dirty bitmap that prevents duplicate enqueues (spec §3, "Worklist").
// queued[cid] is true iff cid currently appears in the deque.
type worklist struct {
	fifo   deque.Deque[ConsID]
	queued *bitset.BitSet
}

func newWorklist(numConstraints int) *worklist {
	return &worklist{queued: bitset.New(uint(numConstraints))}
}

func (w *worklist) push(c ConsID) {
	if w.queued.Test(uint(c)) {
		return
	}
	w.fifo.PushBack(c)
	w.queued.Set(uint(c))
}

func (w *worklist) pop() (ConsID, bool) {
	if w.fifo.Len() == 0 {
		return 0, false
	}
	c := w.fifo.PopFront()
	w.queued.Clear(uint(c))
	return c, true
}

func (w *worklist) pushAll(ids []ConsID) {
	for _, id := range ids {
		w.push(id)
	}
}

// propagator brings the bounds store to the strongest fixed point
// reachable by bounds consistency on every linear constraint, or
// reports infeasibility. It consumes a worklist of dirty constraint
// ids and uses each variable's reverse index to re-enqueue only the
// constraints that could have been affected by a bound change.
type propagator struct {
	model *Model
	log   logSink
}

// propagate drains w, applying the bounds-consistency rule to each
// popped constraint until the worklist empties (a fixed point) or a
// constraint proves infeasible. On infeasibility the worklist is
// drained and every queued bit cleared before returning, per spec §4.2.
func (p *propagator) propagate(store *boundsStore, w *worklist, checked *int) error {
	for {
		cid, ok := w.pop()
		if !ok {
			return nil
		}
		*checked++
		changed, err := p.applyRule(store, cid)
		if err != nil {
			w.drain()
			return err
		}
		if !changed {
			continue
		}
		for _, v := range p.model.constraints[cid].variables {
			w.pushAll(p.model.variables[v].constraints)
		}
	}
}

// drain empties the worklist and clears every queued bit, matching the
// "drain worklist, clear queued[*]" step of spec §4.2's pseudocode.
func (w *worklist) drain() {
	for w.fifo.Len() > 0 {
		c := w.fifo.PopFront()
		w.queued.Clear(uint(c))
	}
}

// applyRule implements the per-constraint tightening rule of spec §4.2.
// Sums are accumulated in int64 to give headroom before the 32-bit
// domain check; any subtraction that would land outside the
// representable int32 range is clamped before the comparison, so an
// unreachable bound is simply not tightened (spec: "Overflow handling").
func (p *propagator) applyRule(store *boundsStore, cid ConsID) (changed bool, err error) {
	c := &p.model.constraints[cid]

	var sMin, sMax int64
	for _, v := range c.variables {
		sMin += int64(store.LMin(v))
		sMax += int64(store.LMax(v))
	}

	if sMax < int64(c.lmin) || sMin > int64(c.lmax) {
		return false, infeasible{}
	}

	for _, v := range c.variables {
		vmin, vmax := int64(store.LMin(v)), int64(store.LMax(v))

		// Tighten lower bound: new_lmin = c_lmin - (S_max - lmax(v))
		newLMin := clampInt32(int64(c.lmin) - (sMax - vmax))
		if newLMin > vmax {
			return false, infeasible{}
		}
		if newLMin > vmin {
			store.lmin[v] = int32(newLMin)
			vmin = newLMin
			changed = true
			p.log.boundChanged(v, cid, "lmin", int32(newLMin))
		}

		// Tighten upper bound: new_lmax = c_lmax - (S_min - lmin(v))
		newLMax := clampInt32(int64(c.lmax) - (sMin - vmin))
		if newLMax < vmin {
			return false, infeasible{}
		}
		if newLMax < vmax {
			store.lmax[v] = int32(newLMax)
			changed = true
			p.log.boundChanged(v, cid, "lmax", int32(newLMax))
		}
	}

	return changed, nil
}

// clampInt32 saturates a 64-bit intermediate into the representable
// int32 range. A value clamped this way can never equal a real bound,
// so the comparisons in applyRule that follow simply fail to tighten
// rather than wrapping around into a false contradiction.
func clampInt32(v int64) int64 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return v
}

func (infeasible) Error() string { return "constraint: infeasible" }
