package constraint

// chooseBranchVariable scans all variables and picks the unfixed one
// with the smallest width (lmax - lmin), breaking ties by preferring
// higher degree (more constraints), and breaking remaining ties by
// scan order — which, since the incumbent is only replaced on a strict
// improvement, favours the lower id. This mirrors constraint.h's
// choose() exactly, including its order-sensitivity when three or more
// variables tie (spec §9's open question: the scan order is the
// tiebreak, and must be preserved for recursion_nodes to stay
// reproducible).
//
// Returns false if every variable is already fixed.
func chooseBranchVariable(model *Model, store *boundsStore) (VarID, bool) {
	chosen := VarID(-1)
	bestWidth := int32(-1)

	for i := range model.variables {
		v := model.variables[i].id
		if store.fixed(v) {
			continue
		}
		width := store.LMax(v) - store.LMin(v)
		if chosen == -1 || width < bestWidth {
			chosen = v
			bestWidth = width
			continue
		}
		if width == bestWidth && len(model.variables[v].constraints) > len(model.variables[chosen].constraints) {
			chosen = v
		}
	}

	if chosen == -1 {
		return 0, false
	}
	return chosen, true
}
