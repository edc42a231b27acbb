package petrinet

// Reachable returns every marking reachable from the marking observed at
// call entry, via any finite firing sequence drawn from ts, including the
// starting marking itself.
//
// Only the initial snapshot is taken under the net's lock; exploration
// proceeds over independent copies and never touches the live net, so it
// does not block concurrent Fire calls. Consequently the result reflects
// "reachable from the marking observed at call entry," not "currently
// reachable": other goroutines may be firing transitions for the whole
// duration of the call.
//
// Reachable terminates only if the reachable set is finite; it makes no
// attempt to detect an unbounded net. Callers should only invoke it on nets
// they believe bounded.
func (n *Net[P]) Reachable(ts []*Transition[P]) []map[P]int64 {
	n.cond.L.Lock()
	start := n.marking.snapshot()
	n.cond.L.Unlock()

	reached := []Marking[P]{start}

	var explore func(m Marking[P])
	explore = func(m Marking[P]) {
		for _, t := range ts {
			if !enabled(m, t) {
				continue
			}
			next := m.snapshot()
			applyFire(next, t)
			if containsMarking(reached, next) {
				continue
			}
			reached = append(reached, next)
			explore(next)
		}
	}
	explore(start)

	out := make([]map[P]int64, len(reached))
	for i, m := range reached {
		out[i] = m.Snapshot()
	}
	return out
}

// containsMarking reports whether set already holds a marking equal to m.
// Marking is map-backed and therefore not itself a valid Go map key, so
// membership is a linear scan under sparse-marking equality rather than a
// hash lookup.
func containsMarking[P comparable](set []Marking[P], m Marking[P]) bool {
	for _, x := range set {
		if x.equal(m) {
			return true
		}
	}
	return false
}
