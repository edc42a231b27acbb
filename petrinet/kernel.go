package petrinet

// enabled reports whether t may fire against m: every input place holds at
// least the required weight, and every inhibitor place holds zero tokens.
// The reset set does not participate in enabling.
func enabled[P comparable](m Marking[P], t *Transition[P]) bool {
	for p, w := range t.input {
		if m.get(p) < w {
			return false
		}
	}
	for p := range t.inhibitor {
		if m.get(p) != 0 {
			return false
		}
	}
	return true
}

// applyFire mutates m in place to reflect t firing. Callers must only call
// this when enabled(m, t) holds; applyFire itself does not check.
//
// Order matters when a place appears in more than one of t's arc sets:
// inputs are subtracted first, then outputs added, then reset places
// zeroed — so a place in both output and reset ends at zero, and a place in
// both input and output nets to output-input.
func applyFire[P comparable](m Marking[P], t *Transition[P]) {
	for p, w := range t.input {
		m.add(p, -w)
	}
	for p, w := range t.output {
		m.add(p, w)
	}
	for p := range t.reset {
		m.zero(p)
	}
}
