package petrinet

// Transition is an immutable description of how a marking changes when it
// fires. Construct one with NewTransition; no method mutates it afterward,
// so a *Transition is safe to share across goroutines without
// synchronization, and callers may compare the pointer returned from Fire
// against the descriptors they passed in to know which one fired.
type Transition[P comparable] struct {
	input     map[P]int64
	output    map[P]int64
	inhibitor map[P]struct{}
	reset     map[P]struct{}

	// Name is an optional label for diagnostics; the engine never reads it.
	Name string
}

// NewTransition builds a Transition from copies of the supplied arc
// collections. input and output weights must be >= 1; inputs are expected
// well-formed (NewTransition panics on a non-positive weight rather than
// silently dropping it, since a zero-weight arc is almost certainly a
// caller bug rather than an intentional no-op).
func NewTransition[P comparable](input, output map[P]int64, inhibitor, reset []P) *Transition[P] {
	t := &Transition[P]{
		input:     make(map[P]int64, len(input)),
		output:    make(map[P]int64, len(output)),
		inhibitor: make(map[P]struct{}, len(inhibitor)),
		reset:     make(map[P]struct{}, len(reset)),
	}
	for p, w := range input {
		if w < 1 {
			panic("petrinet: input arc weight must be >= 1")
		}
		t.input[p] = w
	}
	for p, w := range output {
		if w < 1 {
			panic("petrinet: output arc weight must be >= 1")
		}
		t.output[p] = w
	}
	for _, p := range inhibitor {
		t.inhibitor[p] = struct{}{}
	}
	for _, p := range reset {
		t.reset[p] = struct{}{}
	}
	return t
}

// String implements fmt.Stringer, returning Name if set.
func (t *Transition[P]) String() string {
	if t.Name != "" {
		return t.Name
	}
	return "<transition>"
}
