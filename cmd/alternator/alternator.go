package main

import "github.com/ksztenderski/petrinet-go/petrinet"

// process identifies one of the three participants in the alternation
// protocol; its zero value is procA.
type process int

const (
	procA process = iota
	procB
	procC
)

func (p process) String() string {
	switch p {
	case procA:
		return "A"
	case procB:
		return "B"
	case procC:
		return "C"
	default:
		return "?"
	}
}

// active returns the "in critical section" place for p, and past returns
// its "I went last" marker place.
func (p process) active() string { return p.String() }
func (p process) past() string   { return "P" + p.String() }

// alternatorTransitions builds spec.md §8 scenario 5's three-way
// alternation net: each process may enter only if none of the three is
// currently active and it wasn't the one that entered last, and entering
// clears the other two processes' past-markers so they become eligible
// again.
type alternatorTransitions struct {
	enter, exit map[process]*petrinet.Transition[string]
}

func newAlternatorNet() (*petrinet.Net[string], alternatorTransitions) {
	net := petrinet.NewNet[string](nil, true)

	all := []process{procA, procB, procC}
	ts := alternatorTransitions{
		enter: make(map[process]*petrinet.Transition[string], 3),
		exit:  make(map[process]*petrinet.Transition[string], 3),
	}

	for _, p := range all {
		inhibitor := []string{procA.active(), procB.active(), procC.active(), p.past()}

		var reset []string
		for _, other := range all {
			if other != p {
				reset = append(reset, other.past())
			}
		}

		enter := petrinet.NewTransition[string](nil, map[string]int64{p.active(): 1}, inhibitor, reset)
		enter.Name = "enter" + p.String()
		ts.enter[p] = enter

		exit := petrinet.NewTransition[string](
			map[string]int64{p.active(): 1},
			map[string]int64{p.past(): 1},
			[]string{p.past()},
			nil,
		)
		exit.Name = "exit" + p.String()
		ts.exit[p] = exit
	}

	return net, ts
}

func (ts alternatorTransitions) all() []*petrinet.Transition[string] {
	out := make([]*petrinet.Transition[string], 0, 6)
	for _, p := range []process{procA, procB, procC} {
		out = append(out, ts.enter[p], ts.exit[p])
	}
	return out
}
