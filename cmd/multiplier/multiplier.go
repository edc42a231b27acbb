package main

import "github.com/ksztenderski/petrinet-go/petrinet"

// place names for the multiplier net.
const (
	placeRows    = "ROWS"
	placeUnits   = "UNITS"
	placeProduct = "PRODUCT"
)

// multiplierTransitions describes a Petri net that computes a*b by repeated
// addition: ROWS starts at b, and each "startRow" firing spends one row to
// refill UNITS with a tokens (an output arc of weight a); "addUnit" then
// drains UNITS one token at a time into PRODUCT. "finish" is the terminal
// transition, enabled only once both ROWS and UNITS have been driven to
// zero, at which point PRODUCT holds a*b.
type multiplierTransitions struct {
	startRow *petrinet.Transition[string]
	addUnit  *petrinet.Transition[string]
	finish   *petrinet.Transition[string]
}

func newMultiplierNet(a, b int64) (*petrinet.Net[string], multiplierTransitions) {
	net := petrinet.NewNet(map[string]int64{placeRows: b}, true)

	startRow := petrinet.NewTransition[string](
		map[string]int64{placeRows: 1},
		map[string]int64{placeUnits: a},
		[]string{placeUnits},
		nil,
	)
	startRow.Name = "startRow"

	addUnit := petrinet.NewTransition[string](
		map[string]int64{placeUnits: 1},
		map[string]int64{placeProduct: 1},
		nil,
		nil,
	)
	addUnit.Name = "addUnit"

	finish := petrinet.NewTransition[string](
		nil,
		nil,
		[]string{placeRows, placeUnits},
		nil,
	)
	finish.Name = "finish"

	return net, multiplierTransitions{startRow: startRow, addUnit: addUnit, finish: finish}
}

// nonTerminal returns the transition set the worker goroutines race to
// fire, as opposed to the single terminal transition the main goroutine
// blocks on.
func (ts multiplierTransitions) nonTerminal() []*petrinet.Transition[string] {
	return []*petrinet.Transition[string]{ts.startRow, ts.addUnit}
}

func (ts multiplierTransitions) terminal() []*petrinet.Transition[string] {
	return []*petrinet.Transition[string]{ts.finish}
}
