// Package petrinet implements a generic, concurrent Petri net engine.
//
// A net is a set of places, each holding a non-negative integer count of
// tokens (its Marking), and a set of Transitions, each describing how
// tokens move between places when it fires. Four arc kinds are supported:
//
//   - input arcs require and consume tokens for a transition to be enabled;
//   - output arcs produce tokens when a transition fires;
//   - inhibitor arcs require a place to hold zero tokens;
//   - reset arcs zero a place on firing, regardless of its current count.
//
// A Net owns exactly one Marking, guarded by a mutex and an associated
// condition variable. Fire blocks until some transition in the supplied set
// is enabled, then atomically fires one of them. Reachable performs a single-threaded, lock-free exploration of
// every marking reachable from a snapshot of the current one.
//
// The place identifier type P is left to the caller (strings, ints, or any
// small comparable struct); the engine never interprets it.
package petrinet
