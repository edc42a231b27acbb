package petrinet

import (
	"context"
	"sync"

	"github.com/ksztenderski/petrinet-go/internal/fairlock"
)

// Net owns a single Marking plus the mutual-exclusion primitive and
// condition variable that guard it. Every Net method takes the lock for the
// duration of its read or mutation of the marking; Fire additionally
// suspends on the condition variable while waiting for some transition to
// become enabled.
//
// The zero value is not usable; construct one with NewNet.
type Net[P comparable] struct {
	cond    *sync.Cond
	marking Marking[P]
}

// NewNet constructs a Net with the given initial marking (copied, and
// filtered to drop non-positive entries so the sparse invariant holds from
// the start). fair selects the mutual-exclusion primitive backing the
// condition variable: true for a FIFO ticket lock (internal/fairlock),
// false for a plain, unordered sync.Mutex. Either way the Locker is handed
// straight to sync.NewCond, the same way the teacher's ilock.Mutex wraps a
// plain sync.Mutex.
func NewNet[P comparable](initial map[P]int64, fair bool) *Net[P] {
	n := &Net[P]{marking: newMarking(initial)}

	var l sync.Locker
	if fair {
		l = fairlock.New()
	} else {
		l = &sync.Mutex{}
	}
	n.cond = sync.NewCond(l)
	return n
}

// Fire blocks until at least one transition in ts is enabled, then
// atomically fires the first one found enabled (in slice order) and
// returns it. Because ts is conceptually an unordered set, a caller should
// not rely on which enabled transition is chosen when more than one is.
//
// Fire is cooperatively cancellable via ctx: if ctx is cancelled before a
// transition fires, Fire returns ErrCancelled and leaves the marking
// unchanged. A goroutine watches ctx.Done() and broadcasts on the
// condition variable so a blocked Fire wakes promptly rather than waiting
// for an unrelated signal; it exits via the done channel regardless of how
// Fire returns.
//
// Fire panics if ts is empty; a caller asking the engine to wait on no
// transitions at all is a programmer error, not a runtime condition.
//
// A successful fire wakes every waiter (Broadcast) rather than exactly one:
// single-signal re-propagation is only safe when every blocked Fire call is
// watching the same transition set, since a waiter that wakes, finds
// nothing of its own enabled, and re-waits does not forward the wakeup to a
// different waiter whose distinct set just became enabled. The teacher's
// own ilock.Mutex broadcasts unconditionally for the same reason, and
// spec.md §9 explicitly sanctions this substitution ("an implementer may
// substitute broadcast for simplicity at a throughput cost").
func (n *Net[P]) Fire(ctx context.Context, ts []*Transition[P]) (*Transition[P], error) {
	if len(ts) == 0 {
		panic("petrinet: fire requires a non-empty transition set")
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			n.cond.L.Lock()
			n.cond.Broadcast()
			n.cond.L.Unlock()
		case <-done:
		}
	}()

	n.cond.L.Lock()
	defer n.cond.L.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}

		for _, t := range ts {
			if enabled(n.marking, t) {
				applyFire(n.marking, t)
				n.cond.Broadcast()
				return t, nil
			}
		}

		n.cond.Wait()
	}
}

// Snapshot returns an independent copy of the current marking.
func (n *Net[P]) Snapshot() map[P]int64 {
	n.cond.L.Lock()
	defer n.cond.L.Unlock()
	return n.marking.Snapshot()
}
