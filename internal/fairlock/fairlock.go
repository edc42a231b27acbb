// Package fairlock implements a FIFO mutual-exclusion primitive: a ticket
// lock that admits goroutines in the order they called Lock, rather than
// the unordered barging a plain sync.Mutex permits.
//
// Mutex satisfies sync.Locker, so it drops into sync.NewCond exactly the
// way a bare sync.Mutex would; a petrinet.Net constructed with fair=true
// uses one as the Locker backing its condition variable.
package fairlock

import (
	"sync"

	"go.uber.org/atomic"
)

// Mutex is a FIFO sync.Locker. The zero value is not ready for use;
// construct one with New.
type Mutex struct {
	mu      sync.Mutex
	c       *sync.Cond
	next    atomic.Uint64
	serving uint64
}

// New returns a ready-to-use fair Mutex.
func New() *Mutex {
	var m Mutex
	m.c = sync.NewCond(&m.mu)
	return &m
}

// Lock blocks until every goroutine that called Lock before this one has
// called Unlock. Tickets are handed out in the order Lock is called, so
// waiters are admitted first-in, first-out.
func (m *Mutex) Lock() {
	ticket := m.next.Add(1) - 1

	m.mu.Lock()
	for ticket != m.serving {
		m.c.Wait()
	}
	m.mu.Unlock()
}

// Unlock admits the next ticket holder in line.
func (m *Mutex) Unlock() {
	m.mu.Lock()
	m.serving++
	m.mu.Unlock()
	m.c.Broadcast()
}
