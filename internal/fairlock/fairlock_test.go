package fairlock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestFIFOOrdering ensures tickets are admitted strictly in the order Lock
// was called, mirroring the sequencing checks the teacher's ilock tests run
// over its state word (testNonDecreasing in ilock_test.go).
func TestFIFOOrdering(t *testing.T) {
	const n = 20

	m := New()
	var wg sync.WaitGroup
	var mu sync.Mutex
	order := make([]int, 0, n)

	// Hold the lock up front so every waiter below parks in Lock() rather
	// than racing to acquire it; launching them in sequence (with a small
	// delay to let each one reach Wait before the next starts) fixes the
	// order in which tickets are requested.
	m.Lock()
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Lock()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			m.Unlock()
		}(i)
		time.Sleep(time.Millisecond)
	}
	m.Unlock()
	wg.Wait()

	for i, v := range order {
		assert.Equal(t, i, v, "ticket %d admitted out of order", i)
	}
}

func TestConcurrentMutualExclusion(t *testing.T) {
	const n = 200
	m := New()
	var wg sync.WaitGroup
	counter := 0
	seenRace := false

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock()
			local := counter
			counter = local + 1
			if counter != local+1 {
				seenRace = true
			}
			m.Unlock()
		}()
	}
	wg.Wait()

	assert.False(t, seenRace)
	assert.Equal(t, n, counter)
}
