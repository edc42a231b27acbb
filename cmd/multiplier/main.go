// Command multiplier demonstrates the petrinet engine computing a*b by
// repeated addition: four worker goroutines race to fire the net's
// non-terminal transitions while the main goroutine blocks on the terminal
// one, exactly as spec.md §8 scenario 6 describes.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sync"
)

const numWorkers = 4

func main() {
	a := flag.Int64("a", 2, "multiplicand")
	b := flag.Int64("b", 3, "multiplier")
	flag.Parse()

	logger := log.New(os.Stderr, "multiplier: ", 0)

	net, ts := newMultiplierNet(*a, *b)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			nonTerminal := ts.nonTerminal()
			for {
				fired, err := net.Fire(ctx, nonTerminal)
				if err != nil {
					return
				}
				logger.Printf("worker %d fired %s", worker, fired)
			}
		}(i)
	}

	fired, err := net.Fire(context.Background(), ts.terminal())
	if err != nil {
		logger.Fatalf("blocked on terminal transition: %v", err)
	}
	logger.Printf("terminal transition %s fired; stopping workers", fired)

	cancel()
	wg.Wait()

	snap := net.Snapshot()
	logger.Printf("PRODUCT = %d (want %d)", snap[placeProduct], (*a)*(*b))
}
