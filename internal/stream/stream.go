// Package stream carries draws from independently seeded generators to a
// single consumer. Each generator stays owned by exactly one producing
// goroutine; only the already-drawn values cross channels.
package stream

import "sync"

// Produce spawns a goroutine calling draw n times, sending each result on the
// returned channel and closing it afterwards.
func Produce[T any](n int, draw func() T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			out <- draw()
		}
	}()
	return out
}

// Merge spawns goroutines aggregating the read data of multiple channels into
// one. The output channel is closed when all input channels have been closed.
// Arrival order across inputs is not defined.
func Merge[T any](out chan<- T, sources ...<-chan T) {
	drain := func(in <-chan T, w *sync.WaitGroup) {
		defer w.Done()
		for v := range in {
			out <- v
		}
	}

	go func() {
		var wg sync.WaitGroup
		wg.Add(len(sources))
		for _, ch := range sources {
			go drain(ch, &wg)
		}
		wg.Wait()
		close(out)
	}()
}
