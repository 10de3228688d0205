// Package parallel splits per-row image work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// minRows is the smallest band worth a goroutine of its own.
const minRows = 16

// Rows calls fn over contiguous bands [lo, hi) covering [0, n), using at most
// workers goroutines, and returns when every band is done. workers <= 0
// means GOMAXPROCS. With one worker, or too few rows to split, fn runs once
// on the calling goroutine.
func Rows(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, (n+minRows-1)/minRows)
	if workers <= 1 {
		fn(0, n)
		return
	}

	band := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += band {
		hi := min(lo+band, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(lo, hi)
		}()
	}
	wg.Wait()
}
