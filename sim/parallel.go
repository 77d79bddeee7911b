package sim

import (
	"runtime"
	"sync"
)

// parallelRows executes fn for each y in [start,end). The range is split
// among available CPUs; the call returns only after every row is done, so
// it doubles as the barrier between pipeline stages.
func parallelRows(start, end int, fn func(y int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			for y := ss; y < ee; y++ {
				fn(y)
			}
			wg.Done()
		}(s, e)
	}
	wg.Wait()
}
