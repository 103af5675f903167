package engine

import (
	"runtime"
	"sync"
)

// forEachRow runs fill(row) for every row index on a bounded pool of
// workers. Each row writes to its own output slice, so no locking is
// needed and the result does not depend on the worker count.
func forEachRow(rows int, fill func(row int)) {
	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}

	if workers <= 1 {
		for row := 0; row < rows; row++ {
			fill(row)
		}

		return
	}

	jobs := make(chan int)

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for row := range jobs {
				fill(row)
			}
		}()
	}

	for row := 0; row < rows; row++ {
		jobs <- row
	}
	close(jobs)

	wg.Wait()
}
