package parallel

import "sync"

// minRowsPerBand keeps bands large enough that scheduling cost stays
// small next to the per-row work.
const minRowsPerBand = 16

var (
	defaultOnce sync.Once
	defaultPool *WorkerPool
)

// Default returns the process-wide pool, starting it on first use.
func Default() *WorkerPool {
	defaultOnce.Do(func() {
		defaultPool = NewWorkerPool(0)
	})
	return defaultPool
}

// Rows calls fn over [0, height) split into contiguous bands, running the
// bands concurrently on the default pool. fn must only write rows in
// [y0, y1).
func Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	pool := Default()
	bands := min(pool.Workers(), (height+minRowsPerBand-1)/minRowsPerBand)
	if bands <= 1 {
		fn(0, height)
		return
	}

	step := (height + bands - 1) / bands
	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += step {
		y1 := min(y0+step, height)
		work = append(work, func() { fn(y0, y1) })
	}
	pool.ExecuteAll(work)
}
