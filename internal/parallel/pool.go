// Package parallel runs index-range work on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of long-lived worker goroutines.
//
// Work is submitted as an index range [0, total) which is cut into chunks.
// Chunks are claimed from a shared cursor, so a worker that finishes early
// keeps pulling chunks until the range is exhausted and slow chunks do not
// stall the others. The submitting goroutine takes part in the work.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// jobs hands a job to an idle worker.
	jobs chan *job

	// done is closed by Close to stop the workers.
	done chan struct{}

	wg        sync.WaitGroup
	running   atomic.Bool
	closeOnce sync.Once
}

type job struct {
	total int
	grain int
	next  atomic.Int64
	fn    func(start, end int)
	wg    sync.WaitGroup
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan *job),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case j := <-p.jobs:
			j.run()
			j.wg.Done()
		}
	}
}

// run claims chunks until none are left.
func (j *job) run() {
	grain := int64(j.grain)
	for {
		start := int(j.next.Add(grain) - grain)
		if start >= j.total {
			return
		}
		j.fn(start, min(start+j.grain, j.total))
	}
}

// ForEach calls fn for consecutive chunks covering [0, total), each at most
// grain indices long, and returns when all of them have completed. Chunks may
// run concurrently and in any order. A grain of 0 or less picks a chunk size
// that gives every worker several chunks.
//
// After Close, ForEach runs all chunks on the calling goroutine.
func (p *Pool) ForEach(total, grain int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	if grain <= 0 {
		grain = DefaultGrain(total, p.workers)
	}

	j := &job{total: total, grain: grain, fn: fn}
	if !p.running.Load() {
		j.run()
		return
	}

	chunks := (total + grain - 1) / grain
	helpers := min(p.workers, chunks) - 1

	j.wg.Add(helpers)
	for range helpers {
		select {
		case p.jobs <- j:
		case <-p.done:
			j.wg.Done()
		}
	}

	j.run()
	j.wg.Wait()
}

// DefaultGrain returns a chunk size giving each of workers about eight chunks.
func DefaultGrain(total, workers int) int {
	if workers <= 0 {
		workers = 1
	}
	return max(1, total/(workers*8))
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Close stops the workers and waits for them to exit. Calls to ForEach that
// are in flight complete normally. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.running.Store(false)
		close(p.done)
		p.wg.Wait()
	})
}
