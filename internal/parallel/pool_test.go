package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewPool(n)
		want := runtime.GOMAXPROCS(0)
		if pool.Workers() != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, pool.Workers(), want)
		}
		pool.Close()
	}
}

// =============================================================================
// ForEach Tests
// =============================================================================

// visitCounts runs ForEach and returns how often each index was visited.
func visitCounts(pool *Pool, total, grain int) []int32 {
	counts := make([]int32, total)
	pool.ForEach(total, grain, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})
	return counts
}

func TestPool_ForEachCoversRangeOnce(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	tests := []struct {
		name  string
		total int
		grain int
	}{
		{"single index", 1, 1},
		{"exact chunks", 64, 16},
		{"ragged tail", 1000, 7},
		{"grain larger than total", 10, 100},
		{"default grain", 12345, 0},
		{"negative grain", 99, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := visitCounts(pool, tt.total, tt.grain)
			for i, c := range counts {
				if c != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, c)
				}
			}
		})
	}
}

func TestPool_ForEachChunkBounds(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	var mu sync.Mutex
	var bad [][2]int
	pool.ForEach(100, 30, func(start, end int) {
		if end-start > 30 || end > 100 || start >= end {
			mu.Lock()
			bad = append(bad, [2]int{start, end})
			mu.Unlock()
		}
	})
	if len(bad) != 0 {
		t.Errorf("chunks out of bounds: %v", bad)
	}
}

func TestPool_ForEachEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	called := false
	pool.ForEach(0, 1, func(start, end int) { called = true })
	pool.ForEach(-5, 1, func(start, end int) { called = true })
	if called {
		t.Error("ForEach with empty range should not call fn")
	}
}

func TestPool_ForEachConcurrentCallers(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	const callers = 8
	const total = 5000

	var sum atomic.Int64
	var wg sync.WaitGroup
	wg.Add(callers)
	for range callers {
		go func() {
			defer wg.Done()
			pool.ForEach(total, 64, func(start, end int) {
				sum.Add(int64(end - start))
			})
		}()
	}
	wg.Wait()

	if got := sum.Load(); got != callers*total {
		t.Errorf("sum = %d, want %d", got, callers*total)
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestPool_ForEachAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	counts := visitCounts(pool, 50, 8)
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times after Close, want 1", i, c)
		}
	}
}

func TestDefaultGrain(t *testing.T) {
	tests := []struct {
		total, workers, want int
	}{
		{1, 4, 1},
		{3200, 4, 100},
		{100, 0, 12},
		{7, 8, 1},
	}
	for _, tt := range tests {
		if got := DefaultGrain(tt.total, tt.workers); got != tt.want {
			t.Errorf("DefaultGrain(%d, %d) = %d, want %d", tt.total, tt.workers, got, tt.want)
		}
	}
}

func BenchmarkPool_ForEach(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	data := make([]float64, 1<<16)
	b.ResetTimer()
	for range b.N {
		pool.ForEach(len(data), 1024, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = float64(i) * 0.5
			}
		})
	}
}
