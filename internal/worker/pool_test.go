package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Case: item.Case, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Case: item.Case, Index: item.Index, Passed: true}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Case: perft.Case{Line: i + 1}, Depth: 1, Index: i})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolDefaults tests pool construction without options.
func TestPoolDefaults(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(0), WithBufferSize(-1))
	if pool.NumWorkers() != 1 {
		t.Errorf("NumWorkers() = %d; want 1", pool.NumWorkers())
	}
	pool.Start()

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	results := collectResults(pool)

	if results >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", results)
	}
	if got := int(atomic.LoadInt32(&processedCount)); got != results {
		t.Errorf("processed = %d; results = %d", got, results)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	go pool.Close()
	collectResults(pool)
}
