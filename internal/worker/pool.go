// Package worker checks perft suite positions in parallel. Each work item is
// one position and the depth it is counted to.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// WorkItem is one suite position to be counted to Depth.
type WorkItem struct {
	Case  perft.Case
	Depth int
	Index int // Position in the suite, used to restore suite order
}

// ProcessResult is the node count for one position and whether it matched
// the published count.
type ProcessResult struct {
	Case     perft.Case
	Index    int
	Depth    int
	Nodes    uint64
	Expected uint64
	Passed   bool
	Error    error
}

// ProcessFunc counts one position.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans suite positions out to a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	cancelled   atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets how many positions are counted at once. Values below 1
// keep the default.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets how many positions can be queued before Submit blocks.
// A suite run queues the whole suite up front.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool around processFunc with one worker and room for 10
// queued positions unless opts say otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Cancelled run: skip positions still queued
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a position, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop cancels the run. Positions already being counted finish; queued ones
// produce no result.
func (p *Pool) Stop() {
	p.cancelled.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.cancelled.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results delivers counted positions in completion order, not suite order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
