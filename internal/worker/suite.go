package worker

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// CheckPerft returns a ProcessFunc that counts nodes for an item's position
// and compares them with the published count. cache may be nil and must be
// safe for concurrent use otherwise.
func CheckPerft(cache perft.Cache) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Case: item.Case, Index: item.Index, Depth: item.Depth}
		res.Expected = item.Case.Counts[item.Depth]

		b, err := engine.NewBoardFromFEN(item.Case.FEN)
		if err != nil {
			res.Error = errors.Wrapf(err, "suite line %d", item.Case.Line)
			return res
		}
		res.Nodes = perft.PerftCached(b, item.Depth, cache)
		res.Passed = res.Nodes == res.Expected
		return res
	}
}

// RunSuite checks every case at its deepest known depth not exceeding
// maxDepth (0 = no limit), using up to workers goroutines (0 = one per case).
// Results are returned in suite order. Cancelling ctx stops remaining work;
// cases not checked are reported with ctx's error.
func RunSuite(ctx context.Context, cases []perft.Case, maxDepth, workers int, cache perft.Cache) []ProcessResult {
	pool := NewPool(CheckPerft(cache), WithWorkers(suiteWorkers(workers, len(cases))), WithBufferSize(len(cases)))
	pool.Start()

	var skipped []ProcessResult
	for i, c := range cases {
		depth := deepest(c, maxDepth)
		if depth == 0 {
			skipped = append(skipped, ProcessResult{
				Case:  c,
				Index: i,
				Error: fmt.Errorf("suite line %d: no count at depth %d or less: %w", c.Line, maxDepth, errors.ErrInvalidConfig),
			})
			continue
		}
		pool.Submit(WorkItem{Case: c, Depth: depth, Index: i})
	}

	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-stopped:
		}
	}()
	go pool.Close()

	results := make([]ProcessResult, len(cases))
	seen := make([]bool, len(cases))
	for r := range pool.Results() {
		results[r.Index] = r
		seen[r.Index] = true
	}
	close(stopped)

	for _, r := range skipped {
		results[r.Index] = r
		seen[r.Index] = true
	}
	for i := range results {
		if !seen[i] {
			results[i] = ProcessResult{Case: cases[i], Index: i, Error: ctx.Err()}
		}
	}
	return results
}

// suiteWorkers maps the unlimited setting (workers <= 0) to one goroutine per
// case.
func suiteWorkers(workers, cases int) int {
	if workers <= 0 {
		return cases
	}
	return workers
}

func deepest(c perft.Case, maxDepth int) int {
	depths := c.Depths()
	for i := len(depths) - 1; i >= 0; i-- {
		if maxDepth == 0 || depths[i] <= maxDepth {
			return depths[i]
		}
	}
	return 0
}
