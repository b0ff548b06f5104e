package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// newPerftCache returns the cache selected by cfg, or nil when caching is off.
func newPerftCache(cfg *config.Config) perft.Cache {
	if cfg.Perft.CacheSize < 0 {
		return nil
	}
	return hashing.NewThreadSafePerftCache(cfg.Perft.CacheSize)
}

// runPerft counts leaf nodes below b and writes the result to cfg.OutputFile.
func runPerft(ctx context.Context, cfg *config.Config, b *chess.Board) error {
	cache := newPerftCache(cfg)
	start := time.Now()

	var res perft.Result
	if cfg.Perft.Divide {
		var err error
		res, err = perft.Divide(ctx, b, cfg.Perft.Depth, cfg.Perft.Workers, cache)
		if err != nil {
			return err
		}
	} else {
		res = perft.Result{Depth: cfg.Perft.Depth, Nodes: perft.PerftCached(b, cfg.Perft.Depth, cache)}
	}
	elapsed := time.Since(start)

	if cfg.Output.JSONFormat {
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, d := range res.Divisions {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", d.Move, d.Nodes)
	}
	if len(res.Divisions) > 0 {
		fmt.Fprintln(cfg.OutputFile)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", res.Nodes)

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "perft %d: %d nodes in %v\n", res.Depth, res.Nodes, elapsed.Round(time.Millisecond))
		if c, ok := cache.(*hashing.ThreadSafePerftCache); ok {
			fmt.Fprintf(cfg.LogFile, "cache: %d entries, %d hits\n", c.Len(), c.Hits())
		}
	}
	return nil
}

// suiteReport is the JSON form of one checked suite line.
type suiteReport struct {
	Line     int    `json:"line"`
	FEN      string `json:"fen"`
	Depth    int    `json:"depth"`
	Nodes    uint64 `json:"nodes"`
	Expected uint64 `json:"expected"`
	Passed   bool   `json:"passed"`
	Error    string `json:"error,omitempty"`
}

// runSuiteFile checks every position of cfg.Perft.SuiteFile and fails if any
// count differs from the published one.
func runSuiteFile(ctx context.Context, cfg *config.Config) error {
	f, err := os.Open(cfg.Perft.SuiteFile)
	if err != nil {
		return err
	}
	defer f.Close()

	cases, err := perft.ParseSuite(f)
	if err != nil {
		return errors.Wrap(err, cfg.Perft.SuiteFile)
	}
	return runSuite(ctx, cfg, cases)
}

func runSuite(ctx context.Context, cfg *config.Config, cases []perft.Case) error {
	results := worker.RunSuite(ctx, cases, cfg.Perft.Depth, cfg.Perft.Workers, newPerftCache(cfg))

	failed := 0
	reports := make([]suiteReport, 0, len(results))
	for _, r := range results {
		rep := suiteReport{
			Line:     r.Case.Line,
			FEN:      r.Case.FEN,
			Depth:    r.Depth,
			Nodes:    r.Nodes,
			Expected: r.Expected,
			Passed:   r.Passed && r.Error == nil,
		}
		if r.Error != nil {
			rep.Error = r.Error.Error()
		}
		if !rep.Passed {
			failed++
		}
		reports = append(reports, rep)
	}

	if cfg.Output.JSONFormat {
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, rep := range reports {
			switch {
			case rep.Error != "":
				fmt.Fprintf(cfg.OutputFile, "ERROR line %d: %s\n", rep.Line, rep.Error)
			case !rep.Passed:
				fmt.Fprintf(cfg.OutputFile, "FAIL  line %d depth %d: %d, want %d\n", rep.Line, rep.Depth, rep.Nodes, rep.Expected)
			case cfg.Verbosity > 0:
				fmt.Fprintf(cfg.OutputFile, "ok    line %d depth %d: %d\n", rep.Line, rep.Depth, rep.Nodes)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d suite positions failed", failed, len(reports))
	}
	return nil
}
