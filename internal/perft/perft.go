// Package perft counts move-generation leaf nodes to a fixed depth. The
// counts are compared against published values to validate move generation.
package perft

import (
	"context"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Cache memoises node counts by position and depth. Implementations used by
// Divide must be safe for concurrent use.
type Cache interface {
	Lookup(b *chess.Board, depth int) (uint64, bool)
	Store(b *chess.Board, depth int, nodes uint64)
}

// Division is the node count below one root move.
type Division struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Result holds the per-root-move counts of a divided perft run, ordered by
// move text, and their total.
type Result struct {
	Depth     int        `json:"depth"`
	Nodes     uint64     `json:"nodes"`
	Divisions []Division `json:"divisions"`
}

// Perft returns the number of leaf nodes depth plies below b.
func Perft(b *chess.Board, depth int) uint64 {
	return count(b, depth, nil)
}

// PerftCached is like Perft but consults and fills cache for interior nodes.
func PerftCached(b *chess.Board, depth int, cache Cache) uint64 {
	return count(b, depth, cache)
}

func count(b *chess.Board, depth int, cache Cache) uint64 {
	if depth <= 0 {
		return 1
	}
	if cache != nil && depth > 1 {
		if nodes, ok := cache.Lookup(b, depth); ok {
			return nodes
		}
	}

	moves := engine.LegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		nodes += count(m.Execute(), depth-1, cache)
	}
	if cache != nil {
		cache.Store(b, depth, nodes)
	}
	return nodes
}

// Divide runs perft below each legal root move in parallel, with at most
// workers subtrees counted at once (0 = no limit). cache may be nil.
// Cancelling ctx stops scheduling further root moves.
func Divide(ctx context.Context, b *chess.Board, depth, workers int, cache Cache) (Result, error) {
	if depth < 1 {
		return Result{}, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	moves := engine.LegalMoves(b)
	counts := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = count(m.Execute(), depth-1, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	byMove := make(map[string]uint64, len(moves))
	for i, m := range moves {
		byMove[m.String()] = counts[i]
	}

	keys := maps.Keys(byMove)
	slices.Sort(keys)

	res := Result{Depth: depth, Divisions: make([]Division, 0, len(keys))}
	for _, k := range keys {
		res.Divisions = append(res.Divisions, Division{Move: k, Nodes: byMove[k]})
		res.Nodes += byMove[k]
	}
	return res, nil
}
