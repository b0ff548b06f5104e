package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds perft runs requested from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-generation node counting.
type PerftConfig struct {
	// Depth is the number of plies to count (0 = perft disabled)
	Depth int

	// Divide prints the count below each root move
	Divide bool

	// Workers limits concurrently counted root moves (0 = unlimited)
	Workers int

	// CacheSize bounds the node-count cache (0 = unlimited, -1 = no cache)
	CacheSize int

	// SuiteFile names a file of positions with published node counts to
	// check; Depth then caps the depth checked (0 = deepest listed)
	SuiteFile string
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: 4,
	}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d not in [0,%d]: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < -1 {
		return fmt.Errorf("cache size %d: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
