// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game options
	variantName = flag.String("variant", "standard", "Setup: standard, random (fischer, 960)")
	seed        = flag.Int64("seed", 0, "Seed for the random back rank (0 = from the clock)")
	autoQueen   = flag.Bool("autoqueen", false, "Promote to a queen when no piece is given")
	fenStart    = flag.String("fen", "", "Start from this FEN position")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 4, "Root moves counted in parallel (0 = unlimited)")
	cacheSize  = flag.Int("cache", 0, "Perft cache entries (0 = unlimited, -1 = no cache)")
	suiteFile  = flag.String("suite", "", "Check a perft suite file (<fen> ;D1 n ;D2 n ...) and exit")

	// Output options
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the board after each move")
	coordLog   = flag.Bool("lalg", false, "Print the move log in coordinate notation")
	lineLength = flag.Int("w", 80, "Maximum move-log line length")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 = quiet, 1 = status, 2 = every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	logFile   = flag.String("l", "", "Write diagnostics to this file")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyGameFlags configures the game setup.
func applyGameFlags(cfg *config.Config) error {
	v, err := config.ParseVariant(*variantName)
	if err != nil {
		return err
	}
	cfg.Game.Variant = v
	cfg.Game.Seed = *seed
	cfg.Game.AutoQueen = *autoQueen
	cfg.Game.FEN = *fenStart
	return nil
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.CacheSize = *cacheSize
	cfg.Perft.SuiteFile = *suiteFile
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard && !*jsonOutput
	cfg.Output.SANLog = !*coordLog
	cfg.Output.LineLength = *lineLength
}
