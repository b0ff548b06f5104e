// chess plays a game of chess on the terminal, reading coordinate moves from
// standard input, or counts move-generation nodes with -perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	setupLogFile(cfg)
	logger := log.New(cfg.LogFile, "chess: ", 0)

	if err := applyFlags(cfg); err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Perft.SuiteFile != "" {
		if err := runSuiteFile(ctx, cfg); err != nil {
			logger.Fatal(err)
		}
		return
	}

	g, err := game.FromConfig(cfg)
	if err != nil {
		logger.Fatal(err)
	}

	if cfg.Perft.Enabled() {
		if err := runPerft(ctx, cfg, g.Board()); err != nil {
			logger.Fatal(err)
		}
		return
	}

	s := newSession(cfg, g)
	if err := s.run(os.Stdin); err != nil {
		logger.Fatal(err)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess from coordinate moves on standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  e2e4, e7e8q    Play a move (promotion piece q, r, b or n)\n")
	fmt.Fprintf(os.Stderr, "  moves          List the legal moves\n")
	fmt.Fprintf(os.Stderr, "  log            Show the moves played so far\n")
	fmt.Fprintf(os.Stderr, "  board          Show the board\n")
	fmt.Fprintf(os.Stderr, "  fen            Show the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  new [variant]  Start a new game\n")
	fmt.Fprintf(os.Stderr, "  quit           Leave\n")
}
