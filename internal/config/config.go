// Package config provides configuration for the chess rules engine and its
// command-line front end.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=status lines, 2=running commentary
	Verbosity int

	Game   *GameConfig
	Perft  *PerftConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// ParseVariant maps a variant name to a chess.Variant. It accepts
// "standard" and "classic" for the standard setup, and "random", "fischer",
// "960" and "chess960" for the random back rank.
func ParseVariant(name string) (chess.Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "classic":
		return chess.Standard, nil
	case "random", "fischer", "960", "chess960":
		return chess.RandomBackRank, nil
	}
	return chess.Standard, fmt.Errorf("unknown variant %q: %w", name, errors.ErrInvalidConfig)
}
