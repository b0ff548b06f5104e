package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameConfig holds settings for starting and playing a game.
type GameConfig struct {
	// Variant selects the initial arrangement
	Variant chess.Variant

	// Seed seeds the random back rank; 0 means seed from the clock
	Seed int64

	// AutoQueen promotes to a queen when no promotion piece is given
	AutoQueen bool

	// FEN, when set, replaces the initial position
	FEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Variant: chess.Standard,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.Variant != chess.Standard && g.Variant != chess.RandomBackRank {
		return fmt.Errorf("variant %v: %w", g.Variant, errors.ErrInvalidConfig)
	}
	return nil
}
