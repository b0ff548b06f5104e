package game

import (
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FromConfig starts a game as described by cfg: its variant, seed, promotion
// policy, optional FEN start position and log stream.
func FromConfig(cfg *config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []Option{
		WithAutoQueen(cfg.Game.AutoQueen),
		WithLog(cfg.LogFile, cfg.Verbosity),
	}
	if cfg.Game.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Game.Seed))
	}
	if cfg.Game.FEN != "" {
		b, err := engine.NewBoardFromFEN(cfg.Game.FEN)
		if err != nil {
			return nil, errors.Wrap(err, "starting position")
		}
		opts = append(opts, WithBoard(b))
	}
	return New(cfg.Game.Variant, opts...), nil
}
