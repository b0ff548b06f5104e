// Package game tracks a single chess game: the current board, the log of
// played moves and the resulting status. Moves are validated against the
// legal-move set of the side to move and are either applied whole or not at
// all.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is a chess game in progress. It is not safe for concurrent use.
type Game struct {
	variant chess.Variant
	board   *chess.Board
	moves   []engine.Move
	status  Status

	rng       *rand.Rand
	autoQueen bool

	logFile   io.Writer
	verbosity int
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for random back-rank setups.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed seeds the random source used for random back-rank setups.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithAutoQueen promotes to a queen when a pawn reaches the last rank without
// a promotion choice.
func WithAutoQueen(enabled bool) Option {
	return func(g *Game) { g.autoQueen = enabled }
}

// WithLog writes a running commentary to w at the given verbosity. Applied
// and rejected moves are logged from verbosity 2.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.logFile = w
		g.verbosity = verbosity
	}
}

// WithBoard starts the game from b instead of a fresh setup. The game's
// variant is taken from b.
func WithBoard(b *chess.Board) Option {
	return func(g *Game) { g.board = b }
}

// New starts a game in the given variant.
func New(variant chess.Variant, opts ...Option) *Game {
	g := &Game{variant: variant}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.board == nil {
		g.board = engine.NewBoard(variant, g.rng)
	}
	g.variant = g.board.Variant()
	g.status = statusOf(g.board)
	g.logf(2, "new %s game: %s\n", g.variant, engine.BoardToFEN(g.board))
	return g
}

// Reset discards the move log and starts over in variant.
func (g *Game) Reset(variant chess.Variant) {
	g.variant = variant
	g.board = engine.NewBoard(variant, g.rng)
	g.moves = nil
	g.status = statusOf(g.board)
	g.logf(2, "new %s game: %s\n", g.variant, engine.BoardToFEN(g.board))
}

// Board returns the current board.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Variant returns the variant of the current game.
func (g *Game) Variant() chess.Variant {
	return g.variant
}

// Status returns the status of the side to move.
func (g *Game) Status() Status {
	return g.status
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []engine.Move {
	if g.status.Over() {
		return nil
	}
	return engine.LegalMoves(g.board)
}

// MoveLog returns a copy of the moves played so far, oldest first.
func (g *Game) MoveLog() []engine.Move {
	out := make([]engine.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// NeedsPromotion reports whether moving the piece on src to dst is a legal
// pawn promotion, so that a caller can ask for the piece beforehand.
func (g *Game) NeedsPromotion(src, dst chess.Location) bool {
	for _, m := range g.LegalMoves() {
		if m.IsPromotion() && m.From() == src && m.To == dst {
			return true
		}
	}
	return false
}

// TryMove plays the move from src to dst and reports whether it was legal.
// promo selects the promotion piece and is ignored for other moves.
func (g *Game) TryMove(src, dst chess.Location, promo chess.PieceKind) bool {
	_, err := g.Play(src, dst, promo)
	return err == nil
}

// Play plays the move from src to dst and returns it. A move that is not
// legal leaves the game unchanged and returns a *errors.MoveError wrapping
// errors.ErrIllegalMove, or errors.ErrPromotionRequired for a promotion
// submitted without a piece.
func (g *Game) Play(src, dst chess.Location, promo chess.PieceKind) (engine.Move, error) {
	text := moveText(src, dst, promo)
	ply := len(g.moves) + 1

	if promo == chess.NoPiece && g.NeedsPromotion(src, dst) {
		if !g.autoQueen {
			return g.reject(ply, text, errors.ErrPromotionRequired)
		}
		promo = chess.Queen
	}

	m, ok := g.resolve(src, dst, promo)
	if !ok {
		return g.reject(ply, text, errors.ErrIllegalMove)
	}

	next := m.Execute()
	st := statusOf(next)
	prev := g.status
	g.board, g.status = next, st
	g.moves = append(g.moves, m)

	g.logf(2, "ply %d: %s (%s)\n", ply, engine.SAN(m), m)
	if g.status.State != prev.State || g.status.Checked() {
		g.logf(2, "ply %d: %s\n", ply, g.status)
	}
	return m, nil
}

// resolve finds the legal move for a submitted (src, dst, promo). On random
// back-rank boards a king moved onto its own castling rook castles.
func (g *Game) resolve(src, dst chess.Location, promo chess.PieceKind) (engine.Move, bool) {
	legal := g.LegalMoves()
	for _, m := range legal {
		if m.Matches(src, dst, promo) {
			return m, true
		}
	}
	if g.board.Variant() != chess.RandomBackRank {
		return engine.Move{}, false
	}
	for _, m := range legal {
		if m.IsCastle() && m.From() == src && m.Rook.Location == dst {
			return m, true
		}
	}
	return engine.Move{}, false
}

func (g *Game) reject(ply int, text string, cause error) (engine.Move, error) {
	err := &errors.MoveError{Err: cause, PlyNum: ply, MoveText: text}
	g.logf(2, "rejected: %v\n", err)
	return engine.Move{}, err
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.logFile == nil || g.verbosity < level {
		return
	}
	fmt.Fprintf(g.logFile, format, args...)
}

func moveText(src, dst chess.Location, promo chess.PieceKind) string {
	s := src.String() + dst.String()
	if promo.IsPromotionKind() {
		s += string(promo.Letter() + ('a' - 'A'))
	}
	return s
}
