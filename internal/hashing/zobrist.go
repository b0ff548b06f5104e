// Package hashing provides Zobrist position keys and a memo table for
// perft node counts.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristTable holds one random value per feature of a position. Moved
// flags are part of the key because they decide castling and pawn jumps.
type zobristTable struct {
	pieces    [2][chess.NumPieceKinds][2][chess.NumSquares]uint64 // alliance × kind × moved × square
	enPassant [chess.BoardSize]uint64
	rookFiles [2][chess.BoardSize]uint64 // kingside/queenside start file
	blackMove uint64
}

// Two independent tables: the first gives the key, the second a check value
// that guards cache entries against key collisions.
var (
	keys   = newZobristTable(0x5EED0F0C4E55)
	checks = newZobristTable(0x2B7E151628AED2A6)
)

// newZobristTable fills a table from a fixed seed so keys are stable
// across runs.
func newZobristTable(seed int64) *zobristTable {
	rng := rand.New(rand.NewSource(seed))
	t := &zobristTable{}
	for a := range t.pieces {
		for k := range t.pieces[a] {
			for m := range t.pieces[a][k] {
				for sq := range t.pieces[a][k][m] {
					t.pieces[a][k][m][sq] = rng.Uint64()
				}
			}
		}
	}
	for f := range t.enPassant {
		t.enPassant[f] = rng.Uint64()
	}
	for side := range t.rookFiles {
		for f := range t.rookFiles[side] {
			t.rookFiles[side][f] = rng.Uint64()
		}
	}
	t.blackMove = rng.Uint64()
	return t
}

func (t *zobristTable) hash(b *chess.Board) uint64 {
	var h uint64
	for _, a := range [2]chess.Alliance{chess.White, chess.Black} {
		b.ForEachPiece(a, func(p chess.Piece) {
			moved := 0
			if p.Moved {
				moved = 1
			}
			h ^= t.pieces[a][p.Kind][moved][p.Location.Index()]
		})
	}

	if pawn, ok := b.EnPassantPawn(); ok {
		h ^= t.enPassant[pawn.Location.X()]
	}

	kingside, queenside := b.RookFiles()
	h ^= t.rookFiles[0][kingside]
	h ^= t.rookFiles[1][queenside]

	if b.ToMove() == chess.Black {
		h ^= t.blackMove
	}
	return h
}

// Key computes the Zobrist key of a board: pieces with their moved flags,
// side to move, en-passant file and castling rook files.
func Key(b *chess.Board) uint64 {
	return keys.hash(b)
}

// checkKey is an independent second hash used to confirm cache hits.
func checkKey(b *chess.Board) uint64 {
	return checks.hash(b)
}
