package perft

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// These tests compare move generation with an independent bitboard move
// generator on standard-variant positions.

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftMatchesReference(t *testing.T) {
	for _, pos := range perftPositions {
		if engine.MustBoardFromFEN(pos.fen).Variant() != chess.Standard {
			continue
		}
		pos := pos
		t.Run(pos.name, func(t *testing.T) {
			t.Parallel()
			ref := dragontoothmg.ParseFen(pos.fen)
			b := engine.MustBoardFromFEN(pos.fen)
			testutil.AssertEqual(t, Perft(b, 2), referencePerft(&ref, 2))
		})
	}
}

// Random games exercise positions no fixed list covers: captures of
// unmoved rooks, checks, promotions and en passant in the middle game.
func TestRandomGamesMatchReference(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		r := rand.New(rand.NewSource(seed))
		b := engine.NewStandardBoard()

		for ply := 0; ply < 80; ply++ {
			fen := engine.BoardToFEN(b)
			ref := dragontoothmg.ParseFen(fen)

			moves := engine.LegalMoves(b)
			if got, want := len(moves), len(ref.GenerateLegalMoves()); got != want {
				t.Fatalf("seed %d ply %d: %s: %d legal moves, reference has %d: %v",
					seed, ply, fen, got, want, engine.MoveStrings(moves))
			}
			if len(moves) == 0 {
				break
			}
			b = moves[r.Intn(len(moves))].Execute()
		}
	}
}
