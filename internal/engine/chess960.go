package engine

import (
	"math/rand"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// StandardBackRank is the classical back rank from file a to file h.
var StandardBackRank = [chess.BoardSize]chess.PieceKind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// RandomBackRank draws a Fischer-random back rank: one bishop on a light
// and one on a dark square, then the queen and both knights on random free
// files, and rook, king, rook on the three files left, so the king always
// stands between the rooks.
func RandomBackRank(r *rand.Rand) [chess.BoardSize]chess.PieceKind {
	var rank [chess.BoardSize]chess.PieceKind

	// Files with odd x are light on White's back rank.
	rank[2*r.Intn(4)+1] = chess.Bishop
	rank[2*r.Intn(4)] = chess.Bishop

	for _, kind := range [...]chess.PieceKind{chess.Queen, chess.Knight, chess.Knight} {
		free := freeFiles(rank)
		rank[free[r.Intn(len(free))]] = kind
	}

	free := freeFiles(rank)
	rank[free[0]] = chess.Rook
	rank[free[1]] = chess.King
	rank[free[2]] = chess.Rook
	return rank
}

func freeFiles(rank [chess.BoardSize]chess.PieceKind) []int {
	var free []int
	for x, kind := range rank {
		if kind == chess.NoPiece {
			free = append(free, x)
		}
	}
	return free
}

// NewStandardBoard returns the classical initial position.
func NewStandardBoard() *chess.Board {
	return newBoardFromBackRank(chess.Standard, StandardBackRank)
}

// NewRandomBoard returns a random back-rank initial position drawn from r.
func NewRandomBoard(r *rand.Rand) *chess.Board {
	return newBoardFromBackRank(chess.RandomBackRank, RandomBackRank(r))
}

// NewBoard returns the initial position of a variant. A nil r is replaced by
// a time-seeded source; it is only consulted for the random variant.
func NewBoard(v chess.Variant, r *rand.Rand) *chess.Board {
	if v != chess.RandomBackRank {
		return NewStandardBoard()
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return NewRandomBoard(r)
}

// newBoardFromBackRank mirrors rank for both sides and fills the pawn ranks.
// The rook files are taken from the outer rooks of rank.
func newBoardFromBackRank(v chess.Variant, rank [chess.BoardSize]chess.PieceKind) *chess.Board {
	queenside, kingside := -1, -1
	for x, kind := range rank {
		if kind != chess.Rook {
			continue
		}
		if queenside < 0 {
			queenside = x
		}
		kingside = x
	}

	bd := chess.NewBuilder().SetVariant(v, kingside, queenside)
	for _, a := range [2]chess.Alliance{chess.White, chess.Black} {
		for x, kind := range rank {
			bd.SetPiece(chess.NewPiece(kind, chess.MustLocation(x, a.BackRank()), a, false))
			bd.SetPiece(chess.NewPiece(chess.Pawn, chess.MustLocation(x, a.PawnRank()), a, false))
		}
	}
	return bd.SetMoveMaker(chess.White).MustBuild()
}
