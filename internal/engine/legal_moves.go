package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PseudoLegalMovesFor returns the pseudo-legal moves of every piece of side a
// in square order.
func PseudoLegalMovesFor(b *chess.Board, a chess.Alliance) []Move {
	var moves []Move
	b.ForEachPiece(a, func(p chess.Piece) {
		moves = append(moves, PseudoLegalMoves(b, p)...)
	})
	return moves
}

// LegalMoves returns the legal moves of the side to move: every pseudo-legal
// move after which the mover's king is not attacked.
func LegalMoves(b *chess.Board) []Move {
	mover := b.ToMove()
	var legal []Move
	for _, m := range PseudoLegalMovesFor(b, mover) {
		if isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(b *chess.Board) bool {
	mover := b.ToMove()
	found := false
	b.ForEachPiece(mover, func(p chess.Piece) {
		if found {
			return
		}
		for _, m := range PseudoLegalMoves(b, p) {
			if isLegal(m) {
				found = true
				return
			}
		}
	})
	return found
}

// isLegal executes m and checks the mover's king on the resulting board.
func isLegal(m Move) bool {
	return !IsInCheck(m.Execute(), m.Piece.Alliance)
}

// FindMove returns the legal move from src to dst with the given promotion
// kind. promo is ignored for non-promotions.
func FindMove(b *chess.Board, src, dst chess.Location, promo chess.PieceKind) (Move, bool) {
	for _, m := range LegalMoves(b) {
		if m.Matches(src, dst, promo) {
			return m, true
		}
	}
	return Move{}, false
}

// MoveStrings returns the coordinate notation of moves, sorted.
func MoveStrings(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}
