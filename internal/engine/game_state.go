package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(b *chess.Board) bool {
	return IsInCheck(b, b.ToMove()) && !HasLegalMoves(b)
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(b *chess.Board) bool {
	return !IsInCheck(b, b.ToMove()) && !HasLegalMoves(b)
}
