package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pushes, jumps, captures, en-passant captures and
// promotions for a pawn. Files are visited left, straight, right.
func pawnMoves(b *chess.Board, p chess.Piece) []Move {
	var moves []Move
	dir := p.Alliance.Direction()

	for dx := -1; dx <= 1; dx++ {
		to, ok := p.Location.Offset(dx, dir)
		if !ok {
			continue
		}

		if dx == 0 {
			if !b.IsEmpty(to) {
				continue
			}
			moves = appendPawnMove(moves, newMove(b, PawnPush, p, to))
			if jump, ok := pawnJump(b, p, to); ok {
				moves = append(moves, jump)
			}
			continue
		}

		if target, ok := b.PieceAt(to); ok {
			if target.Alliance != p.Alliance {
				m := newMove(b, CapturingMove, p, to)
				m.Captured = target
				moves = appendPawnMove(moves, m)
			}
			continue
		}

		if victim, ok := enPassantVictim(b, p, dx); ok {
			m := newMove(b, EnPassantCapture, p, to)
			m.Captured = victim
			moves = append(moves, m)
		}
	}
	return moves
}

// pawnJump returns the double step of an unmoved pawn on its pawn rank whose
// single-step square over is empty.
func pawnJump(b *chess.Board, p chess.Piece, over chess.Location) (Move, bool) {
	if p.Moved || p.Location.Y() != p.Alliance.PawnRank() {
		return Move{}, false
	}
	to, ok := over.Offset(0, p.Alliance.Direction())
	if !ok || !b.IsEmpty(to) {
		return Move{}, false
	}
	return newMove(b, PawnJump, p, to), true
}

// enPassantVictim returns the board's en-passant pawn when it is an enemy
// pawn on p's rank, adjacent to p in the dx direction.
func enPassantVictim(b *chess.Board, p chess.Piece, dx int) (chess.Piece, bool) {
	ep, ok := b.EnPassantPawn()
	if !ok || ep.Alliance == p.Alliance {
		return chess.Piece{}, false
	}
	if ep.Location.Y() != p.Location.Y() || ep.Location.X()-p.Location.X() != dx {
		return chess.Piece{}, false
	}
	return ep, true
}

// appendPawnMove appends m, expanding it into one move per promotion kind
// when it lands on the promotion rank.
func appendPawnMove(moves []Move, m Move) []Move {
	if !m.Piece.Alliance.IsPromotionSquare(m.To) {
		return append(moves, m)
	}
	for _, kind := range chess.PromotionKinds {
		promo := m
		promo.Kind = PawnPromotion
		promo.Promotion = kind
		moves = append(moves, promo)
	}
	return moves
}
