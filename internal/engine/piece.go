package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoLegalMoves returns the moves p could make on b ignoring the safety of
// its own king. Castling is included for kings. The order is deterministic.
func PseudoLegalMoves(b *chess.Board, p chess.Piece) []Move {
	if p.Kind.IsSliding() {
		return slidingMoves(b, p)
	}
	switch p.Kind {
	case chess.Pawn:
		return pawnMoves(b, p)
	case chess.Knight:
		return stepMoves(b, p)
	case chess.King:
		moves := stepMoves(b, p)
		return append(moves, castlingMoves(b, p)...)
	}
	return nil
}

// slidingMoves walks each offset until the edge, an own piece, or an enemy
// piece (captured, then stop).
func slidingMoves(b *chess.Board, p chess.Piece) []Move {
	var moves []Move
	for _, off := range p.Kind.Offsets() {
		loc := p.Location
		for {
			next, ok := loc.Offset(off.DX, off.DY)
			if !ok {
				break
			}
			loc = next
			if m, ok := moveOnto(b, p, loc); ok {
				moves = append(moves, m)
			}
			if !b.IsEmpty(loc) {
				break // Blocked
			}
		}
	}
	return moves
}

// stepMoves applies each offset of a knight or king once.
func stepMoves(b *chess.Board, p chess.Piece) []Move {
	var moves []Move
	for _, off := range p.Kind.Offsets() {
		loc, ok := p.Location.Offset(off.DX, off.DY)
		if !ok {
			continue
		}
		if m, ok := moveOnto(b, p, loc); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// moveOnto builds the regular or capturing move of p onto loc. ok is false
// when an own piece stands there.
func moveOnto(b *chess.Board, p chess.Piece, loc chess.Location) (Move, bool) {
	target, occupied := b.PieceAt(loc)
	if !occupied {
		return newMove(b, RegularMove, p, loc), true
	}
	if target.Alliance == p.Alliance {
		return Move{}, false
	}
	m := newMove(b, CapturingMove, p, loc)
	m.Captured = target
	return m, true
}
