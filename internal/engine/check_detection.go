package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsInCheck returns true if the given side's king is attacked. A board
// without that king is an engine bug and panics.
func IsInCheck(b *chess.Board, a chess.Alliance) bool {
	king, ok := b.King(a)
	if !ok {
		errors.Invariant("no %s king on board", a)
	}
	return IsSquareAttacked(b, king.Location, a.Opponent())
}

// IsSquareAttacked returns true if a piece of side by could move onto loc,
// pawns counting only their diagonal steps. It looks outward from loc
// instead of generating the attacker's moves.
func IsSquareAttacked(b *chess.Board, loc chess.Location, by chess.Alliance) bool {
	// Pawns attack from one rank behind, in their own direction of travel.
	for _, dx := range [2]int{-1, 1} {
		if from, ok := loc.Offset(dx, -by.Direction()); ok && isPieceAt(b, from, by, chess.Pawn) {
			return true
		}
	}

	for _, off := range chess.Knight.Offsets() {
		if from, ok := loc.Offset(off.DX, off.DY); ok && isPieceAt(b, from, by, chess.Knight) {
			return true
		}
	}

	for _, off := range chess.King.Offsets() {
		if from, ok := loc.Offset(off.DX, off.DY); ok && isPieceAt(b, from, by, chess.King) {
			return true
		}
	}

	if rayAttacked(b, loc, by, chess.Bishop) || rayAttacked(b, loc, by, chess.Rook) {
		return true
	}
	return false
}

// rayAttacked walks the slider offsets of kind from loc and reports whether
// the first piece met is a kind or queen of side by.
func rayAttacked(b *chess.Board, loc chess.Location, by chess.Alliance, kind chess.PieceKind) bool {
	for _, off := range kind.Offsets() {
		cur := loc
		for {
			next, ok := cur.Offset(off.DX, off.DY)
			if !ok {
				break
			}
			cur = next
			p, occupied := b.PieceAt(cur)
			if !occupied {
				continue
			}
			if p.Alliance == by && (p.Kind == kind || p.Kind == chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

func isPieceAt(b *chess.Board, loc chess.Location, a chess.Alliance, kind chess.PieceKind) bool {
	p, ok := b.PieceAt(loc)
	return ok && p.Alliance == a && p.Kind == kind
}

// AttackTargets returns the squares p attacks: its pseudo-legal destinations
// with pawns restricted to diagonal captures and castling left out.
func AttackTargets(b *chess.Board, p chess.Piece) []chess.Location {
	var targets []chess.Location
	switch p.Kind {
	case chess.Pawn:
		for _, dx := range [2]int{-1, 1} {
			if loc, ok := p.Location.Offset(dx, p.Alliance.Direction()); ok {
				targets = append(targets, loc)
			}
		}
	case chess.King:
		for _, m := range stepMoves(b, p) {
			targets = append(targets, m.To)
		}
	default:
		for _, m := range PseudoLegalMoves(b, p) {
			targets = append(targets, m.To)
		}
	}
	return targets
}

// AttackedSquares returns the set of squares attacked by side a, built from
// AttackTargets of every piece of a.
func AttackedSquares(b *chess.Board, a chess.Alliance) map[chess.Location]bool {
	attacked := make(map[chess.Location]bool)
	b.ForEachPiece(a, func(p chess.Piece) {
		for _, loc := range AttackTargets(b, p) {
			attacked[loc] = true
		}
	})
	return attacked
}
