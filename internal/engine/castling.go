package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Castling destination files. They are the same in both variants; only the
// rook start files differ.
const (
	kingsideKingFile  = 6 // g
	kingsideRookFile  = 5 // f
	queensideKingFile = 2 // c
	queensideRookFile = 3 // d
)

// castlingMoves returns the castling moves available to an unmoved king.
func castlingMoves(b *chess.Board, king chess.Piece) []Move {
	if king.Moved || king.Location.Y() != king.Alliance.BackRank() {
		return nil
	}
	kingsideFile, queensideFile := b.RookFiles()

	var moves []Move
	if m, ok := castle(b, king, KingsideCastle, kingsideFile, kingsideKingFile, kingsideRookFile); ok {
		moves = append(moves, m)
	}
	if m, ok := castle(b, king, QueensideCastle, queensideFile, queensideKingFile, queensideRookFile); ok {
		moves = append(moves, m)
	}
	return moves
}

// castle checks one castling option: the rook on rookFile is an unmoved own
// rook on the correct side of the king, every square either piece crosses is
// empty apart from the two of them, and the king never passes an attacked
// square.
func castle(b *chess.Board, king chess.Piece, kind MoveKind, rookFile, kingTo, rookTo int) (Move, bool) {
	rank := king.Location.Y()
	kx := king.Location.X()

	rook, ok := b.PieceAt(chess.MustLocation(rookFile, rank))
	if !ok || rook.Kind != chess.Rook || rook.Alliance != king.Alliance || rook.Moved {
		return Move{}, false
	}
	if kind == KingsideCastle && rookFile <= kx || kind == QueensideCastle && rookFile >= kx {
		return Move{}, false
	}

	lo := minInt(kx, kingTo, rookFile, rookTo)
	hi := maxInt(kx, kingTo, rookFile, rookTo)
	for x := lo; x <= hi; x++ {
		if x == kx || x == rookFile {
			continue
		}
		if !b.IsEmpty(chess.MustLocation(x, rank)) {
			return Move{}, false
		}
	}

	enemy := king.Alliance.Opponent()
	step := sign(kingTo - kx)
	for x := kx; ; x += step {
		if IsSquareAttacked(b, chess.MustLocation(x, rank), enemy) {
			return Move{}, false
		}
		if x == kingTo {
			break
		}
	}

	m := newMove(b, kind, king, chess.MustLocation(kingTo, rank))
	m.Rook = rook
	m.RookTo = chess.MustLocation(rookTo, rank)
	return m, true
}
