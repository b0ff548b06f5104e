package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Execute applies the move and returns the resulting board. The source board
// is left untouched. Executing the null move, or a move without a source
// board, panics with ErrInvariantViolation.
func (m Move) Execute() *chess.Board {
	if m.IsNull() {
		errors.Invariant("execute null move")
	}
	if m.board == nil {
		errors.Invariant("execute %s without a board", m)
	}

	b := m.board
	mover := m.Piece.Alliance
	bd := chess.NewBuilderFrom(b)

	b.ForEachPiece(mover, func(p chess.Piece) {
		if p == m.Piece || (m.IsCastle() && p == m.Rook) {
			return
		}
		bd.SetPiece(p)
	})
	b.ForEachPiece(mover.Opponent(), func(p chess.Piece) {
		if m.IsCapture() && p == m.Captured {
			return
		}
		bd.SetPiece(p)
	})

	switch m.Kind {
	case PawnPromotion:
		bd.SetPiece(chess.NewPiece(m.Promotion, m.To, mover, true))
	case KingsideCastle, QueensideCastle:
		bd.SetPiece(m.Piece.MovedTo(m.To))
		bd.SetPiece(m.Rook.MovedTo(m.RookTo))
	case PawnJump:
		moved := m.Piece.MovedTo(m.To)
		bd.SetPiece(moved)
		bd.SetEnPassantPawn(moved)
	default:
		bd.SetPiece(m.Piece.MovedTo(m.To))
	}

	bd.SetMoveMaker(mover.Opponent())
	return bd.MustBuild()
}
