package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SAN returns the move in standard algebraic notation, e.g. "Nbd2", "exd6",
// "e8=Q+", "O-O-O". The move must have been generated on a board.
func SAN(m Move) string {
	if m.IsNull() {
		return "--"
	}

	var sb strings.Builder
	switch {
	case m.Kind == KingsideCastle:
		sb.WriteString("O-O")
	case m.Kind == QueensideCastle:
		sb.WriteString("O-O-O")
	case m.Piece.Kind == chess.Pawn:
		if m.IsCapture() {
			sb.WriteByte(byte(chess.FirstFile + m.From().X()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(m.Piece.Kind.Letter())
		sb.WriteString(disambiguation(m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	after := m.Execute()
	if IsInCheck(after, after.ToMove()) {
		if HasLegalMoves(after) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// disambiguation returns the file, rank or square of the source needed to
// tell m apart from other legal moves of the same kind onto the same square.
func disambiguation(m Move) string {
	from := m.From()
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range LegalMoves(m.board) {
		if other.Piece.Kind != m.Piece.Kind || other.To != m.To || other.From() == from || other.IsCastle() {
			continue
		}
		ambiguous = true
		if other.From().X() == from.X() {
			sameFile = true
		}
		if other.From().Y() == from.Y() {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return from.String()[:1]
	case !sameRank:
		return from.String()[1:]
	}
	return from.String()
}
