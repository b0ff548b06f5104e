// Package engine provides chess move generation, move execution and the
// legality and status rules that sit on top of the chess board types.
package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveKind tags the variant of a Move.
type MoveKind int

const (
	NullMove         MoveKind = iota // Sentinel "no move"; executing it panics
	RegularMove                      // Non-pawn move onto an empty tile
	CapturingMove                    // Move capturing an enemy piece on its tile
	PawnPush                         // Single pawn step onto an empty tile
	PawnJump                         // Double pawn step from the pawn rank
	PawnPromotion                    // Pawn move onto the promotion rank, capturing or not
	EnPassantCapture                 // Diagonal pawn capture of a jumped pawn
	KingsideCastle                   // King and king-side rook
	QueensideCastle                  // King and queen-side rook
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{
		"NullMove", "RegularMove", "CapturingMove", "PawnPush", "PawnJump",
		"PawnPromotion", "EnPassantCapture", "KingsideCastle", "QueensideCastle",
	}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move describes a transition from one board to the next. It carries the
// board it was generated on; Execute never modifies that board.
type Move struct {
	Kind MoveKind

	// Piece is the moving piece as it stands on the source board.
	Piece chess.Piece
	// To is the destination of the moving piece.
	To chess.Location

	// Captured is the removed enemy piece, zero when nothing is captured.
	Captured chess.Piece
	// Promotion is the kind a promoting pawn becomes.
	Promotion chess.PieceKind
	// Rook and RookTo describe the castling rook.
	Rook   chess.Piece
	RookTo chess.Location

	board *chess.Board
}

// Null returns the null move.
func Null() Move {
	return Move{Kind: NullMove}
}

// Board returns the board the move was generated on.
func (m Move) Board() *chess.Board {
	return m.board
}

// From returns the source location of the moving piece.
func (m Move) From() chess.Location {
	return m.Piece.Location
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.Kind == NullMove
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsZero()
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == KingsideCastle || m.Kind == QueensideCastle
}

// IsPromotion reports whether a pawn is promoted.
func (m Move) IsPromotion() bool {
	return m.Kind == PawnPromotion
}

// Matches reports whether the move goes from src to dst with the given
// promotion kind. promo is ignored for non-promotions.
func (m Move) Matches(src, dst chess.Location, promo chess.PieceKind) bool {
	if m.IsNull() || m.From() != src || m.To != dst {
		return false
	}
	return !m.IsPromotion() || m.Promotion == promo
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
// Castling is written as the king's source and destination, except on random
// back-rank boards where the king's destination may be its own square and the
// rook's start square is written instead.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	if m.IsCastle() && m.board != nil && m.board.Variant() == chess.RandomBackRank {
		sb.WriteString(m.Rook.Location.String())
		return sb.String()
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

func newMove(b *chess.Board, kind MoveKind, p chess.Piece, to chess.Location) Move {
	return Move{Kind: kind, Piece: p, To: to, board: b}
}
