package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status is a player's situation on a board.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// Player is a read-only view of one side on one board. It is recomputed for
// every board and holds no state of its own.
type Player struct {
	board    *chess.Board
	alliance chess.Alliance
	legal    []Move
	inCheck  bool
}

// CurrentPlayer returns the player whose turn it is on b.
func CurrentPlayer(b *chess.Board) *Player {
	return newPlayer(b, b.ToMove())
}

// NewPlayer returns the view of side a on b. For the side not to move, the
// legal moves are those it would have if it were its turn, without any
// en-passant capture.
func NewPlayer(b *chess.Board, a chess.Alliance) *Player {
	if a == b.ToMove() {
		return newPlayer(b, a)
	}
	p := newPlayer(withMover(b, a), a)
	p.board = b
	return p
}

func newPlayer(b *chess.Board, a chess.Alliance) *Player {
	return &Player{
		board:    b,
		alliance: a,
		legal:    LegalMoves(b),
		inCheck:  IsInCheck(b, a),
	}
}

// withMover copies b with side a to move and no en-passant pawn.
func withMover(b *chess.Board, a chess.Alliance) *chess.Board {
	bd := chess.NewBuilderFrom(b)
	for _, side := range [2]chess.Alliance{chess.White, chess.Black} {
		b.ForEachPiece(side, func(p chess.Piece) {
			bd.SetPiece(p)
		})
	}
	return bd.SetMoveMaker(a).MustBuild()
}

// Alliance returns the side this player plays.
func (p *Player) Alliance() chess.Alliance {
	return p.alliance
}

// Board returns the board the view was computed on.
func (p *Player) Board() *chess.Board {
	return p.board
}

// Opponent returns the view of the other side on the same board.
func (p *Player) Opponent() *Player {
	return NewPlayer(p.board, p.alliance.Opponent())
}

// ActivePieces returns the player's pieces.
func (p *Player) ActivePieces() []chess.Piece {
	return p.board.ActivePieces(p.alliance)
}

// LegalMoves returns a copy of the player's legal moves.
func (p *Player) LegalMoves() []Move {
	moves := make([]Move, len(p.legal))
	copy(moves, p.legal)
	return moves
}

// IsInCheck reports whether the player's king is attacked.
func (p *Player) IsInCheck() bool {
	return p.inCheck
}

// AttackedSquares returns the squares the opponent attacks.
func (p *Player) AttackedSquares() map[chess.Location]bool {
	return AttackedSquares(p.board, p.alliance.Opponent())
}

// IsInCheckmate reports check with no legal move.
func (p *Player) IsInCheckmate() bool {
	return p.inCheck && len(p.legal) == 0
}

// IsInStalemate reports no check and no legal move.
func (p *Player) IsInStalemate() bool {
	return !p.inCheck && len(p.legal) == 0
}

// Status classifies the player's situation.
func (p *Player) Status() Status {
	switch {
	case p.IsInCheckmate():
		return Checkmate
	case p.IsInStalemate():
		return Stalemate
	case p.inCheck:
		return Check
	}
	return Normal
}
