package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Standard back-rank rook files.
const (
	StandardKingsideRookFile  = 7
	StandardQueensideRookFile = 0
)

// Tile is a single square of a board: empty or occupied by a piece.
type Tile struct {
	Location Location
	Piece    Piece
}

// Occupied reports whether a piece stands on the tile.
func (t Tile) Occupied() bool {
	return !t.Piece.IsZero()
}

// Board is an immutable position snapshot. It is built by a Builder and is
// never modified afterwards, so it may be shared between goroutines.
type Board struct {
	// squares[i] holds the piece on LocationFromIndex(i); Kind NoPiece = empty.
	squares [NumSquares]Piece

	// Who has the next move.
	toMove Alliance

	// Location of the pawn that double-pushed on the previous move.
	enPassant    Location
	hasEnPassant bool

	variant Variant

	// Rook start files for the two castling options.
	// This accommodates the random back rank.
	kingsideRookFile  int
	queensideRookFile int

	// Active pieces per side in square-index order.
	active [2][]Piece
}

// Tile returns the tile at loc.
func (b *Board) Tile(loc Location) Tile {
	return Tile{Location: loc, Piece: b.squares[loc.Index()]}
}

// PieceAt returns the piece at loc, ok = false when the tile is empty.
func (b *Board) PieceAt(loc Location) (Piece, bool) {
	p := b.squares[loc.Index()]
	return p, !p.IsZero()
}

// IsEmpty reports whether no piece stands on loc.
func (b *Board) IsEmpty(loc Location) bool {
	return b.squares[loc.Index()].IsZero()
}

// ToMove returns the side to move.
func (b *Board) ToMove() Alliance {
	return b.toMove
}

// Variant returns the setup variant the board belongs to.
func (b *Board) Variant() Variant {
	return b.variant
}

// RookFiles returns the king-side and queen-side rook start files.
func (b *Board) RookFiles() (kingside, queenside int) {
	return b.kingsideRookFile, b.queensideRookFile
}

// EnPassantPawn returns the pawn that double-pushed on the previous move.
// The pawn is looked up on this board's own tiles.
func (b *Board) EnPassantPawn() (Piece, bool) {
	if !b.hasEnPassant {
		return Piece{}, false
	}
	return b.PieceAt(b.enPassant)
}

// ActivePieces returns a copy of the pieces of one side in square order.
func (b *Board) ActivePieces(a Alliance) []Piece {
	pieces := make([]Piece, len(b.active[a]))
	copy(pieces, b.active[a])
	return pieces
}

// ForEachPiece calls fn for every piece of a side in square order without
// copying the piece list.
func (b *Board) ForEachPiece(a Alliance, fn func(Piece)) {
	for _, p := range b.active[a] {
		fn(p)
	}
}

// King returns the king of a side, ok = false when there is none.
func (b *Board) King(a Alliance) (Piece, bool) {
	for _, p := range b.active[a] {
		if p.Kind == King {
			return p, true
		}
	}
	return Piece{}, false
}

// String renders the board as eight ranks of FEN letters, rank 8 first,
// with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		sb.WriteByte(byte(FirstRank + y))
		sb.WriteByte(' ')
		for x := 0; x < BoardSize; x++ {
			p := b.squares[y*BoardSize+x]
			if p.IsZero() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
			if x < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Builder accumulates pieces and state for a new Board. It is single-use:
// after Build every method fails with ErrBuilderSpent. A Builder must not be
// shared between goroutines.
type Builder struct {
	squares           [NumSquares]Piece
	toMove            Alliance
	enPassant         Location
	hasEnPassant      bool
	variant           Variant
	kingsideRookFile  int
	queensideRookFile int
	built             bool
}

// NewBuilder creates a builder for an empty standard board with White to move.
func NewBuilder() *Builder {
	return &Builder{
		toMove:            White,
		variant:           Standard,
		kingsideRookFile:  StandardKingsideRookFile,
		queensideRookFile: StandardQueensideRookFile,
	}
}

// NewBuilderFrom starts a builder carrying over the variant and rook files of
// an existing board, but no pieces, no mover and no en-passant pawn.
func NewBuilderFrom(b *Board) *Builder {
	return NewBuilder().SetVariant(b.variant, b.kingsideRookFile, b.queensideRookFile)
}

func (bd *Builder) checkUsable() {
	if bd.built {
		panic(errors.ErrBuilderSpent)
	}
}

// SetPiece places a piece on its location, replacing whatever stood there.
func (bd *Builder) SetPiece(p Piece) *Builder {
	bd.checkUsable()
	bd.squares[p.Location.Index()] = p
	return bd
}

// Clear empties a square.
func (bd *Builder) Clear(loc Location) *Builder {
	bd.checkUsable()
	bd.squares[loc.Index()] = Piece{}
	return bd
}

// SetMoveMaker sets the side to move.
func (bd *Builder) SetMoveMaker(a Alliance) *Builder {
	bd.checkUsable()
	bd.toMove = a
	return bd
}

// SetEnPassantPawn records the pawn that just double-pushed.
func (bd *Builder) SetEnPassantPawn(p Piece) *Builder {
	bd.checkUsable()
	bd.enPassant = p.Location
	bd.hasEnPassant = true
	return bd
}

// SetVariant sets the variant and the castling rook start files.
func (bd *Builder) SetVariant(v Variant, kingsideRookFile, queensideRookFile int) *Builder {
	bd.checkUsable()
	bd.variant = v
	bd.kingsideRookFile = kingsideRookFile
	bd.queensideRookFile = queensideRookFile
	return bd
}

// Build freezes the builder into a Board. It validates the en-passant pawn,
// the rook files and that no side has more than one king.
func (bd *Builder) Build() (*Board, error) {
	if bd.built {
		return nil, errors.ErrBuilderSpent
	}
	bd.built = true

	if bd.kingsideRookFile < 0 || bd.kingsideRookFile >= BoardSize ||
		bd.queensideRookFile < 0 || bd.queensideRookFile >= BoardSize ||
		bd.queensideRookFile >= bd.kingsideRookFile {
		return nil, errors.Wrapf(errors.ErrInvariantViolation,
			"rook files %d/%d", bd.kingsideRookFile, bd.queensideRookFile)
	}

	b := &Board{
		squares:           bd.squares,
		toMove:            bd.toMove,
		variant:           bd.variant,
		kingsideRookFile:  bd.kingsideRookFile,
		queensideRookFile: bd.queensideRookFile,
	}

	var kings [2]int
	for i := range b.squares {
		p := b.squares[i]
		if p.IsZero() {
			continue
		}
		if p.Location.Index() != i {
			return nil, errors.Wrapf(errors.ErrInvariantViolation,
				"%s stored on %s", p, LocationFromIndex(i))
		}
		if p.Kind == King {
			kings[p.Alliance]++
		}
		b.active[p.Alliance] = append(b.active[p.Alliance], p)
	}
	for a, n := range kings {
		if n > 1 {
			return nil, errors.Wrapf(errors.ErrInvariantViolation,
				"%d %s kings", n, Alliance(a))
		}
	}

	if bd.hasEnPassant {
		mover := bd.toMove.Opponent()
		p := b.squares[bd.enPassant.Index()]
		if p.Kind != Pawn || p.Alliance != mover || bd.enPassant.Y() != mover.JumpRank() {
			return nil, errors.Wrapf(errors.ErrInvariantViolation,
				"en-passant pawn on %s", bd.enPassant)
		}
		b.enPassant = bd.enPassant
		b.hasEnPassant = true
	}

	return b, nil
}

// MustBuild is like Build but panics on error. Move execution uses it: a
// failure there is a bug in move generation.
func (bd *Builder) MustBuild() *Board {
	b, err := bd.Build()
	if err != nil {
		panic(err)
	}
	return b
}
