package chess

import "unicode"

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty tile / no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) && k >= 0 {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) && k >= 0 {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
// It returns NoPiece for anything else.
func KindFromLetter(c byte) PieceKind {
	switch unicode.ToUpper(rune(c)) {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPiece
}

// IsSliding reports whether the kind moves along rays.
func (k PieceKind) IsSliding() bool {
	return k == Bishop || k == Rook || k == Queen
}

// PromotionKinds lists the promotion choices in generation order.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// IsPromotionKind reports whether a pawn may promote to k.
func (k PieceKind) IsPromotionKind() bool {
	for _, p := range PromotionKinds {
		if p == k {
			return true
		}
	}
	return false
}

var (
	diagonalOffsets = []Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	royalOffsets    = []Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightOffsets   = []Offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// Offsets returns the fixed direction offsets for a non-pawn kind. Sliders
// repeat each offset; knight and king apply it once. The returned slice is
// shared and must not be modified.
func (k PieceKind) Offsets() []Offset {
	switch k {
	case Knight:
		return knightOffsets
	case Bishop:
		return diagonalOffsets
	case Rook:
		return straightOffsets
	case Queen, King:
		return royalOffsets
	}
	return nil
}

// Piece is an immutable piece value. Two pieces are equal when kind,
// location, alliance and moved flag are equal.
type Piece struct {
	Kind     PieceKind
	Location Location
	Alliance Alliance
	Moved    bool
}

// NewPiece creates a piece value.
func NewPiece(kind PieceKind, loc Location, alliance Alliance, moved bool) Piece {
	return Piece{Kind: kind, Location: loc, Alliance: alliance, Moved: moved}
}

// IsZero reports whether p is the empty piece.
func (p Piece) IsZero() bool {
	return p.Kind == NoPiece
}

// MovedTo returns the piece relocated to loc with the moved flag set.
func (p Piece) MovedTo(loc Location) Piece {
	p.Location = loc
	p.Moved = true
	return p
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Alliance == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns e.g. "White Knight@g1".
func (p Piece) String() string {
	if p.IsZero() {
		return "None"
	}
	return p.Alliance.String() + " " + p.Kind.String() + "@" + p.Location.String()
}
