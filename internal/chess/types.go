// Package chess provides core chess types: board coordinates, sides, pieces
// and the immutable Board with its Builder.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstFile = 'a'
	FirstRank = '1'
)

// Alliance represents one of the two sides.
type Alliance int

const (
	White Alliance = iota
	Black
)

// allianceInfo holds the fixed per-side attributes.
type allianceInfo struct {
	name          string
	direction     int
	backRank      int
	pawnRank      int
	jumpRank      int
	promotionRank int
}

var alliances = [2]allianceInfo{
	White: {name: "White", direction: 1, backRank: 0, pawnRank: 1, jumpRank: 3, promotionRank: 7},
	Black: {name: "Black", direction: -1, backRank: 7, pawnRank: 6, jumpRank: 4, promotionRank: 0},
}

// String returns the string representation of an alliance.
func (a Alliance) String() string {
	return alliances[a].name
}

// Opponent returns the other side.
func (a Alliance) Opponent() Alliance {
	if a == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (the pawn's forward y-step).
func (a Alliance) Direction() int {
	return alliances[a].direction
}

// OppositeDirection returns the forward direction of the opponent.
func (a Alliance) OppositeDirection() int {
	return -alliances[a].direction
}

// BackRank returns the y index of the side's back rank.
func (a Alliance) BackRank() int {
	return alliances[a].backRank
}

// PawnRank returns the y index pawns start on.
func (a Alliance) PawnRank() int {
	return alliances[a].pawnRank
}

// JumpRank returns the y index a pawn lands on after a double push.
func (a Alliance) JumpRank() int {
	return alliances[a].jumpRank
}

// IsPromotionRank reports whether a pawn of this side promotes on rank y.
func (a Alliance) IsPromotionRank(y int) bool {
	return alliances[a].promotionRank == y
}

// IsPromotionSquare reports whether a pawn of this side promotes on loc.
func (a Alliance) IsPromotionSquare(loc Location) bool {
	return a.IsPromotionRank(loc.Y())
}

// Variant selects the initial arrangement of pieces.
type Variant int

const (
	Standard       Variant = iota // Classical back rank
	RandomBackRank                // Shuffled back rank (Fischer random)
)

// String returns the string representation of a variant.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case RandomBackRank:
		return "random"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Location is a board coordinate. File x and rank y are both in [0,8);
// y = 0 is White's back rank. Only valid locations can be constructed.
type Location struct {
	x, y int8
}

// NewLocation returns the location (x, y) or ErrInvalidCoordinate.
func NewLocation(x, y int) (Location, error) {
	if !onBoard(x, y) {
		return Location{}, errors.Wrapf(errors.ErrInvalidCoordinate, "location (%d, %d)", x, y)
	}
	return Location{x: int8(x), y: int8(y)}, nil
}

// MustLocation is like NewLocation but panics on invalid input.
// Intended for constants and tests.
func MustLocation(x, y int) Location {
	loc, err := NewLocation(x, y)
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseLocation parses algebraic notation such as "e4".
func ParseLocation(s string) (Location, error) {
	if len(s) != 2 {
		return Location{}, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", s)
	}
	loc, err := NewLocation(int(s[0])-FirstFile, int(s[1])-FirstRank)
	if err != nil {
		return Location{}, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", s)
	}
	return loc, nil
}

// MustParseLocation is like ParseLocation but panics on invalid input.
func MustParseLocation(s string) Location {
	loc, err := ParseLocation(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// LocationFromIndex converts a square index in [0,64) to a location.
func LocationFromIndex(i int) Location {
	return MustLocation(i%BoardSize, i/BoardSize)
}

// X returns the file index, 0 = a.
func (l Location) X() int { return int(l.x) }

// Y returns the rank index, 0 = rank 1.
func (l Location) Y() int { return int(l.y) }

// Index returns the square index in [0,64), a1 = 0, h8 = 63.
func (l Location) Index() int {
	return int(l.y)*BoardSize + int(l.x)
}

// Offset returns the location shifted by (dx, dy). ok is false when the
// result would leave the board; no location is constructed in that case.
func (l Location) Offset(dx, dy int) (Location, bool) {
	x, y := int(l.x)+dx, int(l.y)+dy
	if !onBoard(x, y) {
		return Location{}, false
	}
	return Location{x: int8(x), y: int8(y)}, true
}

// Equal reports whether two locations are the same square.
func (l Location) Equal(o Location) bool {
	return l == o
}

// IsLight reports whether the square is a light square (h1 is light).
func (l Location) IsLight() bool {
	return (l.x+l.y)%2 == 1
}

// String returns the algebraic name, e.g. "e4".
func (l Location) String() string {
	return string([]byte{byte(FirstFile + l.x), byte(FirstRank + l.y)})
}

func onBoard(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Offset is a (file, rank) step used by move generation.
type Offset struct {
	DX, DY int
}
