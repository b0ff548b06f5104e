package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Indexes into per-side castling tables.
const (
	kingside  = 0
	queenside = 1
)

// fenPosition collects the fields of a FEN string before the board is built.
type fenPosition struct {
	squares      [chess.NumSquares]chess.Piece
	toMove       chess.Alliance
	variant      chess.Variant
	rookFiles    [2]int
	rookFileSet  [2]bool
	rights       [2][2]bool // [alliance][kingside/queenside]
	enPassant    chess.Location
	hasEnPassant bool
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement field
// is required; the half-move clock and move number are accepted but ignored.
//
// Moved flags are derived from the position: a king is unmoved iff its side
// has a castling right, a rook iff the right for its file is present, and a
// pawn iff it stands on its pawn rank. Shredder file letters in the castling
// field (e.g. "HAha") select the random back-rank variant and its rook files.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "piece placement"}
	}

	p := &fenPosition{
		toMove:    chess.White,
		variant:   chess.Standard,
		rookFiles: [2]int{chess.StandardKingsideRookFile, chess.StandardQueensideRookFile},
	}

	if err := p.parsePlacement(parts[0]); err != nil {
		return nil, err
	}
	if len(parts) > 1 {
		if err := p.parseSideToMove(parts[1]); err != nil {
			return nil, err
		}
	}
	if len(parts) > 2 {
		if err := p.parseCastlingRights(parts[2]); err != nil {
			return nil, err
		}
	}
	if len(parts) > 3 {
		if err := p.parseEnPassant(parts[3]); err != nil {
			return nil, err
		}
	}

	return p.build()
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
// Intended for tests and fixed positions.
func MustBoardFromFEN(fen string) *chess.Board {
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePlacement parses the piece placement field, rank 8 first.
func (p *fenPosition) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "8 ranks", Got: field}
	}

	var kings [2]int
	for i, row := range ranks {
		y := chess.BoardSize - 1 - i
		x := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoPiece {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "piece letter or digit", Got: string(c)}
			}
			if x >= chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "8 files per rank", Got: row}
			}
			alliance := chess.White
			if c >= 'a' && c <= 'z' {
				alliance = chess.Black
			}
			if kind == chess.King {
				kings[alliance]++
			}
			loc := chess.MustLocation(x, y)
			p.squares[loc.Index()] = chess.NewPiece(kind, loc, alliance, false)
			x++
		}
		if x != chess.BoardSize {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "8 files per rank", Got: row}
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "one king per side", Got: field}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func (p *fenPosition) parseSideToMove(field string) error {
	switch field {
	case "w":
		p.toMove = chess.White
	case "b":
		p.toMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move", Expected: "w or b", Got: field}
	}
	return nil
}

// parseCastlingRights parses KQkq letters and Shredder file letters.
func (p *fenPosition) parseCastlingRights(field string) error {
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		c := field[i]
		alliance := chess.Black
		lower := c
		if c >= 'A' && c <= 'Z' {
			alliance = chess.White
			lower = c + ('a' - 'A')
		}

		king := p.king(alliance)
		if king.Y() != alliance.BackRank() {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Expected: "king on its back rank", Got: field}
		}

		var side, file int
		switch {
		case lower == 'k':
			side, file = kingside, chess.StandardKingsideRookFile
		case lower == 'q':
			side, file = queenside, chess.StandardQueensideRookFile
		case lower >= 'a' && lower <= 'h':
			file = int(lower - 'a')
			if file == king.X() {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Expected: "rook file", Got: string(c)}
			}
			side = queenside
			if file > king.X() {
				side = kingside
			}
			p.variant = chess.RandomBackRank
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Expected: "KQkq or file letter", Got: string(c)}
		}

		if p.rookFileSet[side] && p.rookFiles[side] != file {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Expected: "same rook files for both sides", Got: field}
		}
		p.rookFiles[side] = file
		p.rookFileSet[side] = true
		p.rights[alliance][side] = true
	}
	return nil
}

// parseEnPassant parses the en passant target square and resolves it to the
// pawn that jumped over it.
func (p *fenPosition) parseEnPassant(field string) error {
	if field == "-" {
		return nil
	}
	target, err := chess.ParseLocation(field)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Expected: "square or -", Got: field}
	}

	jumper := p.toMove.Opponent()
	loc, ok := target.Offset(0, jumper.Direction())
	if !ok || loc.Y() != jumper.JumpRank() {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Expected: "square behind a jumped pawn", Got: field}
	}
	pawn := p.squares[loc.Index()]
	if pawn.Kind != chess.Pawn || pawn.Alliance != jumper {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Expected: "square behind a jumped pawn", Got: field}
	}
	p.enPassant = loc
	p.hasEnPassant = true
	return nil
}

func (p *fenPosition) king(a chess.Alliance) chess.Location {
	for _, pc := range p.squares {
		if pc.Kind == chess.King && pc.Alliance == a {
			return pc.Location
		}
	}
	return chess.Location{}
}

// moved derives a piece's moved flag from the parsed rights.
func (p *fenPosition) moved(pc chess.Piece) bool {
	a := pc.Alliance
	switch pc.Kind {
	case chess.Pawn:
		return pc.Location.Y() != a.PawnRank()
	case chess.King:
		return !p.rights[a][kingside] && !p.rights[a][queenside]
	case chess.Rook:
		if pc.Location.Y() != a.BackRank() {
			return true
		}
		for side := kingside; side <= queenside; side++ {
			if p.rights[a][side] && pc.Location.X() == p.rookFiles[side] {
				return false
			}
		}
		return true
	}
	return false
}

func (p *fenPosition) build() (*chess.Board, error) {
	bd := chess.NewBuilder().
		SetVariant(p.variant, p.rookFiles[kingside], p.rookFiles[queenside]).
		SetMoveMaker(p.toMove)
	for _, pc := range p.squares {
		if pc.IsZero() {
			continue
		}
		pc.Moved = p.moved(pc)
		bd.SetPiece(pc)
	}
	if p.hasEnPassant {
		bd.SetEnPassantPawn(p.squares[p.enPassant.Index()])
	}

	b, err := bd.Build()
	if err != nil {
		return nil, &errors.ParseError{Err: fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err), Field: "position"}
	}
	// The side that just moved can never have left its own king attacked.
	if k, ok := b.King(p.toMove.Opponent()); ok && IsSquareAttacked(b, k.Location, p.toMove) {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "position",
			Expected: p.toMove.Opponent().String() + " king not in check",
			Got:      "king attacked on " + k.Location.String(),
		}
	}
	return b, nil
}

// BoardToFEN converts a board to a FEN string. Clocks are not tracked and are
// always written as "0 1". Random back-rank boards use Shredder file letters
// for castling rights.
func BoardToFEN(b *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	writeSideToMove(&sb, b)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, b)
	sb.WriteByte(' ')
	writeEnPassant(&sb, b)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *chess.Board) {
	for y := chess.BoardSize - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			p, ok := b.PieceAt(chess.MustLocation(x, y))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, b *chess.Board) {
	if b.ToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes a right for every unmoved king whose unmoved
// rook still stands on the configured start file.
func writeCastlingRights(sb *strings.Builder, b *chess.Board) {
	hasCastling := false
	kingsideFile, queensideFile := b.RookFiles()

	for _, a := range [2]chess.Alliance{chess.White, chess.Black} {
		king, ok := b.King(a)
		if !ok || king.Moved || king.Location.Y() != a.BackRank() {
			continue
		}
		for side, file := range [2]int{kingsideFile, queensideFile} {
			rook, ok := b.PieceAt(chess.MustLocation(file, a.BackRank()))
			if !ok || rook.Kind != chess.Rook || rook.Alliance != a || rook.Moved {
				continue
			}
			if side == kingside && file < king.Location.X() || side == queenside && file > king.Location.X() {
				continue
			}
			sb.WriteByte(castlingLetter(b.Variant(), a, side, file))
			hasCastling = true
		}
	}

	if !hasCastling {
		sb.WriteByte('-')
	}
}

func castlingLetter(v chess.Variant, a chess.Alliance, side, file int) byte {
	var c byte
	switch {
	case v == chess.RandomBackRank:
		c = byte('a' + file)
	case side == kingside:
		c = 'k'
	default:
		c = 'q'
	}
	if a == chess.White {
		c -= 'a' - 'A'
	}
	return c
}

// writeEnPassant writes the square behind the en-passant pawn.
func writeEnPassant(sb *strings.Builder, b *chess.Board) {
	pawn, ok := b.EnPassantPawn()
	if !ok {
		sb.WriteByte('-')
		return
	}
	target, _ := pawn.Location.Offset(0, pawn.Alliance.OppositeDirection())
	sb.WriteString(target.String())
}
