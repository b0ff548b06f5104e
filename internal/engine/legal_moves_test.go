package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// testFENs covers openings, castling, en passant, promotions and pins.
var testFENs = []string{
	InitialFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1",
	"1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
	"4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
	"nrbqkbrn/pppppppp/8/8/8/8/PPPPPPPP/NRBQKBRN w GBgb - 0 1",
}

func legalStrings(b *chess.Board) []string {
	return MoveStrings(LegalMoves(b))
}

func TestLegalMovesInitialPosition(t *testing.T) {
	moves := LegalMoves(NewStandardBoard())
	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertTrue(t, HasLegalMoves(NewStandardBoard()))
}

func TestLegalMovesAreDeterministic(t *testing.T) {
	for _, fen := range testFENs {
		b := MustBoardFromFEN(fen)
		first, second := LegalMoves(b), LegalMoves(b)

		var a, c []string
		for i := range first {
			a = append(a, first[i].String())
		}
		for i := range second {
			c = append(c, second[i].String())
		}
		testutil.AssertEqual(t, c, a, fen)
	}
}

func TestNoMoveOntoOwnPiece(t *testing.T) {
	for _, fen := range testFENs {
		b := MustBoardFromFEN(fen)
		for _, a := range []chess.Alliance{chess.White, chess.Black} {
			for _, m := range PseudoLegalMovesFor(b, a) {
				if m.IsCastle() {
					continue
				}
				if p, ok := b.PieceAt(m.To); ok && p.Alliance == a {
					t.Errorf("%s: %s lands on own %s", fen, m, p)
				}
			}
		}
	}
}

func TestKingSafetySoundness(t *testing.T) {
	for _, fen := range testFENs {
		b := MustBoardFromFEN(fen)
		mover := b.ToMove()
		for _, m := range LegalMoves(b) {
			if IsInCheck(m.Execute(), mover) {
				t.Errorf("%s: legal move %s leaves king in check", fen, m)
			}
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b := MustBoardFromFEN("4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	for _, m := range LegalMoves(b) {
		if m.Piece.Kind == chess.Knight {
			t.Errorf("pinned knight move %s generated", m)
		}
	}
}

func TestPromotionYieldsFourMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "push",
			fen:  "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			want: []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r"},
		},
		{
			name: "push and capture",
			fen:  "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			want: []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r", "a7b8b", "a7b8n", "a7b8q", "a7b8r"},
		},
		{
			name: "black",
			fen:  "4k3/8/8/8/8/8/7p/K7 b - - 0 1",
			want: []string{"h2h1b", "h2h1n", "h2h1q", "h2h1r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustBoardFromFEN(tt.fen)
			var got []string
			for _, m := range LegalMoves(b) {
				if m.Piece.Kind == chess.Pawn {
					testutil.AssertEqual(t, m.Kind, PawnPromotion, m.String())
					got = append(got, m.String())
				}
			}
			testutil.AssertSameElements(t, got, tt.want)
		})
	}
}

func TestPawnJumpRequiresBothSquaresEmpty(t *testing.T) {
	b := MustBoardFromFEN("4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	for _, m := range LegalMoves(b) {
		if m.Piece.Kind == chess.Pawn && m.To.Y() != 2 {
			t.Errorf("unexpected pawn move %s", m)
		}
	}

	b = MustBoardFromFEN("4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1")
	moves := legalStrings(b)
	testutil.AssertTrue(t, slices.Contains(moves, "e2e3"), "single push")
	testutil.AssertFalse(t, slices.Contains(moves, "e2e4"), "jump onto occupied square")
}

func TestEnPassantExpiresAfterOneMove(t *testing.T) {
	b := MustBoardFromFEN("4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")

	b = play(t, b, "d2d4")
	testutil.AssertTrue(t, slices.Contains(legalStrings(b), "e4d3"), "en passant available right after the jump")

	b = play(t, b, "e8e7")
	b = play(t, b, "e1f1")

	_, ok := b.EnPassantPawn()
	testutil.AssertFalse(t, ok, "en passant pawn cleared")
	testutil.AssertFalse(t, slices.Contains(legalStrings(b), "e4d3"), "en passant expired")
}

func TestEnPassantRequiresAdjacentPawn(t *testing.T) {
	// The jumped pawn on a4 is not adjacent to the pawn on c4.
	b := MustBoardFromFEN("4k3/8/8/8/P1p5/8/8/4K3 b - a3 0 1")
	for _, m := range LegalMoves(b) {
		if m.Kind == EnPassantCapture {
			t.Errorf("unexpected en passant %s", m)
		}
	}
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		want    []string
		notWant []string
	}{
		{
			name: "both sides available",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			want: []string{"e1g1", "e1c1"},
		},
		{
			name:    "king moved",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1",
			notWant: []string{"e1g1", "e1c1"},
		},
		{
			name:    "kingside rook moved",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1",
			want:    []string{"e1c1"},
			notWant: []string{"e1g1"},
		},
		{
			name:    "transit square attacked",
			fen:     "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1",
			want:    []string{"e1c1"},
			notWant: []string{"e1g1"},
		},
		{
			name:    "king in check",
			fen:     "r3k3/8/8/8/4r3/8/8/R3K2R w KQq - 0 1",
			notWant: []string{"e1g1", "e1c1"},
		},
		{
			name:    "path blocked",
			fen:     "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			want:    []string{"e1g1"},
			notWant: []string{"e1c1"},
		},
		{
			name: "rook crosses attacked square",
			fen:  "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			want: []string{"e1c1"},
		},
		{
			name:    "destination attacked",
			fen:     "2r1k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			notWant: []string{"e1c1"},
		},
		{
			name: "random back rank",
			fen:  "nrbqkbrn/pppppppp/8/8/8/8/PPPPPPPP/NRBQKBRN w GBgb - 0 1",
			notWant: []string{
				"e1g1", "e1b1",
			},
		},
		{
			name: "random back rank open",
			fen:  "4k3/8/8/8/8/8/8/1R2K1R1 w GB - 0 1",
			want: []string{"e1g1", "e1b1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := legalStrings(MustBoardFromFEN(tt.fen))
			for _, w := range tt.want {
				testutil.AssertTrue(t, slices.Contains(moves, w), "%s missing from %v", w, moves)
			}
			for _, nw := range tt.notWant {
				testutil.AssertFalse(t, slices.Contains(moves, nw), "%s present in %v", nw, moves)
			}
		})
	}
}

func TestRandomCastleTargets(t *testing.T) {
	b := MustBoardFromFEN("4k3/8/8/8/8/8/8/1R2K1R1 w GB - 0 1")

	var castles []Move
	for _, m := range LegalMoves(b) {
		if m.IsCastle() {
			castles = append(castles, m)
		}
	}
	testutil.AssertEqual(t, len(castles), 2)
	for _, m := range castles {
		switch m.Kind {
		case KingsideCastle:
			testutil.AssertEqual(t, m.To.String(), "g1")
			testutil.AssertEqual(t, m.RookTo.String(), "f1")
		case QueensideCastle:
			testutil.AssertEqual(t, m.To.String(), "c1")
			testutil.AssertEqual(t, m.RookTo.String(), "d1")
		}
	}
}

func TestFindMove(t *testing.T) {
	b := MustBoardFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	a7, a8 := chess.MustParseLocation("a7"), chess.MustParseLocation("a8")

	m, ok := FindMove(b, a7, a8, chess.Rook)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Promotion, chess.Rook)

	_, ok = FindMove(b, a7, a8, chess.NoPiece)
	testutil.AssertFalse(t, ok, "promotion without a kind")

	_, ok = FindMove(b, chess.MustParseLocation("e1"), chess.MustParseLocation("e3"), chess.NoPiece)
	testutil.AssertFalse(t, ok, "king two squares")
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		want      Status
		wantMoves int
	}{
		{"normal", InitialFEN, Normal, 20},
		{"check", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", Check, 4},
		{"back-rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate, 0},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustBoardFromFEN(tt.fen)
			p := CurrentPlayer(b)

			testutil.AssertEqual(t, p.Status(), tt.want)
			testutil.AssertEqual(t, len(p.LegalMoves()), tt.wantMoves)
			testutil.AssertEqual(t, p.Alliance(), b.ToMove())
			testutil.AssertEqual(t, IsCheckmate(b), tt.want == Checkmate)
			testutil.AssertEqual(t, IsStalemate(b), tt.want == Stalemate)
		})
	}
}

func TestBackRankMateByMove(t *testing.T) {
	b := MustBoardFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	after := play(t, b, "a1a8")

	p := CurrentPlayer(after)
	testutil.AssertTrue(t, p.IsInCheckmate())
	testutil.AssertEqual(t, len(p.LegalMoves()), 0)
}

func TestPlayerOpponent(t *testing.T) {
	b := NewStandardBoard()
	white := CurrentPlayer(b)
	black := white.Opponent()

	testutil.AssertEqual(t, black.Alliance(), chess.Black)
	testutil.AssertEqual(t, len(black.LegalMoves()), 20, "black replies counted as if to move")
	testutil.AssertEqual(t, len(black.ActivePieces()), 16)
	testutil.AssertTrue(t, black.Board() == b, "opponent view shares the board")
	testutil.AssertEqual(t, black.Opponent().Alliance(), chess.White)
}

func TestPlayerAttackedSquares(t *testing.T) {
	white := CurrentPlayer(NewStandardBoard())
	attacked := white.AttackedSquares()

	// Black pawns cover the whole sixth rank; knights add nothing new and
	// everything else is blocked by its own side.
	testutil.AssertEqual(t, len(attacked), 8)
	for _, file := range "abcdefgh" {
		sq := string(file) + "6"
		testutil.AssertTrue(t, attacked[chess.MustParseLocation(sq)], sq)
	}
	testutil.AssertFalse(t, attacked[chess.MustParseLocation("e4")])

	b := MustBoardFromFEN("4k3/8/8/8/8/8/8/4RK2 b - - 0 1")
	black := CurrentPlayer(b)
	testutil.AssertTrue(t, black.IsInCheck())
	testutil.AssertTrue(t, black.AttackedSquares()[chess.MustParseLocation("e8")])
	testutil.AssertFalse(t, black.AttackedSquares()[chess.MustParseLocation("d8")])
}

func TestPlayerLegalMovesIsCopy(t *testing.T) {
	p := CurrentPlayer(NewStandardBoard())
	moves := p.LegalMoves()
	moves[0] = Null()
	testutil.AssertFalse(t, p.LegalMoves()[0].IsNull())
}

func TestIsInCheckWithoutKingPanics(t *testing.T) {
	b := chess.NewBuilder().
		SetPiece(chess.NewPiece(chess.King, chess.MustParseLocation("e1"), chess.White, false)).
		MustBuild()
	testutil.AssertPanicsWith(t, errors.ErrInvariantViolation, func() {
		IsInCheck(b, chess.Black)
	})
}
