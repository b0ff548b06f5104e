package engine

import (
	"testing"
)

var benchFENs = map[string]string{
	"initial":  InitialFEN,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"endgame":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"random":   "nrbqkbrn/pppppppp/8/8/8/8/PPPPPPPP/NRBQKBRN w GBgb - 0 1",
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		board := MustBoardFromFEN(fen)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = LegalMoves(board)
			}
		})
	}
}

func BenchmarkExecute(b *testing.B) {
	for name, fen := range benchFENs {
		moves := LegalMoves(MustBoardFromFEN(fen))
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = moves[i%len(moves)].Execute()
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	for name, fen := range benchFENs {
		board := MustBoardFromFEN(fen)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = IsInCheck(board, board.ToMove())
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	b.Run("parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = NewBoardFromFEN(benchFENs["kiwipete"])
		}
	})
	b.Run("format", func(b *testing.B) {
		board := MustBoardFromFEN(benchFENs["kiwipete"])
		for i := 0; i < b.N; i++ {
			_ = BoardToFEN(board)
		}
	})
}
