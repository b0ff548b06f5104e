package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// runSession plays input through a fresh standard game and returns the
// output. The board display is off so that output is line oriented.
func runSession(t *testing.T, input string, modify func(*config.Config)) string {
	t.Helper()
	var out, logBuf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithLog(&logBuf).Build()
	cfg.Output.ShowBoard = false
	if modify != nil {
		modify(cfg)
	}
	s := newSession(cfg, game.New(chess.Standard, game.WithSeed(1)))
	testutil.AssertNoError(t, s.run(strings.NewReader(input)))
	return out.String()
}

func TestSessionPlay(t *testing.T) {
	out := runSession(t, "e2e4\ne7e5\n\nlog\nquit\nd2d4\n", nil)

	want := "White to move\n" +
		"e4: Black to move\n" +
		"e5: White to move\n" +
		"1. e4 e5\n"
	testutil.AssertEqual(t, out, want)
}

func TestSessionCoordinateLog(t *testing.T) {
	out := runSession(t, "g1f3\nlog\n", func(c *config.Config) { c.Output.SANLog = false })
	if !strings.HasSuffix(out, "1. g1f3\n") {
		t.Errorf("output = %q; want coordinate log", out)
	}
}

func TestSessionCheckmate(t *testing.T) {
	out := runSession(t, "f2f3\ne7e5\ng2g4\nd8h4\na2a3\n", nil)

	if !strings.Contains(out, "Qh4#: checkmate, Black wins\n") {
		t.Errorf("output missing mate:\n%s", out)
	}
	if !strings.Contains(out, "error: ply 5") {
		t.Errorf("move after mate accepted:\n%s", out)
	}
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"illegal", "e2e5", "error: ply 1, move \"e2e5\": illegal move"},
		{"garbled", "hello", "error: move \"hello\""},
		{"off board", "e2e9", "invalid coordinate"},
		{"bad promotion", "e7e8k", "bad promotion piece"},
		{"unknown variant", "new atomic", "unknown variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runSession(t, tt.input+"\n", nil)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q; want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestSessionCommands(t *testing.T) {
	out := runSession(t, "fen\nmoves\n", nil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	testutil.AssertEqual(t, len(lines), 3)
	testutil.AssertEqual(t, lines[1], "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertEqual(t, len(strings.Fields(lines[2])), 20)

	out = runSession(t, "e2e4\nnew\nfen\n", nil)
	if !strings.HasSuffix(out, "RNBQKBNR w KQkq - 0 1\n") {
		t.Errorf("new did not reset the game:\n%s", out)
	}

	out = runSession(t, "new random\nfen\n", nil)
	if strings.HasSuffix(out, "RNBQKBNR w KQkq - 0 1\n") {
		t.Errorf("new random kept the standard setup:\n%s", out)
	}
}

func TestSessionJSON(t *testing.T) {
	out := runSession(t, "e2e4\ne2e4\n", func(c *config.Config) { c.Output.JSONFormat = true })

	dec := json.NewDecoder(strings.NewReader(out))
	var reps []output.Report
	for dec.More() {
		var rep output.Report
		testutil.AssertNoError(t, dec.Decode(&rep))
		reps = append(reps, rep)
	}

	testutil.AssertEqual(t, len(reps), 3)
	testutil.AssertEqual(t, reps[0].Status, "White to move")
	testutil.AssertEqual(t, reps[1].Move, "e2e4")
	testutil.AssertEqual(t, reps[1].SAN, "e4")
	testutil.AssertEqual(t, reps[1].FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if reps[2].Error == "" {
		t.Error("second e2e4 should report an error")
	}
}

func TestParseCoordinateMove(t *testing.T) {
	src, dst, promo, err := parseCoordinateMove("E7E8Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, src.String()+dst.String(), "e7e8")
	testutil.AssertEqual(t, promo, chess.Queen)

	_, _, _, err = parseCoordinateMove("a1")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	_, _, _, err = parseCoordinateMove("z1a1")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidCoordinate)
}
