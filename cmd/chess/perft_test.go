package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestRunPerft(t *testing.T) {
	tests := []struct {
		name   string
		divide bool
		cache  int
	}{
		{"plain", false, 0},
		{"no cache", false, -1},
		{"divided", true, 0},
		{"bounded cache", true, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := config.NewConfigBuilder().WithOutput(&out).WithPerft(3, tt.divide).Build()
			cfg.Perft.CacheSize = tt.cache

			err := runPerft(context.Background(), cfg, engine.NewStandardBoard())
			testutil.AssertNoError(t, err)

			if !strings.HasSuffix(out.String(), "Nodes searched: 8902\n") {
				t.Errorf("output = %q", out.String())
			}
			if tt.divide && !strings.Contains(out.String(), "e2e4: 600\n") {
				t.Errorf("divided output missing e2e4:\n%s", out.String())
			}
		})
	}
}

func TestRunPerftJSON(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithPerft(2, true).WithJSON(true).Build()

	testutil.AssertNoError(t, runPerft(context.Background(), cfg, engine.NewStandardBoard()))

	var res perft.Result
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &res))
	testutil.AssertEqual(t, res.Depth, 2)
	testutil.AssertEqual(t, res.Nodes, uint64(400))
	testutil.AssertEqual(t, len(res.Divisions), 20)
}

func TestNewPerftCache(t *testing.T) {
	cfg := config.NewConfig()
	if newPerftCache(cfg) == nil {
		t.Error("default config should cache")
	}
	cfg.Perft.CacheSize = -1
	if newPerftCache(cfg) != nil {
		t.Error("cache size -1 should disable caching")
	}
}

func TestRunSuiteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.epd")
	content := `# published counts
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 20 ;D2 400
8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1 ;D1 14 ;D2 191
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithSuite(path).Build()
	testutil.AssertNoError(t, runSuiteFile(context.Background(), cfg))
	testutil.AssertEqual(t, out.String(), "ok    line 2 depth 2: 400\nok    line 3 depth 2: 191\n")

	cfg.Perft.SuiteFile = filepath.Join(dir, "missing.epd")
	if err := runSuiteFile(context.Background(), cfg); err == nil {
		t.Error("missing suite file should fail")
	}
}

func TestRunSuiteFailure(t *testing.T) {
	cases, err := perft.ParseSuite(strings.NewReader("4k3/8/8/8/8/8/8/4K3 w - - 0 1 ;D1 6\n"))
	testutil.AssertNoError(t, err)

	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithJSON(true).Build()
	err = runSuite(context.Background(), cfg, cases)
	if err == nil {
		t.Fatal("wrong count should fail the suite")
	}

	var reps []suiteReport
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &reps))
	testutil.AssertEqual(t, len(reps), 1)
	testutil.AssertFalse(t, reps[0].Passed)
	testutil.AssertEqual(t, reps[0].Nodes, uint64(5))
	testutil.AssertEqual(t, reps[0].Expected, uint64(6))
}
