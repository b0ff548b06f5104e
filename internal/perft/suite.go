package perft

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Case is one line of a perft suite: a position and its published node
// counts by depth.
type Case struct {
	Line   int            `json:"line"`
	FEN    string         `json:"fen"`
	Counts map[int]uint64 `json:"counts"`
}

// Depths returns the depths with a known count, shallowest first.
func (c Case) Depths() []int {
	d := maps.Keys(c.Counts)
	slices.Sort(d)
	return d
}

// ParseSuite reads perft suite lines of the form
//
//	<fen> ;D1 20 ;D2 400 ;D3 8902
//
// Blank lines and lines starting with '#' are skipped.
func ParseSuite(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseCase(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		c.Line = lineNum
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseCase(line string) (Case, error) {
	parts := strings.Split(line, ";")
	c := Case{FEN: strings.TrimSpace(parts[0]), Counts: make(map[int]uint64)}
	if c.FEN == "" {
		return Case{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "suite", Expected: "FEN", Got: line}
	}
	for _, p := range parts[1:] {
		f := strings.Fields(p)
		if len(f) != 2 || len(f[0]) < 2 || (f[0][0] != 'D' && f[0][0] != 'd') {
			return Case{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "suite", Expected: "Dn count", Got: strings.TrimSpace(p)}
		}
		depth, err := strconv.Atoi(f[0][1:])
		if err != nil || depth < 1 {
			return Case{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "suite", Expected: "depth", Got: f[0]}
		}
		nodes, err := strconv.ParseUint(f[1], 10, 64)
		if err != nil {
			return Case{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "suite", Expected: "node count", Got: f[1]}
		}
		c.Counts[depth] = nodes
	}
	if len(c.Counts) == 0 {
		return Case{}, fmt.Errorf("no counts for %q: %w", c.FEN, errors.ErrInvalidFEN)
	}
	return c, nil
}
