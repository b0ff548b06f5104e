// Package output formats game state for the command line, as plain text or
// as JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// MoveText returns the tokens of a numbered move log, e.g. "1." "e4" "e5"
// "2." "Nf3". A log that starts with a Black move opens with "1...".
// Moves are written in SAN when san is set, otherwise in coordinate notation.
func MoveText(moves []engine.Move, san bool) []string {
	tokens := make([]string, 0, len(moves)*3/2+1)
	number := 1
	for i, m := range moves {
		black := m.Piece.Alliance == chess.Black
		switch {
		case !black:
			tokens = append(tokens, fmt.Sprintf("%d.", number))
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...", number))
		}
		if san {
			tokens = append(tokens, engine.SAN(m))
		} else {
			tokens = append(tokens, m.String())
		}
		if black {
			number++
		}
	}
	return tokens
}
