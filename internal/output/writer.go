package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for reporting a game to the user.
// Different implementations handle different output formats.
type GameWriter interface {
	// WritePosition writes the current board and status.
	WritePosition(g *game.Game) error

	// WriteMove reports a move that was just played.
	WriteMove(g *game.Game, m engine.Move) error

	// WriteLegalMoves lists the legal moves of the side to move.
	WriteLegalMoves(g *game.Game) error

	// WriteMoveLog writes the moves played so far.
	WriteMoveLog(g *game.Game) error

	// WriteFEN writes the current position as FEN.
	WriteFEN(g *game.Game) error

	// WriteError reports a rejected command.
	WriteError(g *game.Game, err error) error
}

// NewGameWriter returns the writer selected by cfg.Output.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes human-readable text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the board, if enabled, and the status line.
func (tw *TextWriter) WritePosition(g *game.Game) error {
	if tw.cfg.Output.ShowBoard {
		if _, err := fmt.Fprint(tw.w, g.Board()); err != nil {
			return err
		}
	}
	if tw.cfg.Verbosity > 0 {
		_, err := fmt.Fprintln(tw.w, g.Status())
		return err
	}
	return nil
}

// WriteMove writes the board, if enabled, and "<san>: <status>".
func (tw *TextWriter) WriteMove(g *game.Game, m engine.Move) error {
	if tw.cfg.Output.ShowBoard {
		if _, err := fmt.Fprint(tw.w, g.Board()); err != nil {
			return err
		}
	}
	if tw.cfg.Verbosity > 0 {
		_, err := fmt.Fprintf(tw.w, "%s: %s\n", engine.SAN(m), g.Status())
		return err
	}
	return nil
}

// WriteLegalMoves writes the sorted coordinate moves on one line.
func (tw *TextWriter) WriteLegalMoves(g *game.Game) error {
	_, err := fmt.Fprintln(tw.w, strings.Join(engine.MoveStrings(g.LegalMoves()), " "))
	return err
}

// WriteMoveLog writes the numbered move log wrapped at the configured line
// length.
func (tw *TextWriter) WriteMoveLog(g *game.Game) error {
	ow := NewOutputWriter(tw.w, tw.cfg.Output.LineLength)
	for _, tok := range MoveText(g.MoveLog(), tw.cfg.Output.SANLog) {
		ow.Write(tok)
	}
	ow.NewLine()
	return nil
}

// WriteFEN writes the position as FEN.
func (tw *TextWriter) WriteFEN(g *game.Game) error {
	_, err := fmt.Fprintln(tw.w, engine.BoardToFEN(g.Board()))
	return err
}

// WriteError writes "error: <err>".
func (tw *TextWriter) WriteError(_ *game.Game, err error) error {
	_, werr := fmt.Fprintf(tw.w, "error: %v\n", err)
	return werr
}

// JSONWriter writes one JSON object per report, one per line.
type JSONWriter struct {
	enc *json.Encoder
	cfg *config.Config
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w), cfg: cfg}
}

// WritePosition writes the position report.
func (jw *JSONWriter) WritePosition(g *game.Game) error {
	return jw.enc.Encode(NewReport(g))
}

// WriteMove writes the position report with the move that led to it.
func (jw *JSONWriter) WriteMove(g *game.Game, m engine.Move) error {
	rep := NewReport(g)
	rep.Move = m.String()
	rep.SAN = engine.SAN(m)
	return jw.enc.Encode(rep)
}

// WriteLegalMoves writes the position report with the legal moves.
func (jw *JSONWriter) WriteLegalMoves(g *game.Game) error {
	rep := NewReport(g)
	rep.Moves = engine.MoveStrings(g.LegalMoves())
	return jw.enc.Encode(rep)
}

// WriteMoveLog writes the position report with the moves played.
func (jw *JSONWriter) WriteMoveLog(g *game.Game) error {
	rep := NewReport(g)
	rep.Moves = make([]string, 0, len(g.MoveLog()))
	for _, m := range g.MoveLog() {
		if jw.cfg.Output.SANLog {
			rep.Moves = append(rep.Moves, engine.SAN(m))
		} else {
			rep.Moves = append(rep.Moves, m.String())
		}
	}
	return jw.enc.Encode(rep)
}

// WriteFEN writes the position report, which carries the FEN.
func (jw *JSONWriter) WriteFEN(g *game.Game) error {
	return jw.WritePosition(g)
}

// WriteError writes the position report with the error text.
func (jw *JSONWriter) WriteError(g *game.Game, err error) error {
	rep := NewReport(g)
	rep.Error = err.Error()
	return jw.enc.Encode(rep)
}
