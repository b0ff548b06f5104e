package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// session drives one game from line-oriented commands.
type session struct {
	g   *game.Game
	out output.GameWriter
}

func newSession(cfg *config.Config, g *game.Game) *session {
	return &session{g: g, out: output.NewGameWriter(cfg.OutputFile, cfg)}
}

// run reads commands from r until "quit" or end of input.
func (s *session) run(r io.Reader) error {
	if err := s.out.WritePosition(s.g); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		quit, err := s.handle(fields)
		if err != nil || quit {
			return err
		}
	}
	return scanner.Err()
}

// handle executes one command and reports whether the session should end.
// Errors are output failures; rejected commands are reported to the user.
func (s *session) handle(fields []string) (bool, error) {
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "moves":
		return false, s.out.WriteLegalMoves(s.g)
	case "log":
		return false, s.out.WriteMoveLog(s.g)
	case "board":
		return false, s.out.WritePosition(s.g)
	case "fen":
		return false, s.out.WriteFEN(s.g)
	case "new":
		return false, s.newGame(fields[1:])
	}
	return false, s.play(fields[0])
}

func (s *session) newGame(args []string) error {
	variant := s.g.Variant()
	if len(args) > 0 {
		v, err := config.ParseVariant(args[0])
		if err != nil {
			return s.out.WriteError(s.g, err)
		}
		variant = v
	}
	s.g.Reset(variant)
	return s.out.WritePosition(s.g)
}

func (s *session) play(text string) error {
	src, dst, promo, err := parseCoordinateMove(text)
	if err != nil {
		return s.out.WriteError(s.g, err)
	}
	m, err := s.g.Play(src, dst, promo)
	if err != nil {
		return s.out.WriteError(s.g, err)
	}
	return s.out.WriteMove(s.g, m)
}

// parseCoordinateMove parses "e2e4" or "e7e8q".
func parseCoordinateMove(text string) (src, dst chess.Location, promo chess.PieceKind, err error) {
	text = strings.ToLower(text)
	if len(text) != 4 && len(text) != 5 {
		return src, dst, promo, fmt.Errorf("move %q: want e2e4 or e7e8q: %w", text, errors.ErrIllegalMove)
	}
	if src, err = chess.ParseLocation(text[:2]); err != nil {
		return src, dst, promo, errors.Wrapf(err, "move %q", text)
	}
	if dst, err = chess.ParseLocation(text[2:4]); err != nil {
		return src, dst, promo, errors.Wrapf(err, "move %q", text)
	}
	if len(text) == 5 {
		promo = chess.KindFromLetter(text[4])
		if !promo.IsPromotionKind() {
			return src, dst, promo, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrIllegalMove)
		}
	}
	return src, dst, promo, nil
}
