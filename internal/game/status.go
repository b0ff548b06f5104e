package game

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// State is the coarse state of a game.
type State int

const (
	InProgress State = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Status describes the game from the point of view of the side to move.
type Status struct {
	State  State
	ToMove chess.Alliance
	check  bool
}

// Checked reports whether the side to move is in check. It is true for every
// checkmate.
func (s Status) Checked() bool {
	return s.check
}

// Over reports whether no further moves can be played.
func (s Status) Over() bool {
	return s.State != InProgress
}

// String returns a short human-readable summary, e.g. "White to move, check".
func (s Status) String() string {
	switch s.State {
	case Checkmate:
		return fmt.Sprintf("checkmate, %s wins", s.ToMove.Opponent())
	case Stalemate:
		return "stalemate"
	}
	if s.check {
		return fmt.Sprintf("%s to move, check", s.ToMove)
	}
	return fmt.Sprintf("%s to move", s.ToMove)
}

func statusOf(b *chess.Board) Status {
	p := engine.CurrentPlayer(b)
	st := Status{ToMove: p.Alliance(), check: p.IsInCheck()}
	switch p.Status() {
	case engine.Checkmate:
		st.State = Checkmate
	case engine.Stalemate:
		st.State = Stalemate
	}
	return st
}
