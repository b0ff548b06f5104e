package output

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Report is the JSON representation of a game after a command.
type Report struct {
	Variant string   `json:"variant"`
	FEN     string   `json:"fen"`
	ToMove  string   `json:"to_move"`
	State   string   `json:"state"`
	Status  string   `json:"status"`
	Check   bool     `json:"check"`
	Ply     int      `json:"ply"`
	Move    string   `json:"move,omitempty"`
	SAN     string   `json:"san,omitempty"`
	Moves   []string `json:"moves,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// NewReport describes the current state of g.
func NewReport(g *game.Game) *Report {
	st := g.Status()
	return &Report{
		Variant: g.Variant().String(),
		FEN:     engine.BoardToFEN(g.Board()),
		ToMove:  st.ToMove.String(),
		State:   st.State.String(),
		Status:  st.String(),
		Check:   st.Checked(),
		Ply:     len(g.MoveLog()),
	}
}
