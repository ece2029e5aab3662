// Package render writes boards and game state as text, JSON or SVG.
package render

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Snapshot is the displayable state of a game.
type Snapshot struct {
	Board    *chess.Board
	Turn     chess.Colour
	Status   engine.Status
	Captured chess.CapturedPieces
	Plies    int
	LastMove *chess.MoveRecord

	// Selected is the square whose legal moves are listed in Moves.
	Selected *chess.Square
	Moves    []chess.LegalMove

	// Attackers are squares to flag, such as the pieces behind a rejected move.
	Attackers []chess.Square
}

// Capture takes a snapshot of the engine's current state.
func Capture(e *engine.Engine) Snapshot {
	s := Snapshot{
		Board:    e.Board(),
		Turn:     e.Turn(),
		Status:   e.Status(e.Turn()),
		Captured: e.CapturedPieces(),
		Plies:    e.Plies(),
	}
	if last, ok := e.LastMove(); ok {
		s.LastMove = &last
	}
	return s
}

// Select records the legal moves of the piece on sq.
func (s Snapshot) Select(e *engine.Engine, sq chess.Square) Snapshot {
	s.Selected = &sq
	s.Moves = e.GenerateLegalMoves(sq)
	return s
}

// Options returns the highlight options matching the snapshot.
func (s Snapshot) Options() Options {
	opts := Options{
		Attackers: s.Attackers,
		LastMove:  s.LastMove,
	}
	for _, m := range s.Moves {
		opts.Highlights = append(opts.Highlights, m.To)
	}
	return opts
}

// Options marks squares on a rendered board.
type Options struct {
	Highlights []chess.Square    // Legal destinations
	Attackers  []chess.Square    // Pieces attacking the king
	LastMove   *chess.MoveRecord // Most recent move
}

// mark classifies a square for rendering.
type mark int

const (
	markNone mark = iota
	markLastMove
	markHighlight
	markAttacker
)

// marks indexes every marked square. Attackers win over highlights, which
// win over the last move.
func (o Options) marks() map[chess.Square]mark {
	m := make(map[chess.Square]mark)
	if o.LastMove != nil {
		m[o.LastMove.From] = markLastMove
		m[o.LastMove.To] = markLastMove
	}
	for _, sq := range o.Highlights {
		m[sq] = markHighlight
	}
	for _, sq := range o.Attackers {
		m[sq] = markAttacker
	}
	return m
}

func (o Options) empty() bool {
	return len(o.Highlights) == 0 && len(o.Attackers) == 0 && o.LastMove == nil
}
