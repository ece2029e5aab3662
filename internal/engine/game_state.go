package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status is the state of the game for the side about to move.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheck
	StatusCheckmate
	StatusDraw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusDraw:
		return "draw"
	}
	return "ongoing"
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s == StatusCheckmate || s == StatusDraw
}

// Status evaluates the position for the given colour: a draw when only the
// kings remain, otherwise checkmate, check or ongoing. Stalemate is not
// detected and reports as ongoing.
func (e *Engine) Status(colour chess.Colour) Status {
	if e.OnlyKingsRemain() {
		return StatusDraw
	}
	if !e.IsKingInCheck(colour) {
		return StatusOngoing
	}
	if !e.HasLegalMoves(colour) {
		return StatusCheckmate
	}
	return StatusCheck
}

// OnlyKingsRemain returns true if every occupied square holds a king and
// exactly two pieces are on the board.
func (e *Engine) OnlyKingsRemain() bool {
	occupied := e.board.Occupied()
	if len(occupied) != 2 {
		return false
	}
	for _, sq := range occupied {
		if e.board.Get(sq).Kind != chess.King {
			return false
		}
	}
	return true
}

// Winner returns the winning colour when the given colour is checkmated.
func (e *Engine) Winner(colour chess.Colour) (chess.Colour, bool) {
	if e.IsCheckmate(colour) {
		return colour.Opposite(), true
	}
	return chess.White, false
}
