package store

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Methods recorded with an outcome.
const (
	MethodCheckmate = "checkmate"
	MethodOnlyKings = "only kings"
)

// OutcomeOf describes a game whose side to move is in the given status.
func OutcomeOf(status engine.Status, toMove chess.Colour) Outcome {
	switch status {
	case engine.StatusCheckmate:
		if toMove == chess.White {
			return Outcome{Result: BlackWins, Method: MethodCheckmate}
		}
		return Outcome{Result: WhiteWins, Method: MethodCheckmate}
	case engine.StatusDraw:
		return Outcome{Result: DrawResult, Method: MethodOnlyKings}
	}
	return Outcome{Result: Unfinished}
}

// Finished reports whether the outcome ends the game.
func (o Outcome) Finished() bool {
	return o.Result != "" && o.Result != Unfinished
}

// Winner returns "white", "black", or "" for draws and unfinished games.
func (o Outcome) Winner() string {
	switch o.Result {
	case WhiteWins:
		return colourName(chess.White)
	case BlackWins:
		return colourName(chess.Black)
	}
	return ""
}

// MatchResultFor builds the history entry of a finished saved game.
func MatchResultFor(g SavedGame, plies int) MatchResult {
	return MatchResult{
		GameID: g.ID,
		Winner: g.Winner(),
		Method: g.Method,
		Plies:  plies,
	}
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
