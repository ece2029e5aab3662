package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

// JSONSnapshot is the JSON form of a Snapshot.
type JSONSnapshot struct {
	Board     [chess.BoardSize][chess.BoardSize]string `json:"board"` // piece codes, "" for empty
	Turn      string                                   `json:"turn"`
	Status    string                                   `json:"status"`
	Plies     int                                      `json:"plies"`
	Captured  JSONCaptured                             `json:"captured"`
	LastMove  *JSONMove                                `json:"lastMove,omitempty"`
	Selected  *chess.Square                            `json:"selected,omitempty"`
	Moves     []chess.LegalMove                        `json:"moves,omitempty"`
	Attackers []chess.Square                           `json:"attackers,omitempty"`
}

// JSONCaptured lists captured piece codes by the colour of the captured piece.
type JSONCaptured struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From      chess.Square `json:"from"`
	To        chess.Square `json:"to"`
	Piece     string       `json:"piece"`
	Captured  string       `json:"captured,omitempty"`
	Castling  bool         `json:"castling,omitempty"`
	EnPassant bool         `json:"enPassant,omitempty"`
	Promotion string       `json:"promotion,omitempty"`
}

// SnapshotToJSON converts a snapshot to its JSON form.
func SnapshotToJSON(s Snapshot) *JSONSnapshot {
	js := &JSONSnapshot{
		Turn:      colourName(s.Turn),
		Status:    s.Status.String(),
		Plies:     s.Plies,
		Selected:  s.Selected,
		Moves:     s.Moves,
		Attackers: s.Attackers,
		Captured: JSONCaptured{
			White: codes(s.Captured.White),
			Black: codes(s.Captured.Black),
		},
	}
	if s.Board != nil {
		for r := 0; r < chess.BoardSize; r++ {
			for c := 0; c < chess.BoardSize; c++ {
				if p := s.Board.Squares[r][c]; p != nil {
					js.Board[r][c] = p.Code()
				}
			}
		}
	}
	if s.LastMove != nil {
		js.LastMove = MoveToJSON(*s.LastMove)
	}
	return js
}

// MoveToJSON converts a history record to JSON format.
func MoveToJSON(rec chess.MoveRecord) *JSONMove {
	jm := &JSONMove{
		From:      rec.From,
		To:        rec.To,
		Piece:     rec.Moved.Code(),
		Castling:  rec.Special.Castling,
		EnPassant: rec.Special.EnPassant,
	}
	if rec.Captured != nil {
		jm.Captured = rec.Captured.Code()
	}
	if rec.Special.Promotion {
		jm.Promotion = strings.ToLower(rec.Special.PromotedTo.String())
	}
	return jm
}

// JSON writes the snapshot as an indented JSON document.
func JSON(w io.Writer, s Snapshot) error {
	return encode(w, SnapshotToJSON(s))
}

// JSONGames writes saved games as a JSON array.
func JSONGames(w io.Writer, games []store.SavedGame) error {
	if games == nil {
		games = []store.SavedGame{}
	}
	return encode(w, games)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func codes(pieces []chess.Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.Code()
	}
	return out
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
