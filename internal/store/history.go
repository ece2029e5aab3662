package store

import (
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MatchResult is one finished match.
type MatchResult struct {
	GameID     string    `json:"game_id,omitempty"`
	Winner     string    `json:"winner,omitempty"` // "white", "black" or empty for a draw
	Method     string    `json:"method"`
	Plies      int       `json:"plies"`
	FinishedAt time.Time `json:"finished_at"`
}

// Tally counts match results.
type Tally struct {
	White int `json:"white"`
	Black int `json:"black"`
	Draws int `json:"draws"`
}

// Total returns the number of counted matches.
func (t Tally) Total() int {
	return t.White + t.Black + t.Draws
}

// MatchHistory is the list of finished matches kept alongside the saved
// games in the same file.
type MatchHistory struct {
	s *Store
}

// History returns the store's match history.
func (s *Store) History() *MatchHistory {
	return &MatchHistory{s: s}
}

// Record appends a result. A zero FinishedAt is set to the current time.
func (h *MatchHistory) Record(r MatchResult) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	if r.FinishedAt.IsZero() {
		r.FinishedAt = h.s.now().UTC()
	}
	h.s.history = append(h.s.history, r)
	if err := h.s.flush(); err != nil {
		h.s.history = h.s.history[:len(h.s.history)-1]
		return errors.Wrap(err, "recording match")
	}
	return nil
}

// Results returns a copy of the recorded results, oldest first.
func (h *MatchHistory) Results() []MatchResult {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return append([]MatchResult(nil), h.s.history...)
}

// Tally counts wins per colour and draws.
func (h *MatchHistory) Tally() Tally {
	var t Tally
	for _, r := range h.Results() {
		switch r.Winner {
		case "white":
			t.White++
		case "black":
			t.Black++
		default:
			t.Draws++
		}
	}
	return t
}
