// Package store persists saved games and finished-match results in a single
// JSON file.
//
// Every mutation rewrites the whole file through a temporary file and a
// rename, so a crash never leaves a half-written store behind. A Store is
// safe for concurrent use.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Outcome is the result of a finished or abandoned game.
type Outcome struct {
	Result string `json:"result,omitempty"` // "1-0", "0-1", "1/2-1/2" or "*"
	Method string `json:"method,omitempty"` // "checkmate", "draw", ...
}

// Standard result strings.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	DrawResult = "1/2-1/2"
	Unfinished = "*"
)

// SavedGame is a named move log.
type SavedGame struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Log     string    `json:"log_text"`
	SavedAt time.Time `json:"saved_at"`
	Outcome
}

// fileData is the on-disk layout.
type fileData struct {
	Games   []SavedGame   `json:"saved_games"`
	History []MatchResult `json:"match_history,omitempty"`
}

// Store is a file-backed collection of saved games.
type Store struct {
	mu      sync.Mutex
	path    string
	games   map[string]SavedGame
	history []MatchResult

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open loads the store at path. A missing file is an empty store; the file
// is created on the first write.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:  path,
		games: make(map[string]SavedGame),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading store %s", path)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return s, nil
	}

	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		return nil, errors.Wrapf(err, "decoding store %s", path)
	}
	for _, g := range fd.Games {
		s.games[g.ID] = g
	}
	s.history = fd.History
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Save stores a new game under a fresh id and timestamp. An empty name is
// replaced by one derived from the timestamp.
func (s *Store) Save(name, log string, outcome Outcome) (SavedGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := SavedGame{
		ID:      s.newID(),
		Name:    strings.TrimSpace(name),
		Log:     log,
		SavedAt: s.now().UTC(),
		Outcome: outcome,
	}
	if g.Name == "" {
		g.Name = "Game " + g.SavedAt.Format("2006-01-02 15:04:05")
	}

	s.games[g.ID] = g
	if err := s.flush(); err != nil {
		delete(s.games, g.ID)
		return SavedGame{}, err
	}
	return g, nil
}

// List returns all saved games, newest first.
func (s *Store) List() []SavedGame {
	s.mu.Lock()
	snapshot := maps.Clone(s.games)
	s.mu.Unlock()

	games := make([]SavedGame, 0, len(snapshot))
	for _, g := range snapshot {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool {
		if !games[i].SavedAt.Equal(games[j].SavedAt) {
			return games[i].SavedAt.After(games[j].SavedAt)
		}
		return games[i].ID < games[j].ID
	})
	return games
}

// Get returns the game with the given id.
func (s *Store) Get(id string) (SavedGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return SavedGame{}, errors.Wrapf(errors.ErrGameNotFound, "id %s", id)
	}
	return g, nil
}

// Delete removes the game with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "id %s", id)
	}
	delete(s.games, id)
	if err := s.flush(); err != nil {
		s.games[id] = g
		return err
	}
	return nil
}

// Len returns the number of saved games.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// flush writes the store to disk. The caller holds s.mu.
func (s *Store) flush() error {
	fd := fileData{
		Games:   make([]SavedGame, 0, len(s.games)),
		History: s.history,
	}
	for _, g := range s.games {
		fd.Games = append(fd.Games, g)
	}
	sort.Slice(fd.Games, func(i, j int) bool { return fd.Games[i].ID < fd.Games[j].ID })

	data, err := json.MarshalIndent(fd, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding store")
	}
	return writeFileAtomic(s.path, append(data, '\n'))
}

// writeFileAtomic replaces path with data via a temporary file in the same
// directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "syncing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "renaming to %s", path)
	}
	return nil
}
