package movelog

import (
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Recorder plays moves on an engine and keeps the move log of the game.
// Only successful calls are logged; an undo is appended as its own line.
type Recorder struct {
	eng   *engine.Engine
	lines []string
}

// NewRecorder wraps eng. The log starts empty.
func NewRecorder(eng *engine.Engine) *Recorder {
	return &Recorder{eng: eng}
}

// Engine returns the wrapped engine.
func (r *Recorder) Engine() *engine.Engine {
	return r.eng
}

// Move plays a move and logs it.
func (r *Recorder) Move(from, to chess.Square) error {
	piece := r.eng.PieceAt(from)
	if err := r.eng.Move(from, to); err != nil {
		return err
	}
	r.lines = append(r.lines, FormatMove(*piece, from, to))
	return nil
}

// Undo reverts the last move and logs the undo.
func (r *Recorder) Undo() error {
	if err := r.eng.Undo(); err != nil {
		return err
	}
	r.lines = append(r.lines, UndoLine)
	return nil
}

// Lines returns a copy of the log lines.
func (r *Recorder) Lines() []string {
	return append([]string(nil), r.lines...)
}

// Len returns the number of log lines.
func (r *Recorder) Len() int {
	return len(r.lines)
}

// String returns the log, one line per entry, newline terminated.
func (r *Recorder) String() string {
	if len(r.lines) == 0 {
		return ""
	}
	return strings.Join(r.lines, "\n") + "\n"
}

// WriteTo writes the log to w.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// Reset restores the engine's starting position and clears the log.
func (r *Recorder) Reset() {
	r.eng.Reset()
	r.lines = nil
}
