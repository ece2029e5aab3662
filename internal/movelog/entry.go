// Package movelog records, parses and replays the plain-text move log kept
// for each game: one line per move ("wp from 6,4 to 4,4") or "undo".
package movelog

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// EntryKind distinguishes moves from undo markers.
type EntryKind int

const (
	EntryMove EntryKind = iota
	EntryUndo
)

// UndoLine is the log line recorded for an undo.
const UndoLine = "undo"

// Entry is one parsed log line.
type Entry struct {
	Kind  EntryKind
	Piece string // Piece code such as "wp"; empty for undo
	From  chess.Square
	To    chess.Square
}

// MoveEntry builds a move entry for piece.
func MoveEntry(piece chess.Piece, from, to chess.Square) Entry {
	return Entry{Kind: EntryMove, Piece: piece.Code(), From: from, To: to}
}

// UndoEntry builds an undo entry.
func UndoEntry() Entry {
	return Entry{Kind: EntryUndo}
}

// String formats the entry as a log line.
func (e Entry) String() string {
	if e.Kind == EntryUndo {
		return UndoLine
	}
	return fmt.Sprintf("%s from %s to %s", e.Piece, e.From, e.To)
}

// FormatMove returns the log line for piece moving from from to to.
func FormatMove(piece chess.Piece, from, to chess.Square) string {
	return MoveEntry(piece, from, to).String()
}
