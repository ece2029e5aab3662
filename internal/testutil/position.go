package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Mover is anything that plays moves, such as an engine or a move recorder.
type Mover interface {
	Move(from, to chess.Square) error
}

// MustBoard parses a board diagram and fails the test on error.
// See chess.ParseBoard for the diagram format.
func MustBoard(t testing.TB, diagram string) *chess.Board {
	t.Helper()
	b, err := chess.ParseBoard(diagram)
	if err != nil {
		t.Fatalf("failed to parse board diagram: %v\n%s", err, diagram)
	}
	return b
}

// MustSquare parses "row,col" and fails the test on error.
func MustSquare(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return sq
}

// Play applies moves written as "r,c r,c" and fails the test on the first
// rejected move.
func Play(t testing.TB, m Mover, moves ...string) {
	t.Helper()
	for i, mv := range moves {
		fields := strings.Fields(mv)
		if len(fields) != 2 {
			t.Fatalf("move %d %q: want \"r,c r,c\"", i, mv)
		}
		from := MustSquare(t, fields[0])
		to := MustSquare(t, fields[1])
		if err := m.Move(from, to); err != nil {
			t.Fatalf("move %d %q: %v", i, mv, err)
		}
	}
}

// FoolsMate is the shortest checkmate: white is mated after four moves.
var FoolsMate = []string{
	"6,5 5,5", // f3
	"1,4 3,4", // e5
	"6,6 4,6", // g4
	"0,3 4,7", // Qh4#
}
