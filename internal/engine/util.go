package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// errSquare converts a board square for error context.
func errSquare(sq chess.Square) errors.Square {
	return errors.Square{Row: sq.Row, Col: sq.Col}
}

// errSquares converts a list of board squares for error context.
func errSquares(squares []chess.Square) []errors.Square {
	if len(squares) == 0 {
		return nil
	}
	out := make([]errors.Square, len(squares))
	for i, sq := range squares {
		out[i] = errSquare(sq)
	}
	return out
}
