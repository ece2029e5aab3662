package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// IsSquareAttacked returns true if any piece of byColour could reach sq.
// The test ignores whose turn it is and whether the attacker is pinned.
func (e *Engine) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	return isSquareAttacked(e.board, sq, byColour)
}

// AttackersOf returns the squares of the byColour pieces that attack sq.
func (e *Engine) AttackersOf(sq chess.Square, byColour chess.Colour) []chess.Square {
	return attackersOf(e.board, sq, byColour)
}

// IsKingInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func (e *Engine) IsKingInCheck(colour chess.Colour) bool {
	kingSq, ok := e.board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(e.board, kingSq, colour.Opposite())
}

// AttackersOfKing returns the squares of the pieces giving check to the
// given colour's king.
func (e *Engine) AttackersOfKing(colour chess.Colour) []chess.Square {
	kingSq, ok := e.board.FindKing(colour)
	if !ok {
		return nil
	}
	return attackersOf(e.board, kingSq, colour.Opposite())
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.InBounds() {
		return false
	}
	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			p := board.Squares[r][c]
			if p == nil || p.Colour != byColour {
				continue
			}
			if canReach(board, p, chess.Sq(r, c), sq) {
				return true
			}
		}
	}
	return false
}

// attackersOf collects the origin squares of every attacker of sq.
func attackersOf(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	if !sq.InBounds() {
		return nil
	}
	var attackers []chess.Square
	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			p := board.Squares[r][c]
			if p == nil || p.Colour != byColour {
				continue
			}
			if canReach(board, p, chess.Sq(r, c), sq) {
				attackers = append(attackers, chess.Sq(r, c))
			}
		}
	}
	return attackers
}

// canReach tests attack geometry from the attacker's square. Pawns attack
// diagonally forward only; sliders stop at the first occupied square.
func canReach(board *chess.Board, attacker *chess.Piece, from, to chess.Square) bool {
	if from == to {
		return false
	}
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	switch attacker.Kind {
	case chess.Pawn:
		return rowDiff == chess.ForwardDir(attacker.Colour) && abs(colDiff) == 1

	case chess.Knight:
		return matchesOffset(knightOffsets, rowDiff, colDiff)

	case chess.King:
		return matchesOffset(kingOffsets, rowDiff, colDiff)

	case chess.Bishop:
		return abs(rowDiff) == abs(colDiff) && isPathClear(board, from, to)

	case chess.Rook:
		return (rowDiff == 0 || colDiff == 0) && isPathClear(board, from, to)

	case chess.Queen:
		if abs(rowDiff) == abs(colDiff) || rowDiff == 0 || colDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false
	}

	return false
}

func matchesOffset(offsets [][2]int, rowDiff, colDiff int) bool {
	for _, o := range offsets {
		if o[0] == rowDiff && o[1] == colDiff {
			return true
		}
	}
	return false
}
