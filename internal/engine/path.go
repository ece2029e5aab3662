package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPieceMove checks the movement geometry of a non-pawn piece, including
// path clearance for sliders. Castling is handled separately.
func canPieceMove(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	if rowDiff == 0 && colDiff == 0 {
		return false
	}

	switch kind {
	case chess.Knight:
		return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)

	case chess.Bishop:
		if rowDiff != colDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if rowDiff != 0 && colDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if rowDiff == colDiff || rowDiff == 0 || colDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return max(rowDiff, colDiff) == 1

	case chess.Pawn:
		return false
	}

	return false
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !sq.InBounds() {
			return false
		}
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}
