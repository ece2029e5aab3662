package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleRook returns the rook squares for a king moving two columns from
// from to to. The rook comes from the corner on that side and lands on the
// square the king passes over.
func castleRook(from, to chess.Square) (rookFrom, rookTo chess.Square) {
	dir := sign(to.Col - from.Col)
	rookCol := 0
	if dir > 0 {
		rookCol = chess.BoardSize - 1
	}
	return chess.Sq(from.Row, rookCol), from.Offset(0, dir)
}

// isCastling reports whether a king move from from to to has castling shape.
func isCastling(king *chess.Piece, from, to chess.Square) bool {
	return king.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// canCastle checks every castling precondition. It returns a short reason
// when castling is refused.
func (e *Engine) canCastle(king *chess.Piece, from, to chess.Square) (bool, string) {
	if king.HasMoved {
		return false, "king has moved"
	}

	rookFrom, _ := castleRook(from, to)
	rook := e.board.Get(rookFrom)
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour {
		return false, "no rook to castle with"
	}
	if rook.HasMoved {
		return false, "rook has moved"
	}
	if !isPathClear(e.board, from, rookFrom) {
		return false, "squares between king and rook are occupied"
	}

	opponent := king.Colour.Opposite()
	if e.IsSquareAttacked(from, opponent) {
		return false, "king is in check"
	}
	dir := sign(to.Col - from.Col)
	if e.IsSquareAttacked(from.Offset(0, dir), opponent) {
		return false, "king passes through an attacked square"
	}
	if e.IsSquareAttacked(to, opponent) {
		return false, "king lands on an attacked square"
	}
	return true, ""
}
