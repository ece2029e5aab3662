package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMove classifies a pawn move. ok is false if the move is not a legal
// pawn move; enPassant reports a diagonal capture onto an empty square.
func (e *Engine) pawnMove(pawn *chess.Piece, from, to chess.Square) (ok, enPassant bool) {
	dir := chess.ForwardDir(pawn.Colour)
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	target := e.board.Get(to)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return target == nil, false

	case colDiff == 0 && rowDiff == 2*dir && from.Row == chess.PawnStartRow(pawn.Colour):
		return target == nil && e.board.IsEmpty(from.Offset(dir, 0)), false

	case colDiff == 1 && rowDiff == dir:
		if target != nil {
			return target.Colour != pawn.Colour, false
		}
		if e.canCaptureEnPassant(pawn, from, to) {
			return true, true
		}
	}

	return false, false
}

// canCaptureEnPassant reports whether the pawn on from may capture onto the
// empty square to: the previous move must be an enemy pawn's double advance
// that landed beside from, on the column of to.
func (e *Engine) canCaptureEnPassant(pawn *chess.Piece, from, to chess.Square) bool {
	last, ok := e.LastMove()
	if !ok || !last.IsDoublePawnPush() || last.Moved.Colour == pawn.Colour {
		return false
	}
	if last.To != chess.Sq(from.Row, to.Col) {
		return false
	}
	victim := e.board.Get(last.To)
	return victim != nil && victim.Kind == chess.Pawn && victim.Colour != pawn.Colour
}

// promotes reports whether a pawn of the colour arriving on sq promotes.
func promotes(p *chess.Piece, sq chess.Square) bool {
	return p.Kind == chess.Pawn && sq.Row == chess.PromotionRow(p.Colour)
}
