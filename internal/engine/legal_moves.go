package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// savedSquare remembers a square's content for a scoped board mutation.
type savedSquare struct {
	sq    chess.Square
	piece *chess.Piece
}

// simulate plays the plan on the live board, runs fn, and restores every
// touched square before returning, even if fn panics.
func (e *Engine) simulate(plan *movePlan, fn func()) {
	touched := []chess.Square{plan.from, plan.to, plan.captureSq}
	if plan.castling {
		touched = append(touched, plan.rookFrom, plan.rookTo)
	}
	saved := make([]savedSquare, len(touched))
	for i, sq := range touched {
		saved[i] = savedSquare{sq: sq, piece: e.board.Get(sq)}
	}
	defer func() {
		for _, s := range saved {
			e.board.Set(s.sq, s.piece)
		}
	}()

	if plan.enPassant {
		e.board.Set(plan.captureSq, nil)
	}
	e.board.Set(plan.from, nil)
	e.board.Set(plan.to, plan.piece)
	if plan.castling {
		rook := e.board.Get(plan.rookFrom)
		e.board.Set(plan.rookFrom, nil)
		e.board.Set(plan.rookTo, rook)
	}

	fn()
}

// selfCheckAttackers returns the attackers of the mover's king after the
// plan is played, or nil if the king would be safe.
func (e *Engine) selfCheckAttackers(plan *movePlan) []chess.Square {
	var attackers []chess.Square
	e.simulate(plan, func() {
		attackers = e.AttackersOfKing(plan.piece.Colour)
	})
	return attackers
}

// GenerateLegalMoves returns every destination the piece on sq can legally
// move to, tagged with whether the move captures. The piece is evaluated as
// if its side were to move. Empty squares yield no moves.
func (e *Engine) GenerateLegalMoves(sq chess.Square) []chess.LegalMove {
	piece := e.board.Get(sq)
	if piece == nil {
		return nil
	}

	var moves []chess.LegalMove
	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			plan, err := e.validateQuiet(sq, chess.Sq(r, c))
			if err != nil {
				continue
			}
			moves = append(moves, chess.LegalMove{
				To:      plan.to,
				Capture: plan.captured != nil,
			})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (e *Engine) HasLegalMoves(colour chess.Colour) bool {
	for _, sq := range e.board.Occupied() {
		p := e.board.Get(sq)
		if p.Colour != colour {
			continue
		}
		if len(e.GenerateLegalMoves(sq)) > 0 {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the colour's king is in check and no piece of
// that colour has a legal move.
func (e *Engine) IsCheckmate(colour chess.Colour) bool {
	return e.IsKingInCheck(colour) && !e.HasLegalMoves(colour)
}

// Diagnose explains why a move would expose the mover's king. It plays the
// move hypothetically and returns the attackers of the mover's king in the
// resulting position; when the king itself moves these are the attackers of
// its destination. Moves that fail the piece rules return nil.
func (e *Engine) Diagnose(from, to chess.Square) []chess.Square {
	logger := e.logger
	e.logger = nopLogger
	plan, err := e.planMove(from, to, false)
	e.logger = logger
	if err != nil {
		return nil
	}
	var attackers []chess.Square
	e.simulate(plan, func() {
		attackers = e.AttackersOfKing(plan.piece.Colour)
	})
	return attackers
}

// validateQuiet runs validate with rejection tracing suppressed.
func (e *Engine) validateQuiet(from, to chess.Square) (*movePlan, error) {
	logger := e.logger
	e.logger = nopLogger
	defer func() { e.logger = logger }()
	return e.validate(from, to, false)
}
