package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move validates and plays a move for the side to move. On success the
// board, history, captured pieces and turn are updated; on failure the
// returned *errors.MoveError wraps ErrIllegalMove or ErrSelfCheck and the
// state is unchanged.
func (e *Engine) Move(from, to chess.Square) error {
	plan, err := e.validate(from, to, true)
	if err != nil {
		return err
	}
	e.apply(plan)
	return nil
}

// AttemptMove is Move reporting only success or failure.
func (e *Engine) AttemptMove(from, to chess.Square) bool {
	return e.Move(from, to) == nil
}

// apply plays a validated plan and pushes its record.
func (e *Engine) apply(plan *movePlan) {
	rec := chess.MoveRecord{
		From:     plan.from,
		To:       plan.to,
		Moved:    *plan.piece,
		Captured: plan.captured.Clone(),
	}

	if plan.enPassant {
		rec.Special.EnPassant = true
		rec.Special.EnPassantSquare = plan.captureSq
		e.board.Set(plan.captureSq, nil)
	}

	moved := plan.piece.Clone()
	moved.HasMoved = true
	if plan.promotion {
		moved.Kind = e.promotion
		rec.Special.Promotion = true
		rec.Special.PromotedTo = e.promotion
	}
	e.board.Set(plan.from, nil)
	e.board.Set(plan.to, moved)

	if plan.castling {
		rook := e.board.Get(plan.rookFrom)
		rec.Special.Castling = true
		rec.Special.RookFrom = plan.rookFrom
		rec.Special.RookTo = plan.rookTo
		rec.Special.Rook = rook.Clone()

		castled := rook.Clone()
		castled.HasMoved = true
		e.board.Set(plan.rookFrom, nil)
		e.board.Set(plan.rookTo, castled)
	}

	if rec.Captured != nil {
		e.captured.Add(*rec.Captured)
	}
	e.history = append(e.history, rec)
	e.turn = e.turn.Opposite()

	fields := zapMove(rec.Moved.Code(), rec.From, rec.To, "")
	if rec.Captured != nil {
		fields = append(fields, zap.String("captured", rec.Captured.Code()))
	}
	if rec.Special.Castling {
		fields = append(fields, zap.Bool("castling", true))
	}
	if rec.Special.EnPassant {
		fields = append(fields, zap.Bool("en_passant", true))
	}
	if rec.Special.Promotion {
		fields = append(fields, zap.Stringer("promoted_to", rec.Special.PromotedTo))
	}
	e.logger.Debug("move executed", fields...)
}

// Undo reverts the most recent move, including captures, castling rook
// relocation, en passant and promotion. It returns ErrEmptyHistory when no
// move has been played.
func (e *Engine) Undo() error {
	n := len(e.history)
	if n == 0 {
		e.logger.Debug("undo rejected", zap.String("reason", "empty history"))
		return errors.ErrEmptyHistory
	}
	rec := e.history[n-1]
	e.history = e.history[:n-1]

	moved := rec.Moved
	e.board.Set(rec.To, nil)
	e.board.Set(rec.From, &moved)

	if rec.Captured != nil {
		e.board.Set(rec.CaptureSquare(), rec.Captured.Clone())
		e.captured.Pop(rec.Captured.Colour)
	}

	if rec.Special.Castling {
		e.board.Set(rec.Special.RookTo, nil)
		e.board.Set(rec.Special.RookFrom, rec.Special.Rook.Clone())
	}

	e.turn = e.turn.Opposite()
	e.logger.Debug("move undone", zapMove(rec.Moved.Code(), rec.From, rec.To, "")...)
	return nil
}

// UndoLastMove is Undo reporting only success or failure.
func (e *Engine) UndoLastMove() bool {
	return e.Undo() == nil
}
