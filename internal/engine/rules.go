package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// movePlan describes every square a validated move touches.
type movePlan struct {
	from, to chess.Square
	piece    *chess.Piece

	captured  *chess.Piece
	captureSq chess.Square
	enPassant bool

	castling         bool
	rookFrom, rookTo chess.Square

	promotion bool
}

// validate runs the full legality check for a move from from to to.
// With enforceTurn false the piece is validated as if its side were to move.
func (e *Engine) validate(from, to chess.Square, enforceTurn bool) (*movePlan, error) {
	plan, err := e.planMove(from, to, enforceTurn)
	if err != nil {
		return nil, err
	}

	if attackers := e.selfCheckAttackers(plan); len(attackers) > 0 {
		me := e.reject(from, to, plan.piece, errors.ErrSelfCheck, "would leave the king in check")
		me.Attackers = errSquares(attackers)
		return nil, me
	}

	return plan, nil
}

// planMove applies the structural checks and the piece movement rules,
// without the king-safety filter.
func (e *Engine) planMove(from, to chess.Square, enforceTurn bool) (*movePlan, error) {
	if !from.InBounds() || !to.InBounds() {
		return nil, e.reject(from, to, nil, errors.ErrIllegalMove, "square off the board")
	}

	piece := e.board.Get(from)
	if piece == nil {
		return nil, e.reject(from, to, nil, errors.ErrIllegalMove, "no piece on origin square")
	}
	if enforceTurn && piece.Colour != e.turn {
		return nil, e.reject(from, to, piece, errors.ErrIllegalMove, "not this side's turn")
	}

	target := e.board.Get(to)
	if target != nil && target.Colour == piece.Colour {
		return nil, e.reject(from, to, piece, errors.ErrIllegalMove, "destination holds own piece")
	}
	if target != nil && target.Kind == chess.King {
		return nil, e.reject(from, to, piece, errors.ErrIllegalMove, "the king cannot be captured")
	}

	plan := &movePlan{
		from:      from,
		to:        to,
		piece:     piece,
		captured:  target,
		captureSq: to,
	}

	switch piece.Kind {
	case chess.Pawn:
		ok, enPassant := e.pawnMove(piece, from, to)
		if !ok {
			return nil, e.reject(from, to, piece, errors.ErrIllegalMove, "illegal pawn move")
		}
		if enPassant {
			plan.enPassant = true
			plan.captureSq = chess.Sq(from.Row, to.Col)
			plan.captured = e.board.Get(plan.captureSq)
		}
		plan.promotion = promotes(piece, to)

	case chess.King:
		if isCastling(piece, from, to) {
			if ok, reason := e.canCastle(piece, from, to); !ok {
				return nil, e.reject(from, to, piece, errors.ErrIllegalMove, reason)
			}
			plan.castling = true
			plan.rookFrom, plan.rookTo = castleRook(from, to)
			break
		}
		if !canPieceMove(e.board, piece.Kind, from, to) {
			return nil, e.reject(from, to, piece, errors.ErrIllegalMove, "illegal king move")
		}

	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		if !canPieceMove(e.board, piece.Kind, from, to) {
			return nil, e.reject(from, to, piece, errors.ErrIllegalMove, "illegal "+strings.ToLower(piece.Kind.String())+" move")
		}

	default:
		return nil, e.reject(from, to, piece, errors.ErrIllegalMove, "unknown piece")
	}

	return plan, nil
}

// reject builds a MoveError and traces it.
func (e *Engine) reject(from, to chess.Square, piece *chess.Piece, err error, reason string) *errors.MoveError {
	me := &errors.MoveError{
		Err:    err,
		From:   errSquare(from),
		To:     errSquare(to),
		Reason: reason,
	}
	if piece != nil {
		me.Piece = piece.Code()
	}
	e.logger.Debug("move rejected", zapMove(me.Piece, from, to, reason)...)
	return me
}
