// Package engine provides chess move validation and board manipulation.
//
// An Engine owns the board, the side to move, the move history and the
// captured-piece lists. All state changes go through Move and Undo; every
// failed call leaves the state exactly as it was. An Engine is not safe for
// concurrent use: callers serialise their calls.
package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Engine is a two-player chess rules engine.
type Engine struct {
	board    *chess.Board
	turn     chess.Colour
	history  []chess.MoveRecord
	captured chess.CapturedPieces

	promotion chess.Kind
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for move tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPromotion sets the kind pawns promote to. Non-promotable kinds are ignored.
func WithPromotion(kind chess.Kind) Option {
	return func(e *Engine) {
		if kind.Promotable() {
			e.promotion = kind
		}
	}
}

// New creates an engine with the standard starting position, white to move.
func New(opts ...Option) *Engine {
	return NewFromBoard(chess.NewInitialBoard(), chess.White, opts...)
}

// NewFromBoard creates an engine for an arbitrary position. The board is
// copied; the history starts empty, so en passant is unavailable on the
// first move.
func NewFromBoard(board *chess.Board, turn chess.Colour, opts ...Option) *Engine {
	e := &Engine{
		board:     board.Copy(),
		turn:      turn,
		promotion: chess.Queen,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset restores the standard starting position and clears all history.
func (e *Engine) Reset() {
	e.board = chess.NewInitialBoard()
	e.turn = chess.White
	e.history = nil
	e.captured = chess.CapturedPieces{}
	e.logger.Debug("engine reset")
}

// Board returns a copy of the current board.
func (e *Engine) Board() *chess.Board {
	return e.board.Copy()
}

// PieceAt returns a copy of the piece on sq, or nil.
func (e *Engine) PieceAt(sq chess.Square) *chess.Piece {
	return e.board.Get(sq).Clone()
}

// Turn returns the colour to move.
func (e *Engine) Turn() chess.Colour {
	return e.turn
}

// CapturedPieces returns a snapshot of both capture lists.
func (e *Engine) CapturedPieces() chess.CapturedPieces {
	return e.captured.Copy()
}

// History returns a copy of the move history, oldest first.
func (e *Engine) History() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), e.history...)
}

// LastMove returns the most recent move record.
func (e *Engine) LastMove() (chess.MoveRecord, bool) {
	if len(e.history) == 0 {
		return chess.MoveRecord{}, false
	}
	return e.history[len(e.history)-1], true
}

// Plies returns the number of moves in the history.
func (e *Engine) Plies() int {
	return len(e.history)
}

// Promotion returns the kind pawns promote to.
func (e *Engine) Promotion() chess.Kind {
	return e.promotion
}
