package movelog

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ReplayResult counts what a replay applied.
type ReplayResult struct {
	Applied int // Moves played
	Undone  int // Undo entries applied
}

// Plies returns the net number of moves on the board after the replay.
func (r ReplayResult) Plies() int {
	return r.Applied - r.Undone
}

type replayOptions struct {
	delay  time.Duration
	strict bool
	step   func(index int, entry Entry)
}

// ReplayOption configures Replay.
type ReplayOption func(*replayOptions)

// WithDelay pauses d after each applied entry. The pause ends early when
// the context is cancelled.
func WithDelay(d time.Duration) ReplayOption {
	return func(o *replayOptions) {
		o.delay = d
	}
}

// WithStrict controls whether each entry's piece code must match the piece
// found on its origin square. Strict is the default.
func WithStrict(strict bool) ReplayOption {
	return func(o *replayOptions) {
		o.strict = strict
	}
}

// WithStep registers a callback invoked after each applied entry.
func WithStep(fn func(index int, entry Entry)) ReplayOption {
	return func(o *replayOptions) {
		o.step = fn
	}
}

// Replay applies entries to eng in order. It stops at the first entry that
// cannot be applied and returns the counts so far together with an error
// naming the 1-based entry number.
func Replay(ctx context.Context, eng *engine.Engine, entries []Entry, opts ...ReplayOption) (ReplayResult, error) {
	o := replayOptions{strict: true}
	for _, opt := range opts {
		opt(&o)
	}

	var res ReplayResult
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := applyEntry(eng, entry, o.strict); err != nil {
			return res, errors.Wrapf(err, "entry %d (%s)", i+1, entry)
		}
		if entry.Kind == EntryUndo {
			res.Undone++
		} else {
			res.Applied++
		}

		if o.step != nil {
			o.step(i, entry)
		}
		if o.delay > 0 && i < len(entries)-1 {
			if err := sleep(ctx, o.delay); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

func applyEntry(eng *engine.Engine, entry Entry, strict bool) error {
	if entry.Kind == EntryUndo {
		return eng.Undo()
	}
	if strict {
		got := eng.PieceAt(entry.From)
		if got == nil || got.Code() != entry.Piece {
			found := "empty square"
			if got != nil {
				found = got.Code()
			}
			return &errors.MoveError{
				Err:    errors.ErrInvalidMoveLog,
				From:   errors.Square{Row: entry.From.Row, Col: entry.From.Col},
				To:     errors.Square{Row: entry.To.Row, Col: entry.To.Col},
				Piece:  entry.Piece,
				Reason: fmt.Sprintf("origin holds %s", found),
			}
		}
	}
	return eng.Move(entry.From, entry.To)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
