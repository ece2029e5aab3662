package worker

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movelog"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

// Verifier replays saved games on fresh engines.
type Verifier struct {
	ctx    context.Context
	opts   []engine.Option
	logger *zap.Logger
}

// NewVerifier creates a Verifier. The engine options are applied to every
// replay engine; ctx cancels in-flight replays.
func NewVerifier(ctx context.Context, logger *zap.Logger, opts ...engine.Option) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{ctx: ctx, opts: opts, logger: logger}
}

// Process replays one saved game. It is a ProcessFunc.
func (v *Verifier) Process(item WorkItem) ProcessResult {
	res := ProcessResult{Game: item.Game, Index: item.Index}
	if item.Game == nil {
		res.Err = errors.Wrap(errors.ErrGameNotFound, "nil game")
		return res
	}
	log := v.logger.With(zap.String("game", item.Game.ID), zap.String("name", item.Game.Name))

	entries, err := movelog.ParseString(item.Game.Log)
	if err != nil {
		res.Err = err
		log.Warn("move log unreadable", zap.Error(err))
		return res
	}

	eng := engine.New(v.opts...)
	if _, err := movelog.Replay(v.ctx, eng, entries); err != nil {
		res.Err = err
		log.Warn("replay failed", zap.Error(err))
		return res
	}

	res.Turn = eng.Turn()
	res.Status = eng.Status(res.Turn)
	res.Plies = eng.Plies()
	res.Board = eng.Board()
	res.Outcome = store.OutcomeOf(res.Status, res.Turn)

	if recorded := item.Game.Result; recorded != "" && recorded != res.Outcome.Result {
		res.Mismatch = true
		log.Warn("stored result differs from replay",
			zap.String("stored", recorded),
			zap.String("replayed", res.Outcome.Result))
	}
	log.Debug("game verified", zap.Int("plies", res.Plies), zap.Stringer("status", res.Status))
	return res
}

// VerifyAll replays games on a pool of workers and returns one result per
// game in input order. Games not yet replayed when ctx is cancelled carry
// the context error.
func VerifyAll(ctx context.Context, games []store.SavedGame, workers int, logger *zap.Logger, opts ...engine.Option) []ProcessResult {
	v := NewVerifier(ctx, logger, opts...)
	pool := NewPool(v.Process,
		WithWorkers(workers),
		WithBufferSize(len(games)+1),
		WithContext(ctx))
	pool.Start()

	go func() {
		defer pool.Close()
		for i := range games {
			pool.Submit(WorkItem{Game: &games[i], Index: i})
		}
	}()

	results := make([]ProcessResult, 0, len(games))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
