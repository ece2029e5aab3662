// Package worker replays saved games on a pool of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

// WorkItem is a saved game queued for replay.
type WorkItem struct {
	Game  *store.SavedGame
	Index int // Position in the caller's list
}

// ProcessResult is the outcome of replaying one game.
type ProcessResult struct {
	Game   *store.SavedGame
	Index  int
	Status engine.Status // Status of the side to move after the replay
	Turn   chess.Colour  // Side to move after the replay
	Plies  int           // Moves on the board after the replay
	Board  *chess.Board  // Final position (nil on error)

	// Outcome is the result the replay actually reached. Mismatch is set
	// when it differs from the outcome stored with the game.
	Outcome  store.Outcome
	Mismatch bool

	Err error
}

// OK reports whether the game replayed cleanly and matches its stored result.
func (r ProcessResult) OK() bool {
	return r.Err == nil && !r.Mismatch
}

// ProcessFunc replays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed number of goroutines.
//
// Items submitted after the pool's context is cancelled are answered with
// the context error instead of being replayed, so every submitted item
// yields exactly one result. Items still queued when Stop is called are
// dropped without a result.
type Pool struct {
	ctx         context.Context
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
	processed   atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the size of the work and result buffers. Values below
// 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithContext ties the pool to ctx.
func WithContext(ctx context.Context) PoolOption {
	return func(p *Pool) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewPool creates a pool running processFunc. Defaults: one worker, a
// buffer of 10 and a background context.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		ctx:         context.Background(),
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		if err := p.ctx.Err(); err != nil {
			p.resultChan <- ProcessResult{Game: item.Game, Index: item.Index, Err: err}
			continue
		}
		p.resultChan <- p.processFunc(item)
		p.processed.Add(1)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues an item without blocking. It returns false when the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes the workers drop queued items.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel. Call it once, after the last Submit.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel. It must be drained for the workers to
// make progress.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Processed returns how many items were handed to the process function.
func (p *Pool) Processed() int {
	return int(p.processed.Load())
}
