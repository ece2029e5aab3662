package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/store"
)

func savedGames(n int) []store.SavedGame {
	games := make([]store.SavedGame, n)
	for i := range games {
		games[i] = store.SavedGame{ID: fmt.Sprintf("g%d", i)}
	}
	return games
}

// echo returns a process function that counts calls and echoes the item.
func echo(counter *int32, delay time.Duration) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		if delay > 0 {
			time.Sleep(delay)
		}
		if counter != nil {
			atomic.AddInt32(counter, 1)
		}
		return ProcessResult{Game: item.Game, Index: item.Index}
	}
}

func drain(pool *Pool) map[int]bool {
	seen := make(map[int]bool)
	for r := range pool.Results() {
		seen[r.Index] = true
	}
	return seen
}

func TestPool_ProcessesEveryItem(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		items   int
	}{
		{"single worker", 1, 5, 5},
		{"several workers", 4, 10, 25},
		{"tiny buffer", 8, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var processed int32
			pool := NewPool(echo(&processed, 0), WithWorkers(tt.workers), WithBufferSize(tt.buffer))
			pool.Start()

			games := savedGames(tt.items)
			go func() {
				for i := range games {
					pool.Submit(WorkItem{Game: &games[i], Index: i})
				}
				pool.Close()
			}()

			seen := drain(pool)
			if len(seen) != tt.items {
				t.Errorf("results = %d; want %d", len(seen), tt.items)
			}
			for i := 0; i < tt.items; i++ {
				if !seen[i] {
					t.Errorf("missing index %d", i)
				}
			}
			if got := atomic.LoadInt32(&processed); int(got) != tt.items {
				t.Errorf("processed = %d; want %d", got, tt.items)
			}
			if got := pool.Processed(); got != tt.items {
				t.Errorf("Processed() = %d; want %d", got, tt.items)
			}
		})
	}
}

func TestPool_Stop(t *testing.T) {
	var processed int32
	pool := NewPool(echo(&processed, 10*time.Millisecond), WithWorkers(2), WithBufferSize(100))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	games := savedGames(50)
	for i := range games {
		pool.Submit(WorkItem{Game: &games[i], Index: i})
	}
	time.Sleep(25 * time.Millisecond)
	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	if pool.TrySubmit(WorkItem{Index: 99}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	drain(pool)

	if got := atomic.LoadInt32(&processed); got >= int32(len(games)) {
		t.Logf("stop did not skip any work: %d processed", got)
	}
}

func TestPool_TrySubmit(t *testing.T) {
	pool := NewPool(echo(nil, 50*time.Millisecond), WithBufferSize(2))
	pool.Start()

	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	go pool.Close()
	drain(pool)
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid ignored", []PoolOption{WithWorkers(0), WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echo(nil, 0), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var processed int32
	pool := NewPool(echo(&processed, 0), WithWorkers(3), WithContext(ctx))
	pool.Start()

	games := savedGames(6)
	go func() {
		for i := range games {
			pool.Submit(WorkItem{Game: &games[i], Index: i})
		}
		pool.Close()
	}()

	count := 0
	for r := range pool.Results() {
		count++
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result %d error = %v; want context.Canceled", r.Index, r.Err)
		}
	}
	if count != len(games) {
		t.Errorf("results = %d; want %d", count, len(games))
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d; want 0", got)
	}
}
