// Package engine drives a reaction-diffusion simulation in step batches and
// arbitrates access to its state between the stepper and a consumer.
//
// Two modes are supported. In cooperative mode the caller alternates
// RunBatch with its own reads on a single goroutine. In concurrent mode
// Start launches a dedicated stepper goroutine and the consumer samples
// state through Snapshot; a single mutex covers the (u, v) pair atomically
// so a reader never observes fields from different generations.
package engine

import (
	"context"
	"sync"
)

// State is the mutable simulation state the engine arbitrates. U and V
// expose the two coupled fields; they are the unit of mutual exclusion and
// are never locked separately.
type State interface {
	Step()
	Reset(seed int64)
	U() []float32
	V() []float32
}

// DefaultBatchSize is the number of steps applied between handoffs.
const DefaultBatchSize = 8

// Engine owns a State for writing and publishes it to readers in whole-batch
// generations.
type Engine struct {
	mu    sync.Mutex
	state State
	batch int
	gen   uint64
}

// New returns an engine stepping state in batches of the given size. Sizes
// below 1 fall back to DefaultBatchSize.
func New(state State, batch int) *Engine {
	if batch < 1 {
		batch = DefaultBatchSize
	}
	return &Engine{state: state, batch: batch}
}

// BatchSize reports the number of steps per batch.
func (e *Engine) BatchSize() int { return e.batch }

// Generation reports how many batches have been applied so far.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen
}

func (e *Engine) stepBatch() {
	e.mu.Lock()
	for i := 0; i < e.batch; i++ {
		e.state.Step()
	}
	e.gen++
	e.mu.Unlock()
}

// RunBatch advances one batch and then hands the state to consume by
// reference, cooperative-mode style: the read happens strictly after the
// batch, on the caller's goroutine, with no steps interleaved.
func (e *Engine) RunBatch(consume func(u, v []float32)) {
	e.stepBatch()
	if consume != nil {
		consume(e.state.U(), e.state.V())
	}
}

// Start launches the concurrent stepper: an endless loop of step batches on
// its own goroutine, pausing only while a Snapshot holds the lock. The
// stepper checks ctx at the top of each batch and exits once it is
// cancelled; the returned channel closes when the goroutine is done.
func (e *Engine) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			e.stepBatch()
		}
	}()
	return done
}

// Snapshot copies the displayed field (u) into dst under the pair lock and
// returns the generation it belongs to. dst must hold W*H values. The copy
// is the only work done while holding the lock.
func (e *Engine) Snapshot(dst []float32) uint64 {
	e.mu.Lock()
	copy(dst, e.state.U())
	gen := e.gen
	e.mu.Unlock()
	return gen
}

// SnapshotPair copies both fields under one lock acquisition, so du and dv
// are guaranteed to come from the same generation, which is returned.
func (e *Engine) SnapshotPair(du, dv []float32) uint64 {
	e.mu.Lock()
	copy(du, e.state.U())
	copy(dv, e.state.V())
	gen := e.gen
	e.mu.Unlock()
	return gen
}

// Reset reseeds the state under the pair lock and rewinds the generation
// counter.
func (e *Engine) Reset(seed int64) {
	e.mu.Lock()
	e.state.Reset(seed)
	e.gen = 0
	e.mu.Unlock()
}

// Do runs fn while holding the pair lock, for explicit mid-run mutations
// such as parameter changes. fn must be short and must not block.
func (e *Engine) Do(fn func(state State)) {
	e.mu.Lock()
	fn(e.state)
	e.mu.Unlock()
}
