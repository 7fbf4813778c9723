package engine

import (
	"context"
	"sync"
	"time"
)

// Loop merges the periodic tick source with host-pushed input events into
// one FIFO stream and folds it, one event at a time, from the engine's
// initial state. Every resulting state is emitted on States before the
// next event is folded, so the host always observes the fold strictly in
// source emission order. There is no batching, coalescing, or reordering.
type Loop struct {
	eng      *Engine
	interval time.Duration
	step     float64

	events chan Event
	states chan State
	stop   chan struct{}
	once   sync.Once
}

// NewLoop creates a loop ticking every interval. Each tick advances the
// elapsed counter by step units.
func NewLoop(eng *Engine, interval time.Duration, step float64) *Loop {
	return &Loop{
		eng:      eng,
		interval: interval,
		step:     step,
		events:   make(chan Event, 64),
		states:   make(chan State),
		stop:     make(chan struct{}),
	}
}

// States is the snapshot stream, one state per folded event. The initial
// state is emitted first so the host can paint before the first tick.
func (l *Loop) States() <-chan State {
	return l.states
}

// Push delivers a host event into the merged stream. Events pushed from
// one goroutine are folded in push order, interleaved FIFO with ticks.
// Push is a no-op after Stop.
func (l *Loop) Push(ev Event) {
	select {
	case l.events <- ev:
	case <-l.stop:
	}
}

// Run starts the ticker and the fold. It returns immediately; the loop
// runs until Stop is called or ctx is canceled.
func (l *Loop) Run(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
			l.Stop()
		case <-l.stop:
		}
	}()
	go l.pump(ctx)
	go l.fold(ctx)
}

// Stop tears the loop down. Safe to call more than once; only the first
// call does anything.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.stop)
	})
}

// pump feeds Tick events into the merged stream at the fixed cadence.
func (l *Loop) pump(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	elapsed := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stop:
			return
		case <-ticker.C:
			elapsed += l.step
			l.Push(Tick{Elapsed: elapsed})
		}
	}
}

// fold is the left fold: state' = Reduce(state, event), emitted before the
// next event is taken. No step begins before the previous step's state has
// been received by the host.
func (l *Loop) fold(ctx context.Context) {
	// Closing States tells subscribers the fold is over; only this
	// goroutine ever sends on it.
	defer close(l.states)

	state := l.eng.Initial()
	if !l.emit(ctx, state) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stop:
			return
		case ev := <-l.events:
			state = l.eng.Reduce(state, ev)
			if !l.emit(ctx, state) {
				return
			}
		}
	}
}

func (l *Loop) emit(ctx context.Context, s State) bool {
	select {
	case l.states <- s:
		return true
	case <-ctx.Done():
		return false
	case <-l.stop:
		return false
	}
}
