package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"
)

// A one-hour interval keeps ticker noise out of ordering tests.
const quietInterval = time.Hour

func TestLoopFoldsPushedEventsInOrder(t *testing.T) {
	e := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	l := NewLoop(e, quietInterval, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l.Run(ctx)
	defer l.Stop()

	first := <-l.States()
	if !statesEqualShallow(first, e.Initial()) {
		t.Fatalf("first emission is not the initial state")
	}

	l.Push(Slide{Direction: -8})
	l.Push(Slide{Direction: -8})
	l.Push(SetDifficulty{Value: 20})

	s := <-l.States()
	if got := s.PlayerBar.Position.Y; got != 192 {
		t.Errorf("after first slide y = %v, want 192", got)
	}
	s = <-l.States()
	if got := s.PlayerBar.Position.Y; got != 184 {
		t.Errorf("after second slide y = %v, want 184", got)
	}
	s = <-l.States()
	if s.ComputerDifficulty != 1.0 {
		t.Errorf("difficulty = %v, want 1.0", s.ComputerDifficulty)
	}
	if got := s.PlayerBar.Position.Y; got != 184 {
		t.Errorf("difficulty event moved the paddle: y = %v", got)
	}
}

func TestLoopTicksAdvanceElapsed(t *testing.T) {
	e := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	l := NewLoop(e, time.Millisecond, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l.Run(ctx)
	defer l.Stop()

	deadline := time.After(5 * time.Second)
	last := 0.0
	for last < 30 {
		select {
		case s := <-l.States():
			if s.Time < last {
				t.Fatalf("elapsed went backwards: %v -> %v", last, s.Time)
			}
			last = s.Time
		case <-deadline:
			t.Fatalf("no ticks after 5s, elapsed stuck at %v", last)
		}
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	e := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	l := NewLoop(e, quietInterval, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l.Run(ctx)

	<-l.States()
	l.Stop()
	l.Stop() // second stop must not panic

	// Push after stop is a no-op, not a deadlock.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			l.Push(Slide{Direction: 8})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Push blocked after Stop")
	}
}

func TestLoopHonorsContext(t *testing.T) {
	e := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	l := NewLoop(e, quietInterval, 10)
	ctx, cancel := context.WithCancel(context.Background())
	l.Run(ctx)

	<-l.States()
	cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			l.Push(Slide{Direction: 8})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Push blocked after context cancellation")
	}
}

// statesEqualShallow compares the scalar fields; slices are shared with the
// initial state by construction.
func statesEqualShallow(a, b State) bool {
	return a.Time == b.Time &&
		a.PlayerBar == b.PlayerBar &&
		a.ComputerBar == b.ComputerBar &&
		a.Ball == b.Ball &&
		a.P1Score == b.P1Score &&
		a.P2Score == b.P2Score &&
		a.Winner == b.Winner &&
		a.ComputerDifficulty == b.ComputerDifficulty &&
		a.Breakout == b.Breakout
}
