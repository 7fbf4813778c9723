package engine

import "fmt"

// Reduce folds one event into the state and returns the next state. It is
// total over the closed event set of this package and never mutates its
// input; unchanged sub-structures are shared between input and output.
func (e *Engine) Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Tick:
		return e.tick(s, ev.Elapsed)
	case Slide:
		return e.slide(s, ev.Direction)
	case Restart:
		return e.initial
	case SetDifficulty:
		next := s
		next.ComputerDifficulty = ev.Value / DifficultyScale
		return next
	case ToggleBreakout:
		next := s
		next.Breakout = ev.Enabled
		return next
	default:
		// The Event interface is sealed to this package, so this arm is
		// unreachable without a programming error. Abort the fold rather
		// than continue with undefined behavior.
		panic(fmt.Sprintf("engine: unhandled event %T", ev))
	}
}

// slide moves the player paddle by dir. A move that would leave the court
// is rejected outright, keeping the previous position, rather than clamped
// to the bound.
func (e *Engine) slide(s State, dir float64) State {
	bar := s.PlayerBar
	candidate := bar.Position.Add(Vector{Y: dir})
	if candidate.Y < 0 || candidate.Y > e.cfg.CourtSize-e.cfg.PaddleHeight {
		return s
	}
	bar.Position = candidate
	next := s
	next.PlayerBar = bar
	return next
}
