// Package engine implements the deterministic padl simulation: a single
// reducer folds a merged stream of ticks and input events into successive
// immutable game states. It contains no external dependencies (especially
// no Bubble Tea) to keep the game logic pure and testable.
package engine

// Vector is an immutable 2D value. Every operation returns a new Vector;
// nothing mutates in place.
type Vector struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// FlipX returns v with the horizontal component negated.
func (v Vector) FlipX() Vector {
	return Vector{X: -v.X, Y: v.Y}
}

// FlipY returns v with the vertical component negated.
func (v Vector) FlipY() Vector {
	return Vector{X: v.X, Y: -v.Y}
}

// WithY returns v with the vertical component replaced by y.
func (v Vector) WithY(y float64) Vector {
	return Vector{X: v.X, Y: y}
}
