package engine

// Body is a moving body: the ball or a paddle. Position is the top-left
// corner for paddles and the center for the ball. Velocity is in court
// units per tick.
type Body struct {
	Position Vector
	Velocity Vector
	// Accel is always zero today. It is carried so the tick pipeline can
	// grow curved motion later without a state-shape change; no computation
	// reads it.
	Accel Vector
	// Size is the paddle height or the ball radius.
	Size float64
}

// Brick is a destructible breakout obstacle. Position is the top-left
// corner. A brick with HitsRemaining == 0 is dead: it is filtered from the
// live collection the same tick it dies and its ID is reported once via
// State.BricksToRemove.
type Brick struct {
	ID            int
	Position      Vector
	Width         float64
	Height        float64
	Opacity       float64
	HitsRemaining int
}

// newBar builds a paddle at horizontal position x, vertically centered.
func newBar(cfg Config, x float64) Body {
	return Body{
		Position: Vector{X: x, Y: cfg.CourtSize/2 - cfg.PaddleHeight/2},
		Velocity: Vector{},
		Size:     cfg.PaddleHeight,
	}
}

// brickGrid lays out the breakout wall: Rows x Cols bricks centered
// horizontally, starting at Top. IDs are assigned row-major from 1.
func brickGrid(cfg Config) []Brick {
	g := cfg.Bricks
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil
	}

	rowSpan := float64(g.Cols)*g.Width + float64(g.Cols-1)*g.Gap
	left := (cfg.CourtSize - rowSpan) / 2

	bricks := make([]Brick, 0, g.Rows*g.Cols)
	id := 1
	for row := 0; row < g.Rows; row++ {
		y := g.Top + float64(row)*(g.Height+g.Gap)
		for col := 0; col < g.Cols; col++ {
			bricks = append(bricks, Brick{
				ID:            id,
				Position:      Vector{X: left + float64(col)*(g.Width+g.Gap), Y: y},
				Width:         g.Width,
				Height:        g.Height,
				Opacity:       1.0,
				HitsRemaining: g.Hits,
			})
			id++
		}
	}
	return bricks
}
