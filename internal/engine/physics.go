package engine

// tick runs one simulation step against s and returns the next state.
//
// The pipeline order is fixed: advance the ball, detect endzones, test
// paddle/border/brick contact against the advanced position, move the AI
// paddle, then either re-serve (endzone) or resolve the bounce. A score
// reaching MaxScore sets the winner the same step. Once a winner is set,
// later ticks only advance the clock; the host unsubscribes on game over
// anyway, and freezing keeps the score bound under any event sequence.
func (e *Engine) tick(s State, elapsed float64) State {
	next := s
	next.Time = elapsed
	if s.Winner != NoWinner {
		return next
	}

	ball := s.Ball
	ball.Position = ball.Position.Add(ball.Velocity)
	next.Ball = ball

	// Endzone detection. The two flags are independent; at sane speeds at
	// most one fires per tick, but both incrementing is the accepted
	// behavior if they ever coincide.
	scoredP2 := ball.Position.X <= 0
	scoredP1 := ball.Position.X >= e.cfg.CourtSize

	hitPlayer := e.hitsBar(ball, s.PlayerBar, false)
	hitComputer := e.hitsBar(ball, s.ComputerBar, true)
	hitBorder := ball.Position.Y <= 0 || ball.Position.Y >= e.cfg.CourtSize

	hitBrick := false
	if s.Breakout {
		next.Bricks, next.BricksToRemove, hitBrick = e.smashBricks(ball, s.Bricks, s.BricksToRemove)
	}

	next.ComputerBar = e.trackBall(s.ComputerBar, ball, s.ComputerDifficulty)

	if scoredP1 || scoredP2 {
		if scoredP1 {
			next.P1Score = s.P1Score + 1
		}
		if scoredP2 {
			next.P2Score = s.P2Score + 1
		}
		// Replace the ball wholesale; bounce resolution is skipped this tick.
		next.Ball = e.serve()
	} else {
		var offset float64
		switch {
		case hitPlayer:
			offset = ball.Position.Y - s.PlayerBar.Position.Y
		case hitComputer:
			offset = ball.Position.Y - s.ComputerBar.Position.Y
		}
		ball.Velocity = e.bouncedVelocity(ball.Velocity, hitPlayer || hitComputer, hitBrick, hitBorder, offset)
		next.Ball = ball
	}

	if next.P1Score >= e.cfg.MaxScore {
		next.Winner = PlayerWins
	} else if next.P2Score >= e.cfg.MaxScore {
		next.Winner = ComputerWins
	}
	return next
}

// hitsBar reports whether the ball's leading edge sits inside the paddle's
// face band and its center inside the paddle's vertical span. The band is
// a window of FaceBand units around the face rather than a single line, so
// a fast ball cannot tunnel through between two ticks. The ball must be
// moving toward the paddle, otherwise the bounce it just took would
// re-trigger on the next tick.
func (e *Engine) hitsBar(ball Body, bar Body, right bool) bool {
	var lead, face float64
	if right {
		if ball.Velocity.X <= 0 {
			return false
		}
		lead = ball.Position.X + ball.Size
		face = e.cfg.CourtSize - e.cfg.PaddleWidth
	} else {
		if ball.Velocity.X >= 0 {
			return false
		}
		lead = ball.Position.X - ball.Size
		face = e.cfg.PaddleWidth
	}
	if lead < face-e.cfg.FaceBand || lead > face+e.cfg.FaceBand {
		return false
	}
	return ball.Position.Y >= bar.Position.Y && ball.Position.Y <= bar.Position.Y+bar.Size
}

// bounceAngle maps the ball's vertical offset from the paddle's top edge
// to the outgoing vertical speed. Center hits return near-horizontal,
// edge hits return steep; with the reference court this spans ±5.
func (e *Engine) bounceAngle(offset float64) float64 {
	half := e.cfg.PaddleHeight / 2
	return (offset - half) * (e.cfg.MaxBounceAngle / half) / 100
}

// bouncedVelocity resolves one tick's bounce. First match wins: a paddle
// bounce reverses the horizontal direction and aims the vertical component
// by hit offset; a brick bounce retraces the incoming path (both axes
// flip, a deliberate simplification over a true reflection); a border
// bounce flips the vertical component only.
func (e *Engine) bouncedVelocity(v Vector, paddle, brick, border bool, offset float64) Vector {
	switch {
	case paddle:
		return Vector{X: -v.X, Y: e.bounceAngle(offset)}
	case brick:
		return v.FlipX().FlipY()
	case border:
		return v.FlipY()
	default:
		return v
	}
}

// trackBall steps the AI paddle one ComputerDifficulty unit toward the
// ball. This is proportional tracking with a fixed step, not physics: the
// sign of the offset picks the direction, and the step never leaves the
// court. Gated on the ball actually moving horizontally.
func (e *Engine) trackBall(bar Body, ball Body, step float64) Body {
	if ball.Velocity.X == 0 {
		return bar
	}
	// Aim the paddle center at the ball.
	target := ball.Position.Y - e.cfg.PaddleHeight/2
	diff := target - bar.Position.Y
	if diff == 0 {
		return bar
	}

	y := bar.Position.Y
	if diff > 0 {
		y += step
	} else {
		y -= step
	}
	if y < 0 {
		y = 0
	}
	if limit := e.cfg.CourtSize - e.cfg.PaddleHeight; y > limit {
		y = limit
	}
	bar.Position = bar.Position.WithY(y)
	return bar
}

// smashBricks applies the ball to the brick wall: every overlapped brick
// loses one hit and OpacityStep opacity, dead bricks are filtered out of
// the returned collection and their IDs appended to the removal list. The
// input slices are never modified.
func (e *Engine) smashBricks(ball Body, bricks []Brick, toRemove []int) (alive []Brick, removed []int, hit bool) {
	alive = make([]Brick, 0, len(bricks))
	removed = toRemove

	for _, br := range bricks {
		if !overlapsBrick(ball, br) {
			alive = append(alive, br)
			continue
		}
		hit = true
		br.HitsRemaining--
		br.Opacity -= e.cfg.Bricks.OpacityStep
		if br.HitsRemaining <= 0 {
			if len(removed) == len(toRemove) {
				// Copy on first append keeps the input state untouched.
				removed = append([]int(nil), toRemove...)
			}
			removed = append(removed, br.ID)
			continue
		}
		alive = append(alive, br)
	}
	return alive, removed, hit
}

// overlapsBrick is an AABB test treating the ball as a square of side
// 2*radius centered on its position.
func overlapsBrick(ball Body, br Brick) bool {
	left := ball.Position.X - ball.Size
	right := ball.Position.X + ball.Size
	top := ball.Position.Y - ball.Size
	bottom := ball.Position.Y + ball.Size

	if right <= br.Position.X || left >= br.Position.X+br.Width {
		return false
	}
	if bottom <= br.Position.Y || top >= br.Position.Y+br.Height {
		return false
	}
	return true
}
