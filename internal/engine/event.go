package engine

// Event is the closed set of inputs the reducer folds over. The marker
// method seals the set to this package: every variant is declared below,
// and the reducer panics on anything else reaching it, which can only be
// a programming error inside this package.
type Event interface {
	isEvent()
}

// Tick requests one simulation step. Elapsed is the scheduler's
// monotonically increasing counter, recorded into State.Time.
type Tick struct {
	Elapsed float64
}

// Slide requests a player paddle move of Direction court units, negative
// up. The host normalizes arrow keys to ±Config.SlideStep.
type Slide struct {
	Direction float64
}

// Restart requests a full reset to the initial state.
type Restart struct{}

// SetDifficulty carries the raw control-panel slider value (0-20). The
// reducer divides by DifficultyScale to get the per-tick AI step.
type SetDifficulty struct {
	Value float64
}

// ToggleBreakout switches breakout mode. It takes effect from the next
// Tick and does not reset the brick wall.
type ToggleBreakout struct {
	Enabled bool
}

func (Tick) isEvent()           {}
func (Slide) isEvent()          {}
func (Restart) isEvent()        {}
func (SetDifficulty) isEvent()  {}
func (ToggleBreakout) isEvent() {}
