package engine

import "math/rand"

// Winner values for State.Winner.
const (
	NoWinner     = 0
	PlayerWins   = 1
	ComputerWins = 2
)

// DifficultyScale divides the raw slider value into the per-tick AI step.
const DifficultyScale = 20

// BrickLayout describes the breakout wall geometry.
type BrickLayout struct {
	Rows, Cols    int
	Width, Height float64
	Gap           float64
	Top           float64
	Hits          int
	OpacityStep   float64
}

// Config holds the court geometry and rule constants the simulation runs
// under. Values are court units, not terminal cells.
type Config struct {
	CourtSize      float64 // square court side
	PaddleWidth    float64
	PaddleHeight   float64
	FaceBand       float64 // paddle face tolerance window against tunnelling
	SlideStep      float64 // player move per Slide event
	BallRadius     float64
	BallSpeed      float64 // horizontal serve speed
	MaxScore       int
	MaxBounceAngle float64 // vertical speed scale of the paddle bounce formula
	DefaultSlider  float64 // raw slider value at game start
	Bricks         BrickLayout
}

// DefaultConfig returns the reference court.
func DefaultConfig() Config {
	return Config{
		CourtSize:      500,
		PaddleWidth:    20,
		PaddleHeight:   100,
		FaceBand:       8,
		SlideStep:      8,
		BallRadius:     10,
		BallSpeed:      3,
		MaxScore:       7,
		MaxBounceAngle: 500,
		DefaultSlider:  10,
		Bricks: BrickLayout{
			Rows:        3,
			Cols:        5,
			Width:       60,
			Height:      20,
			Gap:         10,
			Top:         60,
			Hits:        4,
			OpacityStep: 0.25,
		},
	}
}

// State is the whole game at one instant. The reducer never mutates a
// State: each step returns a fresh value, sharing unchanged sub-structures
// with its input.
type State struct {
	Time        float64
	PlayerBar   Body
	ComputerBar Body
	Ball        Body

	P1Score int
	P2Score int
	// Winner is NoWinner while the game runs and terminal once set.
	Winner int

	// ComputerDifficulty is the per-tick step of the AI paddle.
	ComputerDifficulty float64

	Breakout bool
	Bricks   []Brick
	// BricksToRemove accumulates the IDs of bricks destroyed so far. It
	// only grows; the view drains and dedupes on its side.
	BricksToRemove []int
}

// Engine binds the rule configuration and the serve randomness. The
// injected rand.Rand is the simulation's only source of non-determinism:
// a single draw per serve picks the horizontal direction, so a fixed seed
// makes whole games reproducible.
type Engine struct {
	cfg     Config
	rng     *rand.Rand
	initial State
}

// New creates an engine. The initial serve direction is drawn once here,
// so Restart can return the initial state verbatim.
func New(cfg Config, rng *rand.Rand) *Engine {
	e := &Engine{cfg: cfg, rng: rng}
	e.initial = State{
		PlayerBar:          newBar(cfg, 0),
		ComputerBar:        newBar(cfg, cfg.CourtSize-cfg.PaddleWidth),
		Ball:               e.serve(),
		ComputerDifficulty: cfg.DefaultSlider / DifficultyScale,
		Bricks:             brickGrid(cfg),
	}
	return e
}

// Config returns the rule configuration the engine runs under.
func (e *Engine) Config() Config {
	return e.cfg
}

// Initial returns the state every fold starts from.
func (e *Engine) Initial() State {
	return e.initial
}

// serve builds a fresh ball at court center moving horizontally at
// BallSpeed, direction random.
func (e *Engine) serve() Body {
	dir := 1.0
	if e.rng.Intn(2) == 0 {
		dir = -1.0
	}
	center := e.cfg.CourtSize / 2
	return Body{
		Position: Vector{X: center, Y: center},
		Velocity: Vector{X: dir * e.cfg.BallSpeed, Y: 0},
		Size:     e.cfg.BallRadius,
	}
}
