// Package config provides YAML-based configuration loading and difficulty
// presets for padl.
package config

import "github.com/padlkit/padl/internal/engine"

// PadlConfig contains all tunables for the game.
type PadlConfig struct {
	Court   CourtConfig   `yaml:"court"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Rules   RulesConfig   `yaml:"rules"`
	Timing  TimingConfig  `yaml:"timing"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Control ControlConfig `yaml:"control"`
}

// CourtConfig defines the square simulation court.
type CourtConfig struct {
	Size float64 `yaml:"size"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FaceBand  float64 `yaml:"face_band"`
	SlideStep float64 `yaml:"slide_step"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// RulesConfig defines the match rules.
type RulesConfig struct {
	MaxScore       int     `yaml:"max_score"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"`
}

// TimingConfig defines the tick cadence. TickRate is ticks per second;
// each tick advances the elapsed counter by TickStep units.
type TimingConfig struct {
	TickRate int     `yaml:"tick_rate"`
	TickStep float64 `yaml:"tick_step"`
}

// BricksConfig defines the breakout wall.
type BricksConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gap         float64 `yaml:"gap"`
	Top         float64 `yaml:"top"`
	Hits        int     `yaml:"hits"`
	OpacityStep float64 `yaml:"opacity_step"`
}

// ControlConfig defines the control-panel defaults.
type ControlConfig struct {
	// Slider is the raw difficulty slider value (0-20).
	Slider float64 `yaml:"slider"`
	// SliderStep is how far one keypress moves the slider.
	SliderStep float64 `yaml:"slider_step"`
	Breakout   bool    `yaml:"breakout"`
	Music      bool    `yaml:"music"`
}

// Engine converts the loaded configuration into the simulation's rule set.
func (c PadlConfig) Engine() engine.Config {
	return engine.Config{
		CourtSize:      c.Court.Size,
		PaddleWidth:    c.Paddle.Width,
		PaddleHeight:   c.Paddle.Height,
		FaceBand:       c.Paddle.FaceBand,
		SlideStep:      c.Paddle.SlideStep,
		BallRadius:     c.Ball.Radius,
		BallSpeed:      c.Ball.Speed,
		MaxScore:       c.Rules.MaxScore,
		MaxBounceAngle: c.Rules.MaxBounceAngle,
		DefaultSlider:  c.Control.Slider,
		Bricks: engine.BrickLayout{
			Rows:        c.Bricks.Rows,
			Cols:        c.Bricks.Cols,
			Width:       c.Bricks.Width,
			Height:      c.Bricks.Height,
			Gap:         c.Bricks.Gap,
			Top:         c.Bricks.Top,
			Hits:        c.Bricks.Hits,
			OpacityStep: c.Bricks.OpacityStep,
		},
	}
}
