package config

import (
	_ "embed"
)

//go:embed defaults/padl.yaml
var defaultPadlYAML []byte

// DefaultConfig returns the built-in configuration, used when no YAML can
// be loaded at all.
func DefaultConfig() PadlConfig {
	return PadlConfig{
		Court: CourtConfig{Size: 500},
		Paddle: PaddleConfig{
			Width:     20,
			Height:    100,
			FaceBand:  8,
			SlideStep: 8,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  3,
		},
		Rules: RulesConfig{
			MaxScore:       7,
			MaxBounceAngle: 500,
		},
		Timing: TimingConfig{
			TickRate: 60,
			TickStep: 10,
		},
		Bricks: BricksConfig{
			Rows:        3,
			Cols:        5,
			Width:       60,
			Height:      20,
			Gap:         10,
			Top:         60,
			Hits:        4,
			OpacityStep: 0.25,
		},
		Control: ControlConfig{
			Slider:     10,
			SliderStep: 2,
		},
	}
}
