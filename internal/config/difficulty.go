package config

// DifficultyPreset names a starting position for the AI difficulty slider.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// SliderForPreset maps a preset to a raw slider value (0-20). The engine
// divides the slider by 20 to get the per-tick AI step.
func SliderForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 4, true
	case DifficultyNormal:
		return 10, true
	case DifficultyHard:
		return 16, true
	default:
		return 0, false
	}
}

// ApplyPreset sets the control-panel slider from a preset name. Unknown
// presets leave the config untouched.
func ApplyPreset(cfg *PadlConfig, preset DifficultyPreset) {
	if v, ok := SliderForPreset(preset); ok {
		cfg.Control.Slider = v
	}
}
