package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "padl.yaml")
	yaml := `
court:
  size: 400
paddle:
  width: 15
  height: 80
  face_band: 6
  slide_step: 10
ball:
  radius: 8
  speed: 4
rules:
  max_score: 5
  max_bounce_angle: 500
timing:
  tick_rate: 30
  tick_step: 10
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Court.Size != 400 {
		t.Errorf("court size = %v, want 400", cfg.Court.Size)
	}
	if cfg.Rules.MaxScore != 5 {
		t.Errorf("max score = %d, want 5", cfg.Rules.MaxScore)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", cfg.Timing.TickRate)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Load() succeeded on a missing explicit path")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Run from a temp dir so no local configs/ shadows the embedded YAML.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	t.Setenv("HOME", t.TempDir())
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(wd) //nolint:errcheck

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults drifted from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestEngineConversion(t *testing.T) {
	cfg := DefaultConfig()
	ec := cfg.Engine()
	if ec.CourtSize != cfg.Court.Size || ec.MaxScore != cfg.Rules.MaxScore {
		t.Errorf("engine config mismatch: %+v", ec)
	}
	if ec.Bricks.Rows != cfg.Bricks.Rows || ec.Bricks.OpacityStep != cfg.Bricks.OpacityStep {
		t.Errorf("brick layout mismatch: %+v", ec.Bricks)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
		ok     bool
	}{
		{DifficultyEasy, 4, true},
		{DifficultyNormal, 10, true},
		{DifficultyHard, 16, true},
		{"nightmare", 0, false},
	}
	for _, tt := range tests {
		got, ok := SliderForPreset(tt.preset)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SliderForPreset(%q) = %v,%v want %v,%v", tt.preset, got, ok, tt.want, tt.ok)
		}
	}

	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Control.Slider != 16 {
		t.Errorf("slider = %v after hard preset, want 16", cfg.Control.Slider)
	}
	ApplyPreset(&cfg, "unknown")
	if cfg.Control.Slider != 16 {
		t.Errorf("unknown preset changed the slider to %v", cfg.Control.Slider)
	}
}
