package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseTuning(t *testing.T) {
	d := NewDifficultyManager(DefaultSpaceRunConfig().Difficulty)

	if d.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := d.SpawnThreshold(15, 5000, 600); got != 15 {
		t.Errorf("SpawnThreshold() = %d, expected 15", got)
	}
	if got := d.Duration(6, 5000, 600); got != 6 {
		t.Errorf("Duration() = %f, expected 6", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpawnThresholdBonus: 10, SpeedMultiplier: 1.0},
	})

	tests := []struct {
		elapsed   float64
		level     float64
		threshold int
	}{
		{0, 0, 15},
		{50, 0.5, 20},
		{100, 1, 25},
		{500, 1, 25},
	}

	for _, tc := range tests {
		if got := d.Level(0, tc.elapsed); math.Abs(got-tc.level) > 1e-9 {
			t.Errorf("Level(%f) = %f, expected %f", tc.elapsed, got, tc.level)
		}
		if got := d.SpawnThreshold(15, 0, tc.elapsed); got != tc.threshold {
			t.Errorf("SpawnThreshold(%f) = %d, expected %d", tc.elapsed, got, tc.threshold)
		}
	}

	if got := d.Duration(6, 0, 100); math.Abs(got-3) > 1e-9 {
		t.Errorf("Duration at max level = %f, expected 3", got)
	}
}

func TestDifficultyScoreProgressionFromInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 200},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at score 0 = %f, expected 0.5", got)
	}
	if got := d.Level(100, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level at score 100 = %f, expected 0.75", got)
	}
	if got := d.Level(-50, 0); got != 0.5 {
		t.Errorf("negative score should clamp to initial level, got %f", got)
	}
}
