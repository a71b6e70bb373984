package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// elapsed seconds. A disabled manager reports level 0 so that tuning is used
// exactly as configured.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnThreshold returns the ambient spawn threshold for the current level.
func (d *DifficultyManager) SpawnThreshold(base, score int, elapsed float64) int {
	level := d.Level(score, elapsed)
	return base + int(math.Round(level*float64(d.cfg.Scaling.SpawnThresholdBonus)))
}

// Duration shortens a travel duration as difficulty rises, speeding obstacles up.
func (d *DifficultyManager) Duration(base float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return base / (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
