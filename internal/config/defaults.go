package config

import (
	_ "embed"
)

//go:embed defaults/spacerun.yaml
var defaultSpaceRunYAML []byte

// DefaultSpaceRunConfig returns the hard-coded SpaceRun configuration.
// It mirrors defaults/spacerun.yaml and is the fallback when the embedded
// document cannot be parsed.
func DefaultSpaceRunConfig() SpaceRunConfig {
	return SpaceRunConfig{
		Scene: SceneConfig{
			CellWidth:  8,
			CellHeight: 16,
			HUDRows:    1,
		},
		Ship: ShipConfig{
			Width:       40,
			Height:      40,
			Speed:       300,
			DeadZone:    4,
			StartHealth: 2,
			MaxHealth:   4,
		},
		Weapons: WeaponsConfig{
			FireRate:         0.5,
			BoostedFireRate:  0.1,
			PowerUpDuration:  5.0,
			ProjectileWidth:  6,
			ProjectileHeight: 18,
			ProjectileFlight: 0.5,
		},
		Spawn: SpawnConfig{
			Mode:         SpawnModeFrame,
			Range:        1000,
			Threshold:    15,
			ReferenceFPS: 60,
			HealthBelow:  19,
			WeaponBelow:  20,
			EnemyBelow:   35,
		},
		Obstacles: ObstaclesConfig{
			AsteroidMinSize:     15,
			AsteroidMaxSize:     44,
			AsteroidMinDuration: 3,
			AsteroidMaxDuration: 6,
			AsteroidSpinAngle:   3,
			AsteroidMinSpin:     1,
			AsteroidMaxSpin:     3,
			EnemySize:           30,
			EnemyMargin:         20,
			EnemySpread:         40,
			EnemyDuration:       6.0,
		},
		PowerUps: PowerUpsConfig{
			WeaponSize:     30,
			WeaponMargin:   30,
			WeaponSpread:   60,
			HealthSize:     20,
			HealthMargin:   30,
			HealthSpread:   80,
			FlightDuration: 5.0,
			HealthShrinkTo: 0.5,
		},
		Scoring: ScoringConfig{
			ObstacleDestroyed: 10,
			CollisionPenalty:  10,
			HealthBonus:       100,
		},
		Starfield: StarfieldConfig{
			Enabled:  true,
			Interval: 0.01,
			Chance:   60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpawnThresholdBonus: 15,
				SpeedMultiplier:     0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSpaceRunYAML
}
