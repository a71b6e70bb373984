// Package config provides YAML-based game configuration loading and
// difficulty management for SpaceRun.
package config

// SpaceRunConfig contains all tuning for the SpaceRun simulation.
// Distances are scene units, durations are seconds.
type SpaceRunConfig struct {
	Scene      SceneConfig      `yaml:"scene"`
	Ship       ShipConfig       `yaml:"ship"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Starfield  StarfieldConfig  `yaml:"starfield"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SceneConfig maps terminal cells to scene units.
type SceneConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Scene units per terminal column
	CellHeight float64 `yaml:"cell_height"` // Scene units per terminal row
	HUDRows    int     `yaml:"hud_rows"`    // Rows reserved for the HUD at the top
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`     // Homing speed in units per second
	DeadZone    float64 `yaml:"dead_zone"` // No movement within this distance of the target
	StartHealth int     `yaml:"start_health"`
	MaxHealth   int     `yaml:"max_health"`
}

// WeaponsConfig defines shooting and the weapons power-up window.
type WeaponsConfig struct {
	FireRate         float64 `yaml:"fire_rate"`         // Seconds between shots
	BoostedFireRate  float64 `yaml:"boosted_fire_rate"` // Seconds between shots while boosted
	PowerUpDuration  float64 `yaml:"powerup_duration"`
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
	ProjectileFlight float64 `yaml:"projectile_flight"` // Seconds to cross the scene height
}

// Spawn pacing modes.
const (
	SpawnModeFrame = "frame" // Fixed chance per rendered frame
	SpawnModeTime  = "time"  // Chance rescaled by frame duration against ReferenceFPS
)

// SpawnConfig defines the ambient spawn check and die-roll classification.
type SpawnConfig struct {
	Mode         string  `yaml:"mode"`          // "frame" or "time"
	Range        int     `yaml:"range"`         // Spawn draw is uniform in [0, range)
	Threshold    int     `yaml:"threshold"`     // Spawn when draw <= threshold
	ReferenceFPS float64 `yaml:"reference_fps"` // Frame rate the threshold is calibrated for ("time" mode)
	HealthBelow  int     `yaml:"health_below"`  // Die roll < health_below spawns a health power-up
	WeaponBelow  int     `yaml:"weapon_below"`  // ... < weapon_below spawns a weapons power-up
	EnemyBelow   int     `yaml:"enemy_below"`   // ... < enemy_below spawns an enemy, otherwise an asteroid
}

// ObstaclesConfig defines asteroid and enemy geometry and timing.
type ObstaclesConfig struct {
	AsteroidMinSize     int     `yaml:"asteroid_min_size"`
	AsteroidMaxSize     int     `yaml:"asteroid_max_size"`
	AsteroidMinDuration int     `yaml:"asteroid_min_duration"`
	AsteroidMaxDuration int     `yaml:"asteroid_max_duration"`
	AsteroidSpinAngle   float64 `yaml:"asteroid_spin_angle"` // Radians per spin period
	AsteroidMinSpin     int     `yaml:"asteroid_min_spin"`   // Spin period bounds in seconds
	AsteroidMaxSpin     int     `yaml:"asteroid_max_spin"`
	EnemySize           float64 `yaml:"enemy_size"`
	EnemyMargin         float64 `yaml:"enemy_margin"` // Spawn x = rand(width - spread) + margin
	EnemySpread         float64 `yaml:"enemy_spread"`
	EnemyDuration       float64 `yaml:"enemy_duration"`
}

// PowerUpsConfig defines power-up geometry and timing.
type PowerUpsConfig struct {
	WeaponSize     float64 `yaml:"weapon_size"`
	WeaponMargin   float64 `yaml:"weapon_margin"`
	WeaponSpread   float64 `yaml:"weapon_spread"`
	HealthSize     float64 `yaml:"health_size"`
	HealthMargin   float64 `yaml:"health_margin"`
	HealthSpread   float64 `yaml:"health_spread"`
	FlightDuration float64 `yaml:"flight_duration"`
	HealthShrinkTo float64 `yaml:"health_shrink_to"`
}

// ScoringConfig defines score transitions.
type ScoringConfig struct {
	ObstacleDestroyed int `yaml:"obstacle_destroyed"`
	CollisionPenalty  int `yaml:"collision_penalty"`
	HealthBonus       int `yaml:"health_bonus"` // Awarded for a health power-up at full health
}

// StarfieldConfig defines the cosmetic falling stars.
type StarfieldConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Interval float64 `yaml:"interval"` // Seconds between launch attempts
	Chance   int     `yaml:"chance"`   // Percent chance per attempt
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnThresholdBonus int     `yaml:"spawn_threshold_bonus"` // Added to spawn.threshold at max difficulty
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Obstacle speed-up at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
