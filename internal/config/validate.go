package config

import "fmt"

// ValidationError describes a configuration value outside its allowed range.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the invariants the simulation relies on.
func (c SpaceRunConfig) Validate() error {
	if c.Scene.CellWidth <= 0 || c.Scene.CellHeight <= 0 {
		return ValidationError{"scene", "cell_width and cell_height must be positive"}
	}
	if c.Scene.HUDRows < 0 {
		return ValidationError{"scene.hud_rows", "must not be negative"}
	}
	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		return ValidationError{"ship", "width and height must be positive"}
	}
	if c.Ship.Speed < 0 || c.Ship.DeadZone < 0 {
		return ValidationError{"ship", "speed and dead_zone must not be negative"}
	}
	if c.Ship.MaxHealth < 1 {
		return ValidationError{"ship.max_health", "must be at least 1"}
	}
	if c.Ship.StartHealth < 1 || c.Ship.StartHealth > c.Ship.MaxHealth {
		return ValidationError{"ship.start_health", fmt.Sprintf("must be in [1, %d]", c.Ship.MaxHealth)}
	}
	if c.Weapons.FireRate <= 0 || c.Weapons.BoostedFireRate <= 0 {
		return ValidationError{"weapons", "fire rates must be positive"}
	}
	if c.Weapons.PowerUpDuration <= 0 || c.Weapons.ProjectileFlight <= 0 {
		return ValidationError{"weapons", "durations must be positive"}
	}
	if c.Spawn.Mode != SpawnModeFrame && c.Spawn.Mode != SpawnModeTime {
		return ValidationError{"spawn.mode", fmt.Sprintf("unknown mode %q", c.Spawn.Mode)}
	}
	if c.Spawn.Range <= 0 {
		return ValidationError{"spawn.range", "must be positive"}
	}
	if c.Spawn.Mode == SpawnModeTime && c.Spawn.ReferenceFPS <= 0 {
		return ValidationError{"spawn.reference_fps", "must be positive in time mode"}
	}
	if c.Spawn.HealthBelow < 0 || c.Spawn.HealthBelow > c.Spawn.WeaponBelow ||
		c.Spawn.WeaponBelow > c.Spawn.EnemyBelow || c.Spawn.EnemyBelow > 100 {
		return ValidationError{"spawn", "die-roll thresholds must satisfy 0 <= health_below <= weapon_below <= enemy_below <= 100"}
	}
	o := c.Obstacles
	if o.AsteroidMinSize <= 0 || o.AsteroidMaxSize < o.AsteroidMinSize {
		return ValidationError{"obstacles", "asteroid size bounds are inverted or non-positive"}
	}
	if o.AsteroidMinDuration <= 0 || o.AsteroidMaxDuration < o.AsteroidMinDuration {
		return ValidationError{"obstacles", "asteroid duration bounds are inverted or non-positive"}
	}
	if o.AsteroidMinSpin <= 0 || o.AsteroidMaxSpin < o.AsteroidMinSpin {
		return ValidationError{"obstacles", "asteroid spin bounds are inverted or non-positive"}
	}
	if o.EnemySize <= 0 || o.EnemyDuration <= 0 {
		return ValidationError{"obstacles", "enemy size and duration must be positive"}
	}
	p := c.PowerUps
	if p.WeaponSize <= 0 || p.HealthSize <= 0 || p.FlightDuration <= 0 {
		return ValidationError{"powerups", "sizes and flight_duration must be positive"}
	}
	if p.HealthShrinkTo <= 0 {
		return ValidationError{"powerups.health_shrink_to", "must be positive"}
	}
	if c.Starfield.Enabled && (c.Starfield.Interval <= 0 || c.Starfield.Chance < 0 || c.Starfield.Chance > 100) {
		return ValidationError{"starfield", "interval must be positive and chance in [0, 100]"}
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return ValidationError{"difficulty.progression.type", fmt.Sprintf("unknown type %q", c.Difficulty.Progression.Type)}
	}
	return nil
}
