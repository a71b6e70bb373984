package spacerun

import (
	"math"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// DropKind is the outcome of the spawn die roll.
type DropKind int

const (
	DropHealth DropKind = iota
	DropWeapons
	DropEnemy
	DropAsteroid
)

// String returns the name of the drop kind.
func (d DropKind) String() string {
	switch d {
	case DropHealth:
		return "health"
	case DropWeapons:
		return "weapons"
	case DropEnemy:
		return "enemy"
	case DropAsteroid:
		return "asteroid"
	default:
		return "?"
	}
}

// dieSides is the range of the classification roll.
const dieSides = 100

// Classify maps a die roll in [0, 100) to a drop kind.
func Classify(roll int, cfg config.SpawnConfig) DropKind {
	switch {
	case roll < cfg.HealthBelow:
		return DropHealth
	case roll < cfg.WeaponBelow:
		return DropWeapons
	case roll < cfg.EnemyBelow:
		return DropEnemy
	default:
		return DropAsteroid
	}
}

// Spawner decides when a new entity enters the scene and builds it.
type Spawner struct {
	rng        Source
	cfg        *config.SpaceRunConfig
	difficulty *config.DifficultyManager
	width      float64 // Scene width
	height     float64 // Scene height
	enemyPath  *Path
}

// NewSpawner creates a spawner for a scene of the given size.
func NewSpawner(rng Source, cfg *config.SpaceRunConfig, diff *config.DifficultyManager, width, height float64) *Spawner {
	return &Spawner{
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
		width:      width,
		height:     height,
		enemyPath:  EnemyPath(height),
	}
}

// ShouldSpawn makes the ambient spawn check for one frame.
// In frame mode the chance is fixed per call. In time mode it is rescaled so
// that the expected rate per second matches frame mode at the reference FPS.
func (s *Spawner) ShouldSpawn(dt float64, score int, elapsed float64) bool {
	threshold := s.difficulty.SpawnThreshold(s.cfg.Spawn.Threshold, score, elapsed)

	if s.cfg.Spawn.Mode != config.SpawnModeTime {
		return s.rng.Intn(s.cfg.Spawn.Range) <= threshold
	}

	p0 := math.Min(1, float64(threshold+1)/float64(s.cfg.Spawn.Range))
	p := 1 - math.Pow(1-p0, dt*s.cfg.Spawn.ReferenceFPS)
	return s.rng.Float64() < p
}

// Roll draws the die roll and classifies it.
func (s *Spawner) Roll() DropKind {
	return Classify(s.rng.Intn(dieSides), s.cfg.Spawn)
}

// Drop builds the entity for a drop kind starting at time now.
func (s *Spawner) Drop(kind DropKind, now float64, score int, elapsed float64) Entity {
	switch kind {
	case DropHealth:
		return s.healthPowerUp(now)
	case DropWeapons:
		return s.weaponsPowerUp(now)
	case DropEnemy:
		return s.enemy(now, score, elapsed)
	default:
		return s.asteroid(now, score, elapsed)
	}
}

func (s *Spawner) randAcross(spread, margin float64) float64 {
	return float64(s.rng.Intn(int(s.width-spread))) + margin
}

func (s *Spawner) weaponsPowerUp(now float64) Entity {
	pc := s.cfg.PowerUps
	pos := core.V(s.randAcross(pc.WeaponSpread, pc.WeaponMargin), s.height+pc.WeaponSize)
	return Entity{
		Category:  CategoryWeaponPowerUp,
		Pos:       pos,
		Size:      core.V(pc.WeaponSize, pc.WeaponSize),
		Motion:    FollowPath(pos, s.enemyPath, now, pc.FlightDuration),
		SpawnedAt: now,
	}
}

func (s *Spawner) healthPowerUp(now float64) Entity {
	pc := s.cfg.PowerUps
	pos := core.V(s.randAcross(pc.HealthSpread, pc.HealthMargin), s.height+pc.HealthSize)
	return Entity{
		Category:  CategoryHealthPowerUp,
		Pos:       pos,
		Size:      core.V(pc.HealthSize, pc.HealthSize),
		Motion:    FollowPath(pos, s.enemyPath, now, pc.FlightDuration).WithScale(1, pc.HealthShrinkTo, pc.FlightDuration),
		SpawnedAt: now,
	}
}

func (s *Spawner) enemy(now float64, score int, elapsed float64) Entity {
	oc := s.cfg.Obstacles
	pos := core.V(s.randAcross(oc.EnemySpread, oc.EnemyMargin), s.height+oc.EnemySize)
	duration := s.difficulty.Duration(oc.EnemyDuration, score, elapsed)
	return Entity{
		Category:  CategoryObstacle,
		Kind:      KindEnemy,
		Pos:       pos,
		Size:      core.V(oc.EnemySize, oc.EnemySize),
		Motion:    FollowPath(pos, s.enemyPath, now, duration),
		SpawnedAt: now,
	}
}

func (s *Spawner) asteroid(now float64, score int, elapsed float64) Entity {
	oc := s.cfg.Obstacles
	side := float64(s.rng.Intn(oc.AsteroidMaxSize-oc.AsteroidMinSize+1) + oc.AsteroidMinSize)
	x := float64(s.rng.Intn(int(s.width+s.width/2))) - s.width/4
	start := core.V(x, s.height+side)
	end := core.V(float64(s.rng.Intn(int(s.width))), -side)

	base := float64(s.rng.Intn(oc.AsteroidMaxDuration-oc.AsteroidMinDuration+1) + oc.AsteroidMinDuration)
	duration := s.difficulty.Duration(base, score, elapsed)
	spinPeriod := float64(s.rng.Intn(oc.AsteroidMaxSpin-oc.AsteroidMinSpin+1) + oc.AsteroidMinSpin)

	return Entity{
		Category:  CategoryObstacle,
		Kind:      KindAsteroid,
		Pos:       start,
		Size:      core.V(side, side),
		Motion:    Linear(start, end, now, duration).WithSpin(oc.AsteroidSpinAngle / spinPeriod),
		SpawnedAt: now,
	}
}

// Projectile builds a shot fired from pos at time now. It travels the full
// scene height plus its own length.
func (s *Spawner) Projectile(pos core.Vec, now float64) Entity {
	wc := s.cfg.Weapons
	return Entity{
		Category:  CategoryProjectile,
		Pos:       pos,
		Size:      core.V(wc.ProjectileWidth, wc.ProjectileHeight),
		Motion:    Linear(pos, pos.Add(core.V(0, s.height+wc.ProjectileHeight)), now, wc.ProjectileFlight),
		SpawnedAt: now,
	}
}
