package spacerun

import (
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// Explosion die-out times.
const (
	shortExplosion = 0.1
	longExplosion  = 0.3
)

// GameLoop runs the simulation once per rendered frame.
// It is single-threaded; every method must be called from one goroutine.
type GameLoop struct {
	cfg        config.SpaceRunConfig
	width      float64
	height     float64
	seed       int64
	presenter  Presenter
	difficulty *config.DifficultyManager

	registry *Registry
	player   *PlayerState
	timers   *Timers
	rng      *SimpleRNG
	starRNG  *SimpleRNG
	spawner  *Spawner
	stars    *Starfield

	ship     EntityID
	touch    *core.Vec
	gameOver bool

	// Frame clock, initialised on the first tick.
	started    bool
	startedAt  float64
	lastUpdate float64
	hasShot    bool
	lastShot   float64
}

// NewGameLoop creates a loop for a scene of the given size and resets it.
func NewGameLoop(cfg config.SpaceRunConfig, width, height float64, seed int64, p Presenter) *GameLoop {
	if p == nil {
		p = NopPresenter{}
	}
	l := &GameLoop{
		cfg:       cfg,
		width:     width,
		height:    height,
		seed:      seed,
		presenter: p,
		registry:  NewRegistry(),
		timers:    NewTimers(),
	}
	l.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	l.player = NewPlayerState(cfg.Ship, cfg.Weapons)
	l.Reset()
	return l
}

// Reset restores the start state: a fresh ship at the scene centre, start
// health, zero score and reseeded random draws.
func (l *GameLoop) Reset() {
	l.registry.Clear()
	l.timers.Clear()
	l.player.Reset()
	l.rng = NewSimpleRNG(l.seed)
	l.starRNG = NewSimpleRNG(l.seed ^ 0x5eed)
	l.spawner = NewSpawner(l.rng, &l.cfg, l.difficulty, l.width, l.height)
	l.stars = NewStarfield(l.starRNG, l.cfg.Starfield, l.width, l.height)
	l.touch = nil
	l.gameOver = false
	l.started = false
	l.hasShot = false

	ship := l.registry.Spawn(Entity{
		Category: CategoryShip,
		Pos:      core.V(l.width/2, l.height/2),
		Size:     core.V(l.cfg.Ship.Width, l.cfg.Ship.Height),
	})
	l.ship = ship.ID
	l.presenter.SpawnEntity(*ship)
	l.presenter.UpdateScore(l.player.Score)
	l.presenter.UpdateHealth(l.player.Health)
}

// OnTouchBegin starts tracking a touch at point, replacing any tracked one.
func (l *GameLoop) OnTouchBegin(point core.Vec) {
	if _, ok := l.Ship(); !ok {
		return
	}
	p := point
	l.touch = &p
}

// OnTouchMove updates the tracked touch.
func (l *GameLoop) OnTouchMove(point core.Vec) {
	if l.touch == nil {
		return
	}
	*l.touch = point
}

// OnTouchEnd stops tracking the touch.
func (l *GameLoop) OnTouchEnd() {
	l.touch = nil
}

// OnFrameTick advances the simulation to timestamp t (seconds).
// Timestamps must not decrease.
func (l *GameLoop) OnFrameTick(t float64) {
	if !l.started {
		l.started = true
		l.startedAt = t
		l.lastUpdate = t
		if l.cfg.Starfield.Enabled {
			l.timers.Every(TimerStarfield, t, l.cfg.Starfield.Interval, l.launchStar)
		}
	}
	if t < l.lastUpdate {
		panic("spacerun: frame timestamp went backwards")
	}
	dt := t - l.lastUpdate

	l.timers.Run(t)
	l.advanceScripted(t)

	if ship, ok := l.Ship(); ok && l.touch != nil {
		ship.Pos = advanceShip(ship.Pos, *l.touch, l.cfg.Ship.Speed, dt, l.cfg.Ship.DeadZone)
	}
	l.fireIfReady(t)
	if !l.gameOver {
		l.ambientSpawn(t, dt)
	}
	if _, ok := l.Ship(); ok {
		l.resolveCollisions(t)
	}
	l.sweep()

	l.lastUpdate = t
}

// advanceScripted moves every scripted entity and retires finished ones.
func (l *GameLoop) advanceScripted(now float64) {
	for _, e := range l.registry.All() {
		if e.Motion == nil {
			continue
		}
		e.Motion.Apply(e, now)
		if e.Motion.Done(now) {
			l.registry.MarkRemoved(e.ID)
		}
	}
}

func (l *GameLoop) fireIfReady(now float64) {
	ship, ok := l.Ship()
	if !ok || l.touch == nil {
		return
	}
	if l.hasShot && now-l.lastShot <= l.player.FireRate {
		return
	}
	l.spawn(l.spawner.Projectile(ship.Pos, now))
	l.presenter.PlayEffect(Effect{Kind: EffectShot, Pos: ship.Pos})
	l.hasShot = true
	l.lastShot = now
}

func (l *GameLoop) ambientSpawn(now, dt float64) {
	elapsed := now - l.startedAt
	if !l.spawner.ShouldSpawn(dt, l.player.Score, elapsed) {
		return
	}
	kind := l.spawner.Roll()
	l.spawn(l.spawner.Drop(kind, now, l.player.Score, elapsed))
}

func (l *GameLoop) launchStar(now float64) {
	if star, ok := l.stars.Launch(now); ok {
		l.spawn(star)
	}
}

func (l *GameLoop) spawn(e Entity) *Entity {
	stored := l.registry.Spawn(e)
	l.presenter.SpawnEntity(*stored)
	return stored
}

func (l *GameLoop) sweep() {
	for _, id := range l.registry.Sweep() {
		l.presenter.RemoveEntity(id)
	}
}

// Ship returns the ship while it is alive.
func (l *GameLoop) Ship() (*Entity, bool) {
	return l.registry.Get(l.ship)
}

// Touch returns the tracked touch point.
func (l *GameLoop) Touch() (core.Vec, bool) {
	if l.touch == nil {
		return core.Vec{}, false
	}
	return *l.touch, true
}

// Player returns the player state. Callers must treat it as read-only.
func (l *GameLoop) Player() *PlayerState {
	return l.player
}

// Registry returns the entity registry. Callers must treat it as read-only.
func (l *GameLoop) Registry() *Registry {
	return l.registry
}

// Timers returns the pending timers.
func (l *GameLoop) Timers() *Timers {
	return l.timers
}

// GameOver reports whether the ship has been destroyed.
func (l *GameLoop) GameOver() bool {
	return l.gameOver
}

// Elapsed returns seconds since the first frame.
func (l *GameLoop) Elapsed() float64 {
	if !l.started {
		return 0
	}
	return l.lastUpdate - l.startedAt
}

// Size returns the scene dimensions.
func (l *GameLoop) Size() (width, height float64) {
	return l.width, l.height
}
