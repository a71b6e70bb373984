package spacerun

import (
	"testing"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// recorder is a Presenter that keeps every notification.
type recorder struct {
	spawned    []Entity
	removed    []EntityID
	effects    []Effect
	scores     []int
	healths    []int
	countdowns []float64
	gameOvers  int
}

func (r *recorder) SpawnEntity(e Entity)     { r.spawned = append(r.spawned, e) }
func (r *recorder) RemoveEntity(id EntityID) { r.removed = append(r.removed, id) }
func (r *recorder) PlayEffect(fx Effect)     { r.effects = append(r.effects, fx) }
func (r *recorder) UpdateScore(score int)    { r.scores = append(r.scores, score) }
func (r *recorder) UpdateHealth(health int)  { r.healths = append(r.healths, health) }
func (r *recorder) ShowPowerupCountdown(seconds float64) {
	r.countdowns = append(r.countdowns, seconds)
}
func (r *recorder) SignalGameOver() { r.gameOvers++ }

func (r *recorder) effectCount(kind EffectKind) int {
	n := 0
	for _, fx := range r.effects {
		if fx.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) wasRemoved(id EntityID) bool {
	for _, got := range r.removed {
		if got == id {
			return true
		}
	}
	return false
}

// quietConfig disables ambient spawns and stars so tests place every entity.
func quietConfig() config.SpaceRunConfig {
	cfg := config.DefaultSpaceRunConfig()
	cfg.Spawn.Threshold = -1
	cfg.Starfield.Enabled = false
	return cfg
}

func newTestLoop(t *testing.T) (*GameLoop, *recorder) {
	t.Helper()
	rec := &recorder{}
	l := NewGameLoop(quietConfig(), 640, 480, 1, rec)
	l.OnFrameTick(0)
	return l, rec
}

// place puts a motionless entity into the scene.
func place(l *GameLoop, e Entity) *Entity {
	if e.Size == (core.Vec{}) {
		e.Size = core.V(20, 20)
	}
	return l.spawn(e)
}

func placeAtShip(t *testing.T, l *GameLoop, e Entity) *Entity {
	t.Helper()
	ship, ok := l.Ship()
	if !ok {
		t.Fatal("ship should be alive")
	}
	e.Pos = ship.Pos
	return place(l, e)
}

func asteroid() Entity {
	return Entity{Category: CategoryObstacle, Kind: KindAsteroid}
}

func TestLoopStartState(t *testing.T) {
	l, rec := newTestLoop(t)

	ship, ok := l.Ship()
	if !ok {
		t.Fatal("ship should exist at start")
	}
	if ship.Pos != core.V(320, 240) || ship.Size != core.V(40, 40) {
		t.Errorf("ship = %+v, expected 40x40 at the scene centre", ship)
	}
	if l.Registry().Count(CategoryShip) != 1 {
		t.Error("exactly one ship should exist")
	}
	if len(rec.spawned) != 1 || rec.spawned[0].Category != CategoryShip {
		t.Errorf("presenter should see the ship spawn, got %+v", rec.spawned)
	}
	if rec.healths[0] != 2 || rec.scores[0] != 0 {
		t.Errorf("initial display = health %v score %v", rec.healths, rec.scores)
	}
}

func TestObstacleHitsDrainHealthToGameOver(t *testing.T) {
	l, rec := newTestLoop(t)
	l.OnTouchBegin(core.V(320, 240))

	first := placeAtShip(t, l, asteroid())
	l.OnFrameTick(0.01)

	p := l.Player()
	if p.Health != 1 || p.Score != 0 {
		t.Fatalf("after first hit health=%d score=%d, expected 1 and 0", p.Health, p.Score)
	}
	if !rec.wasRemoved(first.ID) {
		t.Error("obstacle should be removed on impact")
	}
	if rec.effectCount(EffectObstacleExplode) != 1 {
		t.Error("impact should play the obstacle explosion")
	}
	if rec.gameOvers != 0 {
		t.Fatal("game over signalled too early")
	}

	placeAtShip(t, l, asteroid())
	l.OnFrameTick(0.02)

	if p.Health != 0 || !l.GameOver() {
		t.Fatalf("after second hit health=%d gameOver=%v", p.Health, l.GameOver())
	}
	if rec.gameOvers != 1 {
		t.Errorf("game over signalled %d times, expected 1", rec.gameOvers)
	}
	if _, ok := l.Ship(); ok {
		t.Error("ship should be removed")
	}
	if _, ok := l.Touch(); ok {
		t.Error("touch should be cleared when the ship is destroyed")
	}
	if rec.effectCount(EffectShipExplode) != 1 || rec.effectCount(EffectExplosion) != 2 {
		t.Errorf("destruction effects = %+v", rec.effects)
	}

	// Nothing further happens to health or the signal.
	l.OnTouchBegin(core.V(0, 0))
	l.OnFrameTick(1)
	if rec.gameOvers != 1 || p.Health != 0 {
		t.Errorf("later frames changed state: signals=%d health=%d", rec.gameOvers, p.Health)
	}
	if _, ok := l.Touch(); ok {
		t.Error("touches after game over should be ignored")
	}
}

func TestObstacleHitDeductsScore(t *testing.T) {
	l, _ := newTestLoop(t)
	l.player.Score = 50

	placeAtShip(t, l, asteroid())
	l.OnFrameTick(0.01)

	if l.Player().Score != 40 || l.Player().Health != 1 {
		t.Errorf("score=%d health=%d, expected 40 and 1", l.Player().Score, l.Player().Health)
	}
}

func TestSimultaneousHitsSignalGameOverOnce(t *testing.T) {
	l, rec := newTestLoop(t)
	l.player.Health = 1

	placeAtShip(t, l, asteroid())
	placeAtShip(t, l, Entity{Category: CategoryObstacle, Kind: KindEnemy})
	l.OnFrameTick(0.01)

	if l.Player().Health != 0 {
		t.Errorf("health = %d, expected floor at 0", l.Player().Health)
	}
	if rec.gameOvers != 1 {
		t.Errorf("game over signalled %d times, expected 1", rec.gameOvers)
	}
	if rec.effectCount(EffectObstacleExplode) != 1 {
		t.Error("the second obstacle should not hit a destroyed ship")
	}
}

func TestHealthPowerUps(t *testing.T) {
	l, rec := newTestLoop(t)
	l.player.Health = 3

	pu := placeAtShip(t, l, Entity{Category: CategoryHealthPowerUp})
	l.OnFrameTick(0.01)

	if l.Player().Health != 4 || l.Player().Score != 0 {
		t.Fatalf("health=%d score=%d, expected 4 and 0", l.Player().Health, l.Player().Score)
	}
	if !rec.wasRemoved(pu.ID) {
		t.Error("power-up should be removed on pickup")
	}

	placeAtShip(t, l, Entity{Category: CategoryHealthPowerUp})
	l.OnFrameTick(0.02)

	if l.Player().Health != 4 || l.Player().Score != 100 {
		t.Errorf("at full health: health=%d score=%d, expected 4 and 100", l.Player().Health, l.Player().Score)
	}
}

func TestWeaponsPowerUpWindow(t *testing.T) {
	l, rec := newTestLoop(t)

	placeAtShip(t, l, Entity{Category: CategoryWeaponPowerUp})
	l.OnFrameTick(1)

	p := l.Player()
	if p.FireRate != 0.1 {
		t.Fatalf("fire rate = %f right after pickup, expected 0.1", p.FireRate)
	}
	if len(rec.countdowns) != 1 || rec.countdowns[0] != 5 {
		t.Errorf("countdowns = %v, expected [5]", rec.countdowns)
	}

	l.OnFrameTick(5.99)
	if p.FireRate != 0.1 {
		t.Error("boost should last the full window")
	}
	l.OnFrameTick(6)
	if p.FireRate != 0.5 || p.Boosted() {
		t.Errorf("fire rate = %f after the window, expected 0.5", p.FireRate)
	}
}

func TestSecondWeaponsPowerUpRestartsWindow(t *testing.T) {
	l, _ := newTestLoop(t)

	placeAtShip(t, l, Entity{Category: CategoryWeaponPowerUp})
	l.OnFrameTick(1)
	placeAtShip(t, l, Entity{Category: CategoryWeaponPowerUp})
	l.OnFrameTick(4)

	if l.Timers().Len() != 1 {
		t.Errorf("pending timers = %d, expected the reset to be replaced", l.Timers().Len())
	}
	l.OnFrameTick(6.5)
	if l.Player().FireRate != 0.1 {
		t.Error("first window must not end the second one")
	}
	l.OnFrameTick(9)
	if l.Player().FireRate != 0.5 {
		t.Errorf("fire rate = %f at 9s, expected reset", l.Player().FireRate)
	}
}

func TestProjectileDestroysObstacle(t *testing.T) {
	l, rec := newTestLoop(t)

	target := place(l, Entity{Category: CategoryObstacle, Kind: KindEnemy, Pos: core.V(100, 400)})
	shot := place(l, Entity{Category: CategoryProjectile, Pos: core.V(100, 400)})
	l.OnFrameTick(0.01)

	if l.Player().Score != 10 {
		t.Errorf("score = %d, expected 10", l.Player().Score)
	}
	if !rec.wasRemoved(target.ID) || !rec.wasRemoved(shot.ID) {
		t.Error("both obstacle and projectile should be removed")
	}
	if rec.effectCount(EffectExplosion) != 1 {
		t.Error("a kill should play one explosion")
	}
}

func TestProjectileScoresAtMostOnce(t *testing.T) {
	l, _ := newTestLoop(t)

	place(l, Entity{Category: CategoryObstacle, Kind: KindAsteroid, Pos: core.V(100, 400)})
	place(l, Entity{Category: CategoryObstacle, Kind: KindAsteroid, Pos: core.V(100, 400)})
	place(l, Entity{Category: CategoryProjectile, Pos: core.V(100, 400)})
	l.OnFrameTick(0.01)

	if l.Player().Score != 10 {
		t.Errorf("score = %d, expected one kill", l.Player().Score)
	}
	if got := l.Registry().Count(CategoryObstacle); got != 1 {
		t.Errorf("obstacles left = %d, expected 1", got)
	}
}

func TestObstacleConsumesOneProjectile(t *testing.T) {
	l, _ := newTestLoop(t)

	place(l, Entity{Category: CategoryObstacle, Kind: KindAsteroid, Pos: core.V(100, 400)})
	place(l, Entity{Category: CategoryProjectile, Pos: core.V(100, 400)})
	place(l, Entity{Category: CategoryProjectile, Pos: core.V(100, 400)})
	l.OnFrameTick(0.01)

	if got := l.Registry().Count(CategoryProjectile); got != 1 {
		t.Errorf("projectiles left = %d, expected 1", got)
	}
}

func TestShipCollisionResolvedBeforeProjectiles(t *testing.T) {
	l, _ := newTestLoop(t)

	placeAtShip(t, l, asteroid())
	placeAtShip(t, l, Entity{Category: CategoryProjectile})
	l.OnFrameTick(0.01)

	if l.Player().Health != 1 || l.Player().Score != 0 {
		t.Errorf("health=%d score=%d, expected the ship to take the hit", l.Player().Health, l.Player().Score)
	}
	if got := l.Registry().Count(CategoryProjectile); got != 1 {
		t.Errorf("projectile should survive, %d left", got)
	}
}

func TestShotScheduling(t *testing.T) {
	l, rec := newTestLoop(t)

	l.OnFrameTick(0.1)
	if rec.effectCount(EffectShot) != 0 {
		t.Fatal("no shots without a touch")
	}

	ship, _ := l.Ship()
	l.OnTouchBegin(ship.Pos)
	l.OnFrameTick(0.2)
	if rec.effectCount(EffectShot) != 1 {
		t.Fatalf("first frame with a touch should fire, shots=%d", rec.effectCount(EffectShot))
	}

	l.OnFrameTick(0.7)
	if rec.effectCount(EffectShot) != 1 {
		t.Error("cooldown is strict: exactly fireRate later must not fire")
	}
	l.OnFrameTick(0.71)
	if rec.effectCount(EffectShot) != 2 {
		t.Error("should fire once the cooldown has passed")
	}

	l.OnTouchEnd()
	l.OnFrameTick(2)
	if rec.effectCount(EffectShot) != 2 {
		t.Error("releasing the touch should stop firing")
	}
}

func TestProjectileRetiresAfterFlight(t *testing.T) {
	l, rec := newTestLoop(t)
	ship, _ := l.Ship()
	l.OnTouchBegin(ship.Pos)
	l.OnFrameTick(1)
	l.OnTouchEnd()

	shots := l.Registry().ByCategory(CategoryProjectile)
	if len(shots) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(shots))
	}
	id := shots[0].ID

	l.OnFrameTick(1.25)
	if got := shots[0].Pos.Y; got <= ship.Pos.Y {
		t.Errorf("projectile should move up, y=%f", got)
	}
	l.OnFrameTick(1.5)
	if !rec.wasRemoved(id) {
		t.Error("projectile should retire when its flight completes")
	}
}

func TestShipHomingUsesFrameDelta(t *testing.T) {
	l, _ := newTestLoop(t)
	ship, _ := l.Ship()
	start := ship.Pos

	l.OnTouchBegin(start.Add(core.V(200, 0)))
	l.OnFrameTick(0.1)

	if got := ship.Pos.X - start.X; got < 29.999 || got > 30.001 {
		t.Errorf("ship moved %f, expected 300*0.1", got)
	}

	l.OnTouchMove(ship.Pos.Add(core.V(2, 0)))
	before := ship.Pos
	l.OnFrameTick(0.2)
	if ship.Pos != before {
		t.Error("ship should hold still inside the dead zone")
	}
}

func TestFirstFrameHasZeroDelta(t *testing.T) {
	rec := &recorder{}
	l := NewGameLoop(quietConfig(), 640, 480, 1, rec)
	ship, _ := l.Ship()
	start := ship.Pos

	l.OnTouchBegin(core.V(0, 0))
	l.OnFrameTick(42)

	if ship.Pos != start {
		t.Errorf("ship moved on the first frame to %+v", ship.Pos)
	}
}

func TestAmbientSpawnsAtMostOnePerFrame(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Threshold = 999 // every frame
	rec := &recorder{}
	l := NewGameLoop(cfg, 640, 480, 9, rec)

	for i := range 30 {
		l.OnFrameTick(float64(i) / 60)
	}

	spawned := len(rec.spawned) - 1 // minus the ship
	if spawned != 30 {
		t.Errorf("spawned %d entities in 30 frames, expected 30", spawned)
	}
	for _, e := range rec.spawned[1:] {
		if e.Category == CategoryShip || e.Category == CategoryProjectile || e.Category == CategoryStar {
			t.Errorf("ambient spawn produced %v", e.Category)
		}
	}
}

func TestNoAmbientSpawnsAfterGameOver(t *testing.T) {
	cfg := quietConfig()
	rec := &recorder{}
	l := NewGameLoop(cfg, 640, 480, 9, rec)
	l.OnFrameTick(0)
	l.player.Health = 1
	placeAtShip(t, l, asteroid())
	l.OnFrameTick(0.1)

	l.cfg.Spawn.Threshold = 999
	before := len(rec.spawned)
	for i := range 10 {
		l.OnFrameTick(0.2 + float64(i)/60)
	}
	if len(rec.spawned) != before {
		t.Errorf("spawned %d entities after game over", len(rec.spawned)-before)
	}
}

func TestStarfieldLaunchRate(t *testing.T) {
	cfg := quietConfig()
	cfg.Starfield.Enabled = true
	rec := &recorder{}
	l := NewGameLoop(cfg, 640, 480, 5, rec)

	for i := range 601 {
		l.OnFrameTick(float64(i) / 60)
	}

	stars := 0
	for _, e := range rec.spawned {
		if e.Category == CategoryStar {
			stars++
		}
	}
	// About 1000 attempts at 60% in ten seconds.
	if stars < 500 || stars > 700 {
		t.Errorf("launched %d stars in 10s, expected about 600", stars)
	}
	if _, ok := l.Ship(); !ok {
		t.Error("stars must never collide with the ship")
	}
}

func TestBackwardsTimestampPanics(t *testing.T) {
	l, _ := newTestLoop(t)
	l.OnFrameTick(2)

	defer func() {
		if recover() == nil {
			t.Error("decreasing timestamp should panic")
		}
	}()
	l.OnFrameTick(1)
}

func TestLoopResetRestoresStartState(t *testing.T) {
	l, _ := newTestLoop(t)
	l.player.Health = 1
	placeAtShip(t, l, asteroid())
	l.OnFrameTick(0.1)
	if !l.GameOver() {
		t.Fatal("setup should end the game")
	}

	l.Reset()
	if l.GameOver() || l.Player().Health != 2 || l.Player().Score != 0 {
		t.Errorf("after Reset: gameOver=%v health=%d score=%d", l.GameOver(), l.Player().Health, l.Player().Score)
	}
	if l.Registry().Len() != 1 {
		t.Errorf("entities after Reset = %d, expected only the ship", l.Registry().Len())
	}
	if l.Elapsed() != 0 {
		t.Error("frame clock should restart")
	}
}
