package spacerun

// resolveCollisions runs the per-frame collision pass. Each scan works on a
// snapshot of its category and removals only flag entities, so the pass
// never sees an entity disappear mid-iteration.
func (l *GameLoop) resolveCollisions(now float64) {
	ship, ok := l.Ship()
	if !ok {
		return
	}

	for _, pu := range l.registry.ByCategory(CategoryWeaponPowerUp) {
		if ship.Overlaps(pu) {
			l.registry.MarkRemoved(pu.ID)
			l.collectWeapons(now)
		}
	}

	for _, pu := range l.registry.ByCategory(CategoryHealthPowerUp) {
		if ship.Overlaps(pu) {
			l.registry.MarkRemoved(pu.ID)
			l.collectHealth()
		}
	}

	projectiles := l.registry.ByCategory(CategoryProjectile)
	for _, obstacle := range l.registry.ByCategory(CategoryObstacle) {
		if !ship.Removed && ship.Overlaps(obstacle) {
			l.hitShip(ship, obstacle)
			continue
		}
		for _, shot := range projectiles {
			if shot.Removed || !shot.Overlaps(obstacle) {
				continue
			}
			l.registry.MarkRemoved(obstacle.ID)
			l.registry.MarkRemoved(shot.ID)
			l.presenter.PlayEffect(Effect{Kind: EffectExplosion, Pos: obstacle.Pos, Duration: shortExplosion})
			l.player.AddPoints(l.cfg.Scoring.ObstacleDestroyed)
			l.presenter.UpdateScore(l.player.Score)
			break
		}
	}
}

// collectWeapons boosts the fire rate for the power-up window. Collecting
// again before expiry restarts the window.
func (l *GameLoop) collectWeapons(now float64) {
	duration := l.cfg.Weapons.PowerUpDuration
	l.presenter.ShowPowerupCountdown(duration)
	l.player.BoostFireRate(now + duration)
	l.timers.After(TimerPowerUpReset, now+duration, func(float64) {
		l.player.ResetFireRate()
	})
}

// collectHealth heals one point, or awards the bonus at full health.
func (l *GameLoop) collectHealth() {
	if l.player.Heal() {
		l.presenter.UpdateHealth(l.player.Health)
		return
	}
	l.player.AddPoints(l.cfg.Scoring.HealthBonus)
	l.presenter.UpdateScore(l.player.Score)
}

// hitShip applies an obstacle striking the ship.
func (l *GameLoop) hitShip(ship, obstacle *Entity) {
	l.registry.MarkRemoved(obstacle.ID)

	destroyed := l.player.Damage()
	l.presenter.UpdateHealth(l.player.Health)
	if l.player.Penalize(l.cfg.Scoring.CollisionPenalty) {
		l.presenter.UpdateScore(l.player.Score)
	}
	l.presenter.PlayEffect(Effect{Kind: EffectObstacleExplode, Pos: obstacle.Pos})

	if !destroyed {
		return
	}
	l.registry.MarkRemoved(ship.ID)
	l.touch = nil
	l.gameOver = true
	l.presenter.PlayEffect(Effect{Kind: EffectShipExplode, Pos: ship.Pos})
	l.presenter.PlayEffect(Effect{Kind: EffectExplosion, Pos: obstacle.Pos, Duration: shortExplosion})
	l.presenter.PlayEffect(Effect{Kind: EffectExplosion, Pos: obstacle.Pos, Duration: longExplosion})
	l.presenter.SignalGameOver()
}
