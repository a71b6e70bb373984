package spacerun

import (
	"fmt"

	"github.com/vovakirdan/spacerun/internal/config"
)

// PlayerState is the mutable ship status. Health stays in [0, MaxHealth];
// reaching 0 destroys the ship.
type PlayerState struct {
	Health        int
	MaxHealth     int
	Score         int
	FireRate      float64  // Seconds between shots
	PowerUpExpiry *float64 // Frame time at which the boosted fire rate ends

	startHealth     int
	baseFireRate    float64
	boostedFireRate float64
}

// NewPlayerState creates a player in its start state.
func NewPlayerState(ship config.ShipConfig, weapons config.WeaponsConfig) *PlayerState {
	p := &PlayerState{
		MaxHealth:       ship.MaxHealth,
		startHealth:     ship.StartHealth,
		baseFireRate:    weapons.FireRate,
		boostedFireRate: weapons.BoostedFireRate,
	}
	p.Reset()
	return p
}

// Reset restores the start state.
func (p *PlayerState) Reset() {
	p.Health = p.startHealth
	p.Score = 0
	p.FireRate = p.baseFireRate
	p.PowerUpExpiry = nil
	p.check()
}

// Alive reports whether the ship still has health.
func (p *PlayerState) Alive() bool {
	return p.Health > 0
}

// Heal adds one health point. At full health it returns false and leaves
// health unchanged.
func (p *PlayerState) Heal() bool {
	if p.Health >= p.MaxHealth {
		return false
	}
	p.Health++
	p.check()
	return true
}

// Damage removes one health point if any is left. It returns true only on
// the call that takes health to 0.
func (p *PlayerState) Damage() bool {
	if p.Health <= 0 {
		return false
	}
	p.Health--
	p.check()
	return p.Health == 0
}

// AddPoints adds n to the score.
func (p *PlayerState) AddPoints(n int) {
	p.Score += n
}

// Penalize deducts n points if the score is positive. A score below n goes
// negative.
func (p *PlayerState) Penalize(n int) bool {
	if p.Score <= 0 {
		return false
	}
	p.Score -= n
	return true
}

// BoostFireRate switches to the boosted fire rate until the given time.
// A later boost replaces the expiry.
func (p *PlayerState) BoostFireRate(until float64) {
	p.FireRate = p.boostedFireRate
	p.PowerUpExpiry = &until
}

// ResetFireRate restores the default fire rate.
func (p *PlayerState) ResetFireRate() {
	p.FireRate = p.baseFireRate
	p.PowerUpExpiry = nil
}

// Boosted reports whether a weapons power-up is active.
func (p *PlayerState) Boosted() bool {
	return p.PowerUpExpiry != nil
}

func (p *PlayerState) check() {
	if p.Health < 0 || p.Health > p.MaxHealth {
		panic(fmt.Sprintf("spacerun: health %d outside [0, %d]", p.Health, p.MaxHealth))
	}
}
