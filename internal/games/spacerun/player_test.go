package spacerun

import (
	"testing"

	"github.com/vovakirdan/spacerun/internal/config"
)

func newTestPlayer() *PlayerState {
	cfg := config.DefaultSpaceRunConfig()
	return NewPlayerState(cfg.Ship, cfg.Weapons)
}

func TestPlayerStartState(t *testing.T) {
	p := newTestPlayer()

	if p.Health != 2 || p.Score != 0 {
		t.Errorf("start state = health %d score %d, expected 2 and 0", p.Health, p.Score)
	}
	if p.FireRate != 0.5 || p.Boosted() {
		t.Errorf("start fire rate = %f boosted=%v", p.FireRate, p.Boosted())
	}
}

func TestPlayerHealCapsAtMax(t *testing.T) {
	p := newTestPlayer()
	p.Health = 3

	if !p.Heal() || p.Health != 4 {
		t.Fatalf("Heal at 3 should reach 4, got %d", p.Health)
	}
	if p.Heal() {
		t.Error("Heal at max health should report false")
	}
	if p.Health != 4 {
		t.Errorf("health = %d, expected to stay 4", p.Health)
	}
}

func TestPlayerDamageFloorsAtZero(t *testing.T) {
	p := newTestPlayer()

	if p.Damage() {
		t.Error("2 -> 1 should not destroy the ship")
	}
	if !p.Damage() {
		t.Error("1 -> 0 should destroy the ship")
	}
	if p.Damage() {
		t.Error("damage at 0 should be a no-op")
	}
	if p.Health != 0 || p.Alive() {
		t.Errorf("health = %d alive=%v, expected 0 and dead", p.Health, p.Alive())
	}
}

func TestPlayerPenalize(t *testing.T) {
	tests := []struct {
		score    int
		applied  bool
		expected int
	}{
		{0, false, 0},
		{-5, false, -5},
		{50, true, 40},
		{5, true, -5},
	}

	for _, tc := range tests {
		p := newTestPlayer()
		p.Score = tc.score
		if got := p.Penalize(10); got != tc.applied {
			t.Errorf("Penalize at %d = %v, expected %v", tc.score, got, tc.applied)
		}
		if p.Score != tc.expected {
			t.Errorf("score after penalty from %d = %d, expected %d", tc.score, p.Score, tc.expected)
		}
	}
}

func TestPlayerFireRateBoost(t *testing.T) {
	p := newTestPlayer()

	p.BoostFireRate(5)
	if p.FireRate != 0.1 || p.PowerUpExpiry == nil || *p.PowerUpExpiry != 5 {
		t.Fatalf("boost state = rate %f expiry %v", p.FireRate, p.PowerUpExpiry)
	}
	p.BoostFireRate(8)
	if *p.PowerUpExpiry != 8 {
		t.Errorf("second boost should replace the expiry, got %f", *p.PowerUpExpiry)
	}

	p.ResetFireRate()
	if p.FireRate != 0.5 || p.Boosted() {
		t.Errorf("after reset rate = %f boosted=%v", p.FireRate, p.Boosted())
	}
}

func TestPlayerInvariantViolationPanics(t *testing.T) {
	p := newTestPlayer()
	p.Health = 7

	defer func() {
		if recover() == nil {
			t.Error("health above max should panic on the next transition")
		}
	}()
	p.Damage()
}
