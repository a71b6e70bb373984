package spacerun

import "github.com/vovakirdan/spacerun/internal/core"

// EffectKind names a one-off visual or audio cue.
type EffectKind int

const (
	EffectShot            EffectKind = iota // A projectile was fired
	EffectObstacleExplode                   // An obstacle hit the ship
	EffectShipExplode                       // The ship was destroyed
	EffectExplosion                         // Generic explosion that dies out after Duration
)

// String returns the name of the effect.
func (k EffectKind) String() string {
	switch k {
	case EffectShot:
		return "shot"
	case EffectObstacleExplode:
		return "obstacle-explode"
	case EffectShipExplode:
		return "ship-explode"
	case EffectExplosion:
		return "explosion"
	default:
		return "?"
	}
}

// Effect is a cue at a scene position.
type Effect struct {
	Kind     EffectKind
	Pos      core.Vec
	Duration float64 // Seconds; 0 for instantaneous cues
}

// Presenter receives everything the simulation wants shown or played.
type Presenter interface {
	SpawnEntity(e Entity)
	RemoveEntity(id EntityID)
	PlayEffect(fx Effect)
	UpdateScore(score int)
	UpdateHealth(health int)
	ShowPowerupCountdown(seconds float64)
	SignalGameOver()
}

// NopPresenter ignores every notification.
type NopPresenter struct{}

func (NopPresenter) SpawnEntity(Entity)           {}
func (NopPresenter) RemoveEntity(EntityID)        {}
func (NopPresenter) PlayEffect(Effect)            {}
func (NopPresenter) UpdateScore(int)              {}
func (NopPresenter) UpdateHealth(int)             {}
func (NopPresenter) ShowPowerupCountdown(float64) {}
func (NopPresenter) SignalGameOver()              {}

// Presenters fans notifications out to several presenters in order.
type Presenters []Presenter

func (ps Presenters) SpawnEntity(e Entity) {
	for _, p := range ps {
		p.SpawnEntity(e)
	}
}

func (ps Presenters) RemoveEntity(id EntityID) {
	for _, p := range ps {
		p.RemoveEntity(id)
	}
}

func (ps Presenters) PlayEffect(fx Effect) {
	for _, p := range ps {
		p.PlayEffect(fx)
	}
}

func (ps Presenters) UpdateScore(score int) {
	for _, p := range ps {
		p.UpdateScore(score)
	}
}

func (ps Presenters) UpdateHealth(health int) {
	for _, p := range ps {
		p.UpdateHealth(health)
	}
}

func (ps Presenters) ShowPowerupCountdown(seconds float64) {
	for _, p := range ps {
		p.ShowPowerupCountdown(seconds)
	}
}

func (ps Presenters) SignalGameOver() {
	for _, p := range ps {
		p.SignalGameOver()
	}
}
