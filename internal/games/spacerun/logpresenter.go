package spacerun

import "github.com/charmbracelet/log"

// LogPresenter reports simulation events to a structured logger.
// Entity and shot events are logged at debug level, the rest at info.
type LogPresenter struct {
	logger *log.Logger
}

// NewLogPresenter creates a presenter that logs through logger.
func NewLogPresenter(logger *log.Logger) *LogPresenter {
	return &LogPresenter{logger: logger}
}

func (p *LogPresenter) SpawnEntity(e Entity) {
	p.logger.Debug("spawn", "id", e.ID, "category", e.Category, "kind", e.Kind,
		"x", round1(e.Pos.X), "y", round1(e.Pos.Y))
}

func (p *LogPresenter) RemoveEntity(id EntityID) {
	p.logger.Debug("remove", "id", id)
}

func (p *LogPresenter) PlayEffect(fx Effect) {
	if fx.Kind == EffectShot {
		p.logger.Debug("effect", "kind", fx.Kind)
		return
	}
	p.logger.Info("effect", "kind", fx.Kind, "x", round1(fx.Pos.X), "y", round1(fx.Pos.Y), "duration", fx.Duration)
}

func (p *LogPresenter) UpdateScore(score int) {
	p.logger.Info("score", "value", score)
}

func (p *LogPresenter) UpdateHealth(health int) {
	p.logger.Info("health", "value", health)
}

func (p *LogPresenter) ShowPowerupCountdown(seconds float64) {
	p.logger.Info("power-up", "seconds", seconds)
}

func (p *LogPresenter) SignalGameOver() {
	p.logger.Warn("game over")
}

func round1(v float64) float64 {
	return float64(int(v*10)) / 10
}
