package spacerun

import (
	"fmt"
	"math"
	"strings"
)

// activeEffect is an effect still visible on screen.
type activeEffect struct {
	Effect
	until float64
}

// minEffectTime keeps instantaneous cues visible for at least one frame.
const minEffectTime = 0.05

// HUD is the presenter behind the terminal view. It keeps the displayed
// score, health, timers and the effects that are still animating.
type HUD struct {
	Score    int
	Health   int
	GameOver bool

	now          float64
	startedAt    float64
	stoppedAt    float64
	started      bool
	countdownEnd float64
	effects      []activeEffect
	entities     int
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Reset clears the HUD for a new game.
func (h *HUD) Reset() {
	*h = HUD{}
}

// Advance moves the HUD clock and drops effects that have died out.
func (h *HUD) Advance(now float64) {
	if !h.started {
		h.started = true
		h.startedAt = now
	}
	h.now = now
	kept := h.effects[:0]
	for _, fx := range h.effects {
		if fx.until > now {
			kept = append(kept, fx)
		}
	}
	h.effects = kept
}

// Elapsed returns the seconds since the first frame. The clock stops at
// game over.
func (h *HUD) Elapsed() float64 {
	if !h.started {
		return 0
	}
	if h.GameOver {
		return h.stoppedAt - h.startedAt
	}
	return h.now - h.startedAt
}

// PowerUpRemaining returns the seconds left on the power-up countdown.
func (h *HUD) PowerUpRemaining() float64 {
	if h.GameOver {
		return 0
	}
	return math.Max(0, h.countdownEnd-h.now)
}

// Effects returns the effects still visible.
func (h *HUD) Effects() []Effect {
	out := make([]Effect, len(h.effects))
	for i, fx := range h.effects {
		out[i] = fx.Effect
	}
	return out
}

// Entities returns the number of entities the HUD has been told about.
func (h *HUD) Entities() int {
	return h.entities
}

// StatusLine formats the HUD for a terminal row.
func (h *HUD) StatusLine(maxHealth int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SCORE %d  ", h.Score)
	sb.WriteString("HP ")
	for i := range maxHealth {
		if i < h.Health {
			sb.WriteRune('♥')
		} else {
			sb.WriteRune('·')
		}
	}
	fmt.Fprintf(&sb, "  TIME %s", formatClock(h.Elapsed()))
	if r := h.PowerUpRemaining(); r > 0 {
		fmt.Fprintf(&sb, "  RAPID %.1fs", r)
	}
	return sb.String()
}

func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (h *HUD) SpawnEntity(Entity) {
	h.entities++
}

func (h *HUD) RemoveEntity(EntityID) {
	if h.entities > 0 {
		h.entities--
	}
}

func (h *HUD) PlayEffect(fx Effect) {
	if fx.Kind == EffectShot {
		return
	}
	life := math.Max(fx.Duration, minEffectTime)
	h.effects = append(h.effects, activeEffect{Effect: fx, until: h.now + life})
}

func (h *HUD) UpdateScore(score int) {
	h.Score = score
}

func (h *HUD) UpdateHealth(health int) {
	h.Health = health
}

func (h *HUD) ShowPowerupCountdown(seconds float64) {
	h.countdownEnd = h.now + seconds
}

func (h *HUD) SignalGameOver() {
	h.GameOver = true
	h.stoppedAt = h.now
}
