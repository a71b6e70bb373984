package spacerun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spacerun/internal/core"
)

// Visual characters for rendering
const (
	ShipChar       = '▲'
	AsteroidChar   = '@'
	EnemyChar      = 'V'
	ProjectileChar = '|'
	WeaponsChar    = 'W'
	HealthChar     = '+'
	DimStarChar    = '·'
	StarChar       = '.'
	ExplosionChar  = '*'
	WreckChar      = '#'
	AimChar        = 'x'
	BorderHoriz    = '─'
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderAim(dst)

	reg := g.loop.Registry()
	for _, c := range []Category{CategoryStar, CategoryHealthPowerUp, CategoryWeaponPowerUp, CategoryObstacle, CategoryProjectile, CategoryShip} {
		for _, e := range reg.ByCategory(c) {
			g.renderEntity(dst, e)
		}
	}

	g.renderEffects(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the status line and the separator under it.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.hud.StatusLine(g.cfg.Ship.MaxHealth), core.ColorBrightWhite)

	label := g.Title()
	if g.paused {
		label = "PAUSED"
	}
	dst.DrawTextColored(dst.Width()-len([]rune(label))-1, 0, label, core.ColorGray)

	for y := 1; y < g.cfg.Scene.HUDRows; y++ {
		for x := range dst.Width() {
			dst.SetColored(x, y, BorderHoriz, core.ColorDarkGray)
		}
	}
}

// renderAim draws the keyboard aim cursor.
func (g *Game) renderAim(dst *core.Screen) {
	if g.loop.GameOver() {
		return
	}
	color := core.ColorDarkGray
	if g.keyTouch {
		color = core.ColorBrightWhite
	}
	dst.SetColored(g.aimX, g.aimY, AimChar, color)
}

// glyphFor returns the glyph and colour of an entity.
func glyphFor(e *Entity) (rune, core.Color) {
	switch e.Category {
	case CategoryShip:
		return ShipChar, core.ColorBrightCyan
	case CategoryObstacle:
		if e.Kind == KindEnemy {
			return EnemyChar, core.ColorBrightRed
		}
		return AsteroidChar, core.ColorOrange
	case CategoryProjectile:
		return ProjectileChar, core.ColorBrightYellow
	case CategoryWeaponPowerUp:
		return WeaponsChar, core.ColorMagenta
	case CategoryHealthPowerUp:
		return HealthChar, core.ColorGreen
	case CategoryStar:
		if e.Alpha < 0.5 {
			return DimStarChar, core.ColorDarkGray
		}
		return StarChar, core.ColorGray
	default:
		return '?', core.ColorDefault
	}
}

// shipColor tints the ship by its forcefield: yellow at 4 health, orange
// at 3, red at 2, none below.
func shipColor(health int) core.Color {
	switch {
	case health >= 4:
		return core.ColorYellow
	case health == 3:
		return core.ColorOrange
	case health == 2:
		return core.ColorRed
	default:
		return core.ColorBrightCyan
	}
}

// renderEntity fills the cells an entity covers. Every visible entity
// occupies at least its centre cell.
func (g *Game) renderEntity(dst *core.Screen, e *Entity) {
	ch, color := glyphFor(e)
	if e.Category == CategoryShip {
		color = shipColor(g.loop.Player().Health)
	}
	if e.Category == CategoryStar {
		g.plot(dst, e.Pos, ch, color)
		return
	}
	g.fill(dst, e.Bounds(), ch, color)
	g.plot(dst, e.Pos, ch, color)
}

// renderEffects draws explosions that are still dying out.
func (g *Game) renderEffects(dst *core.Screen) {
	for _, fx := range g.hud.Effects() {
		switch fx.Kind {
		case EffectShipExplode:
			g.fill(dst, core.BoxAround(fx.Pos, g.cfg.Ship.Width, g.cfg.Ship.Height), WreckChar, core.ColorBrightRed)
		case EffectObstacleExplode:
			g.plot(dst, fx.Pos, ExplosionChar, core.ColorBrightRed)
		case EffectExplosion:
			color := core.ColorBrightYellow
			if fx.Duration > shortExplosion {
				color = core.ColorOrange
			}
			g.plot(dst, fx.Pos, ExplosionChar, color)
		}
	}
}

// renderOverlay draws the pause and game over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	centerY := dst.Height() / 2
	switch {
	case g.loop.GameOver():
		dst.DrawTextCentered(centerY-1, "GAME OVER")
		dst.DrawTextCentered(centerY, fmt.Sprintf("Score: %d  Time: %s", g.hud.Score, formatClock(g.hud.Elapsed())))
		dst.DrawTextCentered(centerY+2, "R restart · Esc menu")
	case g.paused:
		dst.DrawTextCentered(centerY, "PAUSED - press P")
	case g.tickCount == 0:
		dst.DrawTextCentered(centerY+2, "Hold the mouse button or press Space to fly and fire")
	}
}

// plot draws one glyph at the cell containing a scene point.
func (g *Game) plot(dst *core.Screen, p core.Vec, ch rune, color core.Color) {
	x, y := g.SceneToCell(p)
	if y < g.cfg.Scene.HUDRows {
		return
	}
	dst.SetColored(x, y, ch, color)
}

// fill draws a glyph on every cell a scene box overlaps.
func (g *Game) fill(dst *core.Screen, b core.Box, ch rune, color core.Color) {
	cw, chh := g.cfg.Scene.CellWidth, g.cfg.Scene.CellHeight
	x0 := int(math.Floor(b.Min.X / cw))
	x1 := int(math.Ceil(b.Max.X/cw)) - 1
	top := g.playRows() - int(math.Ceil(b.Max.Y/chh)) + g.cfg.Scene.HUDRows
	bottom := g.playRows() - 1 - int(math.Floor(b.Min.Y/chh)) + g.cfg.Scene.HUDRows

	for y := max(top, g.cfg.Scene.HUDRows); y <= bottom; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, ch, color)
		}
	}
}
