// Package spacerun implements SpaceRun, a vertical space shooter: the ship
// homes toward the pointer and fires while it is held, obstacles fall from
// the top and power-ups heal the ship or boost its fire rate.
package spacerun

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/registry"
)

// Minimum playable screen in cells.
const (
	minScreenW = 30
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts the GameLoop to the fixed-tick platform. Frame timestamps are
// derived from the tick counter so a seed fully determines a run.
type Game struct {
	timed bool // Time-based spawn pacing

	loop *GameLoop
	hud  *HUD

	runtime   core.RuntimeConfig
	cfg       config.SpaceRunConfig
	tickCount int
	paused    bool

	// Keyboard aiming: a cursor in cells and a latched touch.
	aimX, aimY int
	keyTouch   bool

	screenTooSmall bool

	logger *log.Logger // Optional event log fed alongside the HUD
}

// New creates a SpaceRun game with per-frame spawn pacing.
func New() *Game {
	return &Game{}
}

// NewTimed creates a SpaceRun game whose spawn chance scales with frame time.
func NewTimed() *Game {
	return &Game{timed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.timed {
		return "spacerun_timed"
	}
	return "spacerun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.timed {
		return "SpaceRun (Timed Spawns)"
	}
	return "SpaceRun"
}

// SetLogger mirrors simulation events to logger from the next reset on.
// A nil logger detaches it.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSpaceRun(configPath)
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("config fallback", "err", err)
		}
		cfg = config.DefaultSpaceRunConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.timed {
		cfg.Spawn.Mode = config.SpawnModeTime
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the game with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.SpaceRunConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = cfg
	g.tickCount = 0
	g.paused = false
	g.keyTouch = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	width, height := g.sceneSize()
	if g.hud == nil {
		g.hud = NewHUD()
	}
	g.hud.Reset()
	var presenter Presenter = g.hud
	if g.logger != nil {
		presenter = Presenters{g.hud, NewLogPresenter(g.logger)}
	}
	g.loop = NewGameLoop(cfg, width, height, runtime.Seed, presenter)

	g.aimX = runtime.ScreenW / 2
	g.aimY = cfg.Scene.HUDRows + g.playRows()/2
}

// playRows returns the number of cell rows below the HUD.
func (g *Game) playRows() int {
	return max(g.runtime.ScreenH-g.cfg.Scene.HUDRows, 1)
}

// sceneSize returns the playfield in scene units.
func (g *Game) sceneSize() (float64, float64) {
	return float64(g.runtime.ScreenW) * g.cfg.Scene.CellWidth,
		float64(g.playRows()) * g.cfg.Scene.CellHeight
}

// CellToScene converts a cell to the scene point at its centre.
func (g *Game) CellToScene(x, y int) core.Vec {
	row := y - g.cfg.Scene.HUDRows
	return core.Vec{
		X: (float64(x) + 0.5) * g.cfg.Scene.CellWidth,
		Y: (float64(g.playRows()-row) - 0.5) * g.cfg.Scene.CellHeight,
	}
}

// SceneToCell converts a scene point to the cell containing it.
func (g *Game) SceneToCell(v core.Vec) (int, int) {
	x := int(math.Floor(v.X / g.cfg.Scene.CellWidth))
	row := g.playRows() - 1 - int(math.Floor(v.Y/g.cfg.Scene.CellHeight))
	return x, row + g.cfg.Scene.HUDRows
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.loop.GameOver() {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.loop.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyPointer(in.Pointer)
	g.applyKeys(in)

	g.tickCount++
	now := float64(g.tickCount) / float64(g.runtime.TickRate)
	g.hud.Advance(now)
	g.loop.OnFrameTick(now)

	return core.StepResult{State: g.State()}
}

// applyPointer turns mouse events into touches.
func (g *Game) applyPointer(p core.Pointer) {
	switch p.Kind {
	case core.PointerPress:
		g.keyTouch = false
		g.aimX, g.aimY = p.X, p.Y
		g.loop.OnTouchBegin(g.CellToScene(p.X, p.Y))
	case core.PointerDrag:
		g.aimX, g.aimY = p.X, p.Y
		g.loop.OnTouchMove(g.CellToScene(p.X, p.Y))
	case core.PointerRelease:
		g.loop.OnTouchEnd()
	}
}

// applyKeys moves the aim cursor and latches a touch with Fire.
func (g *Game) applyKeys(in core.InputFrame) {
	moved := false
	if in.Has(core.ActionLeft) && g.aimX > 0 {
		g.aimX--
		moved = true
	}
	if in.Has(core.ActionRight) && g.aimX < g.runtime.ScreenW-1 {
		g.aimX++
		moved = true
	}
	if in.Has(core.ActionUp) && g.aimY > g.cfg.Scene.HUDRows {
		g.aimY--
		moved = true
	}
	if in.Has(core.ActionDown) && g.aimY < g.runtime.ScreenH-1 {
		g.aimY++
		moved = true
	}

	if in.Has(core.ActionFire) {
		g.keyTouch = !g.keyTouch
		if g.keyTouch {
			g.loop.OnTouchBegin(g.CellToScene(g.aimX, g.aimY))
		} else {
			g.loop.OnTouchEnd()
		}
		return
	}
	if moved && g.keyTouch {
		g.loop.OnTouchMove(g.CellToScene(g.aimX, g.aimY))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.loop == nil {
		return core.GameState{}
	}
	p := g.loop.Player()
	return core.GameState{
		Score:    p.Score,
		Lives:    p.Health,
		GameOver: g.loop.GameOver(),
		Paused:   g.paused,
	}
}

// Elapsed returns the simulated play time of the current run in seconds.
// The clock stops at game over.
func (g *Game) Elapsed() float64 {
	if g.hud == nil {
		return 0
	}
	return g.hud.Elapsed()
}

// Loop returns the underlying simulation.
func (g *Game) Loop() *GameLoop {
	return g.loop
}

// HUD returns the presenter the game renders from.
func (g *Game) HUD() *HUD {
	return g.hud
}

// Register the games with the registry
func init() {
	registry.Register("spacerun", func() registry.Game {
		return New()
	})
	registry.Register("spacerun_timed", func() registry.Game {
		return NewTimed()
	})
}
