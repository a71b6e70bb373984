package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/registry"
	"github.com/vovakirdan/spacerun/internal/storage"
)

// helpRows is the number of terminal rows below the game screen.
const helpRows = 1

// loggable is implemented by games that can mirror their events to a logger.
type loggable interface {
	SetLogger(*log.Logger)
}

// timed is implemented by games that track their simulated play time.
type timed interface {
	Elapsed() float64
}

// Options carries the optional collaborators of a game session.
type Options struct {
	Store      *storage.Store // Session results; nil disables recording
	Logger     *log.Logger    // Event log; nil disables logging
	Difficulty string         // Preset name recorded with each result
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger != nil {
		if lg, ok := game.(loggable); ok {
			lg.SetLogger(opts.Logger)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// gameRows returns the rows left to the game below the help footer.
func gameRows(termH int) int {
	return max(termH-helpRows, 1)
}

// gameConfig returns the runtime config the game sees.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameRows(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logf("run started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width

	// The scene is sized from the terminal, so a running game restarts.
	if !m.gameState.GameOver {
		m.logf("terminal resized, restarting run", "width", msg.Width, "height", msg.Height)
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		m.logf("run restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.recordResult()
		m.saved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the finished run in the session store.
func (m Model) recordResult() {
	var elapsed float64
	if t, ok := m.game.(timed); ok {
		elapsed = t.Elapsed()
	}
	m.logf("game over", "game", m.game.ID(), "score", m.gameState.Score, "seconds", elapsed)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.RunResult{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Duration:   time.Duration(elapsed * float64(time.Second)),
		Seed:       m.config.Seed,
		Difficulty: m.opts.Difficulty,
	})
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("cannot record run", "err", err)
	}
}

// logf writes an info line when a logger is attached.
func (m Model) logf(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Info(msg, keyvals...)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release drive the touch
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
