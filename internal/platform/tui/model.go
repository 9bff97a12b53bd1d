package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/raster"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// StepObserver is told about every simulation step. Sound and metrics hook
// into the loop through it.
type StepObserver interface {
	ObserveStep(gameID string, res core.StepResult, elapsed time.Duration)
}

// highScorer is implemented by games that show a stored best score.
type highScorer interface {
	SetHighScore(score int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	observers  []StepObserver
	inputFrame *core.InputFrame
	gameState  core.GameState
	inSession  bool // Back returns to the session menu instead of quitting
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, observers ...StepObserver) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	frame := core.NewInputFrame()

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		observers:  observers,
		inputFrame: &frame,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedHighScore(0)
	return tickCmd(m.config)
}

// seedHighScore hands the stored best score (or score, if higher) to the game.
func (m Model) seedHighScore(score int) {
	hs, ok := m.game.(highScorer)
	if !ok {
		return
	}
	best := score
	if m.store != nil {
		if stored, err := m.store.HighScore(m.game.ID()); err == nil {
			best = max(best, stored)
		}
	}
	hs.SetHighScore(best)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in flight.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		if m.inSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game maps its field onto
// whatever screen it is given, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := time.Now()
	result := m.game.Step(*m.inputFrame)
	elapsed := time.Since(start)

	for _, o := range m.observers {
		o.ObserveStep(m.game.ID(), result, elapsed)
	}
	m.gameState = result.State

	// Save score on game over (once)
	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level, m.gameState.Won)
		}
		m.seedHighScore(m.gameState.Score)
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config)
}

// screenshotDir is where ctrl+s writes its files.
func screenshotDir() string {
	return filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
}

// saveScreenshot saves the current screen as text and, for games that
// expose a snapshot, as a PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := screenshotDir()
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	base := fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405"))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, base+".txt"), []byte(m.screen.String()), 0o600)

	if s, ok := m.game.(raster.Snapshotter); ok {
		//nolint:errcheck // Best-effort save, game continues regardless
		raster.SavePNG(filepath.Join(dir, base+".png"), s.Snapshot())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, observers ...StepObserver) error {
	model := NewModel(game, store, cfg, observers...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
