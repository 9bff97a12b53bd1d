package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// The menu and scoreboard list registered games; the stubs stand in for
// the campaign and endless modes.
func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
	registry.Register("stub_endless", func() registry.Game { return &stubGame{title: "Stub Endless"} })
}

// stubGame ends after overAt steps with a fixed score.
type stubGame struct {
	title     string
	resets    int
	steps     int
	overAt    int
	score     int
	best      int
	lastInput core.InputFrame
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string {
	if g.title == "" {
		return "Stub"
	}
	return g.title
}

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = in.Clone()
	g.steps++
	return core.StepResult{State: g.State(), Events: []core.Event{core.EventPlayerShot}}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	over := g.overAt > 0 && g.steps >= g.overAt
	return core.GameState{Score: g.score, Level: 2, GameOver: over, Won: over}
}

func (g *stubGame) SetHighScore(score int) { g.best = score }

type countingObserver struct {
	steps  int
	events int
}

func (o *countingObserver) ObserveStep(_ string, res core.StepResult, _ time.Duration) {
	o.steps++
	o.events += len(res.Events)
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := testStore(t)
	g := &stubGame{overAt: 2, score: 150}
	m := NewModel(g, store, testConfig())
	m.Init()

	for range 5 {
		m, _ = send(t, m, TickMsg{})
	}

	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 150 || scores[0].Level != 2 || !scores[0].Won {
		t.Errorf("saved %+v, expected score 150 level 2 won", scores[0])
	}
	if g.best != 150 {
		t.Errorf("high score = %d, expected 150", g.best)
	}
}

func TestModelSeedsHighScore(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveScore("stub", 500, 1, false); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	g := &stubGame{}
	m := NewModel(g, store, testConfig())
	m.Init()

	if g.best != 500 {
		t.Errorf("high score = %d, expected 500", g.best)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &stubGame{overAt: 1, score: 10}
	m := NewModel(g, nil, testConfig())
	m.Init()
	m, _ = send(t, m, TickMsg{})

	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}
	if g.best != 10 {
		t.Errorf("high score = %d, expected 10", g.best)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
}

func TestModelInputLastsOneTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	m, _ = send(t, m, runeKey("a"))
	m, _ = send(t, m, TickMsg{})
	if !g.lastInput.Has(core.ActionLeft) {
		t.Error("expected left on the first tick")
	}

	m, _ = send(t, m, TickMsg{})
	if !g.lastInput.Empty() {
		t.Errorf("expected empty input on the second tick, got %v", g.lastInput.Actions)
	}
}

func TestModelNotifiesObservers(t *testing.T) {
	obs := &countingObserver{}
	m := NewModel(&stubGame{}, nil, testConfig(), obs)
	m.Init()

	for range 3 {
		m, _ = send(t, m, TickMsg{})
	}
	if obs.steps != 3 || obs.events != 3 {
		t.Errorf("observer saw %d steps and %d events, expected 3 and 3", obs.steps, obs.events)
	}
}

func TestModelBack(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEscape}

	t.Run("ignored while playing", func(t *testing.T) {
		m := NewModel(&stubGame{}, nil, testConfig())
		m.Init()
		m, _ = send(t, m, TickMsg{})
		m, cmd := send(t, m, esc)
		if cmd != nil || m.IsQuitting() || m.BackToMenu() {
			t.Error("back should be ignored while playing")
		}
	})

	t.Run("standalone quits", func(t *testing.T) {
		m := NewModel(&stubGame{overAt: 1}, nil, testConfig())
		m.Init()
		m, _ = send(t, m, TickMsg{})
		m, cmd := send(t, m, esc)
		if cmd == nil || !m.IsQuitting() {
			t.Error("back after game over should quit")
		}
		if m.View() != "" {
			t.Error("quitting model should render nothing")
		}
	})

	t.Run("session returns to menu", func(t *testing.T) {
		m := NewModel(&stubGame{overAt: 1}, nil, testConfig())
		m.inSession = true
		m.Init()
		m, _ = send(t, m, TickMsg{})
		m, _ = send(t, m, esc)
		if !m.BackToMenu() || m.IsQuitting() {
			t.Error("back after game over should return to the menu")
		}
	})
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	m, cmd := send(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testConfig())

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.scores == nil {
		t.Fatal("tab should open the scoreboard")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	if s.scores != nil {
		t.Fatal("esc should close the scoreboard")
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.game == nil {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if s.View() == "" {
		t.Error("game view should not be empty")
	}

	next, _ = s.Update(runeKey("q"))
	s = next.(SessionModel)
	if !s.quitting {
		t.Error("q should end the session")
	}
}
