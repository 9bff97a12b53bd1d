package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name string
		sum  storage.Summary
		want string
	}{
		{"no runs", storage.Summary{}, "no runs yet"},
		{
			"campaign",
			storage.Summary{Runs: 3, Best: 1200, BestLevel: 3, Won: 1, Lost: 2},
			"best 1200   deepest level 3   won 1   lost 2",
		},
		{
			"endless",
			storage.Summary{Runs: 2, Best: 4000, BestLevel: 7, Lost: 2},
			"best 4000   deepest level 7   won 0   lost 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summaryLine(tt.sum); got != tt.want {
				t.Errorf("summaryLine() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestScoreboardSwitchesMode(t *testing.T) {
	store := testStore(t)
	for _, r := range []struct {
		game  string
		score int
		level int
		won   bool
	}{
		{"stub", 900, 3, true},
		{"stub", 300, 1, false},
		{"stub_endless", 4000, 7, false},
	} {
		if _, err := store.SaveScore(r.game, r.score, r.level, r.won); err != nil {
			t.Fatalf("save score: %v", err)
		}
	}

	tests := []struct {
		name     string
		key      tea.KeyMsg
		wantMode string
		want     storage.Summary
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "stub_endless", storage.Summary{Runs: 1, Best: 4000, BestLevel: 7, Lost: 1}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, "stub_endless", storage.Summary{Runs: 1, Best: 4000, BestLevel: 7, Lost: 1}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, "stub_endless", storage.Summary{Runs: 1, Best: 4000, BestLevel: 7, Lost: 1}},
		{"scroll", tea.KeyMsg{Type: tea.KeyDown}, "stub", storage.Summary{Runs: 2, Best: 900, BestLevel: 3, Won: 1, Lost: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(store, 80, 24)
			next, _ := m.Update(tt.key)
			m = next.(ScoreboardModel)

			if got := m.modes[m.mode].ID; got != tt.wantMode {
				t.Errorf("mode = %q, expected %q", got, tt.wantMode)
			}
			if m.summary != tt.want {
				t.Errorf("summary = %+v, expected %+v", m.summary, tt.want)
			}
			if len(m.scores) != tt.want.Runs {
				t.Errorf("listed %d runs, expected %d", len(m.scores), tt.want.Runs)
			}
			if !strings.Contains(m.View(), summaryLine(tt.want)) {
				t.Error("view should show the mode summary")
			}
		})
	}
}

func TestScoreboardLeaves(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, true, false},
		{"b", runeKey("b"), true, false},
		{"q", runeKey("q"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, 80, 24)
			next, cmd := m.Update(tt.key)
			m = next.(ScoreboardModel)
			if m.IsGoingBack() != tt.back || m.IsQuitting() != tt.quitting {
				t.Errorf("back=%v quitting=%v, expected back=%v quitting=%v",
					m.IsGoingBack(), m.IsQuitting(), tt.back, tt.quitting)
			}
			if cmd == nil {
				t.Error("leaving should end the program")
			}
		})
	}
}
