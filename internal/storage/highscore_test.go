package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// openTestHighScores opens a throwaway data directory, or skips when the
// environment has no usable home directory.
func openTestHighScores(t *testing.T, name string) *HighScores {
	t.Helper()
	app := fmt.Sprintf("invaders_test_%s_%d", name, time.Now().UnixNano())
	h, err := OpenHighScores(app)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", app))
		}
	})
	return h
}

func TestHighScoresSaveOnlyIfHigher(t *testing.T) {
	h := openTestHighScores(t, "higher")

	got, err := h.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("fresh Load() = %d, expected 0", got)
	}

	steps := []struct {
		score     int
		wantSaved bool
		wantHigh  int
	}{
		{1000, true, 1000},
		{500, false, 1000},
		{1000, false, 1000},
		{1300, true, 1300},
	}
	for _, s := range steps {
		saved, err := h.Save(s.score)
		if err != nil {
			t.Fatalf("Save(%d) failed: %v", s.score, err)
		}
		if saved != s.wantSaved {
			t.Errorf("Save(%d) = %v, expected %v", s.score, saved, s.wantSaved)
		}
		high, err := h.Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if high != s.wantHigh {
			t.Errorf("after Save(%d) high = %d, expected %d", s.score, high, s.wantHigh)
		}
	}
}

func TestHighScoresDegraded(t *testing.T) {
	h := NewHighScores(nil)
	if h.Persistent() {
		t.Error("nil manager should not be persistent")
	}
	saved, err := h.Save(100)
	if err != nil || saved {
		t.Errorf("Save() = %v, %v; expected false, nil", saved, err)
	}
	got, err := h.Load()
	if err != nil || got != 0 {
		t.Errorf("Load() = %d, %v; expected 0, nil", got, err)
	}

	var none *HighScores
	if none.Persistent() {
		t.Error("nil HighScores should not be persistent")
	}
}
