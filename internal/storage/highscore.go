package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	highScoreObject   = "savegame"
	highScoreProperty = "high_score"
)

type highScoreRecord struct {
	HighScore int `yaml:"high_score"`
}

// HighScores keeps the single best score in the per-user data directory.
// A nil manager is allowed: nothing persists and Load reports 0.
type HighScores struct {
	manager *gdata.Manager
}

// OpenHighScores opens the data directory for app. On failure it returns a
// degraded HighScores alongside the error, so callers can keep playing.
func OpenHighScores(app string) (*HighScores, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return &HighScores{}, fmt.Errorf("storage: cannot open data dir for %s: %w", app, err)
	}
	return &HighScores{manager: m}, nil
}

// NewHighScores wraps an already opened manager, which may be nil.
func NewHighScores(m *gdata.Manager) *HighScores {
	return &HighScores{manager: m}
}

// Persistent reports whether scores survive a restart.
func (h *HighScores) Persistent() bool {
	return h != nil && h.manager != nil
}

// Load returns the saved best score, or 0 when none was saved.
func (h *HighScores) Load() (int, error) {
	if !h.Persistent() {
		return 0, nil
	}
	if !h.manager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return 0, nil
	}

	data, err := h.manager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}

	var rec highScoreRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: cannot decode high score: %w", err)
	}
	return max(rec.HighScore, 0), nil
}

// Save stores score if it beats the saved one and reports whether it did.
// A corrupt record counts as 0 and is overwritten.
func (h *HighScores) Save(score int) (bool, error) {
	if !h.Persistent() {
		return false, nil
	}

	current, err := h.Load()
	if err != nil {
		current = 0
	}
	if score <= current {
		return false, nil
	}

	data, err := yaml.Marshal(highScoreRecord{HighScore: score})
	if err != nil {
		return false, fmt.Errorf("storage: cannot encode high score: %w", err)
	}
	if err := h.manager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return true, nil
}
