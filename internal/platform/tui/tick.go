// Package tui runs Space Invaders in a terminal with Bubble Tea, locally or
// for each SSH session of the wish server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TickMsg advances the simulation by one fixed step.
type TickMsg time.Time

// tickInterval is the wall time of one simulation step. It follows
// RuntimeConfig.DT, so a missing tick rate still runs at 60 Hz.
func tickInterval(cfg core.RuntimeConfig) time.Duration {
	return time.Duration(cfg.DT() * float64(time.Second))
}

// tickCmd schedules the next simulation step.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(tickInterval(cfg), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
