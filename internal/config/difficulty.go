package config

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// DifficultyManager tightens the simulation tuning as levels are cleared.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) after cleared levels.
func (d *DifficultyManager) Level(cleared int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "levels" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(cleared)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Tune returns base with the swarm ramps shortened and the boss sped up for
// the difficulty reached after cleared levels. The boss fire interval is
// never scaled.
func (d *DifficultyManager) Tune(base sim.Config, cleared int) sim.Config {
	level := d.Level(cleared)
	s := d.cfg.Scaling
	out := base

	interval := 1.0 - level*clampF(s.IntervalReduction, 0, 0.95)
	out.Swarm.MoveInterval.Full *= interval
	out.Swarm.MoveInterval.Last *= interval

	cooldown := 1.0 - level*clampF(s.CooldownReduction, 0, 0.95)
	out.Swarm.ShootCooldown.Full *= cooldown
	out.Swarm.ShootCooldown.Last *= cooldown

	out.Boss.Speed *= 1.0 + level*s.BossSpeedBoost
	out.Boss.Health += int(math.Round(level * float64(s.BossHealthBonus)))
	return out
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
