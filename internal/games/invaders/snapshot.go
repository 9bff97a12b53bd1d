package invaders

import "github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"

// Snapshot is the session state handed to front ends that draw the world
// themselves (PNG export, the graphical window).
type Snapshot struct {
	sim.Snapshot

	Tick      uint64
	Phase     string
	Mode      GameMode
	Levels    int // campaign length, ignored in endless mode
	HighScore int
}

// Snapshot returns a copy of the current session.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tickCount,
		Phase:     g.state,
		Mode:      g.mode,
		Levels:    g.cfg.Rules.Levels,
		HighScore: g.HighScore(),
	}
	if g.world != nil {
		snap.Snapshot = g.world.Snapshot()
	}
	return snap
}
