package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Autopilot picks inputs from a snapshot: it lines the ship up under the
// lowest live enemy (or the boss) and keeps firing. It reads nothing but the
// snapshot, so a run driven by it is as repeatable as the seed.
func Autopilot(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	switch snap.Phase {
	case StateMenu:
		in.Set(core.ActionConfirm)
		return in
	case StatePlaying:
	default:
		return in
	}

	target, ok := autopilotTarget(snap.Snapshot)
	if !ok {
		return in
	}
	center := snap.Player.X + snap.Player.W/2
	const deadZone = 4.0
	switch {
	case target < center-deadZone:
		in.Set(core.ActionLeft)
	case target > center+deadZone:
		in.Set(core.ActionRight)
	}
	in.Set(core.ActionFire)
	return in
}

// autopilotTarget returns the x the ship should sit under.
func autopilotTarget(s sim.Snapshot) (float64, bool) {
	if s.Boss != nil {
		if !s.Boss.Active {
			return 0, false
		}
		return s.Boss.Rect.X + s.Boss.Rect.W/2, true
	}

	var best *sim.EnemyView
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Active {
			continue
		}
		// Lowest row first, then the left-most column in it.
		if best == nil || e.Row > best.Row || (e.Row == best.Row && e.Col < best.Col) {
			best = e
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Rect.X + best.Rect.W/2, true
}
