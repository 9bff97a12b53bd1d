package sim

import (
	"fmt"
	"math/rand"
)

// Mode is the enemy presence of a level: either *Swarm or *Boss.
// Consumers switch on the concrete type; there are no other variants.
type Mode interface {
	isMode()
}

func (*Swarm) isMode() {}
func (*Boss) isMode()  {}

// ModeKind names a formation variant.
type ModeKind string

const (
	KindSwarm ModeKind = "swarm"
	KindBoss  ModeKind = "boss"
)

// KindForLevel returns the formation used by a level: odd levels field a
// swarm, even levels a boss.
func KindForLevel(level int) ModeKind {
	if level%2 == 0 {
		return KindBoss
	}
	return KindSwarm
}

// Formation drives the enemy side of a level.
type Formation struct {
	level      int
	mode       Mode
	shootTimer float64
	rng        *rand.Rand
}

// NewFormation builds the formation for level. rng picks the shooting
// column; it belongs to the session and outlives the formation.
func NewFormation(cfg Config, level int, rng *rand.Rand) (*Formation, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: %d", ErrLevel, level)
	}
	f := &Formation{level: level, rng: rng}
	switch KindForLevel(level) {
	case KindBoss:
		f.mode = newBoss(cfg.Boss, cfg.Field.W)
	default:
		s, err := newSwarm(cfg.Swarm)
		if err != nil {
			return nil, err
		}
		f.mode = s
	}
	return f, nil
}

// Level returns the level this formation was built for.
func (f *Formation) Level() int {
	return f.level
}

// Mode returns the active variant.
func (f *Formation) Mode() Mode {
	return f.mode
}

// Kind returns the name of the active variant.
func (f *Formation) Kind() ModeKind {
	switch f.mode.(type) {
	case *Boss:
		return KindBoss
	case *Swarm:
		return KindSwarm
	}
	return ""
}

// Advance moves the formation.
func (f *Formation) Advance(dt, fieldW float64) {
	if f == nil {
		return
	}
	switch m := f.mode.(type) {
	case *Swarm:
		m.advance(dt, fieldW)
	case *Boss:
		m.advance(dt, fieldW)
	}
}

// AttemptShoot runs the shared fire timer. While the timer is positive it
// only counts down; once it runs out it reloads with the current cooldown
// and the variant picks its shot. Returns true if anything was fired.
func (f *Formation) AttemptShoot(dt float64, ps *Projectiles) bool {
	if f == nil || ps == nil {
		return false
	}
	if f.shootTimer > 0 {
		f.shootTimer -= dt
		return false
	}
	switch m := f.mode.(type) {
	case *Swarm:
		f.shootTimer = m.ShootCooldown
		return m.shoot(f.rng, ps)
	case *Boss:
		f.shootTimer = m.cfg.ShootInterval
		return m.shoot(ps)
	}
	return false
}

// Cleared reports whether the level's enemies are all gone.
func (f *Formation) Cleared() bool {
	if f == nil {
		return true
	}
	switch m := f.mode.(type) {
	case *Swarm:
		return m.Alive == 0
	case *Boss:
		return !m.Active
	}
	return true
}

// Alive returns the number of live enemies (the boss counts as one).
func (f *Formation) Alive() int {
	if f == nil {
		return 0
	}
	switch m := f.mode.(type) {
	case *Swarm:
		return m.Alive
	case *Boss:
		if m.Active {
			return 1
		}
	}
	return 0
}

// Lowest returns the bottom edge of the lowest live enemy, or 0 if none.
func (f *Formation) Lowest() float64 {
	if f == nil {
		return 0
	}
	var low float64
	switch m := f.mode.(type) {
	case *Swarm:
		for i := range m.Enemies {
			e := &m.Enemies[i]
			if e.Active && e.Y+e.H > low {
				low = e.Y + e.H
			}
		}
	case *Boss:
		if m.Active {
			low = m.Y + m.H
		}
	}
	return low
}
