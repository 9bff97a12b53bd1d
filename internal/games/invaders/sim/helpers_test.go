package sim

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// newWorld builds a world from the default tuning after applying tweak.
func newWorld(t *testing.T, tweak func(*Config)) *World {
	t.Helper()
	cfg := DefaultConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	w, err := NewWorld(cfg, 42)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func swarmOf(t *testing.T, w *World) *Swarm {
	t.Helper()
	s, ok := w.Formation.Mode().(*Swarm)
	if !ok {
		t.Fatalf("formation is %T, want *Swarm", w.Formation.Mode())
	}
	return s
}

func bossOf(t *testing.T, w *World) *Boss {
	t.Helper()
	b, ok := w.Formation.Mode().(*Boss)
	if !ok {
		t.Fatalf("formation is %T, want *Boss", w.Formation.Mode())
	}
	return b
}

func noShields(c *Config) {
	c.Shields.Count = 0
}

func projectiles(w *World) []Projectile {
	var out []Projectile
	for _, p := range w.Projectiles.Pool().All() {
		out = append(out, *p)
	}
	return out
}
