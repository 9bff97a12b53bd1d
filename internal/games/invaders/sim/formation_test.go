package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRampBounds(t *testing.T) {
	r := Ramp{Full: 1.0, Last: 0.05}
	tests := []struct {
		ratio float64
		want  float64
	}{
		{1.0, 1.0},
		{0.0, 0.05},
		{0.5, 0.525},
		{2.0, 1.0},
		{-1.0, 0.05},
	}
	for _, tt := range tests {
		if got := r.At(tt.ratio); !approx(got, tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestMoveIntervalShrinksAsEnemiesDie(t *testing.T) {
	w := newWorld(t, nil)
	s := swarmOf(t, w)

	w.Formation.Advance(0, 800)
	if s.MoveInterval != 1.0 {
		t.Fatalf("full-strength interval = %v, want 1.0", s.MoveInterval)
	}
	if s.ShootCooldown != 1.5 {
		t.Fatalf("full-strength cooldown = %v, want 1.5", s.ShootCooldown)
	}

	prev := s.MoveInterval
	for i := 0; i < s.Total()-1; i++ {
		s.Kill(i)
		w.Formation.Advance(0, 800)
		if s.MoveInterval >= prev {
			t.Fatalf("after %d kills interval %v did not drop below %v", i+1, s.MoveInterval, prev)
		}
		prev = s.MoveInterval
	}
	want := 0.05 + 0.95/float64(s.Total())
	if !approx(prev, want) {
		t.Errorf("last-survivor interval = %v, want %v", prev, want)
	}
}

func TestSwarmStepsSideways(t *testing.T) {
	w := newWorld(t, nil)
	s := swarmOf(t, w)
	x0, y0 := s.Enemies[0].X, s.Enemies[0].Y

	w.Formation.Advance(0.5, 800)
	if s.Enemies[0].X != x0 {
		t.Fatal("swarm moved before the interval elapsed")
	}
	w.Formation.Advance(0.5, 800)
	if s.Enemies[0].X != x0+10 || s.Enemies[0].Y != y0 {
		t.Errorf("enemy 0 at (%v, %v), want (%v, %v)", s.Enemies[0].X, s.Enemies[0].Y, x0+10, y0)
	}
	if !s.Frame {
		t.Error("animation flag not toggled on step")
	}
	if s.MoveTimer != 0 {
		t.Errorf("move timer = %v, want reset to 0", s.MoveTimer)
	}
}

func TestSwarmFlipsAndDropsAtRightWall(t *testing.T) {
	w := newWorld(t, nil)
	s := swarmOf(t, w)

	right := s.Enemies[s.Cols-1].X + s.Enemies[s.Cols-1].W
	shift := 800 - right
	for i := range s.Enemies {
		s.Enemies[i].X += shift
	}
	before := make([]Enemy, len(s.Enemies))
	copy(before, s.Enemies)

	w.Formation.Advance(1.0, 800)

	if s.Dir != -1 {
		t.Errorf("direction = %d, want -1", s.Dir)
	}
	for i := range s.Enemies {
		if s.Enemies[i].X != before[i].X {
			t.Fatalf("enemy %d x moved %v -> %v on a drop", i, before[i].X, s.Enemies[i].X)
		}
		if s.Enemies[i].Y != before[i].Y+20 {
			t.Fatalf("enemy %d y = %v, want %v", i, s.Enemies[i].Y, before[i].Y+20)
		}
	}
}

func TestSwarmEdgeModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     EdgeMode
		wantDrop bool
	}{
		// Slot COLS-1 is dead but still counts as the right edge.
		{"slots", EdgeSlots, true},
		{"bounding box", EdgeBoundingBox, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t, func(c *Config) { c.Swarm.Edges = tt.mode })
			s := swarmOf(t, w)

			right := s.Enemies[s.Cols-1].X + s.Enemies[s.Cols-1].W
			for i := range s.Enemies {
				s.Enemies[i].X += 800 - right
			}
			for row := 0; row < s.Rows; row++ {
				s.Kill(row*s.Cols + s.Cols - 1)
			}
			y0 := s.Enemies[0].Y

			w.Formation.Advance(1.0, 800)

			dropped := s.Enemies[0].Y == y0+20
			if dropped != tt.wantDrop {
				t.Errorf("dropped = %v, want %v", dropped, tt.wantDrop)
			}
		})
	}
}

func TestParseEdgeMode(t *testing.T) {
	for in, want := range map[string]EdgeMode{
		"":             EdgeSlots,
		"slots":        EdgeSlots,
		"bounding_box": EdgeBoundingBox,
	} {
		got, err := ParseEdgeMode(in)
		if err != nil || got != want {
			t.Errorf("ParseEdgeMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseEdgeMode("diagonal"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestSwarmShootWithNoSurvivors(t *testing.T) {
	w := newWorld(t, nil)
	s := swarmOf(t, w)
	for i := range s.Enemies {
		s.Kill(i)
	}
	if s.Alive != 0 {
		t.Fatalf("alive = %d", s.Alive)
	}

	if w.Formation.AttemptShoot(0.016, w.Projectiles) {
		t.Error("empty swarm fired")
	}
	if w.Projectiles.Pool().Len() != 0 {
		t.Errorf("pool changed: %d active", w.Projectiles.Pool().Len())
	}
	if !w.Formation.Cleared() {
		t.Error("empty swarm not cleared")
	}
}

func TestSwarmShootsFromLowestInColumn(t *testing.T) {
	w := newWorld(t, nil)
	s := swarmOf(t, w)

	if !w.Formation.AttemptShoot(0.016, w.Projectiles) {
		t.Fatal("full swarm did not fire")
	}
	shots := projectiles(w)
	if len(shots) != 1 {
		t.Fatalf("got %d shots, want 1", len(shots))
	}
	bottom := s.Enemies[(s.Rows-1)*s.Cols]
	if shots[0].Y != bottom.Y+bottom.H || shots[0].VY <= 0 {
		t.Errorf("shot %+v did not leave the bottom row moving down", shots[0])
	}

	// Timer reloaded: the next attempt only counts down.
	if w.Formation.AttemptShoot(0.016, w.Projectiles) {
		t.Error("fired again before cooldown")
	}
}

func TestSwarmShootWrapsToOnlySurvivor(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultConfig()
		f, err := NewFormation(cfg, 1, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		ps, _ := NewProjectiles(cfg.Projectiles)
		s := f.Mode().(*Swarm)
		keep := 0*s.Cols + 5
		for i := range s.Enemies {
			if i != keep {
				s.Kill(i)
			}
		}

		if !f.AttemptShoot(0, ps) {
			t.Fatalf("seed %d: survivor did not fire", seed)
		}
		shot := ps.Pool().Get(0)
		e := s.Enemies[keep]
		if shot.X != e.X+e.W/2-2.5 || shot.Y != e.Y+e.H {
			t.Errorf("seed %d: shot at (%v, %v), want (%v, %v)", seed, shot.X, shot.Y, e.X+e.W/2-2.5, e.Y+e.H)
		}
	}
}

func TestSwarmTargetingIsSeeded(t *testing.T) {
	columns := func(seed int64) []float64 {
		cfg := DefaultConfig()
		cfg.Projectiles.Capacity = 64
		f, _ := NewFormation(cfg, 1, rand.New(rand.NewSource(seed)))
		ps, _ := NewProjectiles(cfg.Projectiles)
		var xs []float64
		for range 10 {
			ps.Clear()
			f.AttemptShoot(10, ps) // fires
			f.AttemptShoot(10, ps) // counts the timer below zero
			xs = append(xs, ps.Pool().Get(0).X)
		}
		return xs
	}
	a, b := columns(7), columns(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shot %d differs between equal seeds: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBossBouncesOffWalls(t *testing.T) {
	w := newWorld(t, nil)
	if err := w.StartLevel(2); err != nil {
		t.Fatal(err)
	}
	b := bossOf(t, w)
	if b.X != 368 || b.Y != 80 || b.Health != 20 {
		t.Fatalf("boss start = (%v, %v) hp %d", b.X, b.Y, b.Health)
	}

	w.Formation.Advance(0.1, 800)
	if !approx(b.X, 383) {
		t.Errorf("boss x = %v, want 383 after continuous move", b.X)
	}

	b.X = 800 - b.W - 1
	w.Formation.Advance(0.1, 800)
	if b.X != 800-b.W || b.Dir != -1 {
		t.Errorf("right wall: x=%v dir=%d", b.X, b.Dir)
	}

	b.X = 1
	w.Formation.Advance(0.1, 800)
	if b.X != 0 || b.Dir != 1 {
		t.Errorf("left wall: x=%v dir=%d", b.X, b.Dir)
	}
}

func TestBossFiresSpread(t *testing.T) {
	w := newWorld(t, nil)
	w.StartLevel(2)
	b := bossOf(t, w)

	if !w.Formation.AttemptShoot(0.016, w.Projectiles) {
		t.Fatal("boss did not fire")
	}
	shots := projectiles(w)
	if len(shots) != 3 {
		t.Fatalf("got %d shots, want 3", len(shots))
	}
	wantVX := []float64{0, -150, 150}
	for i, s := range shots {
		if s.VX != wantVX[i] || s.VY != 500 {
			t.Errorf("shot %d velocity (%v, %v)", i, s.VX, s.VY)
		}
		if s.X != b.X+b.W/2-2.5 || s.Y != b.Y+b.H {
			t.Errorf("shot %d origin (%v, %v)", i, s.X, s.Y)
		}
	}
}

func TestFormationKinds(t *testing.T) {
	cfg := DefaultConfig()
	for level, want := range map[int]ModeKind{1: KindSwarm, 2: KindBoss, 3: KindSwarm, 4: KindBoss} {
		f, err := NewFormation(cfg, level, nil)
		if err != nil {
			t.Fatal(err)
		}
		if f.Kind() != want {
			t.Errorf("level %d kind = %s, want %s", level, f.Kind(), want)
		}
	}
	if _, err := NewFormation(cfg, 0, nil); !errors.Is(err, ErrLevel) {
		t.Errorf("level 0 error = %v", err)
	}
}
