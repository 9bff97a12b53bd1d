package sim

import (
	"math"
	"math/rand"
)

// Enemy is one cell of the swarm grid.
type Enemy struct {
	X, Y   float64
	W, H   float64
	Score  int
	Active bool
}

// Rect returns the enemy hitbox.
func (e Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Swarm is the standard formation: a grid of enemies that steps sideways
// in lock step and drops a row at each wall. Enemies are stored row-major,
// index = row*Cols + col.
type Swarm struct {
	Rows, Cols int
	Enemies    []Enemy

	Dir           int // +1 right, -1 left
	MoveTimer     float64
	MoveInterval  float64
	ShootCooldown float64
	Alive         int
	Frame         bool // toggled on every step

	cfg SwarmConfig
}

func newSwarm(cfg SwarmConfig) (*Swarm, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, ErrGrid
	}
	s := &Swarm{
		Rows:          cfg.Rows,
		Cols:          cfg.Cols,
		Enemies:       make([]Enemy, cfg.Rows*cfg.Cols),
		Dir:           1,
		MoveInterval:  cfg.MoveInterval.Full,
		ShootCooldown: cfg.ShootCooldown.Full,
		Alive:         cfg.Rows * cfg.Cols,
		cfg:           cfg,
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			s.Enemies[row*cfg.Cols+col] = Enemy{
				X:      cfg.StartX + float64(col)*(cfg.EnemyWidth+cfg.Padding),
				Y:      cfg.StartY + float64(row)*(cfg.EnemyHeight+cfg.Padding),
				W:      cfg.EnemyWidth,
				H:      cfg.EnemyHeight,
				Score:  cfg.KillScore,
				Active: true,
			}
		}
	}
	return s, nil
}

// At returns the enemy at (row, col), or nil outside the grid.
func (s *Swarm) At(row, col int) *Enemy {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return nil
	}
	return &s.Enemies[row*s.Cols+col]
}

// Total returns the grid capacity.
func (s *Swarm) Total() int {
	return len(s.Enemies)
}

// Kill deactivates enemy i and keeps the alive count in step.
func (s *Swarm) Kill(i int) {
	if i < 0 || i >= len(s.Enemies) || !s.Enemies[i].Active {
		return
	}
	s.Enemies[i].Active = false
	s.Alive--
}

// retune recounts the living and moves both timers along their ramps.
func (s *Swarm) retune() {
	alive := 0
	for i := range s.Enemies {
		if s.Enemies[i].Active {
			alive++
		}
	}
	s.Alive = alive
	ratio := float64(alive) / float64(len(s.Enemies))
	s.MoveInterval = s.cfg.MoveInterval.At(ratio)
	s.ShootCooldown = s.cfg.ShootCooldown.At(ratio)
}

// Edges returns the left and right x the swarm turns on.
func (s *Swarm) Edges() (left, right float64) {
	if s.cfg.Edges == EdgeBoundingBox {
		left, right = math.Inf(1), math.Inf(-1)
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if !e.Active {
				continue
			}
			left = min(left, e.X)
			right = max(right, e.X+e.W)
		}
		if left <= right {
			return left, right
		}
	}
	first := &s.Enemies[0]
	last := &s.Enemies[s.Cols-1]
	return first.X, last.X + last.W
}

func (s *Swarm) advance(dt, fieldW float64) {
	s.retune()

	s.MoveTimer += dt
	if s.MoveTimer < s.MoveInterval {
		return
	}
	s.MoveTimer = 0
	s.Frame = !s.Frame

	left, right := s.Edges()
	hit := (s.Dir == 1 && right >= fieldW) || (s.Dir == -1 && left <= 0)
	if hit {
		s.Dir = -s.Dir
		for i := range s.Enemies {
			s.Enemies[i].Y += s.cfg.Drop
		}
		return
	}
	step := s.cfg.StepX * float64(s.Dir)
	for i := range s.Enemies {
		s.Enemies[i].X += step
	}
}

// shoot picks a random column and walks the columns circularly from it.
// The first column with a live enemy fires from its lowest one.
func (s *Swarm) shoot(rng *rand.Rand, ps *Projectiles) bool {
	start := 0
	if rng != nil {
		start = rng.Intn(s.Cols)
	}
	for i := 0; i < s.Cols; i++ {
		col := (start + i) % s.Cols
		for row := s.Rows - 1; row >= 0; row-- {
			e := &s.Enemies[row*s.Cols+col]
			if !e.Active {
				continue
			}
			x := e.X + e.W/2 - ps.Width()/2
			ps.Fire(x, e.Y+e.H, HeadingDown)
			return true
		}
	}
	return false
}
