package sim

// Boss is the single large enemy of a boss level.
type Boss struct {
	X, Y      float64
	W, H      float64
	Health    int
	MaxHealth int
	Dir       int
	Active    bool

	cfg BossConfig
}

func newBoss(cfg BossConfig, fieldW float64) *Boss {
	return &Boss{
		X:         fieldW/2 - cfg.Width/2,
		Y:         cfg.Y,
		W:         cfg.Width,
		H:         cfg.Height,
		Health:    cfg.Health,
		MaxHealth: cfg.Health,
		Dir:       1,
		Active:    true,
		cfg:       cfg,
	}
}

// Rect returns the boss hitbox.
func (b *Boss) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bonus returns the score awarded for destroying the boss.
func (b *Boss) Bonus() int {
	return b.cfg.Bonus
}

// Damage takes one point of health and reports whether the boss died.
func (b *Boss) Damage() bool {
	if !b.Active {
		return false
	}
	b.Health--
	if b.Health <= 0 {
		b.Active = false
		return true
	}
	return false
}

// advance glides sideways and bounces off both walls.
func (b *Boss) advance(dt, fieldW float64) {
	if !b.Active {
		return
	}
	b.X += float64(b.Dir) * b.cfg.Speed * dt
	if b.X <= 0 {
		b.X = 0
		b.Dir = 1
	} else if b.X+b.W >= fieldW {
		b.X = fieldW - b.W
		b.Dir = -1
	}
}

// shoot fires a three-way spread from the bottom center.
func (b *Boss) shoot(ps *Projectiles) bool {
	if !b.Active {
		return false
	}
	x := b.X + b.W/2 - ps.Width()/2
	y := b.Y + b.H
	ps.Fire(x, y, HeadingDown)
	ps.Fire(x, y, HeadingDownLeft)
	ps.Fire(x, y, HeadingDownRight)
	return true
}
