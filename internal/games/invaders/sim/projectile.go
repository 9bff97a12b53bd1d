package sim

// Heading is the launch direction of a projectile.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingDownLeft
	HeadingDownRight
)

// Projectile is a bullet in flight. The sign of VY tells who fired it:
// negative for the player, positive for the formation.
type Projectile struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Rect returns the projectile hitbox.
func (p Projectile) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Friendly reports whether the player fired this projectile.
func (p Projectile) Friendly() bool {
	return p.VY < 0
}

// Hostile reports whether the formation fired this projectile.
func (p Projectile) Hostile() bool {
	return p.VY > 0
}

// Projectiles is the bullet pool shared by the player and the formation.
type Projectiles struct {
	pool *Pool[Projectile]
	cfg  ProjectileConfig
}

// NewProjectiles allocates the pool described by cfg.
func NewProjectiles(cfg ProjectileConfig) (*Projectiles, error) {
	pool, err := NewPool[Projectile](cfg.Capacity)
	if err != nil {
		return nil, err
	}
	return &Projectiles{pool: pool, cfg: cfg}, nil
}

// Fire launches a projectile with its top-left corner at (x, y).
// Returns false if the pool was full and the shot was dropped.
func (ps *Projectiles) Fire(x, y float64, h Heading) bool {
	if ps == nil {
		return false
	}
	p := Projectile{X: x, Y: y, W: ps.cfg.Width, H: ps.cfg.Height}
	switch h {
	case HeadingUp:
		p.VY = -ps.cfg.Speed
	case HeadingDown:
		p.VY = ps.cfg.Speed
	case HeadingDownLeft:
		p.VX = -ps.cfg.DiagonalVX
		p.VY = ps.cfg.Speed
	case HeadingDownRight:
		p.VX = ps.cfg.DiagonalVX
		p.VY = ps.cfg.Speed
	}
	_, ok := ps.pool.Spawn(p)
	return ok
}

// Advance moves every projectile by its velocity and releases those that
// left the field.
func (ps *Projectiles) Advance(dt float64, field Field) {
	if ps == nil {
		return
	}
	for i, p := range ps.pool.All() {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if !field.Contains(p.X, p.Y) {
			ps.pool.Release(i)
		}
	}
}

// Release consumes projectile i.
func (ps *Projectiles) Release(i int) {
	if ps == nil {
		return
	}
	ps.pool.Release(i)
}

// Clear removes every projectile in flight.
func (ps *Projectiles) Clear() {
	if ps == nil {
		return
	}
	ps.pool.Clear()
}

// Pool exposes the underlying slots for iteration.
func (ps *Projectiles) Pool() *Pool[Projectile] {
	if ps == nil {
		return nil
	}
	return ps.pool
}

// Width returns the configured projectile width.
func (ps *Projectiles) Width() float64 {
	return ps.cfg.Width
}
