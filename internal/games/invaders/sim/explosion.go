package sim

// ExplosionFrames is the number of animation frames of an explosion.
const ExplosionFrames = 3

// Explosion is a short-lived decoration left where something was destroyed.
type Explosion struct {
	X, Y  float64
	Timer float64 // seconds left
	Frame int     // 0 (burst) .. ExplosionFrames-1 (fading)
}

// Explosions is the explosion pool.
type Explosions struct {
	pool *Pool[Explosion]
	cfg  ExplosionConfig
}

// NewExplosions allocates the pool described by cfg.
func NewExplosions(cfg ExplosionConfig) (*Explosions, error) {
	pool, err := NewPool[Explosion](cfg.Capacity)
	if err != nil {
		return nil, err
	}
	return &Explosions{pool: pool, cfg: cfg}, nil
}

// Spawn starts an explosion at (x, y). Dropped silently when the pool is full.
func (es *Explosions) Spawn(x, y float64) bool {
	if es == nil {
		return false
	}
	_, ok := es.pool.Spawn(Explosion{X: x, Y: y, Timer: es.cfg.Duration})
	return ok
}

// Advance counts down every explosion and picks its frame from the
// remaining share of its lifetime.
func (es *Explosions) Advance(dt float64) {
	if es == nil {
		return
	}
	for i, e := range es.pool.All() {
		e.Timer -= dt
		if e.Timer <= 0 {
			es.pool.Release(i)
			continue
		}
		life := 0.0
		if es.cfg.Duration > 0 {
			life = e.Timer / es.cfg.Duration
		}
		switch {
		case life > 0.66:
			e.Frame = 0
		case life > 0.33:
			e.Frame = 1
		default:
			e.Frame = 2
		}
	}
}

// Clear removes every explosion.
func (es *Explosions) Clear() {
	if es == nil {
		return
	}
	es.pool.Clear()
}

// Pool exposes the underlying slots for iteration.
func (es *Explosions) Pool() *Pool[Explosion] {
	if es == nil {
		return nil
	}
	return es.pool
}

// Size returns the drawn size of an explosion.
func (es *Explosions) Size() float64 {
	return es.cfg.Size
}
