package sim

import "math/rand"

// Input is what the player asks for during one tick.
type Input struct {
	Intent Intent
	Fire   bool
}

// TickResult summarizes one World.Tick.
type TickResult struct {
	Result

	PlayerShot bool // the player fired this tick
	EnemyShot  bool // the formation fired this tick
	Cleared    bool // the formation has no enemies left
}

// World owns every component of a running session.
type World struct {
	cfg Config

	Player      *Player
	Formation   *Formation
	Projectiles *Projectiles
	Explosions  *Explosions
	Shields     *Shields

	rng *rand.Rand
}

// NewWorld allocates a session at level 1. The seed drives enemy targeting
// for the whole session.
func NewWorld(cfg Config, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	projectiles, err := NewProjectiles(cfg.Projectiles)
	if err != nil {
		return nil, err
	}
	explosions, err := NewExplosions(cfg.Explosions)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:         cfg,
		Player:      NewPlayer(cfg.Player, cfg.Field.W),
		Projectiles: projectiles,
		Explosions:  explosions,
		Shields:     NewShields(cfg.Shields, cfg.Field.W),
		rng:         rand.New(rand.NewSource(seed)),
	}
	if err := w.StartLevel(1); err != nil {
		return nil, err
	}
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Field returns the play area.
func (w *World) Field() Field {
	return w.cfg.Field
}

// Level returns the current level number.
func (w *World) Level() int {
	return w.Formation.Level()
}

// StartLevel replaces the formation and clears all projectiles in flight.
// The player and shields carry over.
func (w *World) StartLevel(level int) error {
	f, err := NewFormation(w.cfg, level, w.rng)
	if err != nil {
		return err
	}
	w.Formation = f
	w.Projectiles.Clear()
	return nil
}

// Retune swaps the enemy tuning used by later StartLevel calls. The level in
// progress keeps its current settings.
func (w *World) Retune(swarm SwarmConfig, boss BossConfig) error {
	next := w.cfg
	next.Swarm = swarm
	next.Boss = boss
	if err := next.Validate(); err != nil {
		return err
	}
	w.cfg = next
	return nil
}

// Reset returns the session to level 1 with a fresh player and shields.
func (w *World) Reset() error {
	w.Player.Reset(w.cfg.Field.W)
	w.Shields.Reset(w.cfg.Field.W)
	w.Explosions.Clear()
	return w.StartLevel(1)
}

// Reseed restarts the targeting sequence. Used on restart so a replay with
// the same seed is identical.
func (w *World) Reseed(seed int64) {
	w.rng.Seed(seed)
}

// Tick advances the session by dt seconds. Everything moves before
// collisions are resolved, so hits are judged on this tick's positions.
func (w *World) Tick(dt float64, in Input) TickResult {
	var res TickResult
	field := w.cfg.Field

	w.Player.SetIntent(in.Intent)
	if in.Fire {
		res.PlayerShot = w.Player.TryShoot(w.Projectiles)
	}
	w.Player.Advance(dt, field.W)
	w.Projectiles.Advance(dt, field)
	w.Formation.Advance(dt, field.W)
	res.EnemyShot = w.Formation.AttemptShoot(dt, w.Projectiles)
	w.Explosions.Advance(dt)

	res.Result = Resolve(w.Player, w.Formation, w.Projectiles, w.Explosions, w.Shields)
	res.Cleared = w.Formation.Cleared()
	return res
}

// Invaded reports whether a live enemy has reached the top of the ship.
func (w *World) Invaded() bool {
	return w.Formation.Alive() > 0 && w.Formation.Lowest() >= w.Player.Y
}
