package sim

// PlayerView is a copy of the player state.
type PlayerView struct {
	X, Y, W, H float64
	Health     int
	Score      int
	Frame      int
}

// ProjectileView is a copy of one live projectile.
type ProjectileView struct {
	Slot     int
	Rect     Rect
	Friendly bool
}

// ExplosionView is a copy of one live explosion.
type ExplosionView struct {
	Slot  int
	X, Y  float64
	Frame int
}

// EnemyView is a copy of one grid cell, live or not.
type EnemyView struct {
	Row, Col int
	Rect     Rect
	Active   bool
}

// BossView is a copy of the boss state.
type BossView struct {
	Rect      Rect
	Health    int
	MaxHealth int
	Active    bool
}

// BlockView is a copy of one shield block.
type BlockView struct {
	Shield int
	Rect   Rect
	Active bool
}

// Snapshot is a read-only copy of a World, safe to keep across ticks.
type Snapshot struct {
	Field         Field
	Level         int
	Kind          ModeKind
	SwarmFrame    bool
	Alive         int
	Player        PlayerView
	Projectiles   []ProjectileView
	Explosions    []ExplosionView
	Enemies       []EnemyView // nil on boss levels
	Boss          *BossView   // nil on swarm levels
	Blocks        []BlockView
	ExplosionSize float64
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	p := w.Player
	snap := Snapshot{
		Field: w.cfg.Field,
		Level: w.Formation.Level(),
		Kind:  w.Formation.Kind(),
		Alive: w.Formation.Alive(),
		Player: PlayerView{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			Health: p.Health,
			Score:  p.Score,
			Frame:  p.Frame,
		},
		ExplosionSize: w.Explosions.Size(),
	}

	for i, pr := range w.Projectiles.Pool().All() {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Slot:     i,
			Rect:     pr.Rect(),
			Friendly: pr.Friendly(),
		})
	}
	for i, e := range w.Explosions.Pool().All() {
		snap.Explosions = append(snap.Explosions, ExplosionView{Slot: i, X: e.X, Y: e.Y, Frame: e.Frame})
	}

	switch m := w.Formation.Mode().(type) {
	case *Swarm:
		snap.SwarmFrame = m.Frame
		snap.Enemies = make([]EnemyView, len(m.Enemies))
		for i, e := range m.Enemies {
			snap.Enemies[i] = EnemyView{Row: i / m.Cols, Col: i % m.Cols, Rect: e.Rect(), Active: e.Active}
		}
	case *Boss:
		snap.Boss = &BossView{Rect: m.Rect(), Health: m.Health, MaxHealth: m.MaxHealth, Active: m.Active}
	}

	size := w.Shields.BlockSize()
	for si, sh := range w.Shields.Items {
		for _, b := range sh.Blocks {
			snap.Blocks = append(snap.Blocks, BlockView{
				Shield: si,
				Rect:   Rect{X: b.X, Y: b.Y, W: size, H: size},
				Active: b.Active,
			})
		}
	}
	return snap
}
