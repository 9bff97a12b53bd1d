package sim

// Result reports what one collision pass did.
type Result struct {
	PlayerDestroyed bool // health reached zero during this pass
	EnemyHit        bool // an enemy or the boss was destroyed

	Kills         int // swarm enemies destroyed
	BossHits      int // damaging hits on the boss, fatal one included
	BossDestroyed bool
	PlayerHits    int
	ShieldHits    int
}

// Resolve checks every active projectile once, in pool order:
//
//  1. shields, which consume the projectile on contact;
//  2. player shots against the boss or the first live swarm cell it touches;
//  3. enemy shots against the player.
//
// Score, health and explosions are applied as hits happen. A nil player,
// formation or projectile pool makes this a no-op; explosions and shields
// are optional.
func Resolve(p *Player, f *Formation, ps *Projectiles, es *Explosions, sh *Shields) Result {
	var res Result
	if p == nil || f == nil || ps == nil {
		return res
	}

	for i, proj := range ps.pool.All() {
		if sh.ResolveImpact(ps, i) {
			res.ShieldHits++
			continue
		}

		switch {
		case proj.Friendly():
			resolvePlayerShot(p, f, ps, es, i, &res)
		case proj.Hostile():
			if !proj.Rect().Overlaps(p.Rect()) {
				continue
			}
			ps.Release(i)
			if p.Health > 0 {
				p.Health--
				res.PlayerHits++
				if p.Health == 0 {
					res.PlayerDestroyed = true
				}
			}
		}
	}
	return res
}

func resolvePlayerShot(p *Player, f *Formation, ps *Projectiles, es *Explosions, i int, res *Result) {
	r := ps.pool.Get(i).Rect()
	switch m := f.mode.(type) {
	case *Boss:
		if !m.Active || !r.Overlaps(m.Rect()) {
			return
		}
		ps.Release(i)
		res.BossHits++
		if m.Damage() {
			p.Score += m.Bonus()
			es.Spawn(m.X, m.Y)
			res.BossDestroyed = true
			res.EnemyHit = true
		}
	case *Swarm:
		for j := range m.Enemies {
			e := &m.Enemies[j]
			if !e.Active || !r.Overlaps(e.Rect()) {
				continue
			}
			ps.Release(i)
			m.Kill(j)
			p.Score += e.Score
			es.Spawn(e.X, e.Y)
			res.Kills++
			res.EnemyHit = true
			return
		}
	}
}
