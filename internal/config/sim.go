package config

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Sim converts the file configuration into simulation tuning.
func (c InvadersConfig) Sim() (sim.Config, error) {
	edges, err := sim.ParseEdgeMode(c.Swarm.EdgeMode)
	if err != nil {
		return sim.Config{}, fmt.Errorf("config: swarm.edge_mode: %w", err)
	}
	out := sim.Config{
		Field: sim.Field{W: c.Field.Width, H: c.Field.Height},
		Player: sim.PlayerConfig{
			Width:    c.Player.Width,
			Height:   c.Player.Height,
			Y:        c.Player.Y,
			Speed:    c.Player.Speed,
			Cooldown: c.Player.ShootCooldown,
			Health:   c.Player.Health,
			AnimStep: c.Player.AnimStep,
		},
		Projectiles: sim.ProjectileConfig{
			Capacity:   c.Projectiles.Capacity,
			Width:      c.Projectiles.Width,
			Height:     c.Projectiles.Height,
			Speed:      c.Projectiles.Speed,
			DiagonalVX: c.Projectiles.DiagonalSpeed,
		},
		Explosions: sim.ExplosionConfig{
			Capacity: c.Explosions.Capacity,
			Duration: c.Explosions.Duration,
			Size:     c.Explosions.Size,
		},
		Swarm: sim.SwarmConfig{
			Rows:          c.Swarm.Rows,
			Cols:          c.Swarm.Cols,
			EnemyWidth:    c.Swarm.EnemyWidth,
			EnemyHeight:   c.Swarm.EnemyHeight,
			Padding:       c.Swarm.Padding,
			StartX:        c.Swarm.StartX,
			StartY:        c.Swarm.StartY,
			StepX:         c.Swarm.StepX,
			Drop:          c.Swarm.Drop,
			KillScore:     c.Swarm.KillScore,
			MoveInterval:  sim.Ramp{Full: c.Swarm.MoveInterval.Full, Last: c.Swarm.MoveInterval.Last},
			ShootCooldown: sim.Ramp{Full: c.Swarm.ShootCooldown.Full, Last: c.Swarm.ShootCooldown.Last},
			Edges:         edges,
		},
		Boss: sim.BossConfig{
			Width:         c.Boss.Width,
			Height:        c.Boss.Height,
			Y:             c.Boss.Y,
			Health:        c.Boss.Health,
			Speed:         c.Boss.Speed,
			ShootInterval: c.Boss.ShootInterval,
			Bonus:         c.Boss.Bonus,
		},
		Shields: sim.ShieldConfig{
			Count:     c.Shields.Count,
			Rows:      c.Shields.Rows,
			Cols:      c.Shields.Cols,
			BlockSize: c.Shields.BlockSize,
			Y:         c.Shields.Y,
			ArchRows:  c.Shields.ArchRows,
			ArchWidth: c.Shields.ArchWidth,
		},
	}
	if err := out.Validate(); err != nil {
		return sim.Config{}, fmt.Errorf("config: %w", err)
	}
	return out, nil
}
