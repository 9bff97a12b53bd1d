package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file fails
// to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:         50,
			Height:        30,
			Y:             550,
			Speed:         300,
			ShootCooldown: 0.3,
			Health:        3,
			AnimStep:      0.3,
		},
		Projectiles: ProjectileConfig{
			Capacity:      20,
			Width:         5,
			Height:        10,
			Speed:         500,
			DiagonalSpeed: 150,
		},
		Explosions: ExplosionConfig{
			Capacity: 10,
			Duration: 0.3,
			Size:     40,
		},
		Swarm: SwarmConfig{
			Rows:          5,
			Cols:          11,
			EnemyWidth:    40,
			EnemyHeight:   30,
			Padding:       10,
			StartX:        50,
			StartY:        50,
			StepX:         10,
			Drop:          20,
			KillScore:     100,
			MoveInterval:  RampConfig{Full: 1.0, Last: 0.05},
			ShootCooldown: RampConfig{Full: 1.5, Last: 0.3},
			EdgeMode:      "slots",
		},
		Boss: BossConfig{
			Width:         64,
			Height:        64,
			Y:             80,
			Health:        20,
			Speed:         150,
			ShootInterval: 0.5,
			Bonus:         1000,
		},
		Shields: ShieldConfig{
			Count:     4,
			Rows:      8,
			Cols:      10,
			BlockSize: 8,
			Y:         450,
			ArchRows:  3,
			ArchWidth: 4,
		},
		Rules: RulesConfig{
			Levels:           2,
			InvasionEndsGame: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.5,
				CooldownReduction: 0.5,
				BossSpeedBoost:    1.0,
				BossHealthBonus:   20,
			},
		},
	}
}
