// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Explosions  ExplosionConfig  `yaml:"explosions"`
	Swarm       SwarmConfig      `yaml:"swarm"`
	Boss        BossConfig       `yaml:"boss"`
	Shields     ShieldConfig     `yaml:"shields"`
	Rules       RulesConfig      `yaml:"rules"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play area in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Y             float64 `yaml:"y"`
	Speed         float64 `yaml:"speed"`
	ShootCooldown float64 `yaml:"shoot_cooldown"` // seconds
	Health        int     `yaml:"health"`
	AnimStep      float64 `yaml:"anim_step"` // seconds per idle frame
}

// ProjectileConfig defines the shared bullet pool.
type ProjectileConfig struct {
	Capacity      int     `yaml:"capacity"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	DiagonalSpeed float64 `yaml:"diagonal_speed"` // horizontal part of boss diagonals
}

// ExplosionConfig defines the explosion pool.
type ExplosionConfig struct {
	Capacity int     `yaml:"capacity"`
	Duration float64 `yaml:"duration"`
	Size     float64 `yaml:"size"`
}

// RampConfig is a value that moves from Full (whole swarm alive) to Last
// (one survivor).
type RampConfig struct {
	Full float64 `yaml:"full"`
	Last float64 `yaml:"last"`
}

// SwarmConfig defines the enemy grid.
type SwarmConfig struct {
	Rows          int        `yaml:"rows"`
	Cols          int        `yaml:"cols"`
	EnemyWidth    float64    `yaml:"enemy_width"`
	EnemyHeight   float64    `yaml:"enemy_height"`
	Padding       float64    `yaml:"padding"`
	StartX        float64    `yaml:"start_x"`
	StartY        float64    `yaml:"start_y"`
	StepX         float64    `yaml:"step_x"`
	Drop          float64    `yaml:"drop"`
	KillScore     int        `yaml:"kill_score"`
	MoveInterval  RampConfig `yaml:"move_interval"`
	ShootCooldown RampConfig `yaml:"shoot_cooldown"`
	EdgeMode      string     `yaml:"edge_mode"` // "slots" or "bounding_box"
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Y             float64 `yaml:"y"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	ShootInterval float64 `yaml:"shoot_interval"`
	Bonus         int     `yaml:"bonus"`
}

// ShieldConfig defines the shield structures.
type ShieldConfig struct {
	Count     int     `yaml:"count"`
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	BlockSize float64 `yaml:"block_size"`
	Y         float64 `yaml:"y"`
	ArchRows  int     `yaml:"arch_rows"`
	ArchWidth int     `yaml:"arch_width"`
}

// RulesConfig defines session rules outside the simulation core.
type RulesConfig struct {
	Levels           int  `yaml:"levels"`             // campaign length; clearing the last one wins
	InvasionEndsGame bool `yaml:"invasion_ends_game"` // enemies reaching the ship row end the game
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "levels" or "none"
	MaxAt int    `yaml:"max_at"` // levels cleared at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction"` // share cut from swarm step intervals
	CooldownReduction float64 `yaml:"cooldown_reduction"` // share cut from enemy fire cooldowns
	BossSpeedBoost    float64 `yaml:"boss_speed_boost"`   // share added to boss speed
	BossHealthBonus   int     `yaml:"boss_health_bonus"`  // extra boss health
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
