// Package sim is the invaders simulation engine: entity pools, the player
// ship, the enemy formation, shields and collision resolution.
//
// The package has no rendering, input or storage dependencies. A World is
// advanced by calling Tick with an elapsed time in seconds; front ends read
// it back through Snapshot.
package sim

import (
	"errors"
	"fmt"
)

// Errors returned when a configuration cannot produce a playable world.
var (
	ErrCapacity = errors.New("sim: pool capacity must be positive")
	ErrGrid     = errors.New("sim: grid dimensions must be positive")
	ErrField    = errors.New("sim: field dimensions must be positive")
	ErrLevel    = errors.New("sim: level must be at least 1")
)

// EdgeMode selects how the swarm finds its left and right edges.
type EdgeMode int

const (
	// EdgeSlots measures the edges from grid slot 0 and slot COLS-1
	// whether or not those enemies are still alive. Once a flank column is
	// destroyed the swarm keeps turning at the old edge.
	EdgeSlots EdgeMode = iota
	// EdgeBoundingBox measures the true bounding box of active enemies.
	EdgeBoundingBox
)

// String returns the config name of the mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeSlots:
		return "slots"
	case EdgeBoundingBox:
		return "bounding_box"
	default:
		return "unknown"
	}
}

// ParseEdgeMode converts a config name into an EdgeMode.
// An empty name selects EdgeSlots.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "", "slots":
		return EdgeSlots, nil
	case "bounding_box", "bbox":
		return EdgeBoundingBox, nil
	default:
		return EdgeSlots, fmt.Errorf("sim: unknown edge mode %q", s)
	}
}

// Ramp interpolates a value between its full-strength and last-survivor
// bounds as a linear function of the alive ratio.
type Ramp struct {
	Full float64 // value at ratio 1.0
	Last float64 // value as ratio approaches 0
}

// At returns the value at ratio, clamped to [0, 1]. It equals
// Last + (Full-Last)*ratio and hits both bounds exactly.
func (r Ramp) At(ratio float64) float64 {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return r.Full*ratio + r.Last*(1-ratio)
}

// Field is the play area in world units. Origin is the top-left corner.
type Field struct {
	W, H float64
}

// Contains reports whether (x, y) lies within the closed field bounds.
func (f Field) Contains(x, y float64) bool {
	return x >= 0 && x <= f.W && y >= 0 && y <= f.H
}

// PlayerConfig tunes the player ship.
type PlayerConfig struct {
	Width    float64
	Height   float64
	Y        float64 // fixed vertical position (top edge)
	Speed    float64 // horizontal speed, units per second
	Cooldown float64 // seconds between shots
	Health   int
	AnimStep float64 // seconds per animation frame
}

// ProjectileConfig tunes the shared projectile pool.
type ProjectileConfig struct {
	Capacity   int
	Width      float64
	Height     float64
	Speed      float64 // vertical speed magnitude
	DiagonalVX float64 // horizontal speed magnitude of boss diagonals
}

// ExplosionConfig tunes the explosion pool.
type ExplosionConfig struct {
	Capacity int
	Duration float64
	Size     float64
}

// SwarmConfig tunes the standard enemy grid.
type SwarmConfig struct {
	Rows          int
	Cols          int
	EnemyWidth    float64
	EnemyHeight   float64
	Padding       float64
	StartX        float64
	StartY        float64
	StepX         float64
	Drop          float64
	KillScore     int
	MoveInterval  Ramp
	ShootCooldown Ramp
	Edges         EdgeMode
}

// BossConfig tunes the boss encounter.
type BossConfig struct {
	Width         float64
	Height        float64
	Y             float64
	Health        int
	Speed         float64
	ShootInterval float64
	Bonus         int
}

// ShieldConfig tunes the shield structures.
type ShieldConfig struct {
	Count     int
	Rows      int
	Cols      int
	BlockSize float64
	Y         float64
	ArchRows  int // lowest rows carved out in the middle
	ArchWidth int // columns carved out of those rows
}

// Config holds every tunable of a World.
type Config struct {
	Field       Field
	Player      PlayerConfig
	Projectiles ProjectileConfig
	Explosions  ExplosionConfig
	Swarm       SwarmConfig
	Boss        BossConfig
	Shields     ShieldConfig
}

// DefaultConfig returns the classic 800x600 tuning.
func DefaultConfig() Config {
	return Config{
		Field: Field{W: 800, H: 600},
		Player: PlayerConfig{
			Width:    50,
			Height:   30,
			Y:        550,
			Speed:    300,
			Cooldown: 0.3,
			Health:   3,
			AnimStep: 0.3,
		},
		Projectiles: ProjectileConfig{
			Capacity:   20,
			Width:      5,
			Height:     10,
			Speed:      500,
			DiagonalVX: 150,
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
			MoveInterval:  Ramp{Full: 1.0, Last: 0.05},
			ShootCooldown: Ramp{Full: 1.5, Last: 0.3},
			Edges:         EdgeSlots,
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
	}
}

// Validate reports the first setting that cannot produce a world.
func (c Config) Validate() error {
	if c.Field.W <= 0 || c.Field.H <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrField, c.Field.W, c.Field.H)
	}
	if c.Projectiles.Capacity <= 0 {
		return fmt.Errorf("%w: projectiles=%d", ErrCapacity, c.Projectiles.Capacity)
	}
	if c.Explosions.Capacity <= 0 {
		return fmt.Errorf("%w: explosions=%d", ErrCapacity, c.Explosions.Capacity)
	}
	if c.Swarm.Rows <= 0 || c.Swarm.Cols <= 0 {
		return fmt.Errorf("%w: swarm %dx%d", ErrGrid, c.Swarm.Rows, c.Swarm.Cols)
	}
	if c.Shields.Count < 0 || (c.Shields.Count > 0 && (c.Shields.Rows <= 0 || c.Shields.Cols <= 0)) {
		return fmt.Errorf("%w: shields %dx%d", ErrGrid, c.Shields.Rows, c.Shields.Cols)
	}
	return nil
}
