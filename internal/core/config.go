package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DT returns the fixed simulation step in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 1-based
	Lives    int  // Remaining player health
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended with the last level cleared
	Paused   bool // Whether the game is paused
}

// Event is a notable thing that happened during a tick.
// Front ends use events for sound and flash effects.
type Event int

const (
	EventPlayerShot Event = iota + 1
	EventEnemyShot
	EventEnemyKilled
	EventBossHit
	EventBossKilled
	EventShieldHit
	EventPlayerHit
	EventPlayerDestroyed
	EventLevelCleared
	EventInvaded
	EventWon
)

// String returns a short name for the event.
func (e Event) String() string {
	switch e {
	case EventPlayerShot:
		return "player_shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventBossHit:
		return "boss_hit"
	case EventBossKilled:
		return "boss_killed"
	case EventShieldHit:
		return "shield_hit"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDestroyed:
		return "player_destroyed"
	case EventLevelCleared:
		return "level_cleared"
	case EventInvaded:
		return "invaded"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced the event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
