// Package invaders is the session layer of the game: menu, pause, level
// progression and win/lose rules around a sim.World, exposed to the
// platform through the registry.Game interface.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Session states
const (
	StateMenu     = "menu"     // Title screen, waiting for start
	StatePlaying  = "playing"  // World is ticking
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Ship destroyed or swarm landed
	StateWon      = "won"      // Last campaign level cleared
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Swarm then boss, win at the end
	ModeEndless                  // Swarm and boss alternate until game over
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// config file's own settings.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes session logs (level changes, deaths) to l.
// A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the invaders session.
type Game struct {
	mode GameMode

	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	base       sim.Config
	difficulty *config.DifficultyManager
	world      *sim.World

	state     string
	cleared   int // levels cleared this session
	tickCount uint64
	highScore int

	// Terminals report key presses, not releases, so a steering key keeps
	// the ship moving for a short window after each press.
	hold         int
	holdOverride int
	leftFor      int
	rightFor     int
}

// New creates a new campaign game instance.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless game instance.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "invaders_endless"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Space Invaders (Endless)"
	}
	return "Space Invaders"
}

// Description returns a one-line blurb for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Swarms and bosses until the ship falls"
	}
	return "Clear the swarm, then beat the boss"
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// SetInputHold sets how many ticks a steering press lasts. Front ends with
// real key-up events use 1. Zero restores the default of a quarter second.
func (g *Game) SetInputHold(ticks int) {
	g.holdOverride = max(ticks, 0)
	g.hold = g.holdTicks()
}

// SetHighScore seeds the best score shown on the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(score, 0)
}

// HighScore returns the best of the seeded high score and this session.
func (g *Game) HighScore() int {
	if g.world != nil {
		return max(g.highScore, g.world.Player.Score)
	}
	return g.highScore
}

// Reset loads configuration and builds a fresh session at the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}

	base, err := cfg.Sim()
	if err != nil {
		logger.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultInvadersConfig()
		base = sim.DefaultConfig()
	}
	if cfg.Rules.Levels <= 0 {
		cfg.Rules.Levels = 2
	}
	g.cfg = cfg
	g.base = base
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	world, err := sim.NewWorld(g.tuning(0), runtime.Seed)
	if err != nil {
		// Defaults always validate.
		logger.Error("cannot build world", "err", err)
		world, _ = sim.NewWorld(sim.DefaultConfig(), runtime.Seed)
	}
	g.world = world

	g.state = StateMenu
	g.cleared = 0
	g.tickCount = 0
	g.hold = g.holdTicks()
	g.leftFor, g.rightFor = 0, 0
}

func (g *Game) holdTicks() int {
	if g.holdOverride > 0 {
		return g.holdOverride
	}
	return max(g.runtime.TickRate/4, 1)
}

// tuning returns the world configuration after cleared levels. Only the
// endless mode progresses; a campaign plays every level at the preset's
// starting difficulty.
func (g *Game) tuning(cleared int) sim.Config {
	if g.mode == ModeCampaign {
		cleared = 0
	}
	return g.difficulty.Tune(g.base, cleared)
}

// restart returns to level 1 with the session seed.
func (g *Game) restart() {
	next := g.tuning(0)
	if err := g.world.Retune(next.Swarm, next.Boss); err != nil {
		logger.Error("cannot retune", "err", err)
	}
	g.world.Reseed(g.runtime.Seed)
	if err := g.world.Reset(); err != nil {
		logger.Error("cannot reset world", "err", err)
	}
	g.cleared = 0
	g.tickCount = 0
	g.leftFor, g.rightFor = 0, 0
}

// ToMenu abandons the current run and shows the title screen.
func (g *Game) ToMenu() {
	if g.world == nil {
		return
	}
	g.restart()
	g.state = StateMenu
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}

	case StateGameOver, StateWon:
		switch {
		case in.Has(core.ActionRestart):
			g.restart()
			g.state = StatePlaying
		case in.Has(core.ActionConfirm):
			g.restart()
			g.state = StateMenu
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	res := g.world.Tick(g.runtime.DT(), sim.Input{
		Intent: g.steer(in),
		Fire:   in.Has(core.ActionFire),
	})
	events := tickEvents(res)

	// A destroyed ship ends the game even if its last shot cleared the level.
	switch {
	case res.PlayerDestroyed:
		g.state = StateGameOver
		logger.Debug("player destroyed", "level", g.world.Level(), "score", g.world.Player.Score)
	case g.cfg.Rules.InvasionEndsGame && g.world.Invaded():
		g.state = StateGameOver
		events = append(events, core.EventInvaded)
		logger.Debug("swarm landed", "level", g.world.Level(), "score", g.world.Player.Score)
	case res.Cleared:
		events = append(events, core.EventLevelCleared)
		events = g.advanceLevel(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// steer turns this tick's presses into a movement intent.
func (g *Game) steer(in core.InputFrame) sim.Intent {
	if in.Has(core.ActionLeft) {
		g.leftFor, g.rightFor = g.hold, 0
	}
	if in.Has(core.ActionRight) {
		g.rightFor, g.leftFor = g.hold, 0
	}
	switch {
	case g.leftFor > 0:
		g.leftFor--
		return sim.IntentLeft
	case g.rightFor > 0:
		g.rightFor--
		return sim.IntentRight
	}
	return sim.IntentNone
}

// advanceLevel moves to the next level, or ends a finished campaign.
func (g *Game) advanceLevel(events []core.Event) []core.Event {
	g.cleared++
	level := g.world.Level()
	if g.mode == ModeCampaign && level >= g.cfg.Rules.Levels {
		g.state = StateWon
		logger.Info("campaign won", "score", g.world.Player.Score)
		return append(events, core.EventWon)
	}

	next := g.tuning(g.cleared)
	if err := g.world.Retune(next.Swarm, next.Boss); err != nil {
		logger.Error("cannot retune", "err", err)
	}
	if err := g.world.StartLevel(level + 1); err != nil {
		logger.Error("cannot start level", "level", level+1, "err", err)
		g.state = StateGameOver
		return events
	}
	logger.Debug("level cleared",
		"next", level+1,
		"kind", sim.KindForLevel(level+1),
		"difficulty", g.difficulty.Level(g.cleared))
	return events
}

// tickEvents lists what happened during one world tick.
func tickEvents(res sim.TickResult) []core.Event {
	var events []core.Event
	if res.PlayerShot {
		events = append(events, core.EventPlayerShot)
	}
	if res.EnemyShot {
		events = append(events, core.EventEnemyShot)
	}
	if res.Kills > 0 {
		events = append(events, core.EventEnemyKilled)
	}
	if res.BossDestroyed {
		events = append(events, core.EventBossKilled)
	} else if res.BossHits > 0 {
		events = append(events, core.EventBossHit)
	}
	if res.ShieldHits > 0 {
		events = append(events, core.EventShieldHit)
	}
	if res.PlayerDestroyed {
		events = append(events, core.EventPlayerDestroyed)
	} else if res.PlayerHits > 0 {
		events = append(events, core.EventPlayerHit)
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.state == StateGameOver || g.state == StateWon,
		Won:      g.state == StateWon,
		Paused:   g.state == StatePaused,
	}
	if g.world != nil {
		st.Score = g.world.Player.Score
		st.Lives = g.world.Player.Health
		st.Level = g.world.Level()
	}
	return st
}

// Phase returns the session state name.
func (g *Game) Phase() string {
	return g.state
}

// Levels returns the campaign length.
func (g *Game) Levels() int {
	return g.cfg.Rules.Levels
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_endless", func() registry.Game {
		return NewEndless()
	})
}
