// Package gfx runs the game in a desktop window with ebiten. It shares the
// session, sounds and high score with the other front ends and only adds
// key polling and vector drawing.
package gfx

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// StepObserver is told about every simulation step.
type StepObserver interface {
	ObserveStep(gameID string, res core.StepResult, elapsed time.Duration)
}

// Options configures a window session.
type Options struct {
	Endless    bool
	TickRate   int
	Seed       int64 // 0 means time based
	HighScores *storage.HighScores
	Observers  []StepObserver
	Logger     *log.Logger
}

// Game adapts an invaders session to ebiten.Game.
type Game struct {
	session    *invaders.Game
	runtime    core.RuntimeConfig
	highScores *storage.HighScores
	observers  []StepObserver
	logger     *log.Logger

	field     sim.Field
	best      int
	scoreSent bool
	quit      bool
}

// New creates a window session at the title screen.
func New(opts Options) *Game {
	session := invaders.New()
	if opts.Endless {
		session = invaders.NewEndless()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		session:    session,
		highScores: opts.HighScores,
		observers:  opts.Observers,
		logger:     opts.Logger,
		runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
	}

	// Window keys report releases, so a press steers for exactly one tick.
	session.SetInputHold(1)
	session.Reset(g.runtime)
	g.field = session.Snapshot().Field

	if best, err := g.highScores.Load(); err != nil {
		g.logger.Warn("cannot load high score", "err", err)
	} else {
		g.best = best
	}
	session.SetHighScore(g.best)
	return g
}

// Session returns the wrapped game.
func (g *Game) Session() *invaders.Game {
	return g.session
}

// Update polls the keyboard and advances one tick.
func (g *Game) Update() error {
	g.step(pollInput())
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// step applies one frame of input. Split from Update so it runs without a
// window.
func (g *Game) step(in core.InputFrame) {
	phase := g.session.Phase()

	if in.Has(core.ActionQuit) {
		g.quit = true
		return
	}
	if in.Has(core.ActionBack) {
		switch phase {
		case invaders.StateMenu:
			g.quit = true
		case invaders.StatePaused, invaders.StateGameOver, invaders.StateWon:
			g.session.ToMenu()
		}
		return
	}

	start := time.Now()
	res := g.session.Step(in)
	elapsed := time.Since(start)
	for _, o := range g.observers {
		o.ObserveStep(g.session.ID(), res, elapsed)
	}

	switch {
	case res.State.GameOver && !g.scoreSent:
		g.scoreSent = true
		g.saveHighScore(res.State.Score)
	case !res.State.GameOver:
		g.scoreSent = false
	}
}

// saveHighScore stores score if it beats the best so far.
func (g *Game) saveHighScore(score int) {
	if score <= g.best {
		return
	}
	g.best = score
	g.session.SetHighScore(score)

	saved, err := g.highScores.Save(score)
	switch {
	case err != nil:
		g.logger.Warn("cannot save high score", "err", err)
	case saved:
		g.logger.Info("new high score", "score", score)
	}
}

// Layout keeps one logical pixel per world unit; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.field.W), int(g.field.H)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.runtime.TickRate)
	return ebiten.RunGame(g)
}
