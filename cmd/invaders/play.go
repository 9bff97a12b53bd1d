package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing the given mode (invaders or invaders_endless).

Controls:
  Left/Right/A/D  - Move
  Space/Up/W      - Fire
  Enter           - Start
  P               - Pause
  R               - Restart (after game over)
  Ctrl+S          - Screenshot (text and PNG)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - More health, slower swarm and boss fire
  normal - Config defaults
  hard   - One life, fast swarm and boss fire
  fixed  - No per-level scaling

Examples:
  invaders play
  invaders play --endless
  invaders play --difficulty hard --sound
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects and music")
	}
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play the endless mode")
}

// terminalConfig sizes the runtime from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame applies the CLI tuning flags. Must run before a game is
// created or reset.
func configureGame(logger *log.Logger) {
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	invaders.SetLogger(logger)
}

// openStore opens the score database, or returns nil so the game runs
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// openSound starts the sound board when --sound is set. The game stays
// silent if the audio device cannot be opened.
func openSound(logger *log.Logger) *audio.SoundBoard {
	if !flagSound {
		return nil
	}
	sb := audio.NewSoundBoard(audio.DefaultConfig())
	if err := sb.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return sb
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagEndless {
		gameID = "invaders_endless"
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := newLogger("invaders", true)
	defer closeLog()
	configureGame(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("cannot create game: %v", err)
	}

	store := openStore(logger)
	var observers []tui.StepObserver
	sound := openSound(logger)
	if sound != nil {
		observers = append(observers, sound)
	}

	runErr := tui.Run(game, store, terminalConfig(), observers...)

	// Release resources before a potential exit
	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("cannot run game: %v", runErr)
	}
}
