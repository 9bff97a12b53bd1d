// invaders-gfx plays Space Invaders in a desktop window.
//
// Controls: arrows or A/D to move, Space to fire, Enter to start, P to pause,
// R to restart after a game over, Esc to leave a run or close the window.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/gfx"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// appName names the per-user data directory of the high score.
const appName = "tui-invaders"

var (
	flagFPS        int
	flagSeed       int64
	flagEndless    bool
	flagMute       bool
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "invaders-gfx",
	Short: "Space Invaders in a window",
	Long: `Play Space Invaders in a desktop window with sound.

Examples:
  invaders-gfx
  invaders-gfx --endless --difficulty hard
  invaders-gfx --mute --fps 30`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play the endless mode")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders-gfx",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	invaders.SetLogger(logger)

	// Without a data directory the high score only lives for this run.
	scores, err := storage.OpenHighScores(appName)
	if err != nil {
		logger.Warn("high score will not be saved", "err", err)
	}

	var observers []gfx.StepObserver
	if !flagMute {
		sound := audio.NewSoundBoard(audio.DefaultConfig())
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sound.Close()
			observers = append(observers, sound)
		}
	}

	game := gfx.New(gfx.Options{
		Endless:    flagEndless,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		HighScores: scores,
		Observers:  observers,
		Logger:     logger,
	})

	if err := gfx.Run(game, game.Session().Title()); err != nil {
		return fmt.Errorf("cannot run window: %w", err)
	}
	return nil
}
