package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 30 --sound
  invaders menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("invaders", true)
	defer closeLog()
	configureGame(logger)

	store := openStore(logger)
	var observers []tui.StepObserver
	sound := openSound(logger)
	if sound != nil {
		observers = append(observers, sound)
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes made while the menu was up
		cfg = menuResult.Config

		if menuResult.Choice == tui.MenuQuit {
			break
		}

		if menuResult.Choice == tui.MenuScores {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fresh seed per run unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, runCfg, observers...); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		logger.Debug("back to menu", "mode", menuResult.GameID)
	}

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}
}
