package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoreLimit int
	flagScoreAll   bool
	flagScoreClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode (default: invaders).

Examples:
  invaders scores
  invaders scores invaders_endless --limit 25
  invaders scores --all
  invaders scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoreAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoreClear, "clear", false, "Delete the recorded scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown mode %q", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fail("cannot create game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("cannot open scores database: %v", err)
	}
	defer store.Close()

	if flagScoreClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("cannot clear scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	var scores []storage.ScoreEntry
	if flagScoreAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoreLimit)
	}
	if err != nil {
		store.Close()
		fail("cannot read scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s' to set the first high score!\n", gameID)
		return
	}

	if sum, err := store.Summary(gameID); err == nil {
		fmt.Printf("%d runs, %d won, %d lost, deepest level %d\n\n", sum.Runs, sum.Won, sum.Lost, sum.BestLevel)
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-10d  %-5d  %-6s  %s\n",
			i+1, entry.Score, entry.Level, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
