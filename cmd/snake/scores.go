package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZomoXYZ/dreambox-snake/internal/registry"
	"github.com/ZomoXYZ/dreambox-snake/internal/storage"
)

var (
	flagClearScores bool
	flagRunCount    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores and the most recent runs for the
specified game. Each run lists the seed it started from, so it can be
replayed with 'snake sim'.

Examples:
  snake scores snake
  snake scores snake_legacy --runs 20
  snake scores snake --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the game")
	scoresCmd.Flags().IntVar(&flagRunCount, "runs", 5, "Number of recent runs to show (0 = none)")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Games: %d  Average: %.1f  Wins: %d\n",
				stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Wins)
		}
	}

	if flagRunCount <= 0 {
		return
	}
	runs, err := store.RecentRuns(gameID, flagRunCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-9s  %-7s  %-5s  %-6s  %s\n", "Seed", "Board", "Size", "Steps", "Result")
	fmt.Printf("  %-9s  %-7s  %-5s  %-6s  %s\n", "----", "-----", "----", "-----", "------")
	for _, r := range runs {
		fmt.Printf("  %-9s  %-7s  %-5d  %-6d  %s: %s\n",
			fmt.Sprintf("%d,%d", r.Seed[0], r.Seed[1]),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Size, r.Steps, r.Outcome, r.Reason)
	}
}
