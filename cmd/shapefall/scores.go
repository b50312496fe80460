package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapefall/internal/merge"
	"github.com/vovakirdan/shapefall/internal/platform/tui"
	"github.com/vovakirdan/shapefall/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  shapefall scores
  shapefall scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a scrollable table")
}

func runScores(cmd *cobra.Command, args []string) {
	game := merge.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, game.ID(), game.Title(), width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shapefall' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Best Shape", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "----------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, tierName(entry.TopTier), dateStr)
	}

	// Show aggregates
	fmt.Println()
	if stats, statErr := store.GetGameStats(game.ID()); statErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d   Best shape: %s   Games played: %d\n",
			stats.HighScore, tierName(stats.BestTier), stats.GamesCount)
	}
}

// tierName formats a stored tier index; out-of-range rows print as "?".
func tierName(v int) string {
	if v < int(merge.TierCircle) || v > int(merge.TierStar) {
		return "?"
	}
	return merge.Tier(v).String()
}
