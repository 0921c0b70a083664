package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagClearScores bool
	flagDuelPlayer  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, and the latest
two-player results for Memory Match.

Examples:
  kidsarcade scores monster-munch
  kidsarcade scores memory-match --limit 5
  kidsarcade scores memory-match --player Ana
  kidsarcade scores monster-munch --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and duels for the game")
	scoresCmd.Flags().StringVar(&flagDuelPlayer, "player", "", "Show only duels this player took part in")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'kidsarcade list' to see available games.", gameID)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", game.Title())
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'kidsarcade play %s' to set the first high score!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-6s  %-12s  %-5s  %s\n", "Rank", "Score", "Mode", "Level", "Date")
		fmt.Printf("  %-4s  %-6s  %-12s  %-5s  %s\n", "----", "-----", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-6d  %-12s  %-5d  %s\n", i+1, entry.Score, entry.Mode, entry.Level, dateStr)
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d   Games: %d   Highest level: %d\n", stats.HighScore, stats.GamesCount, stats.BestLevel)
		}
	}

	if game.Kind() != registry.KindMemory {
		return
	}
	duels, err := store.RecentDuels(gameID, flagScoresLimit)
	heading := "Recent duels"
	if flagDuelPlayer != "" {
		duels, err = store.PlayerDuels(flagDuelPlayer, flagScoresLimit)
		heading = "Duels with " + flagDuelPlayer
	}
	if err != nil || len(duels) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(heading)
	fmt.Println()
	for _, d := range duels {
		winner := "tie"
		if d.Winner != "" {
			winner = d.Winner + " won"
		}
		fmt.Printf("  %s  %s %d - %d %s  (%s, %d moves)\n",
			d.CreatedAt.Format("2006-01-02 15:04"), d.Player1, d.Pairs1, d.Pairs2, d.Player2, winner, d.Moves)
	}
}
