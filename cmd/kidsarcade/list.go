package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/games/memorymatch"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade with their modes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Play counts are best effort; a missing database just shows zeros
	played := make(map[string]int)
	if store, err := storage.Open(flagDBPath); err == nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			for id, st := range stats {
				played[id] = st.GamesCount
			}
		}
		store.Close()
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Played", "Modes")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %-6d  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, played[g.ID], modeNames(g))
	}

	fmt.Println()
	fmt.Println("Run 'kidsarcade play <id> --mode <mode>' to play a game.")
}

// modeNames lists what --mode accepts for a game.
func modeNames(info registry.GameInfo) string {
	if info.Kind == registry.KindMemory {
		names := make([]string, len(memorymatch.Difficulties))
		for i, d := range memorymatch.Difficulties {
			names[i] = string(d)
		}
		return strings.Join(names, ", ")
	}

	g, err := registry.Create(info.ID)
	if err != nil {
		return ""
	}
	names := make([]string, len(g.Modes()))
	for i, m := range g.Modes() {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
