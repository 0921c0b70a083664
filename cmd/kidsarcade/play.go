package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/multiplayer"
	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

var (
	flagMode       string
	flagStartLevel int
	flagDifficulty string
	flagPlayers    []string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  0-9          - Type an answer
  Left/Right   - Pick an answer or a bubble
  Enter/Space  - Answer, pop, flip a card or continue
  Backspace    - Erase a digit
  R            - Play again (after game over)
  Esc/B        - Leave the game
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at the first level with extra lives and time
  normal - Start 30% into the level table
  hard   - Start 70% into the level table with fewer lives and less time
  fixed  - Stay on the first level (or --level) for the whole game

Memory Match takes the board size as its mode (easy, medium, hard) and up
to two player names; two names start a hot-seat duel.

Examples:
  kidsarcade play monster-munch
  kidsarcade play monster-munch --mode subtraction --difficulty hard
  kidsarcade play counting-farm --mode sharing --level 3
  kidsarcade play number-bubbles --mode even --difficulty fixed
  kidsarcade play memory-match --mode hard --players Ana,Ben`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode (see 'kidsarcade list')")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Start level (0 = from difficulty)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringSliceVar(&flagPlayers, "players", nil, "Player names for Memory Match (two names for a duel)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'kidsarcade list' to see available games.", gameID)
	}
	if _, err := multiplayer.ParseMatchMode(len(flagPlayers)); err != nil {
		fail("%v", err)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	cfg := runtimeConfig()
	cfg.Mode = flagMode
	cfg.Difficulty = flagDifficulty
	cfg.StartLevel = flagStartLevel
	cfg.Players = flagPlayers

	// Open score storage; the game still works without it
	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
