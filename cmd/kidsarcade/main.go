// kidsarcade is a terminal arcade of math games for young children.
//
// Usage:
//
//	kidsarcade list                - List available games
//	kidsarcade play <game>         - Play a game
//	kidsarcade menu                - Start menu to pick games interactively
//	kidsarcade serve               - Start SSH server for remote play
//	kidsarcade scores <game>       - Show high scores for a game
//	kidsarcade levels show|set|reset - Manage the level table
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible problems
//	--db <path>          - Set database path (default: ~/.kidsarcade/scores.db)
//	--levels <path>      - Use a custom level table
//	--log-level <level>  - debug, info, warn or error
//	--theme <name>       - default, pastel or mono
//
// KIDSARCADE_DB, KIDSARCADE_LEVELS and KIDSARCADE_LOG_LEVEL, read from the
// environment or a .env file, stand in for flags that were not given.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/kids-arcade/internal/games/countingfarm"
	_ "github.com/vovakirdan/kids-arcade/internal/games/memorymatch"
	_ "github.com/vovakirdan/kids-arcade/internal/games/monstermunch"
	_ "github.com/vovakirdan/kids-arcade/internal/games/numberbubbles"
	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
	flagTheme    string

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
)

// envOverrides maps global flags to the environment variables that can
// replace their defaults.
var envOverrides = map[string]string{
	"db":        "KIDSARCADE_DB",
	"levels":    "KIDSARCADE_LEVELS",
	"log-level": "KIDSARCADE_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kidsarcade",
	Short: "Kids Arcade - math games for little ones in your terminal",
	Long: `Kids Arcade is a set of terminal math games for young children.
Every game adapts to the player: three right answers in a row move up a
level, and some games step back down after a run of mistakes.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show or change the level table

Examples:
  kidsarcade list
  kidsarcade play monster-munch --mode addition
  kidsarcade play memory-match --mode medium --players Ana,Ben
  kidsarcade menu
  kidsarcade serve --ssh :2222
  kidsarcade scores number-bubbles`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kidsarcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a custom level table YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, pastel, mono")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup applies .env overrides and configures the process logger.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is normal.
	_ = godotenv.Load()

	flags := cmd.Flags()
	for name, env := range envOverrides {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}

	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(lvl)

	tui.SetTheme(tui.ThemeByName(flagTheme))
	return nil
}
