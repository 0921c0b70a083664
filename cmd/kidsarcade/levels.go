package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show or change the level table",
	Long: `Every game draws its numbers from the level table. The table is read
from --levels, then ~/.kidsarcade/levels.yaml, then ./configs/levels.yaml,
and finally the built-in defaults.

Examples:
  kidsarcade levels show
  kidsarcade levels set ./my-levels.yaml
  kidsarcade levels reset`,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the level table in use",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		table := loadTable()

		fmt.Printf("  %-5s  %-16s  %-10s  %-7s  %s\n", "Level", "Name", "Max number", "Bubbles", "Bubble max")
		fmt.Printf("  %-5s  %-16s  %-10s  %-7s  %s\n", "-----", "----", "----------", "-------", "----------")
		for _, e := range table.Entries() {
			p := table.ParametersFor(e.Level)
			fmt.Printf("  %-5d  %-16s  %-10d  %-7d  %d\n", p.Level, p.Name, p.MaxOperand, p.ItemCount, p.SequenceMax)
		}
	},
}

var levelsSetCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Install a level table as the user default",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fail("reading %s: %v", args[0], err)
		}
		cfg, err := config.ParseLevels(data)
		if err != nil {
			fail("%v", err)
		}
		path, err := config.SaveLevels("", cfg)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Saved %d levels to %s\n", len(cfg.Levels), path)
	},
}

var levelsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the user level table and go back to the defaults",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := config.ResetLevels(""); err != nil {
			fail("%v", err)
		}
		fmt.Println("Level table reset to defaults.")
	},
}

func init() {
	levelsCmd.AddCommand(levelsShowCmd, levelsSetCmd, levelsResetCmd)
}
