// merge2048 plays the 2048 sliding-tile game in the terminal with animated
// moves, merges and spawns.
//
// Usage:
//
//	merge2048 play [variant]   - Play a board variant (default: classic)
//	merge2048 menu             - Pick a board from a menu, play, repeat
//	merge2048 list             - List board variants
//	merge2048 scores [variant] - Show high scores for a variant
//	merge2048 config           - Print the effective settings as YAML
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible spawns
//	--db <path>        - Set database path (default: ~/.merge2048/scores.db)
//	--config <path>    - Load settings from a YAML file
//	--log-file <path>  - Write game logs to a file (default: ~/.merge2048/merge2048.log)
//	--debug            - Log every move, merge and spawn
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merge2048",
	Short: "merge2048 - Slide and merge tiles in your terminal",
	Long: `merge2048 is the 2048 sliding-tile game for the terminal.
Tiles slide, merge and pop in with smooth animations.

Available commands:
  play     - Play a board variant
  menu     - Pick a board from a menu
  list     - Show all board variants
  scores   - View high scores
  config   - Print the effective settings

Examples:
  merge2048 play
  merge2048 play big --seed 42
  merge2048 scores classic
  merge2048 config > ~/.merge2048/settings.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.merge2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.merge2048/merge2048.log", "Path to the game log")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
