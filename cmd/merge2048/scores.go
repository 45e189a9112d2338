package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/platform/tui"
	"github.com/vovakirdan/merge2048/internal/registry"
	"github.com/vovakirdan/merge2048/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagAll    bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the given variant (default: classic).
With --all, prints a summary for every variant played.

Examples:
  merge2048 scores
  merge2048 scores big --limit 20
  merge2048 scores --browse
  merge2048 scores mini --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the variant")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show a summary for every variant")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := registry.DefaultID
	if len(args) > 0 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'merge2048 list' to see available variants.")
		os.Exit(1)
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := newLogger(os.Stderr)

	switch {
	case flagClear:
		if err := store.ClearScores(variant.ID); err != nil {
			logger.Error("cannot clear scores", "variant", variant.ID, "err", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", variant.Title)

	case flagBrowse:
		size := terminalConfig()
		if err := tui.RunScoreboard(store, variant.ID, size.ScreenW, size.ScreenH); err != nil {
			logger.Error("scoreboard failed", "err", err)
		}

	case flagAll:
		printSummary(store, logger)

	default:
		printTopScores(store, variant, flagLimit, logger)
	}
}

func printTopScores(store *storage.Store, variant registry.Variant, limit int, logger *log.Logger) {
	scores, err := store.TopScores(variant.ID, limit)
	if err != nil {
		logger.Error("cannot retrieve scores", "variant", variant.ID, "err", err)
		return
	}

	fmt.Printf("High Scores - %s\n", variant.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'merge2048 play %s' to set the first high score!\n", variant.ID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %s\n", "----", "-----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-5d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
}

func printSummary(store *storage.Store, logger *log.Logger) {
	stats, err := store.Stats()
	if err != nil {
		logger.Error("cannot retrieve stats", "err", err)
		return
	}

	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	fmt.Printf("  %-8s  %-5s  %-8s  %-6s  %-8s  %s\n", "Variant", "Games", "Best", "Tile", "Average", "Last played")
	fmt.Printf("  %-8s  %-5s  %-8s  %-6s  %-8s  %s\n", "-------", "-----", "----", "----", "-------", "-----------")

	for _, v := range registry.List() {
		s, ok := stats[v.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-8d  %-6d  %-8.0f  %s\n",
			v.ID, s.GamesCount, s.HighScore, s.BestTile, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
