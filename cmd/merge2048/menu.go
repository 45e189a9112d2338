package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/platform/tui"
	"github.com/vovakirdan/merge2048/internal/registry"
	"github.com/vovakirdan/merge2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu and play",
	Long: `Start merge2048 in interactive menu mode.

Pick a board variant with the arrow keys or j/k and press Enter to play.
The menu shows the best score for each board. After a game you return
to the menu with the last board selected.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected board
  Tab          - Browse high scores
  Q            - Quit

Examples:
  merge2048 menu
  merge2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := openGameLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}

	cfg := terminalConfig()
	lastID := ""

	// Menu loop
	for {
		result, err := tui.RunMenu(store, cfg, lastID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		cfg = result.Config

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			if err := tui.RunScoreboard(store, lastID, cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue // Back to menu
		}

		variant, err := registry.Get(result.VariantID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		lastID = variant.ID

		settings, err := variantSettings(variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// A fixed seed replays the same spawns in every game
		cfg.Seed = flagSeed

		if err := tui.Run(tui.Options{
			Variant:  variant,
			Settings: settings,
			Store:    store,
			Logger:   logger,
			Runtime:  cfg,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
