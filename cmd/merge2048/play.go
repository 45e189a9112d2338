package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/merge2048/internal/config"
	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/platform/tui"
	"github.com/vovakirdan/merge2048/internal/registry"
	"github.com/vovakirdan/merge2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start a game on the given board variant (default: classic).

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game
  T                - Toggle top scores
  ?                - Show all keys
  Q/Esc            - Quit

Examples:
  merge2048 play
  merge2048 play mini
  merge2048 play huge --config ./my-settings.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
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

	settings, err := variantSettings(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openGameLogger()
	defer closeLog()

	runtime := terminalConfig()
	runtime.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Variant:  variant,
		Settings: settings,
		Store:    store,
		Logger:   logger,
		Runtime:  runtime,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// variantSettings loads settings and applies the variant's board.
func variantSettings(variant registry.Variant) (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	settings = variant.Apply(settings)
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// openGameLogger returns the file logger used while a game owns the terminal,
// falling back to a discarding logger, and a func that closes the file.
func openGameLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}
	}
	f, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// terminalConfig returns the runtime defaults sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
