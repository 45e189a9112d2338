package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/config"
	"github.com/vovakirdan/merge2048/internal/registry"
)

var (
	flagVariant  string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	Long: `Loads settings the same way 'play' does and prints the result.
Settings are searched in this order: --config, ~/.merge2048/settings.yaml,
./configs/settings.yaml, then built-in defaults.

Examples:
  merge2048 config
  merge2048 config --variant big
  merge2048 config --defaults
  merge2048 config > ~/.merge2048/settings.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagVariant, "variant", "", "Apply a variant's board size before printing")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in settings file with its comments")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	if flagVariant != "" {
		variant, err := registry.Get(flagVariant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings = variant.Apply(settings)
	}

	data, err := config.Marshal(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
