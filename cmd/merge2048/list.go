package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every board variant that can be passed to 'merge2048 play'.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Board", "Target", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	for _, v := range variants {
		target := "-"
		if v.Target > 0 {
			target = fmt.Sprintf("%d", v.Target)
		}
		board := fmt.Sprintf("%dx%d", v.Width, v.Height)
		fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, v.ID, board, target, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'merge2048 play <id>' to start a game.")
}
