package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-memory/internal/registry"
)

var tileSetsCmd = &cobra.Command{
	Use:   "tilesets",
	Short: "List all available tile sets",
	Long:  `Shows the built-in tile sets and those defined in tile set YAML.`,
	Run:   runTileSets,
}

func runTileSets(cmd *cobra.Command, args []string) {
	sets := registry.List()

	if len(sets) == 0 {
		fmt.Println("No tile sets available.")
		return
	}

	fmt.Println("Available tile sets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, s := range sets {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Types")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, s := range sets {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, s.ID, maxTitleLen, s.Title, strings.Join(s.Types, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'memory play --tileset <id>' to play with a tile set.")
}
