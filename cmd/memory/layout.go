package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-memory/internal/registry"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the layout a session would use",
	Long: `Resolve the board layout from config, preset and tile set, and print it
before any shuffling.

Examples:
  memory layout
  memory layout --preset hard --tileset sky`,
	Args: cobra.NoArgs,
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	addSessionFlags(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) {
	cfg, rt, err := sessionConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	set, err := registry.Create(rt.TileSetID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	layout, err := cfg.ResolveLayout(set.Types())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building layout: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %dx%d\n", set.Title(), rt.Grid.Columns, rt.Grid.Rows)
	fmt.Println(renderLayout(layout))
	if !layout.Pairable() {
		fmt.Println("Warning: some tile types occur an odd number of times; the board cannot be cleared.")
	}
}
