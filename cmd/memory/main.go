// memory is a tile-matching board engine with a deterministic auto-player.
//
// Usage:
//
//	memory play              - Set up a board and let the bot clear it
//	memory layout            - Print the layout a session would use
//	memory tilesets          - List available tile sets
//	memory scores <tileset>  - Show best results for a tile set
//
// Global flags:
//
//	--config <path>    - Board config YAML (default: search ~/.memory/configs, ./configs)
//	--tilesets <path>  - Tile set definitions YAML
//	--db <path>        - Results database path (default: ~/.memory/results.db)
//	--verbose          - Log every board event
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-memory/internal/config"
	"github.com/vovakirdan/tile-memory/internal/tiles"
)

var (
	// Global flags
	flagConfig   string
	flagTileSets string
	flagDBPath   string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - a tile-matching board engine",
	Long: `Memory sets up tile-matching boards from YAML layouts, shuffles them
with a reproducible generator and lets a bot play them.

Available commands:
  play      - Play a board with the auto-player
  layout    - Print the layout a session would use
  tilesets  - Show all available tile sets
  scores    - View best results

Examples:
  memory play
  memory play --preset hard --tileset sky --seed0 7 --seed1 11
  memory layout --preset normal
  memory scores fruit`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return registerTileSets()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTileSets, "tilesets", "", "Path to tile set definitions YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.memory/results.db", "Path to results database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every board event")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(tileSetsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the CLI logger.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// registerTileSets adds the YAML-defined symbol sets to the registry.
func registerTileSets() error {
	sets, err := config.LoadTileSets(flagTileSets)
	if err != nil {
		return err
	}
	for _, set := range sets.TileSets {
		if set.ID == "" || len(set.Symbols) == 0 {
			continue
		}
		tiles.RegisterSymbols(set.ID, set.Title, set.Symbols)
	}
	return nil
}
