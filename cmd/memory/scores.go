package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-memory/internal/registry"
	"github.com/vovakirdan/tile-memory/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <tileset>",
	Short: "Show best results for a tile set",
	Long: `Display the top 10 results for the specified tile set.

Examples:
  memory scores fruit
  memory scores sky`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	setID := args[0]

	set, err := registry.Create(setID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'memory tilesets' to see available tile sets.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(setID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("Best Results - " + set.Title()))
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'memory play --tileset %s' to record one!\n", setID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-9s  %s\n", "Rank", "Score", "Moves", "Board", "Status", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-9s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, r := range results {
		status := "gave up"
		if r.Completed {
			status = "cleared"
		}
		board := fmt.Sprintf("%dx%d", r.Columns, r.Rows)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-5s  %-9s  %s\n", i+1, r.Score, r.Moves, board, status, dateStr)
	}

	stats, err := store.GetStats(setID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Cleared: %d  Best: %d  Avg moves: %.1f\n",
			stats.Games, stats.Completed, stats.HighScore, stats.AvgMoves)
	}
}
