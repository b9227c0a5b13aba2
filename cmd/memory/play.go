package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-memory/internal/bot"
	"github.com/vovakirdan/tile-memory/internal/config"
	"github.com/vovakirdan/tile-memory/internal/core"
	"github.com/vovakirdan/tile-memory/internal/memory"
	"github.com/vovakirdan/tile-memory/internal/registry"
	"github.com/vovakirdan/tile-memory/internal/score"
	"github.com/vovakirdan/tile-memory/internal/storage"
)

var (
	flagPreset   string
	flagTileSet  string
	flagSeed0    uint64
	flagSeed1    uint64
	flagShuffles int
	flagRecall   float64
	flagNoSave   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board with the auto-player",
	Long: `Set up a board, shuffle it and let the bot clear it.

The bot only learns tiles by selecting them and forgets each one with
probability 1-recall. Given the same seeds a run is fully reproducible.

Presets:
  easy   - 4x4, one shuffle
  normal - 5x4, two shuffles, weaker recall
  hard   - 6x6, three shuffles, weak recall, higher penalty

Examples:
  memory play
  memory play --preset hard
  memory play --tileset cards --seed0 42 --seed1 7
  memory play --recall 1 --shuffles 5 -v`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	addSessionFlags(playCmd)
	playCmd.Flags().IntVar(&flagShuffles, "shuffles", -1, "Shuffle iterations (-1 = from config)")
	playCmd.Flags().Float64Var(&flagRecall, "recall", -1, "Bot recall probability 0..1 (-1 = from config)")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Don't record the result")
}

// addSessionFlags adds flags shared by commands that build a session.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTileSet, "tileset", "", "Tile set ID (default from config)")
	cmd.Flags().Uint64Var(&flagSeed0, "seed0", 0, "First generator seed word (0 = from config)")
	cmd.Flags().Uint64Var(&flagSeed1, "seed1", 0, "Second generator seed word (0 = from config)")
}

// sessionConfig loads the config and applies preset and flag overrides.
func sessionConfig() (config.MemoryConfig, core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, core.RuntimeConfig{}, err
	}

	if flagPreset != "" {
		preset, ok := config.ParsePreset(flagPreset)
		if !ok {
			return cfg, core.RuntimeConfig{}, fmt.Errorf("unknown preset %q", flagPreset)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagTileSet != "" {
		cfg.TileSet = flagTileSet
	}
	if flagSeed0 != 0 || flagSeed1 != 0 {
		cfg.Seed = config.SeedConfig{Word0: flagSeed0, Word1: flagSeed1}
	}
	if flagShuffles >= 0 {
		cfg.Shuffle.Iterations = flagShuffles
	}
	if flagRecall >= 0 {
		cfg.Bot.Recall = flagRecall
	}

	rt := core.DefaultConfig()
	rt.Grid = core.Grid{Columns: cfg.Board.Columns, Rows: cfg.Board.Rows}
	rt.Shuffles = cfg.Shuffle.Iterations
	rt.Seed0, rt.Seed1 = memory.NewGenerator(cfg.Seed.Word0, cfg.Seed.Word1).State()
	if cfg.TileSet != "" {
		rt.TileSetID = cfg.TileSet
	}
	return cfg, rt, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, rt, err := sessionConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	set, err := registry.Create(rt.TileSetID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'memory tilesets' to see available tile sets.")
		os.Exit(1)
	}

	layout, err := cfg.ResolveLayout(set.Types())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building layout: %v\n", err)
		os.Exit(1)
	}

	board, err := memory.NewBoard(rt.Grid.Columns, rt.Grid.Rows,
		memory.WithGenerator(memory.NewGenerator(rt.Seed0, rt.Seed1)),
		memory.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	board.Events().OnAll(memory.LogListener(logger))

	manager := score.NewManager(cfg.Scoring, score.Result{
		TileSet: set.ID(),
		Seed0:   rt.Seed0,
		Seed1:   rt.Seed1,
	})
	manager.Attach(board)
	if !flagNoSave {
		// Open result storage
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		} else {
			defer store.Close()
			manager.SetSaver(store)
		}
	}
	manager.OnComplete(func(r score.Result) {
		logger.Info("all pairs found", "score", r.Score, "moves", r.Moves)
	})

	// The bot draws from its own stream so its choices don't shift the shuffle.
	player := bot.New(bot.Config{
		Recall:   cfg.Bot.Recall,
		MaxMoves: cfg.Bot.MaxMoves,
	}, memory.NewGenerator(rt.Seed1, rt.Seed0), logger)
	player.Attach(board)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := board.Setup(ctx, set, layout); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up board: %v\n", err)
		os.Exit(1)
	}
	if err := board.Shuffle(rt.Shuffles); err != nil {
		fmt.Fprintf(os.Stderr, "Error shuffling board: %v\n", err)
		os.Exit(1)
	}

	outcome, runErr := player.Run(ctx)
	if runErr != nil && !errors.Is(runErr, bot.ErrMoveLimit) {
		fmt.Fprintf(os.Stderr, "Error running bot: %v\n", runErr)
		os.Exit(1)
	}

	result := manager.Result()
	fmt.Println(renderBoard(board, manager))
	fmt.Println(renderResult(set.Title(), result, outcome))

	if err := manager.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save result: %v\n", err)
	}
}
