package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/tilesets.yaml
var defaultTileSetsYAML []byte

// DefaultConfig returns the default memory configuration.
func DefaultConfig() MemoryConfig {
	return MemoryConfig{
		Board:   BoardConfig{Columns: 4, Rows: 4},
		Shuffle: ShuffleConfig{Iterations: 1},
		TileSet: "fruit",
		Layout: [][]string{
			{"Apple", "Orange", "Banana", "Cherry"},
			{"Grape", "Lemon", "Pear", "Plum"},
			{"Apple", "Orange", "Banana", "Cherry"},
			{"Grape", "Lemon", "Pear", "Plum"},
		},
		Scoring: ScoringConfig{
			MatchPoints:     10,
			MismatchPenalty: 1,
			StreakBonus:     5,
		},
		Bot: BotConfig{
			Recall:   0.8,
			MaxMoves: 500,
		},
	}
}

// unmarshalEmbedded decodes the embedded tile set definitions.
func unmarshalEmbedded(cfg *TileSetsConfig) error {
	return yaml.Unmarshal(defaultTileSetsYAML, cfg)
}
