// Package config provides YAML-based board configuration loading,
// difficulty presets and layout generation.
package config

// MemoryConfig contains all configuration for a memory session.
type MemoryConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Seed    SeedConfig    `yaml:"seed"`
	TileSet string        `yaml:"tileset"`
	Layout  [][]string    `yaml:"layout"`
	Scoring ScoringConfig `yaml:"scoring"`
	Bot     BotConfig     `yaml:"bot"`
}

// BoardConfig defines board dimensions.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// ShuffleConfig defines how the board is shuffled after setup.
type ShuffleConfig struct {
	Iterations int `yaml:"iterations"`
}

// SeedConfig holds the two generator seed words.
type SeedConfig struct {
	Word0 uint64 `yaml:"word0"`
	Word1 uint64 `yaml:"word1"`
}

// ScoringConfig defines how the score manager counts points.
type ScoringConfig struct {
	MatchPoints     int `yaml:"match_points"`
	MismatchPenalty int `yaml:"mismatch_penalty"`
	StreakBonus     int `yaml:"streak_bonus"` // Added per consecutive match after the first
}

// BotConfig defines the auto-player.
type BotConfig struct {
	Recall   float64 `yaml:"recall"` // 0.0 = remembers nothing, 1.0 = perfect memory
	MaxMoves int     `yaml:"max_moves"`
}

// TileSetsConfig lists symbol tile sets.
type TileSetsConfig struct {
	TileSets []TileSetConfig `yaml:"tilesets"`
}

// TileSetConfig describes one symbol tile set.
type TileSetConfig struct {
	ID      string            `yaml:"id"`
	Title   string            `yaml:"title"`
	Symbols map[string]string `yaml:"symbols"`
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset validates a preset name. An empty name is PresetEasy.
func ParsePreset(name string) (Preset, bool) {
	switch Preset(name) {
	case "", PresetEasy:
		return PresetEasy, true
	case PresetNormal:
		return PresetNormal, true
	case PresetHard:
		return PresetHard, true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// A configured layout that no longer fits the board is dropped so one is
// generated instead.
func ApplyPreset(cfg *MemoryConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Board = BoardConfig{Columns: 4, Rows: 4}
		cfg.Shuffle.Iterations = 1
	case PresetNormal:
		cfg.Board = BoardConfig{Columns: 5, Rows: 4}
		cfg.Shuffle.Iterations = 2
		cfg.Bot.Recall = 0.6
	case PresetHard:
		cfg.Board = BoardConfig{Columns: 6, Rows: 6}
		cfg.Shuffle.Iterations = 3
		cfg.Bot.Recall = 0.4
		cfg.Scoring.MismatchPenalty = 2
	}

	if len(cfg.Layout) != cfg.Board.Rows {
		cfg.Layout = nil
		return
	}
	for _, row := range cfg.Layout {
		if len(row) != cfg.Board.Columns {
			cfg.Layout = nil
			return
		}
	}
}
