package core

// RuntimeConfig contains configuration passed to a game session at start.
// The generator seeds make a session fully reproducible.
type RuntimeConfig struct {
	Grid      Grid   // Board dimensions
	Shuffles  int    // Shuffle iterations applied after setup
	Seed0     uint64 // First generator word
	Seed1     uint64 // Second generator word
	TileSetID string // Registered tile factory to use
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:      Grid{Columns: 4, Rows: 4},
		Shuffles:  1,
		Seed0:     0, // 0 means use the generator's default seeds
		Seed1:     0,
		TileSetID: "fruit",
	}
}

// GameState represents the current state of a session.
type GameState struct {
	Score    int  // Current score
	Moves    int  // Pairs evaluated so far
	GameOver bool // Whether every pair has been found
}
