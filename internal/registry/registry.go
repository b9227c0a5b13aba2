// Package registry provides a global registry of tile sets.
// Tile sets register themselves in init() functions (or at config load
// time), allowing the CLI to discover and instantiate them without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tile-memory/internal/memory"
)

// TileSet is a tile factory that can describe itself.
type TileSet interface {
	memory.TileFactory

	// ID returns a unique identifier (e.g., "fruit").
	// Used for CLI flags and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Types returns the type labels the set can produce.
	Types() []string
}

// SetInfo contains metadata about a registered tile set.
type SetInfo struct {
	ID    string
	Title string
	Types []string
}

// Factory is a function that creates a new instance of a tile set.
type Factory func() TileSet

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SetInfo)
	mu        sync.RWMutex
)

// Register adds a tile set factory to the registry.
// Panics if a set with the same ID is already registered.
func Register(id string, f Factory) {
	if !TryRegister(id, f) {
		panic(fmt.Sprintf("registry: tile set %q already registered", id))
	}
}

// TryRegister adds a tile set factory unless the ID is already taken.
// It reports whether the factory was added.
func TryRegister(id string, f Factory) bool {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return false
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	s := f()
	infos[id] = SetInfo{ID: id, Title: s.Title(), Types: s.Types()}
	return true
}

// List returns information about all registered tile sets, sorted by ID.
func List() []SetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new tile set by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (TileSet, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown tile set %q", id)
	}

	return f(), nil
}

// Exists checks if a tile set with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
