// Package registry provides a global catalog of scoring modes.
// Modes register themselves in init() functions, allowing the CLI to
// list and create games without knowing every rule set.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-darts/internal/config"
	"github.com/vovakirdan/tui-darts/internal/core"
)

// Factory creates a fresh game state for the given players.
type Factory func(players []core.Player, cfg config.Config) (core.State, error)

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	modes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a mode to the catalog.
// Panics if a mode with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{info: ModeInfo{ID: id, Title: title}, factory: f}
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, e := range modes {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create starts a new game of the given mode.
// Returns an error if the mode is unknown or the setup is invalid.
func Create(id string, players []core.Player, cfg config.Config) (core.State, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	st, err := e.factory(players, cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", id, err)
	}
	return st, nil
}

// Info returns the metadata of a mode.
func Info(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	return e.info, ok
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
