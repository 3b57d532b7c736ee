// Package registry provides a global registry for arena layouts.
// Arenas register themselves in init() functions, allowing the commands
// to discover and build sessions without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/sim"
)

// ArenaInfo contains metadata about a registered arena.
type ArenaInfo struct {
	ID        string
	Title     string
	Obstacles int
}

// Factory builds a fresh copy of an arena layout.
type Factory func() sim.Layout

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ArenaInfo)
	mu        sync.RWMutex
)

// Register adds an arena factory to the registry.
// Typically called from an arena's init() function.
// Panics if an arena with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: arena %q already registered", id))
	}

	factories[id] = f

	// Capture metadata from a throwaway layout
	l := f()
	infos[id] = ArenaInfo{ID: id, Title: l.Title, Obstacles: len(l.Obstacles)}
}

// List returns information about all registered arenas, sorted by ID.
func List() []ArenaInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ArenaInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Layout returns a fresh layout for the given arena ID.
// Returns an error if the arena ID is not registered.
func Layout(id string) (sim.Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return sim.Layout{}, fmt.Errorf("registry: unknown arena %q", id)
	}

	return f(), nil
}

// Create builds a new simulation session for the arena, resting on the Start screen.
// The config is validated first so no session runs with non-finite tuning.
func Create(id string, cfg config.CubeConfig) (*sim.Simulation, error) {
	l, err := Layout(id)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("registry: invalid config: %w", err)
	}
	return sim.New(cfg, l), nil
}

// Exists checks if an arena with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
