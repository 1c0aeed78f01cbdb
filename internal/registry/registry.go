// Package registry provides a global registry of playable stages.
// Stages register themselves in init() functions, allowing the CLI to list
// them and start a run at any stage without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Stage is the minimal view of a playable stage the registry needs.
type Stage interface {
	// ID returns a unique identifier (e.g., "email", "escape").
	// Used for CLI flags.
	ID() string

	// Title returns a human-readable name for display.
	Title() string
}

// StageInfo contains metadata about a registered stage.
type StageInfo struct {
	ID    string
	Title string
	Order int // position in a full run, 1-based
}

// Factory is a function that creates a new instance of a stage.
type Factory func() Stage

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]StageInfo)
	mu        sync.RWMutex
)

// Register adds a stage factory to the registry at the given run position.
// Typically called from an init() function.
// Panics if a stage with the same ID is already registered.
func Register(order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	// Get ID and title by creating a temporary instance
	s := f()
	id := s.ID()
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: stage %q already registered", id))
	}

	factories[id] = f
	infos[id] = StageInfo{ID: id, Title: s.Title(), Order: order}
}

// List returns information about all registered stages in run order.
func List() []StageInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StageInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new stage by its ID.
// Returns an error if the stage ID is not registered.
func Create(id string) (Stage, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown stage %q", id)
	}

	return f(), nil
}

// Exists checks if a stage with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
