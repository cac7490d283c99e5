// Package registry provides a global registry of high score backends.
// Backends register themselves in init() functions, allowing the storage
// layer and the CLI to pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Backend is the raw persistence contract for the single best-score record.
// Implementations report every failure; the storage layer decides what to
// swallow.
type Backend interface {
	// Read returns the stored value. A missing record is (0, nil).
	Read() (int, error)

	// Write replaces the stored value.
	Write(score int) error

	// Close releases any resources held by the backend.
	Close() error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory opens a backend at the given location (a file path, a DSN, or
// ignored for in-memory backends).
type Factory func(path string) (Backend, error)

type entry struct {
	factory     Factory
	description string
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	backends[name] = entry{factory: f, description: description}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for name, e := range backends {
		result = append(result, BackendInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open instantiates a backend by name.
// Returns an error if the name is not registered or the factory fails.
func Open(name, path string) (Backend, error) {
	mu.RLock()
	e, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return e.factory(path)
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
