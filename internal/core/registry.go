package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Dataset binds a schema to the conventional location of its file.
type Dataset struct {
	Name        string // Unique key: "icfes"
	Label       string // Display name
	DefaultPath string // Used when the caller passes an empty path
	Schema      Schema
}

// Path returns override if set, otherwise DefaultPath.
func (d Dataset) Path(override string) string {
	if override != "" {
		return override
	}
	return d.DefaultPath
}

// LoadAll reads every row of the dataset file.
func (d Dataset) LoadAll(ctx context.Context, path string) (*Table, error) {
	return LoadAll(ctx, d.Path(path), d.Schema)
}

// LoadFirst reads the first n rows of the dataset file.
func (d Dataset) LoadFirst(ctx context.Context, n int, path string) (*Table, error) {
	return LoadFirst(ctx, d.Path(path), d.Schema, n)
}

var (
	registry   = make(map[string]Dataset)
	registryMu sync.RWMutex
)

// Register adds a dataset to the catalog.
// Panics if the name is taken or the schema is invalid.
func Register(d Dataset) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[d.Name]; exists {
		panic(fmt.Sprintf("dataset already registered: %s", d.Name))
	}
	if err := d.Schema.Validate(); err != nil {
		panic(fmt.Sprintf("dataset %s: %v", d.Name, err))
	}
	if d.Schema.Name == "" {
		d.Schema.Name = d.Name
	}

	registry[d.Name] = d
}

// Get returns a dataset by name.
func Get(name string) (Dataset, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	d, ok := registry[name]
	return d, ok
}

// All returns all registered datasets sorted by name.
func All() []Dataset {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Dataset, 0, len(registry))
	for _, d := range registry {
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Names returns the registered dataset names, sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

// Clear removes all registered datasets.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Dataset)
}
