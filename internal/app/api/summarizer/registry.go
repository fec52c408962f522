package summarizer

import (
	"fmt"
	"sync"
)

// Creator is a function that creates a summarizer from options
type Creator func(opts Options) (Summarizer, error)

var (
	registry      = make(map[string]Creator)
	registryMutex sync.RWMutex
)

// Register registers a summarizer creator function. Providers call this
// from init(); the serve command blank-imports the provider packages.
func Register(name string, creator Creator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[name] = creator
}

// New creates a summarizer by registered name.
func New(name string, opts Options) (Summarizer, error) {
	registryMutex.RLock()
	creator, ok := registry[name]
	registryMutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("summarizer %q not registered (have %v)", name, ListRegistered())
	}
	return creator(opts)
}

// ListRegistered returns all registered summarizer names
func ListRegistered() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	var names []string
	for name := range registry {
		names = append(names, name)
	}
	return names
}
