package providers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vrsandeep/mango-marks/internal/models"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]models.MetadataProvider)
)

// Register adds a new provider to the registry. It's called at startup.
func Register(p models.MetadataProvider) {
	mu.Lock()
	defer mu.Unlock()
	info := p.GetInfo()
	if _, exists := registry[info.ID]; exists {
		// Panic is appropriate here as it's a developer error during setup.
		panic(fmt.Sprintf("provider with ID '%s' is already registered", info.ID))
	}
	registry[info.ID] = p
}

// Get returns a provider by its ID.
func Get(id string) (models.MetadataProvider, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[id]
	return p, ok
}

// GetAll returns information for all registered providers, ordered by ID.
func GetAll() []models.ProviderInfo {
	mu.RLock()
	defer mu.RUnlock()
	providers := make([]models.ProviderInfo, 0, len(registry))
	for _, p := range registry {
		providers = append(providers, p.GetInfo())
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].ID < providers[j].ID })
	return providers
}

// UnregisterAll empties the registry. Tests use it between runs.
func UnregisterAll() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]models.MetadataProvider)
}
