package hashing

import (
	"fmt"
	"sort"

	"pdfhash/internal/models"
)

var registry = make(map[string]Hasher)

func Register(name string, h Hasher) {
	registry[name] = h
}

// GetHasher retrieves a hasher from the registry by name.
func GetHasher(name string) (Hasher, error) {
	hasher, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("hasher '%s' not found in registry", name)
	}
	return hasher, nil
}

// Supported reports whether an algorithm name is registered.
func Supported(name string) bool {
	_, exists := registry[name]
	return exists
}

// ListSupportedAlgorithms returns all registered hasher names, sorted so the
// listing endpoint output is stable.
func ListSupportedAlgorithms() []models.Algorithm {
	algorithms := make([]models.Algorithm, 0, len(registry))
	for name, hasher := range registry {
		algorithms = append(algorithms, models.Algorithm{
			Name:        name,
			Description: hasher.Description(),
		})
	}
	sort.Slice(algorithms, func(i, j int) bool {
		return algorithms[i].Name < algorithms[j].Name
	})
	return algorithms
}
