// Package registry holds the named board variants the CLI can start.
// Variants register themselves in init() functions so commands can list
// and look them up without hardcoding board sizes.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/merge2048/internal/config"
)

// Variant is a named board preset layered over the loaded settings.
type Variant struct {
	ID     string // Used for CLI arguments and score storage
	Title  string
	Width  int
	Height int
	Target int // 0 keeps the configured target
}

// Apply returns settings with the variant's board size and target.
func (v Variant) Apply(s config.Settings) config.Settings {
	s.Grid.Width = v.Width
	s.Grid.Height = v.Height
	if v.Target > 0 {
		s.Target = v.Target
	}
	return s
}

// DefaultID is the variant played when none is named.
const DefaultID = "classic"

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered or the board
// is smaller than 2x2.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Width < 2 || v.Height < 2 {
		panic(fmt.Sprintf("registry: variant %q has a %dx%d board", v.ID, v.Width, v.Height))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by board area then ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		ai := result[i].Width * result[i].Height
		aj := result[j].Width * result[j].Height
		if ai != aj {
			return ai < aj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a variant by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
