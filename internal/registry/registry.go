// Package registry holds the set of recipes known to the tool.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/halpkg/halpkg/recipe"
)

// ErrRecipeNotFound indicates no recipe is registered under the requested
// package path.
var ErrRecipeNotFound = errors.New("recipe not found")

// Registry maps package paths to their recipes.
type Registry struct {
	recipes map[string]*recipe.Recipe
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{recipes: make(map[string]*recipe.Recipe)}
}

// Add registers a recipe under its name, replacing any previous entry.
func (r *Registry) Add(rec *recipe.Recipe) {
	r.recipes[rec.Name] = rec
}

// Lookup returns the recipe registered under name.
func (r *Registry) Lookup(name string) (*recipe.Recipe, bool) {
	rec, ok := r.recipes[name]
	return rec, ok
}

// Get is Lookup with a not-found error, for callers reporting to the user.
func (r *Registry) Get(name string) (*recipe.Recipe, error) {
	rec, ok := r.recipes[name]
	if !ok {
		return nil, fmt.Errorf("recipe %q: %w", name, ErrRecipeNotFound)
	}
	return rec, nil
}

// Names returns the registered package paths in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.recipes))
	for name := range r.recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a registry preloaded with the recipes shipped in the
// tool.
func Builtin() *Registry {
	r := New()
	r.Add(ArmCortex())
	r.Add(halCore())
	r.Add(halUtil())
	r.Add(halExceptions())
	r.Add(prebuiltPicolibc())
	return r
}
