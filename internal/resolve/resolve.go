// Package resolve expands the requirement graph of a root recipe across
// the registry.
package resolve

import (
	"github.com/halpkg/halpkg/internal/registry"
	"github.com/halpkg/halpkg/pkgs/target"
	"github.com/halpkg/halpkg/pkgs/verrange"
	"github.com/halpkg/halpkg/pkgs/verscmp"
	"github.com/halpkg/halpkg/recipe"
)

// A Resolved entry is one package in the flattened requirement list.
type Resolved struct {
	recipe.Requirement

	// Direct is true for requirements declared by the root recipe itself,
	// false for transitive ones.
	Direct bool
}

// Requirements evaluates root against the platform and walks the
// requirement graph breadth-first through the registry. Requirements on
// packages with no registered recipe stay in the list as leaves; the
// external resolver owns fetching them.
//
// When two packages require the same path, the requirement asking for the
// higher version wins. Output order is discovery order, direct
// requirements first.
func Requirements(reg *registry.Registry, root string, p target.Platform, overrides map[string]recipe.Options) ([]Resolved, error) {
	if _, err := reg.Get(root); err != nil {
		return nil, err
	}

	var (
		order   []string
		chosen  = make(map[string]Resolved)
		visited = make(map[string]bool)
	)

	add := func(req recipe.Requirement, direct bool) {
		prev, ok := chosen[req.Path]
		if !ok {
			chosen[req.Path] = Resolved{Requirement: req, Direct: direct}
			order = append(order, req.Path)
			return
		}
		if cmpConstraint(req.Constraint, prev.Constraint) > 0 {
			prev.Constraint = req.Constraint
		}
		// Markers are sticky: if any requirement on the path asks for
		// transitive headers or is direct, the merged entry keeps it.
		prev.TransitiveHeaders = prev.TransitiveHeaders || req.TransitiveHeaders
		prev.Direct = prev.Direct || direct
		chosen[req.Path] = prev
	}

	queue := []string{root}
	visited[root] = true

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		rec, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		opts := rec.DefaultOptions().Merge(overrides[name])
		for _, req := range rec.Requirements(p, opts) {
			add(req, name == root)
			if !visited[req.Path] {
				visited[req.Path] = true
				queue = append(queue, req.Path)
			}
		}
	}

	resolved := make([]Resolved, 0, len(order))
	for _, path := range order {
		resolved = append(resolved, chosen[path])
	}
	return resolved, nil
}

// cmpConstraint compares two constraints by the version they pivot on.
// Unparseable constraints sort lowest.
func cmpConstraint(a, b string) int {
	ra, errA := verrange.Parse(a)
	rb, errB := verrange.Parse(b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return verscmp.Compare(ra.Version(), rb.Version())
}
