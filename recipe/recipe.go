// Package recipe defines the build recipe of a package: its metadata,
// declared options and the callback that derives its requirements for a
// given target platform.
package recipe

import (
	"path/filepath"
	"strings"

	"github.com/halpkg/halpkg/pkgs/target"
)

// -----------------------------------------------------------------------------

// A Requirement declares a dependency of a package.
type Requirement struct {
	Path              string // package path, e.g. "libhal-exceptions"
	Constraint        string // version constraint, e.g. "^1.0.0" or "12.2"
	TransitiveHeaders bool   // consumers also need the dependency's headers
}

// Deps collects the requirements of a package during evaluation. The list
// is append-only; evaluation never removes or reorders entries.
type Deps struct {
	reqs []Requirement
}

// Require declares that the package depends on path at the given version
// constraint.
func (d *Deps) Require(path, constraint string) {
	d.reqs = append(d.reqs, Requirement{Path: path, Constraint: constraint})
}

// RequireTransitive is Require with the transitive-headers marker set, for
// dependencies whose headers must stay visible to consumers.
func (d *Deps) RequireTransitive(path, constraint string) {
	d.reqs = append(d.reqs, Requirement{Path: path, Constraint: constraint, TransitiveHeaders: true})
}

// Requirements returns the collected requirements.
func (d *Deps) Requirements() []Requirement {
	return d.reqs
}

// -----------------------------------------------------------------------------

// Context carries the inputs of a recipe evaluation.
type Context struct {
	Platform target.Platform
	Options  Options
}

// Metadata is the static package information a recipe exports to consumers.
type Metadata struct {
	License     string
	Homepage    string
	URL         string
	Description string
	Topics      []string
	Libs        []string // library names to link, e.g. ["libhal-armcortex"]
	CMakeTarget string   // e.g. "libhal::armcortex"
}

// A Recipe describes how one package behaves inside the dependency graph.
type Recipe struct {
	Name     string
	Metadata Metadata

	// Options declares the recipe's boolean options and their defaults.
	Options Options

	// NonABIOptions names options that do not affect the produced binary.
	// PackageID strips them so builds differing only in these options share
	// a cache entry.
	NonABIOptions []string

	// Arches lists the architectures the recipe targets, used to enumerate
	// build variants.
	Arches []string

	// OnRequire derives the package's requirements for a platform and
	// option set. Optional; a nil OnRequire means a leaf package.
	OnRequire func(ctx *Context, deps *Deps)

	// LinkerScriptDir names a subdirectory of the installed package holding
	// target linker scripts. When set, baremetal GCC cortex targets get a
	// -L flag pointing at it.
	LinkerScriptDir string
}

// DefaultOptions returns a copy of the recipe's declared options with their
// default values.
func (r *Recipe) DefaultOptions() Options {
	return r.Options.Clone()
}

// Requirements evaluates the recipe against a platform and option set and
// returns its requirement list. It is a total function: unmatched
// conditions contribute nothing, and no combination of inputs fails.
func (r *Recipe) Requirements(p target.Platform, opts Options) []Requirement {
	var deps Deps
	if r.OnRequire != nil {
		r.OnRequire(&Context{Platform: p, Options: r.Options.Merge(opts)}, &deps)
	}
	return deps.Requirements()
}

// LinkFlags returns the linker flags consumers must pass when linking an
// executable against the package installed at packageFolder.
func (r *Recipe) LinkFlags(p target.Platform, packageFolder string) []string {
	if r.LinkerScriptDir == "" {
		return nil
	}
	if !p.IsBaremetalGCC() || !strings.Contains(p.Arch, "cortex-") {
		return nil
	}
	return []string{"-L" + filepath.Join(packageFolder, r.LinkerScriptDir)}
}

// PackageID reduces an option set to the options that affect binary
// compatibility, by dropping the recipe's NonABIOptions. The input is not
// mutated, and reapplying PackageID to its own result is a no-op.
func (r *Recipe) PackageID(opts Options) Options {
	return opts.Without(r.NonABIOptions...)
}
