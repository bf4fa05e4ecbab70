// Package bootstrap contributes the requirements shared by every library
// package in the libhal ecosystem. Library recipes call
// LibraryRequirements first, before their own conditional requirements.
package bootstrap

import "github.com/halpkg/halpkg/recipe"

// LibraryRequirements appends the base libhal requirements every library
// package carries. Their headers propagate to consumers.
func LibraryRequirements(deps *recipe.Deps) {
	deps.RequireTransitive("libhal", "^4.0.0")
	deps.RequireTransitive("libhal-util", "^5.0.0")
}
