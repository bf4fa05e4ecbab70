// Package pkgid computes the binary-compatibility identity of a package
// build. Two builds share an identity exactly when their platform settings
// and ABI-relevant options match; the identity keys the package cache.
package pkgid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/halpkg/halpkg/pkgs/target"
	"github.com/halpkg/halpkg/recipe"
)

// Compute returns the identity hash for building the named recipe on p
// with the given ABI-relevant options (i.e. the output of
// Recipe.PackageID). The hash is stable across runs: options are folded in
// sorted by name.
func Compute(name string, p target.Platform, opts recipe.Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", name)
	fmt.Fprintf(&b, "os=%s\ncompiler=%s\ncompiler_version=%s\narch=%s\nbuild_type=%s\n",
		p.OS, p.Compiler, p.CompilerVersion, p.Arch, p.BuildType)
	for _, opt := range opts.Names() {
		fmt.Fprintf(&b, "%s=%t\n", opt, opts[opt])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
