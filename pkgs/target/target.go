// Package target defines the platform descriptor a recipe is evaluated
// against.
package target

import "fmt"

// A Platform describes the target a package is built for. It is supplied by
// the invoking tool (typically parsed from a profile file) and never mutated
// during recipe evaluation.
type Platform struct {
	OS              string // target operating system, "baremetal" for no host OS
	Compiler        string // compiler id, e.g. "gcc", "clang"
	CompilerVersion string // compiler version string, e.g. "12.2"
	Arch            string // target architecture, e.g. "cortex-m4"
	BuildType       string // e.g. "Release", "MinSizeRel"; cache-key only
}

// IsBaremetalGCC reports whether the platform is a GCC baremetal target,
// the combination that gates conditional embedded requirements.
func (p Platform) IsBaremetalGCC() bool {
	return p.OS == "baremetal" && p.Compiler == "gcc"
}

// String returns a compact "os-compiler-version-arch" form used in logs and
// cache paths.
func (p Platform) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", p.OS, p.Compiler, p.CompilerVersion, p.Arch)
}
