package registry

import (
	"github.com/halpkg/halpkg/internal/bootstrap"
	"github.com/halpkg/halpkg/recipe"
)

// ArmCortex returns the recipe for libhal-armcortex, the driver library for
// ARM Cortex-M processors.
//
// On baremetal GCC targets it pulls in the libhal exception runtime and a
// picolibc build matching the compiler version; both can be switched off.
// Neither option changes the produced binary, only what gets linked, so
// both are excluded from the package identity.
func ArmCortex() *recipe.Recipe {
	return &recipe.Recipe{
		Name: "libhal-armcortex",
		Metadata: recipe.Metadata{
			License:     "Apache-2.0",
			Homepage:    "https://libhal.github.io/libhal-armcortex",
			URL:         "https://github.com/libhal/libhal-armcortex",
			Description: "A collection of drivers and libraries for the Cortex M series ARM processors using libhal",
			Topics: []string{
				"arm", "cortex", "cortex-m", "cortex-m0", "cortex-m0plus",
				"cortex-m1", "cortex-m3", "cortex-m4", "cortex-m4f", "cortex-m7",
				"cortex-m23", "cortex-m55", "cortex-m35p", "cortex-m33",
			},
			Libs:        []string{"libhal-armcortex"},
			CMakeTarget: "libhal::armcortex",
		},
		Options: recipe.Options{
			"use_libhal_exceptions": true,
			"use_picolibc":          true,
		},
		NonABIOptions: []string{"use_libhal_exceptions", "use_picolibc"},
		Arches: []string{
			"cortex-m0", "cortex-m0plus", "cortex-m1", "cortex-m3",
			"cortex-m4", "cortex-m4f", "cortex-m7", "cortex-m23",
			"cortex-m55", "cortex-m35p", "cortex-m33",
		},
		LinkerScriptDir: "linker_scripts",
		OnRequire: func(ctx *recipe.Context, deps *recipe.Deps) {
			bootstrap.LibraryRequirements(deps)

			if !ctx.Platform.IsBaremetalGCC() {
				return
			}
			if ctx.Options["use_libhal_exceptions"] {
				deps.RequireTransitive("libhal-exceptions", "^1.0.0")
			}
			if ctx.Options["use_picolibc"] {
				// The picolibc build is pinned to the exact compiler
				// version; the string passes through unvalidated.
				deps.Require("prebuilt-picolibc", ctx.Platform.CompilerVersion)
			}
		},
	}
}

// halCore is the libhal interface library every driver package builds on.
func halCore() *recipe.Recipe {
	return &recipe.Recipe{
		Name: "libhal",
		Metadata: recipe.Metadata{
			License:     "Apache-2.0",
			Homepage:    "https://libhal.github.io/libhal",
			Description: "A hardware abstraction layer interface library for embedded systems",
			Topics:      []string{"hal", "embedded", "peripherals"},
			Libs:        []string{"libhal"},
			CMakeTarget: "libhal::libhal",
		},
	}
}

// halUtil holds shared utilities layered on the libhal interfaces.
func halUtil() *recipe.Recipe {
	return &recipe.Recipe{
		Name: "libhal-util",
		Metadata: recipe.Metadata{
			License:     "Apache-2.0",
			Homepage:    "https://libhal.github.io/libhal-util",
			Description: "Utility functions and helpers for libhal interfaces",
			Topics:      []string{"hal", "embedded", "utilities"},
			Libs:        []string{"libhal-util"},
			CMakeTarget: "libhal::util",
		},
		OnRequire: func(ctx *recipe.Context, deps *recipe.Deps) {
			deps.RequireTransitive("libhal", "^4.0.0")
		},
	}
}

// halExceptions provides the exception-handling runtime for baremetal
// targets built without the full C++ unwinder.
func halExceptions() *recipe.Recipe {
	return &recipe.Recipe{
		Name: "libhal-exceptions",
		Metadata: recipe.Metadata{
			License:     "Apache-2.0",
			Homepage:    "https://libhal.github.io/libhal-exceptions",
			Description: "Exception handling support for baremetal ARM targets",
			Topics:      []string{"arm", "exceptions", "unwind"},
			Libs:        []string{"libhal-exceptions"},
			CMakeTarget: "libhal::exceptions",
		},
	}
}

// prebuiltPicolibc packages binary picolibc builds, one per compiler
// version, hence no version range on its consumers.
func prebuiltPicolibc() *recipe.Recipe {
	return &recipe.Recipe{
		Name: "prebuilt-picolibc",
		Metadata: recipe.Metadata{
			License:     "BSD-3-Clause",
			Homepage:    "https://github.com/picolibc/picolibc",
			Description: "Prebuilt picolibc, a minimal C library for embedded systems",
			Topics:      []string{"libc", "picolibc", "baremetal"},
		},
	}
}
