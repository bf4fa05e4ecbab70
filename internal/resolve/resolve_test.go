package resolve

import (
	"errors"
	"testing"

	"github.com/halpkg/halpkg/internal/registry"
	"github.com/halpkg/halpkg/pkgs/target"
	"github.com/halpkg/halpkg/recipe"
)

func baremetalGCC() target.Platform {
	return target.Platform{
		OS:              "baremetal",
		Compiler:        "gcc",
		CompilerVersion: "12.2",
		Arch:            "cortex-m4",
	}
}

func paths(resolved []Resolved) []string {
	out := make([]string, len(resolved))
	for i, r := range resolved {
		out[i] = r.Path
	}
	return out
}

func find(resolved []Resolved, path string) (Resolved, bool) {
	for _, r := range resolved {
		if r.Path == path {
			return r, true
		}
	}
	return Resolved{}, false
}

func TestRequirements_BuiltinGraph(t *testing.T) {
	resolved, err := Requirements(registry.Builtin(), "libhal-armcortex", baremetalGCC(), nil)
	if err != nil {
		t.Fatalf("Requirements() failed: %v", err)
	}

	wantPaths := map[string]bool{
		"libhal":            true,
		"libhal-util":       true,
		"libhal-exceptions": true,
		"prebuilt-picolibc": true,
	}
	for _, p := range paths(resolved) {
		if !wantPaths[p] {
			t.Errorf("unexpected requirement %q", p)
		}
		delete(wantPaths, p)
	}
	for p := range wantPaths {
		t.Errorf("missing requirement %q", p)
	}

	pico, _ := find(resolved, "prebuilt-picolibc")
	if pico.Constraint != "12.2" {
		t.Errorf("prebuilt-picolibc constraint = %q, want %q", pico.Constraint, "12.2")
	}
	if !pico.Direct {
		t.Error("prebuilt-picolibc should be a direct requirement")
	}
}

func TestRequirements_OptionOverrides(t *testing.T) {
	overrides := map[string]recipe.Options{
		"libhal-armcortex": {"use_picolibc": false, "use_libhal_exceptions": false},
	}

	resolved, err := Requirements(registry.Builtin(), "libhal-armcortex", baremetalGCC(), overrides)
	if err != nil {
		t.Fatalf("Requirements() failed: %v", err)
	}

	if _, ok := find(resolved, "prebuilt-picolibc"); ok {
		t.Error("prebuilt-picolibc present despite use_picolibc=false")
	}
	if _, ok := find(resolved, "libhal-exceptions"); ok {
		t.Error("libhal-exceptions present despite use_libhal_exceptions=false")
	}
}

func TestRequirements_UnknownRoot(t *testing.T) {
	_, err := Requirements(registry.Builtin(), "no-such-recipe", baremetalGCC(), nil)
	if !errors.Is(err, registry.ErrRecipeNotFound) {
		t.Errorf("error = %v, want %v", err, registry.ErrRecipeNotFound)
	}
}

func TestRequirements_HighestVersionWins(t *testing.T) {
	reg := registry.New()
	reg.Add(&recipe.Recipe{
		Name: "app",
		OnRequire: func(ctx *recipe.Context, deps *recipe.Deps) {
			deps.Require("lib-a", "^1.0.0")
			deps.Require("common", "^1.0.0")
		},
	})
	reg.Add(&recipe.Recipe{
		Name: "lib-a",
		OnRequire: func(ctx *recipe.Context, deps *recipe.Deps) {
			deps.RequireTransitive("common", "^2.0.0")
		},
	})

	resolved, err := Requirements(reg, "app", target.Platform{}, nil)
	if err != nil {
		t.Fatalf("Requirements() failed: %v", err)
	}

	common, ok := find(resolved, "common")
	if !ok {
		t.Fatal("common requirement missing")
	}
	if common.Constraint != "^2.0.0" {
		t.Errorf("common constraint = %q, want %q", common.Constraint, "^2.0.0")
	}
	// The direct and transitive-headers markers are kept from either side.
	if !common.Direct {
		t.Error("common should stay marked direct")
	}
	if !common.TransitiveHeaders {
		t.Error("common should keep the transitive-headers marker")
	}
}

func TestRequirements_CycleSafe(t *testing.T) {
	reg := registry.New()
	reg.Add(&recipe.Recipe{
		Name: "ping",
		OnRequire: func(ctx *recipe.Context, deps *recipe.Deps) {
			deps.Require("pong", "^1.0.0")
		},
	})
	reg.Add(&recipe.Recipe{
		Name: "pong",
		OnRequire: func(ctx *recipe.Context, deps *recipe.Deps) {
			deps.Require("ping", "^1.0.0")
		},
	})

	resolved, err := Requirements(reg, "ping", target.Platform{}, nil)
	if err != nil {
		t.Fatalf("Requirements() failed: %v", err)
	}
	if len(resolved) != 2 {
		t.Errorf("resolved %v, want ping and pong once each", paths(resolved))
	}
}
