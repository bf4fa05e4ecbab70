package recipe

import (
	"reflect"
	"testing"

	"github.com/halpkg/halpkg/pkgs/target"
)

func TestRequirements_NilOnRequire(t *testing.T) {
	rec := &Recipe{Name: "leaf"}

	got := rec.Requirements(target.Platform{OS: "baremetal", Compiler: "gcc"}, nil)
	if len(got) != 0 {
		t.Errorf("leaf recipe requirements = %v, want none", got)
	}
}

func TestRequirements_OptionDefaultsApplied(t *testing.T) {
	var seen Options

	rec := &Recipe{
		Name:    "probe",
		Options: Options{"alpha": true, "beta": false},
		OnRequire: func(ctx *Context, deps *Deps) {
			seen = ctx.Options
		},
	}

	rec.Requirements(target.Platform{}, Options{"beta": true})

	want := Options{"alpha": true, "beta": true}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("evaluated options = %v, want %v", seen, want)
	}
}

func TestDeps_AppendOrder(t *testing.T) {
	var deps Deps
	deps.RequireTransitive("a", "^1.0.0")
	deps.Require("b", "2.0")
	deps.Require("c", "*")

	got := deps.Requirements()
	want := []Requirement{
		{Path: "a", Constraint: "^1.0.0", TransitiveHeaders: true},
		{Path: "b", Constraint: "2.0"},
		{Path: "c", Constraint: "*"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Requirements() = %v, want %v", got, want)
	}
}

func TestLinkFlags_NoLinkerScriptDir(t *testing.T) {
	rec := &Recipe{Name: "plain"}

	p := target.Platform{OS: "baremetal", Compiler: "gcc", Arch: "cortex-m4"}
	if got := rec.LinkFlags(p, "pkg"); got != nil {
		t.Errorf("LinkFlags() = %v, want nil", got)
	}
}

func TestPackageID_NoDeclaredNonABIOptions(t *testing.T) {
	rec := &Recipe{Name: "plain"}

	opts := Options{"x": true}
	if got := rec.PackageID(opts); !reflect.DeepEqual(got, opts) {
		t.Errorf("PackageID() = %v, want %v", got, opts)
	}
}
