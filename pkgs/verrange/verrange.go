// Package verrange implements the version constraint syntax used by
// recipe requirements.
//
// A constraint is one of:
//
//	^1.0.0   caret: >=1.0.0 and <2.0.0 (next major; next minor for 0.x)
//	~1.2     tilde: >=1.2.0 and <1.3.0 (next minor)
//	*        any version
//	12.2     exact match
//
// Constraints may be wrapped in brackets ("[^1.0.0]"), which are stripped.
// Comparisons use semver semantics where both sides parse as semver, and
// fall back to verscmp for toolchain-style versions like "12.2".
package verrange

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/halpkg/halpkg/pkgs/verscmp"
)

type op int

const (
	opExact op = iota
	opCaret
	opTilde
	opAny
)

// A Range is a parsed version constraint.
type Range struct {
	op  op
	ver string // canonical semver form with "v" prefix, or raw for exact
	raw string
}

// Parse parses a constraint string. The empty string and "*" both match
// any version.
func Parse(s string) (Range, error) {
	raw := s
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	switch {
	case s == "" || s == "*":
		return Range{op: opAny, raw: raw}, nil
	case strings.HasPrefix(s, "^"):
		v, err := canonical(s[1:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid caret constraint %q: %w", raw, err)
		}
		return Range{op: opCaret, ver: v, raw: raw}, nil
	case strings.HasPrefix(s, "~"):
		v, err := canonical(s[1:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid tilde constraint %q: %w", raw, err)
		}
		return Range{op: opTilde, ver: v, raw: raw}, nil
	default:
		return Range{op: opExact, ver: s, raw: raw}, nil
	}
}

// String returns the constraint as written.
func (r Range) String() string { return r.raw }

// Match reports whether version v satisfies the constraint.
func (r Range) Match(v string) bool {
	switch r.op {
	case opAny:
		return true
	case opExact:
		return verscmp.Compare(strings.TrimPrefix(v, "v"), strings.TrimPrefix(r.ver, "v")) == 0
	}

	cv, err := canonical(v)
	if err != nil {
		return false
	}
	if semver.Compare(cv, r.ver) < 0 {
		return false
	}
	switch r.op {
	case opCaret:
		if semver.Major(r.ver) != "v0" {
			return semver.Major(cv) == semver.Major(r.ver)
		}
		return semver.MajorMinor(cv) == semver.MajorMinor(r.ver)
	case opTilde:
		return semver.MajorMinor(cv) == semver.MajorMinor(r.ver)
	}
	return false
}

// MaxSatisfying returns the highest version in vs matching the constraint.
// The second result is false if none match.
func (r Range) MaxSatisfying(vs []string) (string, bool) {
	best := ""
	for _, v := range vs {
		if !r.Match(v) {
			continue
		}
		if best == "" || verscmp.Compare(strings.TrimPrefix(v, "v"), strings.TrimPrefix(best, "v")) > 0 {
			best = v
		}
	}
	return best, best != ""
}

// Version returns the version the constraint pivots on ("1.0.0" for
// "^1.0.0"), without any "v" prefix. Empty for wildcard constraints.
func (r Range) Version() string {
	return strings.TrimPrefix(r.ver, "v")
}

// canonical converts a loose version ("1.2", "v1") to canonical semver
// ("v1.2.0").
func canonical(v string) (string, error) {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	c := semver.Canonical(v)
	if c == "" {
		return "", fmt.Errorf("not a semantic version: %q", v)
	}
	return c, nil
}
