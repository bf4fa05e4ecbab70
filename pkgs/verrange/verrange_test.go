package verrange

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		constraint string
		version    string
		want       bool
	}{
		// caret
		{"^1.0.0", "1.0.0", true},
		{"^1.0.0", "1.9.3", true},
		{"^1.0.0", "2.0.0", false},
		{"^1.0.0", "0.9.0", false},
		{"[^1.0.0]", "1.2.0", true},
		{"^0.2.0", "0.2.5", true},
		{"^0.2.0", "0.3.0", false},

		// tilde
		{"~1.2", "1.2.0", true},
		{"~1.2", "1.2.9", true},
		{"~1.2", "1.3.0", false},

		// wildcard
		{"*", "12.2", true},
		{"", "anything", true},

		// exact, including non-semver toolchain versions
		{"12.2", "12.2", true},
		{"12.2", "12.3", false},
		{"12.2", "12.02", true},
		{"1.0.0", "1.0.0", true},
	}

	for _, tt := range tests {
		r, err := Parse(tt.constraint)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.constraint, err)
		}
		if got := r.Match(tt.version); got != tt.want {
			t.Errorf("%q.Match(%q) = %v, want %v", tt.constraint, tt.version, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, constraint := range []string{"^abc", "~x.y"} {
		if _, err := Parse(constraint); err == nil {
			t.Errorf("Parse(%q) should fail", constraint)
		}
	}
}

func TestMaxSatisfying(t *testing.T) {
	tests := []struct {
		constraint string
		versions   []string
		want       string
		wantOK     bool
	}{
		{"^1.0.0", []string{"0.9.0", "1.0.0", "1.4.2", "2.0.0"}, "1.4.2", true},
		{"~1.2", []string{"1.2.0", "1.2.10", "1.2.9", "1.3.0"}, "1.2.10", true},
		{"^3.0.0", []string{"1.0.0", "2.0.0"}, "", false},
		{"*", []string{"9.4", "12.2"}, "12.2", true},
	}

	for _, tt := range tests {
		r, err := Parse(tt.constraint)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.constraint, err)
		}
		got, ok := r.MaxSatisfying(tt.versions)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.MaxSatisfying(%v) = (%q, %v), want (%q, %v)",
				tt.constraint, tt.versions, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"^1.0.0", "1.0.0"},
		{"~1.2", "1.2.0"},
		{"[^2.1.0]", "2.1.0"},
		{"12.2", "12.2"},
		{"*", ""},
	}

	for _, tt := range tests {
		r, err := Parse(tt.constraint)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.constraint, err)
		}
		if got := r.Version(); got != tt.want {
			t.Errorf("%q.Version() = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}
