package recipe

import (
	"reflect"
	"testing"
)

func TestOptions_Clone(t *testing.T) {
	orig := Options{"a": true, "b": false}
	clone := orig.Clone()

	clone["a"] = false
	if !orig["a"] {
		t.Error("Clone() shares storage with the original")
	}

	var nilOpts Options
	if got := nilOpts.Clone(); got == nil || len(got) != 0 {
		t.Errorf("Clone() of nil = %v, want empty set", got)
	}
}

func TestOptions_Merge(t *testing.T) {
	tests := []struct {
		name string
		base Options
		over Options
		want Options
	}{
		{
			name: "override declared key",
			base: Options{"a": true, "b": true},
			over: Options{"b": false},
			want: Options{"a": true, "b": false},
		},
		{
			name: "unknown keys carried through",
			base: Options{"a": true},
			over: Options{"z": true},
			want: Options{"a": true, "z": true},
		},
		{
			name: "nil override",
			base: Options{"a": true},
			over: nil,
			want: Options{"a": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Merge(tt.over); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptions_Without(t *testing.T) {
	base := Options{"a": true, "b": false, "c": true}

	got := base.Without("a", "c", "missing")
	want := Options{"b": false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Without() = %v, want %v", got, want)
	}
	if len(base) != 3 {
		t.Error("Without() mutated the receiver")
	}
}

func TestOptions_Names(t *testing.T) {
	opts := Options{"zeta": true, "alpha": false, "mid": true}

	got := opts.Names()
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
