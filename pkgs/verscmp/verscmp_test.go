package verscmp

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"", "", 0},
		{"12.2", "12.2", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.2", "1.10", -1},
		{"9.4", "12.2", -1},
		{"12.2", "12.2.1", -1},
		{"1.2", "1.2a", -1},
		{"13.2.Rel1", "13.2.Rel2", -1},
		{"1.02", "1.2", 0},
		{"2.0", "10.0", -1},
		{"1.2.3", "1.2", 1},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Compare(tt.b, tt.a); got != -tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}
