package version

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.0.0", 0},
		{"2.0", "1.9.9", 1},
		{"1.9.9", "2.0", -1},
		{"1.10", "1.9", 1},
		{"1.2.3", "1.2.4", -1},
		{"", "0", 0},
		{"1.x", "1.0", 0}, // non-numeric segments count as 0
		{"3", "2.99.99", 1},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAtLeast(t *testing.T) {
	if !AtLeast("1.5", "1.5") {
		t.Error("a version should satisfy itself as minimum")
	}
	if !AtLeast("2.0", "1.5") {
		t.Error("2.0 should be at least 1.5")
	}
	if AtLeast("1.4.9", "1.5") {
		t.Error("1.4.9 should not be at least 1.5")
	}
}
