package recordid

import "testing"

func TestNewProducesValidIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := New()
		if !IsValid(id) {
			t.Fatalf("generated id %q is not valid", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"64f1c2d3a4b5c6d7e8f90a1b", true},
		{"64F1C2D3A4B5C6D7E8F90A1B", true},
		{"64f1c2d3a4b5c6d7e8f90a1", false},
		{"64f1c2d3a4b5c6d7e8f90a1bc", false},
		{"64f1c2d3a4b5c6d7e8f90a1g", false},
		{"", false},
		{"not-an-identifier-at-all", false},
	}
	for _, tc := range cases {
		if got := IsValid(tc.id); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
