package coldata

import "testing"

func TestLookup(t *testing.T) {
	city, ok := Lookup("San Francisco, CA")
	if !ok {
		t.Fatal("expected San Francisco, CA in the dataset")
	}
	if city.Indices.Overall != 180 {
		t.Errorf("Overall = %.0f, expected 180", city.Indices.Overall)
	}

	if _, ok := Lookup("Atlantis"); ok {
		t.Error("expected unknown city to miss")
	}
}

func TestCitiesSortedAndComplete(t *testing.T) {
	cities := Cities()
	if len(cities) == 0 {
		t.Fatal("no cities in the dataset")
	}
	for i := 1; i < len(cities); i++ {
		if cities[i-1] >= cities[i] {
			t.Fatalf("cities not sorted: %q before %q", cities[i-1], cities[i])
		}
	}
	for _, name := range cities {
		city, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) missing", name)
		}
		if city.Indices.Overall <= 0 {
			t.Errorf("%q has non-positive overall index", name)
		}
	}
}

func TestStateCode(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"Austin, TX", "TX"},
		{"San Francisco, CA", "CA"},
		{"Salt Lake City, UT", "UT"},
		{"Atlantis", ""},
		{"Somewhere, Texas", ""},
	}

	for _, tt := range tests {
		if got := StateCode(tt.label); got != tt.expected {
			t.Errorf("StateCode(%q) = %q, expected %q", tt.label, got, tt.expected)
		}
	}
}
