package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down", 10.124, 10.12},
		{"Round up", 10.125, 10.13},
		{"Negative", -10.126, -10.13},
		{"Already exact", 10.10, 10.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("0.005 should be within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("0.02 should not be within currency tolerance")
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(25, 100); got != 25 {
		t.Errorf("CalculatePercentage(25, 100) = %v", got)
	}
	if got := CalculatePercentage(10, 0); got != 0 {
		t.Errorf("CalculatePercentage with zero total = %v, expected 0", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(200, 15); got != 30 {
		t.Errorf("ApplyPercentage(200, 15) = %v, expected 30", got)
	}
}
