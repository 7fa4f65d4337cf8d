package statetax

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		state    string
		status   FilingStatus
		expected float64
	}{
		{
			name:     "No income tax state",
			income:   100000,
			state:    "TX",
			status:   FilingSingle,
			expected: 0,
		},
		{
			name:   "California single bracket summation",
			income: 100000,
			state:  "CA",
			status: FilingSingle,
			// 100000 - 5540 deduction = 94460 taxable, summed over the
			// published single brackets.
			expected: 5437.63,
		},
		{
			name:     "Flat rate state",
			income:   80000,
			state:    "IL",
			status:   FilingSingle,
			expected: 80000 * 0.0495,
		},
		{
			name:     "Unknown state owes nothing",
			income:   50000,
			state:    "ZZ",
			status:   FilingSingle,
			expected: 0,
		},
		{
			name:     "Income below deduction",
			income:   5000,
			state:    "CA",
			status:   FilingSingle,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calculate(tt.income, tt.state, tt.status)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("Calculate(%v, %s, %s) = %.2f, expected %.2f",
					tt.income, tt.state, tt.status, result, tt.expected)
			}
		})
	}
}

func TestCalculateMarriedUsesMarriedBrackets(t *testing.T) {
	single := Calculate(150000, "CA", FilingSingle)
	married := Calculate(150000, "CA", FilingMarried)

	if married >= single {
		t.Errorf("married tax %.2f not below single %.2f on the same income", married, single)
	}
}

func TestDataCoversAllStates(t *testing.T) {
	codes := Codes()
	if len(codes) != 50 {
		t.Fatalf("table covers %d states, expected 50", len(codes))
	}

	noTax := map[string]bool{
		"AK": true, "FL": true, "NV": true, "NH": true, "SD": true,
		"TN": true, "TX": true, "WA": true, "WY": true,
	}
	for _, code := range codes {
		info, ok := Lookup(code)
		if !ok {
			t.Fatalf("Lookup(%s) missing", code)
		}
		if noTax[code] == info.HasIncomeTax {
			t.Errorf("%s HasIncomeTax = %v, inconsistent with the no-tax set", code, info.HasIncomeTax)
		}
		if info.HasIncomeTax && info.FlatRate == 0 {
			if len(info.SingleBrackets) == 0 || len(info.MarriedBrackets) == 0 {
				t.Errorf("%s has neither a flat rate nor both bracket sets", code)
			}
		}
	}
}

// Every progressive state's brackets must be contiguous from 0 with an
// unbounded top bracket, or the marginal walk would skip income.
func TestBracketsContiguous(t *testing.T) {
	for _, code := range Codes() {
		info, _ := Lookup(code)
		for _, brackets := range [][]Bracket{info.SingleBrackets, info.MarriedBrackets} {
			if len(brackets) == 0 {
				continue
			}
			if brackets[0].Min != 0 {
				t.Errorf("%s first bracket starts at %.2f, expected 0", code, brackets[0].Min)
			}
			for i := 1; i < len(brackets); i++ {
				if brackets[i].Min != brackets[i-1].Max {
					t.Errorf("%s bracket %d starts at %.2f, previous ends at %.2f",
						code, i, brackets[i].Min, brackets[i-1].Max)
				}
			}
			if !math.IsInf(brackets[len(brackets)-1].Max, 1) {
				t.Errorf("%s top bracket is bounded at %.2f", code, brackets[len(brackets)-1].Max)
			}
		}
	}
}
