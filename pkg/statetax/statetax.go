// Package statetax provides 2025 state income tax reference data and the
// bracket evaluation used by the take-home pay and tax calculators.
package statetax

import (
	"math"
	"sort"
)

// FilingStatus selects which bracket set and deduction apply.
type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

// Bracket is one marginal bracket. Max of Unbounded marks the top bracket.
type Bracket struct {
	Rate float64 // percent
	Min  float64
	Max  float64
}

// Unbounded is the Max of a state's top bracket.
var Unbounded = math.Inf(1)

// StateInfo describes one state's income tax structure. A state is exactly
// one of: no income tax, flat rate, or progressive brackets.
type StateInfo struct {
	Name             string
	HasIncomeTax     bool
	FlatRate         float64 // percent; 0 unless the state taxes at a flat rate
	SingleBrackets   []Bracket
	MarriedBrackets  []Bracket
	SingleDeduction  float64
	MarriedDeduction float64
}

// Lookup returns the tax structure for a two-letter state code.
func Lookup(code string) (StateInfo, bool) {
	info, ok := stateTaxData[code]
	return info, ok
}

// Codes returns all known state codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(stateTaxData))
	for code := range stateTaxData {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Calculate returns the state income tax owed on the given income. Unknown
// state codes and states with no income tax owe 0. Filing statuses other
// than married use the single bracket set.
func Calculate(income float64, stateCode string, status FilingStatus) float64 {
	info, ok := stateTaxData[stateCode]
	if !ok || !info.HasIncomeTax {
		return 0
	}

	deduction := info.SingleDeduction
	if status == FilingMarried {
		deduction = info.MarriedDeduction
	}
	taxableIncome := math.Max(0, income-deduction)

	if info.FlatRate > 0 {
		return taxableIncome * info.FlatRate / 100
	}

	brackets := info.SingleBrackets
	if status == FilingMarried {
		brackets = info.MarriedBrackets
	}

	tax := 0.0
	for _, bracket := range brackets {
		if taxableIncome <= bracket.Min {
			break
		}
		taxableInBracket := math.Min(taxableIncome, bracket.Max) - bracket.Min
		if taxableInBracket > 0 {
			tax += taxableInBracket * bracket.Rate / 100
		}
	}
	return tax
}
