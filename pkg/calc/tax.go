package calc

import (
	"math"

	"github.com/fincalc/calcsuite/pkg/constants"
	"github.com/fincalc/calcsuite/pkg/statetax"
)

// TaxInput holds the standalone income tax estimator's parameters.
// Deductions are itemized amounts on top of the standard deduction.
type TaxInput struct {
	Income       float64      `json:"income" validate:"gt=0"`
	FilingStatus FilingStatus `json:"filingStatus" validate:"oneof=single married head"`
	State        string       `json:"state"`
	Deductions   float64      `json:"deductions" validate:"gte=0"`
	Dependents   int          `json:"dependents" validate:"gte=0,lte=20"`
}

// TaxResult breaks the estimate into its components. FICATax combines
// Social Security and Medicare; EffectiveRate is total tax over gross
// income as a percentage.
type TaxResult struct {
	GrossIncome   float64 `json:"grossIncome"`
	TaxableIncome float64 `json:"taxableIncome"`
	FederalTax    float64 `json:"federalTax"`
	StateTax      float64 `json:"stateTax"`
	FICATax       float64 `json:"ficaTax"`
	TotalTax      float64 `json:"totalTax"`
	EffectiveRate float64 `json:"effectiveRate"`
	TakeHomePay   float64 `json:"takeHomePay"`
}

// Tax estimates annual income tax. It shares the federal bracket tables
// with TakeHomePay and uses the per-state tables for state tax; dependents
// apply a flat credit against federal tax, floored at zero.
func Tax(input TaxInput) TaxResult {
	taxableIncome := math.Max(0, input.Income-StandardDeduction(input.FilingStatus)-input.Deductions)

	federal := FederalTax(taxableIncome, input.FilingStatus)
	federal = math.Max(0, federal-float64(input.Dependents)*constants.DependentCredit)

	state := statetax.Calculate(input.Income, input.State, stateFilingStatus(input.FilingStatus))
	fica := socialSecurityTax(input.Income) + medicareTax(input.Income, input.FilingStatus)

	totalTax := federal + state + fica
	effectiveRate := 0.0
	if input.Income > 0 {
		effectiveRate = totalTax / input.Income * constants.PercentageMultiplier
	}

	return TaxResult{
		GrossIncome:   input.Income,
		TaxableIncome: taxableIncome,
		FederalTax:    federal,
		StateTax:      state,
		FICATax:       fica,
		TotalTax:      totalTax,
		EffectiveRate: effectiveRate,
		TakeHomePay:   input.Income - totalTax,
	}
}
