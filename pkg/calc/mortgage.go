package calc

import (
	"math"

	"github.com/fincalc/calcsuite/pkg/constants"
)

// MortgageInput holds the mortgage parameters. PropertyTax and HomeInsurance
// are annual amounts; HOA and PMI are monthly. InterestRate is an annual
// percentage and LoanTerm is in years.
type MortgageInput struct {
	HomePrice     float64 `json:"homePrice" validate:"gt=0"`
	DownPayment   float64 `json:"downPayment" validate:"gte=0"`
	InterestRate  float64 `json:"interestRate" validate:"gte=0,lt=100"`
	LoanTerm      int     `json:"loanTerm" validate:"gte=1,lte=50"`
	PropertyTax   float64 `json:"propertyTax" validate:"gte=0"`
	HomeInsurance float64 `json:"homeInsurance" validate:"gte=0"`
	HOA           float64 `json:"hoa" validate:"gte=0"`
	PMI           float64 `json:"pmi" validate:"gte=0"`
}

// MortgageResult breaks the monthly payment into its components.
type MortgageResult struct {
	LoanAmount           float64 `json:"loanAmount"`
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	MonthlyPropertyTax   float64 `json:"monthlyPropertyTax"`
	MonthlyInsurance     float64 `json:"monthlyInsurance"`
	MonthlyHOA           float64 `json:"monthlyHOA"`
	MonthlyPMI           float64 `json:"monthlyPMI"`
	TotalMonthlyPayment  float64 `json:"totalMonthlyPayment"`
	TotalInterest        float64 `json:"totalInterest"`
	TotalCost            float64 `json:"totalCost"`
	DownPaymentPercent   float64 `json:"downPaymentPercent"`
}

// Mortgage computes the monthly payment breakdown and lifetime cost of a
// fixed-rate mortgage. Returns nil when the down payment covers or exceeds
// the home price or the amortization degenerates.
func Mortgage(input MortgageInput) *MortgageResult {
	loanAmount := input.HomePrice - input.DownPayment
	if loanAmount <= 0 {
		return nil
	}

	termMonths := input.LoanTerm * constants.MonthsPerYear
	pi := monthlyPayment(loanAmount, input.InterestRate, termMonths)
	if math.IsNaN(pi) || math.IsInf(pi, 0) {
		return nil
	}

	monthlyPropertyTax := input.PropertyTax / constants.MonthsPerYear
	monthlyInsurance := input.HomeInsurance / constants.MonthsPerYear
	totalMonthly := pi + monthlyPropertyTax + monthlyInsurance + input.HOA + input.PMI

	totalInterest := pi*float64(termMonths) - loanAmount
	totalCost := input.HomePrice + totalInterest +
		(input.PropertyTax+input.HomeInsurance)*float64(input.LoanTerm)

	return &MortgageResult{
		LoanAmount:           loanAmount,
		PrincipalAndInterest: pi,
		MonthlyPropertyTax:   monthlyPropertyTax,
		MonthlyInsurance:     monthlyInsurance,
		MonthlyHOA:           input.HOA,
		MonthlyPMI:           input.PMI,
		TotalMonthlyPayment:  totalMonthly,
		TotalInterest:        totalInterest,
		TotalCost:            totalCost,
		DownPaymentPercent:   input.DownPayment / input.HomePrice * constants.PercentageMultiplier,
	}
}
