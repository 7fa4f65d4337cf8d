package calc

import (
	"math"

	"github.com/fincalc/calcsuite/pkg/constants"
	"github.com/fincalc/calcsuite/pkg/mathutil"
)

// LoanInput holds fixed-rate loan parameters. InterestRate is an annual
// percentage; LoanTerm is in years.
type LoanInput struct {
	LoanAmount   float64 `json:"loanAmount" validate:"gt=0"`
	InterestRate float64 `json:"interestRate" validate:"gte=0,lt=100"`
	LoanTerm     int     `json:"loanTerm" validate:"gte=1,lte=50"`
}

// LoanScheduleRow is one month of an amortization schedule.
type LoanScheduleRow struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// LoanResult holds the level payment, totals, and the full schedule.
type LoanResult struct {
	MonthlyPayment float64           `json:"monthlyPayment"`
	TotalInterest  float64           `json:"totalInterest"`
	TotalPaid      float64           `json:"totalPaid"`
	Schedule       []LoanScheduleRow `json:"schedule"`
}

// monthlyPayment computes the level payment for a fixed-rate loan using the
// standard amortization formula. Zero interest divides the principal evenly.
func monthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		return principal / float64(termMonths)
	}

	periodicRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1+periodicRate, float64(termMonths))
	discountFactor := (power - 1) / power
	return principal * periodicRate / discountFactor
}

// LoanPayment amortizes a loan month by month. It returns nil when the loan
// amount, rate, or term is out of domain or the formula degenerates to a
// non-finite payment; callers treat nil as "insufficient input".
func LoanPayment(input LoanInput) *LoanResult {
	if input.LoanAmount <= 0 || input.InterestRate < 0 || input.LoanTerm <= 0 {
		return nil
	}

	termMonths := input.LoanTerm * constants.MonthsPerYear
	payment := monthlyPayment(input.LoanAmount, input.InterestRate, termMonths)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return nil
	}

	monthlyRate := input.InterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	balance := input.LoanAmount
	totalInterest := 0.0
	schedule := make([]LoanScheduleRow, 0, termMonths)

	for month := 1; month <= termMonths; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance = mathutil.Max(0, balance-principal)
		totalInterest += interest

		schedule = append(schedule, LoanScheduleRow{
			Month:            month,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	return &LoanResult{
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		TotalPaid:      payment * float64(termMonths),
		Schedule:       schedule,
	}
}
