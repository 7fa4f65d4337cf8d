package calc

import (
	"math"

	"github.com/fincalc/calcsuite/pkg/constants"
	"github.com/fincalc/calcsuite/pkg/statetax"
)

// FilingStatus is a federal filing status. State tables only distinguish
// single and married; head of household falls back to single brackets there.
type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
	FilingHead    FilingStatus = "head"
)

// PayFrequency selects the pay-period granularity of take-home results.
type PayFrequency string

const (
	PayAnnually PayFrequency = "annually"
	PayMonthly  PayFrequency = "monthly"
	PayBiweekly PayFrequency = "biweekly"
	PayWeekly   PayFrequency = "weekly"
)

// PeriodsPerYear returns how many pay periods the frequency has in a year.
func (f PayFrequency) PeriodsPerYear() float64 {
	switch f {
	case PayMonthly:
		return constants.MonthsPerYear
	case PayBiweekly:
		return constants.BiweeklyPeriodsPerYear
	case PayWeekly:
		return constants.WeeksPerYear
	default:
		return 1
	}
}

type federalBracket struct {
	rate float64 // percent
	min  float64
	max  float64
}

// 2025 federal marginal brackets by filing status.
var federalBrackets = map[FilingStatus][]federalBracket{
	FilingSingle: {
		{10, 0, 11925},
		{12, 11925, 48475},
		{22, 48475, 103350},
		{24, 103350, 197300},
		{32, 197300, 250525},
		{35, 250525, 626350},
		{37, 626350, math.Inf(1)},
	},
	FilingMarried: {
		{10, 0, 23850},
		{12, 23850, 96950},
		{22, 96950, 206700},
		{24, 206700, 394600},
		{32, 394600, 501050},
		{35, 501050, 751600},
		{37, 751600, math.Inf(1)},
	},
	FilingHead: {
		{10, 0, 17000},
		{12, 17000, 64850},
		{22, 64850, 103350},
		{24, 103350, 197300},
		{32, 197300, 250525},
		{35, 250525, 626350},
		{37, 626350, math.Inf(1)},
	},
}

// StandardDeduction returns the 2025 federal standard deduction for the
// filing status.
func StandardDeduction(status FilingStatus) float64 {
	switch status {
	case FilingMarried:
		return constants.StandardDeductionMarried
	case FilingHead:
		return constants.StandardDeductionHead
	default:
		return constants.StandardDeductionSingle
	}
}

// FederalTax walks the marginal brackets over the given taxable income.
func FederalTax(taxableIncome float64, status FilingStatus) float64 {
	brackets, ok := federalBrackets[status]
	if !ok {
		brackets = federalBrackets[FilingSingle]
	}

	tax := 0.0
	for _, bracket := range brackets {
		if taxableIncome <= bracket.min {
			break
		}
		taxableInBracket := math.Min(taxableIncome, bracket.max) - bracket.min
		tax += taxableInBracket * bracket.rate / constants.PercentageMultiplier
	}
	return tax
}

func stateFilingStatus(status FilingStatus) statetax.FilingStatus {
	if status == FilingMarried {
		return statetax.FilingMarried
	}
	return statetax.FilingSingle
}

// socialSecurityTax applies the employee Social Security rate up to the
// annual wage base.
func socialSecurityTax(annualGross float64) float64 {
	return math.Min(annualGross, constants.SocialSecurityWageBase) * constants.SocialSecurityRate
}

// medicareTax applies the base Medicare rate plus the additional rate on
// wages over the filing status threshold.
func medicareTax(annualGross float64, status FilingStatus) float64 {
	threshold := constants.AdditionalMedicareThresholdSingle
	if status == FilingMarried {
		threshold = constants.AdditionalMedicareThresholdMarried
	}
	tax := annualGross * constants.MedicareRate
	if annualGross > threshold {
		tax += (annualGross - threshold) * constants.AdditionalMedicareRate
	}
	return tax
}

// TakeHomePayInput holds the take-home pay parameters. GrossIncome is the
// amount earned per pay period at the given frequency.
type TakeHomePayInput struct {
	GrossIncome  float64      `json:"grossIncome" validate:"gt=0"`
	PayFrequency PayFrequency `json:"payFrequency" validate:"oneof=annually monthly biweekly weekly"`
	FilingStatus FilingStatus `json:"filingStatus" validate:"oneof=single married head"`
	State        string       `json:"state"`
}

// TakeHomePayResult reports each tax component and the net pay, all at the
// requested pay-period granularity, plus annual figures.
type TakeHomePayResult struct {
	GrossPay         float64 `json:"grossPay"`
	FederalTax       float64 `json:"federalTax"`
	StateTax         float64 `json:"stateTax"`
	SocialSecurity   float64 `json:"socialSecurity"`
	Medicare         float64 `json:"medicare"`
	NetPay           float64 `json:"netPay"`
	AnnualGross      float64 `json:"annualGross"`
	AnnualNet        float64 `json:"annualNet"`
	EffectiveTaxRate float64 `json:"effectiveTaxRate"`
}

// TakeHomePay computes net pay after federal tax, state tax, and FICA.
// The identity netPay = grossPay - (federal + state + socialSecurity +
// medicare) holds exactly at every frequency.
func TakeHomePay(input TakeHomePayInput) TakeHomePayResult {
	periods := input.PayFrequency.PeriodsPerYear()
	annualGross := input.GrossIncome * periods

	taxableIncome := math.Max(0, annualGross-StandardDeduction(input.FilingStatus))
	annualFederal := FederalTax(taxableIncome, input.FilingStatus)
	annualState := statetax.Calculate(annualGross, input.State, stateFilingStatus(input.FilingStatus))
	annualSS := socialSecurityTax(annualGross)
	annualMedicare := medicareTax(annualGross, input.FilingStatus)

	grossPay := annualGross / periods
	federal := annualFederal / periods
	state := annualState / periods
	ss := annualSS / periods
	medicare := annualMedicare / periods
	netPay := grossPay - (federal + state + ss + medicare)

	totalTax := annualFederal + annualState + annualSS + annualMedicare
	effectiveRate := 0.0
	if annualGross > 0 {
		effectiveRate = totalTax / annualGross * constants.PercentageMultiplier
	}

	return TakeHomePayResult{
		GrossPay:         grossPay,
		FederalTax:       federal,
		StateTax:         state,
		SocialSecurity:   ss,
		Medicare:         medicare,
		NetPay:           netPay,
		AnnualGross:      annualGross,
		AnnualNet:        annualGross - totalTax,
		EffectiveTaxRate: effectiveRate,
	}
}
