package calc

import (
	"math"

	"github.com/fincalc/calcsuite/pkg/constants"
)

// CompoundingFrequency is how often interest is credited.
type CompoundingFrequency string

const (
	CompoundAnnually     CompoundingFrequency = "annually"
	CompoundSemiannually CompoundingFrequency = "semiannually"
	CompoundQuarterly    CompoundingFrequency = "quarterly"
	CompoundMonthly      CompoundingFrequency = "monthly"
	CompoundSemimonthly  CompoundingFrequency = "semimonthly"
	CompoundBiweekly     CompoundingFrequency = "biweekly"
	CompoundWeekly       CompoundingFrequency = "weekly"
	CompoundDaily        CompoundingFrequency = "daily"
	CompoundContinuously CompoundingFrequency = "continuously"
)

// periodsPerYear returns the number of compounding periods per year.
// Continuous compounding is modeled on monthly sub-periods whose growth
// factor composes to e^r over each year.
func (f CompoundingFrequency) periodsPerYear() int {
	switch f {
	case CompoundAnnually:
		return 1
	case CompoundSemiannually:
		return 2
	case CompoundQuarterly:
		return 4
	case CompoundSemimonthly:
		return 24
	case CompoundBiweekly:
		return 26
	case CompoundWeekly:
		return 52
	case CompoundDaily:
		return 365
	case CompoundContinuously:
		return constants.MonthsPerYear
	default:
		return constants.MonthsPerYear
	}
}

// ContributionTiming is whether contributions land before or after a
// period's interest accrual.
type ContributionTiming string

const (
	ContributeBeginning ContributionTiming = "beginning"
	ContributeEnd       ContributionTiming = "end"
)

// InterestInput holds the compound-interest projection parameters. Rates
// are annual percentages.
type InterestInput struct {
	InitialInvestment    float64              `json:"initialInvestment" validate:"gte=0"`
	AnnualContribution   float64              `json:"annualContribution" validate:"gte=0"`
	MonthlyContribution  float64              `json:"monthlyContribution" validate:"gte=0"`
	InterestRate         float64              `json:"interestRate" validate:"gte=0,lte=100"`
	Years                int                  `json:"years" validate:"gte=1,lte=50"`
	CompoundingFrequency CompoundingFrequency `json:"compoundingFrequency" validate:"oneof=annually semiannually quarterly monthly semimonthly biweekly weekly daily continuously"`
	ContributionTiming   ContributionTiming   `json:"contributionTiming" validate:"oneof=beginning end"`
	TaxRate              float64              `json:"taxRate" validate:"gte=0,lte=100"`
	InflationRate        float64              `json:"inflationRate" validate:"gte=0,lte=100"`
}

// InterestYearRow is one year of the growth schedule. Contributions and
// Interest are cumulative.
type InterestYearRow struct {
	Year          int     `json:"year"`
	Principal     float64 `json:"principal"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
	Balance       float64 `json:"balance"`
}

// InterestResult summarizes the projection.
type InterestResult struct {
	EndingBalance            float64           `json:"endingBalance"`
	TotalPrincipal           float64           `json:"totalPrincipal"`
	TotalContributions       float64           `json:"totalContributions"`
	TotalInterest            float64           `json:"totalInterest"`
	AfterTaxBalance          float64           `json:"afterTaxBalance"`
	InflationAdjustedBalance float64           `json:"inflationAdjustedBalance"`
	YearlySchedule           []InterestYearRow `json:"yearlySchedule"`
}

// Interest projects compound growth with periodic contributions. Monthly
// contributions are spread across the year's compounding periods; the
// annual contribution lands once per year at the configured timing. Only
// earned interest is taxed; principal and contributions are not.
func Interest(input InterestInput) InterestResult {
	periods := input.CompoundingFrequency.periodsPerYear()

	var growthFactor float64
	if input.CompoundingFrequency == CompoundContinuously {
		growthFactor = math.Exp(input.InterestRate / constants.PercentageMultiplier / float64(periods))
	} else {
		growthFactor = 1 + input.InterestRate/constants.PercentageMultiplier/float64(periods)
	}

	perPeriodContribution := input.MonthlyContribution * constants.MonthsPerYear / float64(periods)

	balance := input.InitialInvestment
	contributions := 0.0
	schedule := make([]InterestYearRow, 0, input.Years)

	for year := 1; year <= input.Years; year++ {
		if input.ContributionTiming == ContributeBeginning {
			balance += input.AnnualContribution
			contributions += input.AnnualContribution
		}
		for period := 0; period < periods; period++ {
			if input.ContributionTiming == ContributeBeginning {
				balance += perPeriodContribution
				contributions += perPeriodContribution
				balance *= growthFactor
			} else {
				balance *= growthFactor
				balance += perPeriodContribution
				contributions += perPeriodContribution
			}
		}
		if input.ContributionTiming == ContributeEnd {
			balance += input.AnnualContribution
			contributions += input.AnnualContribution
		}

		schedule = append(schedule, InterestYearRow{
			Year:          year,
			Principal:     input.InitialInvestment,
			Contributions: contributions,
			Interest:      balance - input.InitialInvestment - contributions,
			Balance:       balance,
		})
	}

	totalInterest := balance - input.InitialInvestment - contributions
	afterTax := balance - totalInterest*input.TaxRate/constants.PercentageMultiplier
	deflator := math.Pow(1+input.InflationRate/constants.PercentageMultiplier, float64(input.Years))

	return InterestResult{
		EndingBalance:            balance,
		TotalPrincipal:           input.InitialInvestment,
		TotalContributions:       contributions,
		TotalInterest:            totalInterest,
		AfterTaxBalance:          afterTax,
		InflationAdjustedBalance: balance / deflator,
		YearlySchedule:           schedule,
	}
}
