package calc

import (
	"github.com/fincalc/calcsuite/pkg/constants"
)

// HourlyToSalaryInput holds the hourly-to-salary conversion parameters.
// PaidTimeOff is unpaid weeks subtracted from WeeksPerYear.
type HourlyToSalaryInput struct {
	HourlyRate   float64 `json:"hourlyRate" validate:"gt=0"`
	HoursPerWeek float64 `json:"hoursPerWeek" validate:"gt=0,lte=168"`
	WeeksPerYear float64 `json:"weeksPerYear" validate:"gt=0,lte=52"`
	PaidTimeOff  float64 `json:"paidTimeOff" validate:"gte=0"`
}

// HourlyToSalaryResult holds the derived annual salary and its per-period
// equivalents.
type HourlyToSalaryResult struct {
	AnnualSalary   float64 `json:"annualSalary"`
	MonthlyPay     float64 `json:"monthlyPay"`
	BiweeklyPay    float64 `json:"biweeklyPay"`
	WeeklyPay      float64 `json:"weeklyPay"`
	TotalWorkHours float64 `json:"totalWorkHours"`
	WorkWeeks      float64 `json:"workWeeks"`
}

// HourlyToSalary converts an hourly rate into an annual salary. WeeklyPay is
// per worked week, so annualSalary / workWeeks / hoursPerWeek round-trips to
// the hourly rate.
func HourlyToSalary(input HourlyToSalaryInput) HourlyToSalaryResult {
	workWeeks := input.WeeksPerYear - input.PaidTimeOff
	totalWorkHours := input.HoursPerWeek * workWeeks
	annualSalary := input.HourlyRate * totalWorkHours

	return HourlyToSalaryResult{
		AnnualSalary:   annualSalary,
		MonthlyPay:     annualSalary / constants.MonthsPerYear,
		BiweeklyPay:    annualSalary / constants.BiweeklyPeriodsPerYear,
		WeeklyPay:      annualSalary / workWeeks,
		TotalWorkHours: totalWorkHours,
		WorkWeeks:      workWeeks,
	}
}
