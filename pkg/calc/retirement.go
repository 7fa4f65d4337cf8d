package calc

import (
	"github.com/fincalc/calcsuite/pkg/constants"
	"github.com/fincalc/calcsuite/pkg/mathutil"
)

// FourOhOneKInput holds the 401(k) projection parameters. Percentages are
// whole numbers (6 means 6%). EmployerMatchLimit caps the matched share of
// salary; EmployerMatchPercent is how much of the matched contribution the
// employer pays.
type FourOhOneKInput struct {
	CurrentAge               int     `json:"currentAge" validate:"gte=16,lte=99"`
	RetirementAge            int     `json:"retirementAge" validate:"gt=0,lte=100,gtfield=CurrentAge"`
	AnnualSalary             float64 `json:"annualSalary" validate:"gt=0"`
	CurrentBalance           float64 `json:"currentBalance" validate:"gte=0"`
	EmployeeContributionRate float64 `json:"employeeContributionRate" validate:"gte=0,lte=100"`
	EmployerMatchPercent     float64 `json:"employerMatchPercent" validate:"gte=0,lte=200"`
	EmployerMatchLimit       float64 `json:"employerMatchLimit" validate:"gte=0,lte=100"`
	AnnualReturnRate         float64 `json:"annualReturnRate" validate:"gte=0,lte=100"`
	SalaryIncreaseRate       float64 `json:"salaryIncreaseRate" validate:"gte=0,lte=100"`
}

// FourOhOneKYearRow is one projected year.
type FourOhOneKYearRow struct {
	Age                  int     `json:"age"`
	Salary               float64 `json:"salary"`
	EmployeeContribution float64 `json:"employeeContribution"`
	EmployerMatch        float64 `json:"employerMatch"`
	Balance              float64 `json:"balance"`
}

// FourOhOneKResult reports the ending balance with contributions split by
// source. InvestmentGrowth is the residual after removing the starting
// balance and all contributions.
type FourOhOneKResult struct {
	EndingBalance         float64             `json:"endingBalance"`
	EmployeeContributions float64             `json:"employeeContributions"`
	EmployerContributions float64             `json:"employerContributions"`
	InvestmentGrowth      float64             `json:"investmentGrowth"`
	YearsToRetirement     int                 `json:"yearsToRetirement"`
	YearlySchedule        []FourOhOneKYearRow `json:"yearlySchedule"`
}

// FourOhOneK projects a 401(k) balance year by year until retirement age.
// Each year the employee contributes a share of salary, the employer matches
// up to its limit, the balance compounds after both land, and salary grows.
func FourOhOneK(input FourOhOneKInput) FourOhOneKResult {
	years := input.RetirementAge - input.CurrentAge

	balance := input.CurrentBalance
	salary := input.AnnualSalary
	employeeTotal := 0.0
	employerTotal := 0.0
	schedule := make([]FourOhOneKYearRow, 0, years)

	for year := 0; year < years; year++ {
		employeeContribution := mathutil.ApplyPercentage(salary, input.EmployeeContributionRate)
		matchedBase := mathutil.Min(employeeContribution, mathutil.ApplyPercentage(salary, input.EmployerMatchLimit))
		employerMatch := mathutil.ApplyPercentage(matchedBase, input.EmployerMatchPercent)

		balance = (balance + employeeContribution + employerMatch) *
			(1 + input.AnnualReturnRate/constants.PercentageMultiplier)
		employeeTotal += employeeContribution
		employerTotal += employerMatch

		schedule = append(schedule, FourOhOneKYearRow{
			Age:                  input.CurrentAge + year + 1,
			Salary:               salary,
			EmployeeContribution: employeeContribution,
			EmployerMatch:        employerMatch,
			Balance:              balance,
		})

		salary *= 1 + input.SalaryIncreaseRate/constants.PercentageMultiplier
	}

	return FourOhOneKResult{
		EndingBalance:         balance,
		EmployeeContributions: employeeTotal,
		EmployerContributions: employerTotal,
		InvestmentGrowth:      balance - input.CurrentBalance - employeeTotal - employerTotal,
		YearsToRetirement:     years,
		YearlySchedule:        schedule,
	}
}
