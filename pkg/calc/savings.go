package calc

import (
	"math"

	"github.com/fincalc/calcsuite/pkg/constants"
)

// SavingsGoalInput holds the savings-goal parameters. Timeframe, in years,
// is optional; when positive the solver also reports the level monthly
// contribution needed to hit the goal inside it.
type SavingsGoalInput struct {
	GoalAmount          float64 `json:"goalAmount" validate:"gt=0"`
	CurrentSavings      float64 `json:"currentSavings" validate:"gte=0"`
	MonthlyContribution float64 `json:"monthlyContribution" validate:"gte=0"`
	InterestRate        float64 `json:"interestRate" validate:"gte=0,lte=100"`
	Timeframe           float64 `json:"timeframe" validate:"gte=0,lte=100"`
}

// SavingsGoalResult reports how long the goal takes at the given
// contribution. Reached is false when the simulation hit its cap without
// converging. RequiredMonthlyContribution is 0 unless a timeframe was given.
type SavingsGoalResult struct {
	MonthsToGoal                int     `json:"monthsToGoal"`
	YearsToGoal                 float64 `json:"yearsToGoal"`
	FinalBalance                float64 `json:"finalBalance"`
	TotalContributions          float64 `json:"totalContributions"`
	InterestEarned              float64 `json:"interestEarned"`
	Reached                     bool    `json:"reached"`
	RequiredMonthlyContribution float64 `json:"requiredMonthlyContribution"`
}

// SavingsGoal forward-simulates monthly compounding until the balance meets
// the goal, capped at constants.MaxSavingsMonths to guarantee termination.
func SavingsGoal(input SavingsGoalInput) SavingsGoalResult {
	monthlyRate := input.InterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)

	balance := input.CurrentSavings
	contributions := 0.0
	months := 0
	for balance < input.GoalAmount && months < constants.MaxSavingsMonths {
		balance = balance*(1+monthlyRate) + input.MonthlyContribution
		contributions += input.MonthlyContribution
		months++
	}

	result := SavingsGoalResult{
		MonthsToGoal:       months,
		YearsToGoal:        float64(months) / constants.MonthsPerYear,
		FinalBalance:       balance,
		TotalContributions: contributions,
		InterestEarned:     balance - input.CurrentSavings - contributions,
		Reached:            balance >= input.GoalAmount,
	}

	if input.Timeframe > 0 {
		result.RequiredMonthlyContribution = requiredContribution(
			input.GoalAmount, input.CurrentSavings, monthlyRate,
			input.Timeframe*constants.MonthsPerYear)
	}
	return result
}

// requiredContribution solves the annuity formula for the level monthly
// contribution that grows currentSavings to goal over n months. Already
// being past the goal floors the answer at 0.
func requiredContribution(goal, currentSavings, monthlyRate, months float64) float64 {
	if months <= 0 {
		return 0
	}

	var contribution float64
	if monthlyRate == 0 {
		contribution = (goal - currentSavings) / months
	} else {
		growth := math.Pow(1+monthlyRate, months)
		contribution = (goal - currentSavings*growth) * monthlyRate / (growth - 1)
	}
	return math.Max(0, contribution)
}
