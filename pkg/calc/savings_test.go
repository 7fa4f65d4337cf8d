package calc

import (
	"math"
	"testing"

	"github.com/fincalc/calcsuite/pkg/constants"
)

func TestSavingsGoal(t *testing.T) {
	result := SavingsGoal(SavingsGoalInput{
		GoalAmount:          1200,
		CurrentSavings:      0,
		MonthlyContribution: 100,
		InterestRate:        0,
	})

	if !result.Reached {
		t.Fatal("expected the goal to be reached")
	}
	if result.MonthsToGoal != 12 {
		t.Errorf("MonthsToGoal = %d, expected 12", result.MonthsToGoal)
	}
	if math.Abs(result.FinalBalance-1200) > 0.01 {
		t.Errorf("FinalBalance = %.2f, expected 1200", result.FinalBalance)
	}
	if math.Abs(result.InterestEarned) > 0.01 {
		t.Errorf("InterestEarned = %.2f, expected 0", result.InterestEarned)
	}
}

func TestSavingsGoalAlreadyMet(t *testing.T) {
	result := SavingsGoal(SavingsGoalInput{
		GoalAmount:          5000,
		CurrentSavings:      6000,
		MonthlyContribution: 100,
		InterestRate:        4,
	})

	if result.MonthsToGoal != 0 {
		t.Errorf("MonthsToGoal = %d, expected 0", result.MonthsToGoal)
	}
	if !result.Reached {
		t.Error("expected Reached for a goal already met")
	}
}

// A contribution that can never close the gap must terminate at the cap
// instead of looping forever.
func TestSavingsGoalIterationCap(t *testing.T) {
	result := SavingsGoal(SavingsGoalInput{
		GoalAmount:          1000000,
		CurrentSavings:      0,
		MonthlyContribution: 0,
		InterestRate:        0,
	})

	if result.Reached {
		t.Error("expected Reached to be false")
	}
	if result.MonthsToGoal != constants.MaxSavingsMonths {
		t.Errorf("MonthsToGoal = %d, expected the cap %d", result.MonthsToGoal, constants.MaxSavingsMonths)
	}
}

func TestSavingsGoalRequiredContribution(t *testing.T) {
	tests := []struct {
		name     string
		input    SavingsGoalInput
		expected float64
	}{
		{
			name: "Zero rate divides evenly",
			input: SavingsGoalInput{
				GoalAmount: 12000, CurrentSavings: 0, InterestRate: 0, Timeframe: 1,
			},
			expected: 1000,
		},
		{
			name: "Already past goal floors at zero",
			input: SavingsGoalInput{
				GoalAmount: 1000, CurrentSavings: 5000, InterestRate: 2, Timeframe: 2,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SavingsGoal(tt.input)
			if math.Abs(result.RequiredMonthlyContribution-tt.expected) > 0.01 {
				t.Errorf("RequiredMonthlyContribution = %.2f, expected %.2f",
					result.RequiredMonthlyContribution, tt.expected)
			}
		})
	}
}

// Contributing the solved amount for the timeframe must actually reach the
// goal within it.
func TestSavingsGoalSolverConsistency(t *testing.T) {
	input := SavingsGoalInput{
		GoalAmount:     50000,
		CurrentSavings: 5000,
		InterestRate:   5,
		Timeframe:      8,
	}
	solved := SavingsGoal(input)

	input.MonthlyContribution = solved.RequiredMonthlyContribution
	verification := SavingsGoal(input)
	if !verification.Reached {
		t.Fatal("solved contribution did not reach the goal")
	}
	if float64(verification.MonthsToGoal) > input.Timeframe*constants.MonthsPerYear+1 {
		t.Errorf("took %d months, expected within %d",
			verification.MonthsToGoal, int(input.Timeframe*constants.MonthsPerYear))
	}
}
