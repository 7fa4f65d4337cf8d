package calc

import (
	"testing"

	"github.com/fincalc/calcsuite/pkg/constants"
)

func sampleDebts() []Debt {
	return []Debt{
		{Name: "Credit Card", Balance: 8000, InterestRate: 22, MinimumPayment: 200},
		{Name: "Car Loan", Balance: 15000, InterestRate: 6, MinimumPayment: 300},
		{Name: "Student Loan", Balance: 30000, InterestRate: 4.5, MinimumPayment: 350},
	}
}

func TestDebtPayoffAvalancheOrder(t *testing.T) {
	result := DebtPayoff(DebtPayoffInput{
		Debts:        sampleDebts(),
		ExtraPayment: 500,
		Strategy:     StrategyAvalanche,
	})

	if !result.DebtFree {
		t.Fatal("expected all debts retired")
	}
	if len(result.PayoffOrder) != 3 {
		t.Fatalf("PayoffOrder has %d entries, expected 3", len(result.PayoffOrder))
	}
	// Avalanche retires the highest rate first.
	if result.PayoffOrder[0] != "Credit Card" {
		t.Errorf("first payoff = %s, expected Credit Card", result.PayoffOrder[0])
	}
}

func TestDebtPayoffSnowballOrder(t *testing.T) {
	result := DebtPayoff(DebtPayoffInput{
		Debts:        sampleDebts(),
		ExtraPayment: 500,
		Strategy:     StrategySnowball,
	})

	if !result.DebtFree {
		t.Fatal("expected all debts retired")
	}
	// Snowball retires the smallest balance first.
	if result.PayoffOrder[0] != "Credit Card" {
		t.Errorf("first payoff = %s, expected Credit Card", result.PayoffOrder[0])
	}
	if result.PayoffOrder[1] != "Car Loan" {
		t.Errorf("second payoff = %s, expected Car Loan", result.PayoffOrder[1])
	}
}

// Avalanche is interest-optimal, so it can never pay more total interest
// than snowball on the same inputs.
func TestDebtPayoffAvalancheBeatsSnowball(t *testing.T) {
	avalanche := DebtPayoff(DebtPayoffInput{
		Debts: sampleDebts(), ExtraPayment: 300, Strategy: StrategyAvalanche,
	})
	snowball := DebtPayoff(DebtPayoffInput{
		Debts: sampleDebts(), ExtraPayment: 300, Strategy: StrategySnowball,
	})

	if avalanche.TotalInterestPaid > snowball.TotalInterestPaid+0.01 {
		t.Errorf("avalanche interest %.2f above snowball %.2f",
			avalanche.TotalInterestPaid, snowball.TotalInterestPaid)
	}
}

// Payments that do not cover accruing interest must terminate at the cap
// with DebtFree false.
func TestDebtPayoffIterationCap(t *testing.T) {
	result := DebtPayoff(DebtPayoffInput{
		Debts: []Debt{
			{Name: "Runaway", Balance: 100000, InterestRate: 30, MinimumPayment: 10},
		},
		ExtraPayment: 0,
		Strategy:     StrategyAvalanche,
	})

	if result.DebtFree {
		t.Error("expected DebtFree to be false")
	}
	if result.MonthsToDebtFree != constants.MaxPayoffMonths {
		t.Errorf("MonthsToDebtFree = %d, expected the cap %d",
			result.MonthsToDebtFree, constants.MaxPayoffMonths)
	}
}

func TestDebtPayoffInputNotMutated(t *testing.T) {
	debts := sampleDebts()
	original := make([]Debt, len(debts))
	copy(original, debts)

	DebtPayoff(DebtPayoffInput{Debts: debts, ExtraPayment: 500, Strategy: StrategySnowball})

	for i := range debts {
		if debts[i] != original[i] {
			t.Errorf("input debt %d mutated: %+v", i, debts[i])
		}
	}
}
