package profile

import (
	"github.com/fincalc/calcsuite/pkg/calc"
	"github.com/fincalc/calcsuite/pkg/constants"
)

// The Apply helpers translate calculator results into profile patches. Each
// covers one guided-flow step; the caller decides whether to also mark the
// step complete.

// ApplyIncomeResult records take-home pay figures on the profile.
func (s *Store) ApplyIncomeResult(input calc.TakeHomePayInput, result calc.TakeHomePayResult) (FinancialProfile, error) {
	return s.Patch(FinancialProfile{
		GrossIncome:      Float(result.AnnualGross),
		NetIncome:        Float(result.AnnualNet),
		MonthlyIncome:    Float(result.AnnualNet / constants.MonthsPerYear),
		PayFrequency:     String(string(input.PayFrequency)),
		FilingStatus:     String(string(input.FilingStatus)),
		State:            String(input.State),
		EffectiveTaxRate: Float(result.EffectiveTaxRate),
	})
}

// ApplyBudgetResult records a budget allocation and any itemized categories.
func (s *Store) ApplyBudgetResult(input calc.BudgetInput, result calc.BudgetResult, categories []BudgetCategory) (FinancialProfile, error) {
	patch := FinancialProfile{
		MonthlyIncome: Float(input.MonthlyIncome),
		MonthlyExpenses: &MonthlyExpenses{
			Needs:   Float(result.Needs),
			Wants:   Float(result.Wants),
			Savings: Float(result.Savings),
		},
	}
	if len(categories) > 0 {
		patch.BudgetCategories = categories
	}
	return s.Patch(patch)
}

// ApplyDebtResult records the debt list and its payoff totals.
func (s *Store) ApplyDebtResult(input calc.DebtPayoffInput, result calc.DebtPayoffResult) (FinancialProfile, error) {
	items := make([]DebtItem, len(input.Debts))
	totalBalance := 0.0
	totalMinimum := 0.0
	for i, d := range input.Debts {
		items[i] = DebtItem{
			Name:           d.Name,
			Balance:        d.Balance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
		}
		totalBalance += d.Balance
		totalMinimum += d.MinimumPayment
	}
	return s.Patch(FinancialProfile{
		Debts:              items,
		TotalDebt:          Float(totalBalance),
		MonthlyDebtPayment: Float(totalMinimum + input.ExtraPayment),
	})
}

// ApplyNetWorthResult records net worth figures on the profile.
func (s *Store) ApplyNetWorthResult(input calc.NetWorthInput, result calc.NetWorthResult) (FinancialProfile, error) {
	return s.Patch(FinancialProfile{
		TotalAssets:              Float(result.TotalAssets),
		TotalDebt:                Float(result.TotalLiabilities),
		NetWorth:                 Float(result.NetWorth),
		CurrentInvestments:       Float(input.Investments),
		CurrentRetirementSavings: Float(input.RetirementAccounts),
	})
}
