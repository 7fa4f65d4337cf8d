package calc

import (
	"github.com/fincalc/calcsuite/pkg/mathutil"
)

// BudgetRule names a needs/wants/savings split.
type BudgetRule string

const (
	Budget503020 BudgetRule = "50-30-20"
	Budget602020 BudgetRule = "60-20-20"
	BudgetCustom BudgetRule = "custom"
)

// BudgetInput holds the allocation parameters. Custom percentages apply
// only under BudgetCustom and are not forced to sum to 100; the caller
// surfaces a warning when they do not.
type BudgetInput struct {
	MonthlyIncome float64    `json:"monthlyIncome" validate:"gt=0"`
	BudgetRule    BudgetRule `json:"budgetRule" validate:"oneof=50-30-20 60-20-20 custom"`
	CustomNeeds   float64    `json:"customNeeds" validate:"gte=0,lte=100"`
	CustomWants   float64    `json:"customWants" validate:"gte=0,lte=100"`
	CustomSavings float64    `json:"customSavings" validate:"gte=0,lte=100"`
}

// BudgetResult is the allocation in dollars and percentages.
type BudgetResult struct {
	Needs          float64 `json:"needs"`
	Wants          float64 `json:"wants"`
	Savings        float64 `json:"savings"`
	NeedsPercent   float64 `json:"needsPercent"`
	WantsPercent   float64 `json:"wantsPercent"`
	SavingsPercent float64 `json:"savingsPercent"`
	TotalAllocated float64 `json:"totalAllocated"`
}

// Budget splits monthly income by the selected rule.
func Budget(input BudgetInput) BudgetResult {
	var needsPct, wantsPct, savingsPct float64
	switch input.BudgetRule {
	case Budget602020:
		needsPct, wantsPct, savingsPct = 60, 20, 20
	case BudgetCustom:
		needsPct, wantsPct, savingsPct = input.CustomNeeds, input.CustomWants, input.CustomSavings
	default:
		needsPct, wantsPct, savingsPct = 50, 30, 20
	}

	needs := mathutil.ApplyPercentage(input.MonthlyIncome, needsPct)
	wants := mathutil.ApplyPercentage(input.MonthlyIncome, wantsPct)
	savings := mathutil.ApplyPercentage(input.MonthlyIncome, savingsPct)

	return BudgetResult{
		Needs:          needs,
		Wants:          wants,
		Savings:        savings,
		NeedsPercent:   needsPct,
		WantsPercent:   wantsPct,
		SavingsPercent: savingsPct,
		TotalAllocated: needs + wants + savings,
	}
}
