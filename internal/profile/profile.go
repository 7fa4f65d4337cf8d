// Package profile defines the shared financial profile and guided-flow
// progress, and the badger-backed store that persists both.
package profile

// BudgetCategoryType classifies a budget line item.
type BudgetCategoryType string

const (
	CategoryNeed    BudgetCategoryType = "need"
	CategoryWant    BudgetCategoryType = "want"
	CategorySavings BudgetCategoryType = "savings"
)

// BudgetCategory is one itemized budget line. ID is assigned on first write
// when the client omits it.
type BudgetCategory struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Amount float64            `json:"amount"`
	Type   BudgetCategoryType `json:"type"`
}

// DebtItem is one itemized debt.
type DebtItem struct {
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interestRate"`
	MinimumPayment float64 `json:"minimumPayment"`
}

// GoalItem is one itemized savings goal.
type GoalItem struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    string  `json:"targetDate,omitempty"`
}

// AssetItem is one itemized asset.
type AssetItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthlyExpenses groups categorized monthly spending.
type MonthlyExpenses struct {
	Needs   *float64 `json:"needs,omitempty"`
	Wants   *float64 `json:"wants,omitempty"`
	Savings *float64 `json:"savings,omitempty"`
}

// FinancialProfile is the sparse record of user-entered values accumulated
// across calculator visits. Every field is optional: nil means "not yet
// provided" and is never interchangeable with zero.
type FinancialProfile struct {
	// Income
	HourlyRate   *float64 `json:"hourlyRate,omitempty"`
	AnnualSalary *float64 `json:"annualSalary,omitempty"`
	GrossIncome  *float64 `json:"grossIncome,omitempty"`
	NetIncome    *float64 `json:"netIncome,omitempty"`
	PayFrequency *string  `json:"payFrequency,omitempty"`

	// Location & cost of living
	CurrentCity            *string  `json:"currentCity,omitempty"`
	NewCity                *string  `json:"newCity,omitempty"`
	CostOfLivingAdjustment *float64 `json:"costOfLivingAdjustment,omitempty"`

	// Tax information
	FilingStatus     *string  `json:"filingStatus,omitempty"`
	State            *string  `json:"state,omitempty"`
	EffectiveTaxRate *float64 `json:"effectiveTaxRate,omitempty"`

	// Retirement
	CurrentAge                    *int     `json:"currentAge,omitempty"`
	RetirementAge                 *int     `json:"retirementAge,omitempty"`
	CurrentRetirementSavings      *float64 `json:"currentRetirementSavings,omitempty"`
	MonthlyRetirementContribution *float64 `json:"monthlyRetirementContribution,omitempty"`
	RetirementGoal                *float64 `json:"retirementGoal,omitempty"`

	// Housing
	MonthlyRent            *float64 `json:"monthlyRent,omitempty"`
	HomePrice              *float64 `json:"homePrice,omitempty"`
	DownPayment            *float64 `json:"downPayment,omitempty"`
	MortgageRate           *float64 `json:"mortgageRate,omitempty"`
	MonthlyMortgagePayment *float64 `json:"monthlyMortgagePayment,omitempty"`

	// Investments
	CurrentInvestments *float64 `json:"currentInvestments,omitempty"`
	MonthlyInvestment  *float64 `json:"monthlyInvestment,omitempty"`
	ExpectedReturnRate *float64 `json:"expectedReturnRate,omitempty"`

	// Debts
	TotalDebt          *float64   `json:"totalDebt,omitempty"`
	MonthlyDebtPayment *float64   `json:"monthlyDebtPayment,omitempty"`
	Debts              []DebtItem `json:"debts,omitempty"`

	// Goals
	SavingsGoal       *float64   `json:"savingsGoal,omitempty"`
	SavingsTimeframe  *float64   `json:"savingsTimeframe,omitempty"`
	EmergencyFundGoal *float64   `json:"emergencyFundGoal,omitempty"`
	Goals             []GoalItem `json:"goals,omitempty"`

	// Assets (for net worth)
	Assets      []AssetItem `json:"assets,omitempty"`
	TotalAssets *float64    `json:"totalAssets,omitempty"`
	NetWorth    *float64    `json:"netWorth,omitempty"`

	// Budget
	MonthlyIncome    *float64         `json:"monthlyIncome,omitempty"`
	MonthlyExpenses  *MonthlyExpenses `json:"monthlyExpenses,omitempty"`
	BudgetCategories []BudgetCategory `json:"budgetCategories,omitempty"`
}

// Float returns a pointer to v, for building profile patches.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building profile patches.
func Int(v int) *int { return &v }

// String returns a pointer to v, for building profile patches.
func String(v string) *string { return &v }
