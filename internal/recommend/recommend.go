// Package recommend evaluates rule-based financial recommendations against a
// stored profile and scores overall financial health.
package recommend

import (
	"sort"
	"strings"

	"github.com/fincalc/calcsuite/internal/profile"
	"github.com/fincalc/calcsuite/pkg/constants"
)

// Priority orders recommendations by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Recommendation is one rule. Condition reports whether the rule fires for
// the given profile; rules read missing fields as zero.
type Recommendation struct {
	ID          string                                `json:"id"`
	Title       string                                `json:"title"`
	Description string                                `json:"description"`
	Priority    Priority                              `json:"priority"`
	Condition   func(p profile.FinancialProfile) bool `json:"-"`
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// rules holds every recommendation in its declaration order. Evaluate
// re-sorts triggered rules by priority, so declaration order only breaks
// ties within a priority.
var rules = []Recommendation{
	{
		ID:          "increase-savings-rate",
		Title:       "Boost Your Savings Rate",
		Description: "Your savings rate is lower than the recommended 15-20%. Try to automate your savings by setting up recurring transfers to a high-yield savings account.",
		Priority:    PriorityHigh,
		Condition: func(p profile.FinancialProfile) bool {
			var monthlySavings float64
			if p.MonthlyExpenses != nil {
				monthlySavings = val(p.MonthlyExpenses.Savings)
			}
			annualSavings := monthlySavings * constants.MonthsPerYear
			gross := val(p.GrossIncome)
			savingsRate := 0.0
			if gross > 0 {
				savingsRate = annualSavings / gross * constants.PercentageMultiplier
			}
			return savingsRate < 15
		},
	},
	{
		ID:          "build-emergency-fund",
		Title:       "Build Your Emergency Fund",
		Description: "An emergency fund should cover 3-6 months of living expenses. This will protect you from unexpected financial shocks.",
		Priority:    PriorityHigh,
		Condition: func(p profile.FinancialProfile) bool {
			var needs, wants float64
			if p.MonthlyExpenses != nil {
				needs = val(p.MonthlyExpenses.Needs)
				wants = val(p.MonthlyExpenses.Wants)
			}
			return emergencyFundValue(p) < (needs+wants)*3
		},
	},
	{
		ID:          "reduce-dti",
		Title:       "Lower Your Debt-to-Income Ratio",
		Description: "Your debt-to-income ratio is higher than the recommended 36%. Focus on paying down high-interest debt to free up more of your income.",
		Priority:    PriorityHigh,
		Condition: func(p profile.FinancialProfile) bool {
			grossMonthly := val(p.GrossIncome) / constants.MonthsPerYear
			if grossMonthly <= 0 {
				return false
			}
			dti := val(p.MonthlyDebtPayment) / grossMonthly * constants.PercentageMultiplier
			return dti > 36
		},
	},
	{
		ID:          "debt-avalanche",
		Title:       "Consider the Debt Avalanche Method",
		Description: "The debt avalanche method involves paying off your highest-interest debt first. This can save you a significant amount of money in interest over time.",
		Priority:    PriorityMedium,
		Condition: func(p profile.FinancialProfile) bool {
			return val(p.TotalDebt) > 0
		},
	},
	{
		ID:          "increase-retirement-contributions",
		Title:       "Increase Your Retirement Contributions",
		Description: "Your retirement savings seem to be lagging. Even small increases to your monthly contributions can make a big difference over time thanks to compound growth.",
		Priority:    PriorityHigh,
		Condition: func(p profile.FinancialProfile) bool {
			annualIncome := val(p.AnnualSalary)
			if annualIncome == 0 {
				annualIncome = val(p.GrossIncome)
			}
			if annualIncome <= 0 {
				return false
			}
			age := 30.0
			if p.CurrentAge != nil {
				age = float64(*p.CurrentAge)
			}
			recommended := age / 10 * annualIncome
			return val(p.CurrentRetirementSavings) < recommended*0.8
		},
	},
	{
		ID:          "start-investing",
		Title:       "Start Investing for the Future",
		Description: "If you haven't already, consider opening a brokerage account and investing in a diversified portfolio of low-cost index funds. This is a great way to build long-term wealth.",
		Priority:    PriorityMedium,
		Condition: func(p profile.FinancialProfile) bool {
			return val(p.CurrentInvestments) == 0 && val(p.CurrentRetirementSavings) == 0
		},
	},
	{
		ID:          "grow-net-worth",
		Title:       "Focus on Growing Your Net Worth",
		Description: "Your net worth is a key indicator of your financial health. You can increase it by growing your assets (like savings and investments) and reducing your liabilities (like debt).",
		Priority:    PriorityLow,
		Condition: func(p profile.FinancialProfile) bool {
			return val(p.NetWorth) < val(p.AnnualSalary)
		},
	},
}

// emergencyFundValue finds the first asset whose name mentions "emergency".
func emergencyFundValue(p profile.FinancialProfile) float64 {
	for _, a := range p.Assets {
		if strings.Contains(strings.ToLower(a.Name), "emergency") {
			return a.Value
		}
	}
	return 0
}

// Evaluate returns every triggered recommendation, highest priority first.
// The sort is stable so rules of equal priority keep declaration order.
func Evaluate(p profile.FinancialProfile) []Recommendation {
	triggered := []Recommendation{}
	for _, r := range rules {
		if r.Condition(p) {
			triggered = append(triggered, r)
		}
	}
	sort.SliceStable(triggered, func(i, j int) bool {
		return triggered[i].Priority.rank() < triggered[j].Priority.rank()
	})
	return triggered
}

// Health-score deductions per triggered rule priority.
const (
	highDeduction   = 15
	mediumDeduction = 10
	lowDeduction    = 5
)

// HealthScore starts from 100 and deducts per triggered rule by priority,
// clamped to the 0-100 range.
func HealthScore(p profile.FinancialProfile) int {
	score := 100
	for _, r := range Evaluate(p) {
		switch r.Priority {
		case PriorityHigh:
			score -= highDeduction
		case PriorityMedium:
			score -= mediumDeduction
		default:
			score -= lowDeduction
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}
