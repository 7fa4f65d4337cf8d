package recommend

import (
	"testing"

	"github.com/fincalc/calcsuite/internal/profile"
)

// healthyProfile triggers no rules: strong savings rate, funded emergency
// fund, low DTI, no debt, on-track retirement, investments, and a net worth
// above salary.
func healthyProfile() profile.FinancialProfile {
	return profile.FinancialProfile{
		GrossIncome:  profile.Float(100000),
		AnnualSalary: profile.Float(100000),
		MonthlyExpenses: &profile.MonthlyExpenses{
			Needs:   profile.Float(3000),
			Wants:   profile.Float(1000),
			Savings: profile.Float(2000),
		},
		Assets: []profile.AssetItem{
			{Name: "Emergency Fund", Value: 20000},
		},
		MonthlyDebtPayment:       profile.Float(500),
		TotalDebt:                profile.Float(0),
		CurrentAge:               profile.Int(35),
		CurrentRetirementSavings: profile.Float(400000),
		CurrentInvestments:       profile.Float(50000),
		NetWorth:                 profile.Float(500000),
	}
}

func triggered(recs []Recommendation, id string) bool {
	for _, r := range recs {
		if r.ID == id {
			return true
		}
	}
	return false
}

func TestEvaluateHealthyProfile(t *testing.T) {
	recs := Evaluate(healthyProfile())
	if len(recs) != 0 {
		ids := make([]string, 0, len(recs))
		for _, r := range recs {
			ids = append(ids, r.ID)
		}
		t.Errorf("healthy profile triggered %v", ids)
	}
	if score := HealthScore(healthyProfile()); score != 100 {
		t.Errorf("HealthScore = %d, expected 100", score)
	}
}

func TestEvaluateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*profile.FinancialProfile)
		id     string
	}{
		{
			name: "Low savings rate",
			mutate: func(p *profile.FinancialProfile) {
				p.MonthlyExpenses.Savings = profile.Float(500)
			},
			id: "increase-savings-rate",
		},
		{
			name: "Thin emergency fund",
			mutate: func(p *profile.FinancialProfile) {
				p.Assets = []profile.AssetItem{{Name: "Emergency Fund", Value: 1000}}
			},
			id: "build-emergency-fund",
		},
		{
			name: "High debt to income",
			mutate: func(p *profile.FinancialProfile) {
				p.MonthlyDebtPayment = profile.Float(4000)
			},
			id: "reduce-dti",
		},
		{
			name: "Outstanding debt",
			mutate: func(p *profile.FinancialProfile) {
				p.TotalDebt = profile.Float(12000)
			},
			id: "debt-avalanche",
		},
		{
			name: "Lagging retirement savings",
			mutate: func(p *profile.FinancialProfile) {
				p.CurrentRetirementSavings = profile.Float(10000)
			},
			id: "increase-retirement-contributions",
		},
		{
			name: "No investments at all",
			mutate: func(p *profile.FinancialProfile) {
				p.CurrentInvestments = profile.Float(0)
				p.CurrentRetirementSavings = profile.Float(0)
			},
			id: "start-investing",
		},
		{
			name: "Net worth below salary",
			mutate: func(p *profile.FinancialProfile) {
				p.NetWorth = profile.Float(50000)
			},
			id: "grow-net-worth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := healthyProfile()
			tt.mutate(&p)
			if !triggered(Evaluate(p), tt.id) {
				t.Errorf("expected rule %s to trigger", tt.id)
			}
		})
	}
}

func TestEvaluatePriorityOrder(t *testing.T) {
	p := healthyProfile()
	p.NetWorth = profile.Float(0)              // low priority rule
	p.TotalDebt = profile.Float(5000)          // medium priority rule
	p.MonthlyDebtPayment = profile.Float(4000) // high priority rule

	recs := Evaluate(p)
	if len(recs) < 3 {
		t.Fatalf("expected at least 3 recommendations, got %d", len(recs))
	}

	seenMedium := false
	seenLow := false
	for _, r := range recs {
		switch r.Priority {
		case PriorityHigh:
			if seenMedium || seenLow {
				t.Fatal("high priority listed after lower priorities")
			}
		case PriorityMedium:
			if seenLow {
				t.Fatal("medium priority listed after low")
			}
			seenMedium = true
		case PriorityLow:
			seenLow = true
		}
	}
}

func TestHealthScoreDeductions(t *testing.T) {
	p := healthyProfile()
	p.TotalDebt = profile.Float(5000) // one medium rule
	if score := HealthScore(p); score != 90 {
		t.Errorf("HealthScore = %d, expected 90 after one medium deduction", score)
	}

	p.NetWorth = profile.Float(0) // adds one low rule
	if score := HealthScore(p); score != 85 {
		t.Errorf("HealthScore = %d, expected 85", score)
	}
}

func TestHealthScoreClampedAtZero(t *testing.T) {
	// An empty profile trips most rules; the floor is 0 regardless.
	if score := HealthScore(profile.FinancialProfile{}); score < 0 || score > 100 {
		t.Errorf("HealthScore = %d, expected within [0, 100]", score)
	}
}
