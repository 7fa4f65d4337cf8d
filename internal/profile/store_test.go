package profile

import (
	"testing"

	"github.com/fincalc/calcsuite/pkg/calc"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestPatchMergesOnlyProvidedFields(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Patch(FinancialProfile{
		AnnualSalary: Float(50000),
		State:        String("CA"),
	}); err != nil {
		t.Fatalf("first patch failed: %v", err)
	}

	merged, err := store.Patch(FinancialProfile{NetIncome: Float(40000)})
	if err != nil {
		t.Fatalf("second patch failed: %v", err)
	}

	if merged.AnnualSalary == nil || *merged.AnnualSalary != 50000 {
		t.Error("AnnualSalary lost by an unrelated patch")
	}
	if merged.State == nil || *merged.State != "CA" {
		t.Error("State lost by an unrelated patch")
	}
	if merged.NetIncome == nil || *merged.NetIncome != 40000 {
		t.Error("NetIncome not recorded")
	}
	if merged.HourlyRate != nil {
		t.Error("HourlyRate appeared without being set")
	}
}

func TestPatchZeroIsNotMissing(t *testing.T) {
	store := newTestStore(t)

	merged, err := store.Patch(FinancialProfile{TotalDebt: Float(0)})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if merged.TotalDebt == nil {
		t.Fatal("explicit zero was dropped")
	}
	if *merged.TotalDebt != 0 {
		t.Errorf("TotalDebt = %v, expected 0", *merged.TotalDebt)
	}
}

func TestPatchAssignsBudgetCategoryIDs(t *testing.T) {
	store := newTestStore(t)

	merged, err := store.Patch(FinancialProfile{
		BudgetCategories: []BudgetCategory{
			{Name: "Rent", Amount: 1500, Type: CategoryNeed},
			{ID: "existing-id", Name: "Dining", Amount: 300, Type: CategoryWant},
		},
	})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}

	if merged.BudgetCategories[0].ID == "" {
		t.Error("missing category ID was not assigned")
	}
	if merged.BudgetCategories[1].ID != "existing-id" {
		t.Errorf("existing ID overwritten: %q", merged.BudgetCategories[1].ID)
	}
}

func TestClearKeepsFlowProgress(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Patch(FinancialProfile{AnnualSalary: Float(60000)}); err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if _, err := store.MarkStepComplete(StepBudget); err != nil {
		t.Fatalf("mark step failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if store.Profile().AnnualSalary != nil {
		t.Error("profile not cleared")
	}
	if !store.Flow().Completed(StepBudget) {
		t.Error("flow progress lost by Clear")
	}
}

func TestResetDropsEverything(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Patch(FinancialProfile{AnnualSalary: Float(60000)}); err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if _, err := store.MarkStepComplete(StepNetWorth); err != nil {
		t.Fatalf("mark step failed: %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if store.Profile().AnnualSalary != nil {
		t.Error("profile survived Reset")
	}
	if len(store.Flow().CompletedSteps) != 0 {
		t.Error("flow progress survived Reset")
	}
}

func TestFlowProgression(t *testing.T) {
	store := newTestStore(t)

	// Complete the first and third steps out of order.
	for _, step := range []FlowStep{StepTakeHomePay, StepDebtPayoff} {
		if _, err := store.MarkStepComplete(step); err != nil {
			t.Fatalf("mark %s failed: %v", step, err)
		}
	}

	next, ok := store.Flow().Next()
	if !ok || next != StepBudget {
		t.Fatalf("next = %v (%v), expected budget", next, ok)
	}

	if _, err := store.MarkStepComplete(StepBudget); err != nil {
		t.Fatalf("mark budget failed: %v", err)
	}
	next, ok = store.Flow().Next()
	if !ok || next != StepNetWorth {
		t.Fatalf("next = %v (%v), expected net-worth", next, ok)
	}

	if _, err := store.MarkStepComplete(StepNetWorth); err != nil {
		t.Fatalf("mark net-worth failed: %v", err)
	}
	if _, ok := store.Flow().Next(); ok {
		t.Error("expected no next step once all are complete")
	}
	if !store.Flow().Complete() {
		t.Error("expected flow to be complete")
	}
}

func TestMarkStepCompleteIdempotent(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.MarkStepComplete(StepBudget); err != nil {
			t.Fatalf("mark failed: %v", err)
		}
	}
	if n := len(store.Flow().CompletedSteps); n != 1 {
		t.Errorf("completed steps = %d, expected 1", n)
	}
}

func TestMarkStepCompleteRejectsUnknownStep(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.MarkStepComplete("retire-early"); err == nil {
		t.Error("expected an error for an unknown step")
	}
}

func TestDismiss(t *testing.T) {
	store := newTestStore(t)

	flow, err := store.Dismiss()
	if err != nil {
		t.Fatalf("dismiss failed: %v", err)
	}
	if !flow.Dismissed {
		t.Error("flow not dismissed")
	}
	if flow.Complete() {
		t.Error("dismissal must not count as completion")
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenStore(StoreConfig{Path: dir})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if _, err := store.Patch(FinancialProfile{AnnualSalary: Float(75000)}); err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if _, err := store.MarkStepComplete(StepTakeHomePay); err != nil {
		t.Fatalf("mark step failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := OpenStore(StoreConfig{Path: dir})
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	profile := reopened.Profile()
	if profile.AnnualSalary == nil || *profile.AnnualSalary != 75000 {
		t.Error("profile did not survive reopen")
	}
	if !reopened.Flow().Completed(StepTakeHomePay) {
		t.Error("flow progress did not survive reopen")
	}
}

func TestApplyIncomeResult(t *testing.T) {
	store := newTestStore(t)

	input := calc.TakeHomePayInput{
		GrossIncome:  90000,
		PayFrequency: calc.PayAnnually,
		FilingStatus: calc.FilingSingle,
		State:        "TX",
	}
	result := calc.TakeHomePay(input)

	merged, err := store.ApplyIncomeResult(input, result)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if merged.GrossIncome == nil || *merged.GrossIncome != 90000 {
		t.Error("GrossIncome not recorded")
	}
	if merged.NetIncome == nil || *merged.NetIncome != result.AnnualNet {
		t.Error("NetIncome not recorded")
	}
	if merged.State == nil || *merged.State != "TX" {
		t.Error("State not recorded")
	}
}

func TestApplyDebtResult(t *testing.T) {
	store := newTestStore(t)

	input := calc.DebtPayoffInput{
		Debts: []calc.Debt{
			{Name: "Card", Balance: 3000, InterestRate: 20, MinimumPayment: 100},
			{Name: "Auto", Balance: 12000, InterestRate: 5, MinimumPayment: 250},
		},
		ExtraPayment: 150,
		Strategy:     calc.StrategyAvalanche,
	}
	result := calc.DebtPayoff(input)

	merged, err := store.ApplyDebtResult(input, result)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if len(merged.Debts) != 2 {
		t.Fatalf("stored %d debts, expected 2", len(merged.Debts))
	}
	if merged.TotalDebt == nil || *merged.TotalDebt != 15000 {
		t.Error("TotalDebt not the balance sum")
	}
	if merged.MonthlyDebtPayment == nil || *merged.MonthlyDebtPayment != 500 {
		t.Error("MonthlyDebtPayment not minimums plus extra")
	}
}
