package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/fincalc/calcsuite/pkg/calc"
	"github.com/fincalc/calcsuite/pkg/coldata"
	"github.com/fincalc/calcsuite/pkg/constants"

	"github.com/fincalc/calcsuite/internal/profile"
)

// Calculators with no profile side effects decode, validate, compute, and
// respond. Calculators that feed the guided flow additionally patch the
// profile store and mark their step complete; a storage failure there is
// logged but never fails the calculation response.

func (h *handler) handleHourlyToSalary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.HourlyToSalaryInput
	if !h.decodeAndValidate(w, r, &input, "server.handleHourlyToSalary") {
		return
	}
	result := calc.HourlyToSalary(input)

	h.patchProfile(profile.FinancialProfile{
		HourlyRate:   profile.Float(input.HourlyRate),
		AnnualSalary: profile.Float(result.AnnualSalary),
	}, "server.handleHourlyToSalary")

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleTakeHomePay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.TakeHomePayInput
	if !h.decodeAndValidate(w, r, &input, "server.handleTakeHomePay") {
		return
	}
	result := calc.TakeHomePay(input)

	if h.profiles != nil {
		if _, err := h.profiles.ApplyIncomeResult(input, result); err != nil {
			h.logger.Warn("failed to store income result", zap.Error(err))
		} else if _, err := h.profiles.MarkStepComplete(profile.StepTakeHomePay); err != nil {
			h.logger.Warn("failed to mark flow step", zap.Error(err))
		}
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleCostOfLiving(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.CostOfLivingInput
	if !h.decodeAndValidate(w, r, &input, "server.handleCostOfLiving") {
		return
	}
	result := calc.CostOfLivingDifference(input)

	if result != nil {
		h.patchProfile(profile.FinancialProfile{
			CurrentCity:            profile.String(input.CurrentCity),
			NewCity:                profile.String(input.NewCity),
			CostOfLivingAdjustment: profile.Float((result.IndexRatio - 1) * constants.PercentageMultiplier),
			State:                  profile.String(coldata.StateCode(input.CurrentCity)),
		}, "server.handleCostOfLiving")
	}

	// nil means no comparison exists (same or unknown city); the client
	// receives an explicit null rather than an error.
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleInterest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.InterestInput
	if !h.decodeAndValidate(w, r, &input, "server.handleInterest") {
		return
	}
	h.writeJSON(w, http.StatusOK, calc.Interest(input))
}

func (h *handler) handleLoan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.LoanInput
	if !h.decodeAndValidate(w, r, &input, "server.handleLoan") {
		return
	}
	h.writeJSON(w, http.StatusOK, calc.LoanPayment(input))
}

func (h *handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.MortgageInput
	if !h.decodeAndValidate(w, r, &input, "server.handleMortgage") {
		return
	}
	result := calc.Mortgage(input)

	if result != nil {
		h.patchProfile(profile.FinancialProfile{
			HomePrice:              profile.Float(input.HomePrice),
			DownPayment:            profile.Float(input.DownPayment),
			MortgageRate:           profile.Float(input.InterestRate),
			MonthlyMortgagePayment: profile.Float(result.TotalMonthlyPayment),
		}, "server.handleMortgage")
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleSavingsGoal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.SavingsGoalInput
	if !h.decodeAndValidate(w, r, &input, "server.handleSavingsGoal") {
		return
	}
	result := calc.SavingsGoal(input)

	h.patchProfile(profile.FinancialProfile{
		SavingsGoal:      profile.Float(input.GoalAmount),
		SavingsTimeframe: profile.Float(input.Timeframe),
	}, "server.handleSavingsGoal")

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.NetWorthInput
	if !h.decodeAndValidate(w, r, &input, "server.handleNetWorth") {
		return
	}
	result := calc.NetWorth(input)

	if h.profiles != nil {
		if _, err := h.profiles.ApplyNetWorthResult(input, result); err != nil {
			h.logger.Warn("failed to store net worth result", zap.Error(err))
		} else if _, err := h.profiles.MarkStepComplete(profile.StepNetWorth); err != nil {
			h.logger.Warn("failed to mark flow step", zap.Error(err))
		}
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handle401k(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.FourOhOneKInput
	if !h.decodeAndValidate(w, r, &input, "server.handle401k") {
		return
	}
	result := calc.FourOhOneK(input)

	h.patchProfile(profile.FinancialProfile{
		CurrentAge:               profile.Int(input.CurrentAge),
		RetirementAge:            profile.Int(input.RetirementAge),
		AnnualSalary:             profile.Float(input.AnnualSalary),
		CurrentRetirementSavings: profile.Float(input.CurrentBalance),
	}, "server.handle401k")

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleDebtPayoff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.DebtPayoffInput
	if !h.decodeAndValidate(w, r, &input, "server.handleDebtPayoff") {
		return
	}
	result := calc.DebtPayoff(input)

	if h.profiles != nil {
		if _, err := h.profiles.ApplyDebtResult(input, result); err != nil {
			h.logger.Warn("failed to store debt result", zap.Error(err))
		} else if _, err := h.profiles.MarkStepComplete(profile.StepDebtPayoff); err != nil {
			h.logger.Warn("failed to mark flow step", zap.Error(err))
		}
	}

	h.writeJSON(w, http.StatusOK, result)
}

// budgetRequest wraps the budget input with optional itemized categories to
// persist alongside the allocation.
type budgetRequest struct {
	calc.BudgetInput
	Categories []profile.BudgetCategory `json:"categories,omitempty"`
}

func (h *handler) handleBudget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var req budgetRequest
	if !h.decodeAndValidate(w, r, &req, "server.handleBudget") {
		return
	}
	result := calc.Budget(req.BudgetInput)

	if h.profiles != nil {
		if _, err := h.profiles.ApplyBudgetResult(req.BudgetInput, result, req.Categories); err != nil {
			h.logger.Warn("failed to store budget result", zap.Error(err))
		} else if _, err := h.profiles.MarkStepComplete(profile.StepBudget); err != nil {
			h.logger.Warn("failed to mark flow step", zap.Error(err))
		}
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleTax(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var input calc.TaxInput
	if !h.decodeAndValidate(w, r, &input, "server.handleTax") {
		return
	}
	result := calc.Tax(input)

	h.patchProfile(profile.FinancialProfile{
		FilingStatus:     profile.String(string(input.FilingStatus)),
		State:            profile.String(input.State),
		EffectiveTaxRate: profile.Float(result.EffectiveRate),
	}, "server.handleTax")

	h.writeJSON(w, http.StatusOK, result)
}

// patchProfile applies a best-effort profile update. Calculators stay usable
// when the store is absent or failing.
func (h *handler) patchProfile(patch profile.FinancialProfile, op string) {
	if h.profiles == nil {
		return
	}
	if _, err := h.profiles.Patch(patch); err != nil {
		h.logger.Warn("failed to update profile",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}
