package calc

import (
	"sort"

	"github.com/fincalc/calcsuite/pkg/constants"
	"github.com/fincalc/calcsuite/pkg/mathutil"
)

// PayoffStrategy orders debts for the payoff simulation.
type PayoffStrategy string

const (
	// StrategyAvalanche pays highest interest rate first (interest-optimal).
	StrategyAvalanche PayoffStrategy = "avalanche"

	// StrategySnowball pays smallest balance first.
	StrategySnowball PayoffStrategy = "snowball"
)

// Debt is one liability in the payoff simulation. InterestRate is an annual
// percentage.
type Debt struct {
	Name           string  `json:"name" validate:"required"`
	Balance        float64 `json:"balance" validate:"gte=0"`
	InterestRate   float64 `json:"interestRate" validate:"gte=0,lte=100"`
	MinimumPayment float64 `json:"minimumPayment" validate:"gte=0"`
}

// DebtPayoffInput holds the simulation parameters.
type DebtPayoffInput struct {
	Debts        []Debt         `json:"debts" validate:"min=1,dive"`
	ExtraPayment float64        `json:"extraPayment" validate:"gte=0"`
	Strategy     PayoffStrategy `json:"strategy" validate:"oneof=avalanche snowball"`
}

// DebtPaymentRow is one debt's state after one month's payment.
type DebtPaymentRow struct {
	Month            int     `json:"month"`
	DebtName         string  `json:"debtName"`
	Payment          float64 `json:"payment"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// DebtPayoffResult reports the simulation outcome. DebtFree is false when
// the cap was reached with balances outstanding (payments not covering
// interest). PayoffOrder lists debt names in the order they were retired.
type DebtPayoffResult struct {
	MonthsToDebtFree  int              `json:"monthsToDebtFree"`
	YearsToDebtFree   float64          `json:"yearsToDebtFree"`
	TotalInterestPaid float64          `json:"totalInterestPaid"`
	TotalPaid         float64          `json:"totalPaid"`
	DebtFree          bool             `json:"debtFree"`
	PayoffOrder       []string         `json:"payoffOrder"`
	Schedule          []DebtPaymentRow `json:"schedule"`
}

// DebtPayoff simulates paying down a set of debts with a pooled monthly
// payment (every minimum plus the extra payment). Each month interest
// accrues on every open balance, then the pool is applied to debts in
// strategy order until it runs out. The loop is capped at
// constants.MaxPayoffMonths.
func DebtPayoff(input DebtPayoffInput) DebtPayoffResult {
	debts := make([]Debt, len(input.Debts))
	copy(debts, input.Debts)

	switch input.Strategy {
	case StrategySnowball:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].Balance < debts[j].Balance
		})
	default:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].InterestRate > debts[j].InterestRate
		})
	}

	monthlyPool := input.ExtraPayment
	for _, debt := range debts {
		monthlyPool += debt.MinimumPayment
	}

	var (
		schedule      []DebtPaymentRow
		payoffOrder   []string
		totalInterest float64
		totalPaid     float64
		months        int
	)

	monthInterest := make([]float64, len(debts))

	for months = 0; months < constants.MaxPayoffMonths; months++ {
		if allPaid(debts) {
			break
		}

		// Interest accrues before the month's payment lands.
		for i := range debts {
			monthInterest[i] = 0
			if debts[i].Balance <= 0 {
				continue
			}
			interest := debts[i].Balance * debts[i].InterestRate /
				(constants.PercentageMultiplier * constants.MonthsPerYear)
			debts[i].Balance += interest
			monthInterest[i] = interest
			totalInterest += interest
		}

		pool := monthlyPool
		for i := range debts {
			if debts[i].Balance <= 0 || pool <= 0 {
				continue
			}
			payment := mathutil.Min(pool, debts[i].Balance)
			debts[i].Balance -= payment
			pool -= payment
			totalPaid += payment

			if mathutil.IsZero(debts[i].Balance) {
				debts[i].Balance = 0
				payoffOrder = append(payoffOrder, debts[i].Name)
			}

			schedule = append(schedule, DebtPaymentRow{
				Month:            months + 1,
				DebtName:         debts[i].Name,
				Payment:          payment,
				Interest:         monthInterest[i],
				RemainingBalance: debts[i].Balance,
			})
		}
	}

	return DebtPayoffResult{
		MonthsToDebtFree:  months,
		YearsToDebtFree:   float64(months) / constants.MonthsPerYear,
		TotalInterestPaid: totalInterest,
		TotalPaid:         totalPaid,
		DebtFree:          allPaid(debts),
		PayoffOrder:       payoffOrder,
		Schedule:          schedule,
	}
}

func allPaid(debts []Debt) bool {
	for _, debt := range debts {
		if debt.Balance > 0 {
			return false
		}
	}
	return true
}
