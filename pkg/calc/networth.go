package calc

import (
	"github.com/fincalc/calcsuite/pkg/constants"
)

// NetWorthInput holds the fixed asset and liability fields the aggregator
// sums. All values are current balances.
type NetWorthInput struct {
	Cash               float64 `json:"cash" validate:"gte=0"`
	Investments        float64 `json:"investments" validate:"gte=0"`
	RetirementAccounts float64 `json:"retirementAccounts" validate:"gte=0"`
	RealEstate         float64 `json:"realEstate" validate:"gte=0"`
	Vehicles           float64 `json:"vehicles" validate:"gte=0"`
	OtherAssets        float64 `json:"otherAssets" validate:"gte=0"`

	Mortgage     float64 `json:"mortgage" validate:"gte=0"`
	CarLoans     float64 `json:"carLoans" validate:"gte=0"`
	CreditCards  float64 `json:"creditCards" validate:"gte=0"`
	StudentLoans float64 `json:"studentLoans" validate:"gte=0"`
	OtherDebts   float64 `json:"otherDebts" validate:"gte=0"`
}

// NetWorthResult aggregates the inputs. LiquidAssets counts cash and
// investments only; DebtToAssetRatio is a percentage, 0 when there are no
// assets.
type NetWorthResult struct {
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
	NetWorth         float64 `json:"netWorth"`
	LiquidAssets     float64 `json:"liquidAssets"`
	DebtToAssetRatio float64 `json:"debtToAssetRatio"`
}

// NetWorth sums assets and liabilities.
func NetWorth(input NetWorthInput) NetWorthResult {
	totalAssets := input.Cash + input.Investments + input.RetirementAccounts +
		input.RealEstate + input.Vehicles + input.OtherAssets
	totalLiabilities := input.Mortgage + input.CarLoans + input.CreditCards +
		input.StudentLoans + input.OtherDebts

	ratio := 0.0
	if totalAssets > 0 {
		ratio = totalLiabilities / totalAssets * constants.PercentageMultiplier
	}

	return NetWorthResult{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets - totalLiabilities,
		LiquidAssets:     input.Cash + input.Investments,
		DebtToAssetRatio: ratio,
	}
}
