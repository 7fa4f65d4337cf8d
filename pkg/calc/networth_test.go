package calc

import (
	"math"
	"testing"
)

func TestNetWorth(t *testing.T) {
	result := NetWorth(NetWorthInput{
		Cash:               50000,
		Investments:        120000,
		RetirementAccounts: 85000,
		RealEstate:         320000,
		Vehicles:           25000,
		OtherAssets:        5000,
		Mortgage:           280000,
		CarLoans:           15000,
		CreditCards:        5000,
		StudentLoans:       40000,
		OtherDebts:         10000,
	})

	if result.TotalAssets != 605000 {
		t.Errorf("TotalAssets = %.2f, expected 605000", result.TotalAssets)
	}
	if result.TotalLiabilities != 350000 {
		t.Errorf("TotalLiabilities = %.2f, expected 350000", result.TotalLiabilities)
	}
	if result.NetWorth != 255000 {
		t.Errorf("NetWorth = %.2f, expected 255000", result.NetWorth)
	}
	if result.LiquidAssets != 170000 {
		t.Errorf("LiquidAssets = %.2f, expected 170000", result.LiquidAssets)
	}
	if math.Abs(result.DebtToAssetRatio-57.85) > 0.01 {
		t.Errorf("DebtToAssetRatio = %.2f, expected ~57.85", result.DebtToAssetRatio)
	}
}

func TestNetWorthNoAssets(t *testing.T) {
	result := NetWorth(NetWorthInput{CreditCards: 5000})

	if result.DebtToAssetRatio != 0 {
		t.Errorf("DebtToAssetRatio = %.2f, expected 0 with no assets", result.DebtToAssetRatio)
	}
	if result.NetWorth != -5000 {
		t.Errorf("NetWorth = %.2f, expected -5000", result.NetWorth)
	}
}
