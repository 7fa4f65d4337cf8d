// Package constants provides shared constants for the calcsuite application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WeeksPerYear is the number of weeks in a year
	WeeksPerYear = 52

	// BiweeklyPeriodsPerYear is the number of biweekly pay periods in a year
	BiweeklyPeriodsPerYear = 26

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// 2025 federal tax constants
const (
	// StandardDeductionSingle is the 2025 federal standard deduction for single filers
	StandardDeductionSingle = 15000.0

	// StandardDeductionMarried is the 2025 federal standard deduction for married filing jointly
	StandardDeductionMarried = 30000.0

	// StandardDeductionHead is the 2025 federal standard deduction for head of household
	StandardDeductionHead = 22500.0

	// DependentCredit is the per-dependent tax credit applied by the tax estimator
	DependentCredit = 2000.0
)

// FICA constants
const (
	// SocialSecurityRate is the employee share of Social Security tax
	SocialSecurityRate = 0.062

	// SocialSecurityWageBase is the Social Security taxable wage cap
	SocialSecurityWageBase = 168600.0

	// MedicareRate is the employee share of Medicare tax
	MedicareRate = 0.0145

	// AdditionalMedicareRate applies to wages above the additional Medicare threshold
	AdditionalMedicareRate = 0.009

	// AdditionalMedicareThresholdSingle is the additional Medicare threshold for single filers
	AdditionalMedicareThresholdSingle = 200000.0

	// AdditionalMedicareThresholdMarried is the additional Medicare threshold for married filing jointly
	AdditionalMedicareThresholdMarried = 250000.0
)

// Simulation safety caps. These bound otherwise-unbounded simulations; a run
// that hits a cap reports a non-converged result rather than looping forever.
const (
	// MaxPayoffMonths caps the debt payoff simulation at 50 years
	MaxPayoffMonths = 600

	// MaxSavingsMonths caps the savings goal simulation at 100 years
	MaxSavingsMonths = 1200
)

// Configuration constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultDataDir is the default directory for the profile store
	DefaultDataDir = "data"
)
