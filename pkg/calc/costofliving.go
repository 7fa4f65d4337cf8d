package calc

import (
	"github.com/fincalc/calcsuite/pkg/coldata"
)

// CostOfLivingInput compares a salary between two cities from the reference
// dataset. City names use the "City, ST" label form.
type CostOfLivingInput struct {
	CurrentCity   string       `json:"currentCity" validate:"required"`
	NewCity       string       `json:"newCity" validate:"required"`
	CurrentSalary float64      `json:"currentSalary" validate:"gt=0"`
	FilingStatus  FilingStatus `json:"filingStatus" validate:"oneof=single married head"`
}

// CostOfLivingResult reports the index-equivalent salary in the new city and
// the post-tax picture in both, so the comparison reflects each state's taxes
// rather than gross equivalence alone.
type CostOfLivingResult struct {
	EquivalentSalary float64           `json:"equivalentSalary"`
	IndexRatio       float64           `json:"indexRatio"`
	CurrentIndices   coldata.Indices   `json:"currentIndices"`
	NewIndices       coldata.Indices   `json:"newIndices"`
	CurrentTakeHome  TakeHomePayResult `json:"currentTakeHome"`
	NewTakeHome      TakeHomePayResult `json:"newTakeHome"`
}

// CostOfLivingDifference returns nil when either city is unknown or both are
// the same; that is a valid "no comparison" outcome, not an error.
func CostOfLivingDifference(input CostOfLivingInput) *CostOfLivingResult {
	if input.CurrentCity == input.NewCity {
		return nil
	}
	current, ok := coldata.Lookup(input.CurrentCity)
	if !ok {
		return nil
	}
	next, ok := coldata.Lookup(input.NewCity)
	if !ok {
		return nil
	}

	ratio := next.Indices.Overall / current.Indices.Overall
	equivalentSalary := input.CurrentSalary * ratio

	currentTakeHome := TakeHomePay(TakeHomePayInput{
		GrossIncome:  input.CurrentSalary,
		PayFrequency: PayAnnually,
		FilingStatus: input.FilingStatus,
		State:        coldata.StateCode(input.CurrentCity),
	})
	newTakeHome := TakeHomePay(TakeHomePayInput{
		GrossIncome:  equivalentSalary,
		PayFrequency: PayAnnually,
		FilingStatus: input.FilingStatus,
		State:        coldata.StateCode(input.NewCity),
	})

	return &CostOfLivingResult{
		EquivalentSalary: equivalentSalary,
		IndexRatio:       ratio,
		CurrentIndices:   current.Indices,
		NewIndices:       next.Indices,
		CurrentTakeHome:  currentTakeHome,
		NewTakeHome:      newTakeHome,
	}
}
