package profile

// FlowStep names one step of the guided financial-checkup flow.
type FlowStep string

const (
	StepTakeHomePay FlowStep = "take-home-pay"
	StepBudget      FlowStep = "budget"
	StepDebtPayoff  FlowStep = "debt-payoff"
	StepNetWorth    FlowStep = "net-worth"
)

// FlowSteps lists the guided flow in its fixed presentation order.
var FlowSteps = []FlowStep{StepTakeHomePay, StepBudget, StepDebtPayoff, StepNetWorth}

// ValidStep reports whether step names a known flow step.
func ValidStep(step FlowStep) bool {
	for _, s := range FlowSteps {
		if s == step {
			return true
		}
	}
	return false
}

// FlowProgress records which guided-flow steps the user has completed and
// whether they dismissed the flow prompt.
type FlowProgress struct {
	CompletedSteps []FlowStep `json:"completedSteps"`
	Dismissed      bool       `json:"dismissed"`
	LastUpdated    int64      `json:"lastUpdated,omitempty"`
}

// Completed reports whether step has been marked complete.
func (p FlowProgress) Completed(step FlowStep) bool {
	for _, s := range p.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Next returns the first incomplete step in flow order. ok is false when
// every step is complete.
func (p FlowProgress) Next() (step FlowStep, ok bool) {
	for _, s := range FlowSteps {
		if !p.Completed(s) {
			return s, true
		}
	}
	return "", false
}

// Complete reports whether every flow step has been completed.
func (p FlowProgress) Complete() bool {
	_, ok := p.Next()
	return !ok
}
