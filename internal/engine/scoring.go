package engine

import (
	"math"

	"finadvisor/internal/model"
)

// Score bundles the client-side computed recommendation fields. These are
// always computed locally, even when the remote synthesis call succeeds, so
// confidence and risk stay consistent across network conditions.
type Score struct {
	Confidence   float64
	Risk         model.RiskLevel
	TimeEstimate model.TimeEstimate
}

// timeEstimates holds the static per-goal implementation time estimates
var timeEstimates = map[model.GoalID]model.TimeEstimate{
	model.GoalEmergencyFund: {Value: 12, Unit: "months", Confidence: "medium"},
	model.GoalDebtReduction: {Value: 24, Unit: "months", Confidence: "medium"},
	model.GoalHomePurchase:  {Value: 36, Unit: "months", Confidence: "low"},
	model.GoalRetirement:    {Value: 120, Unit: "months", Confidence: "low"},
	model.GoalEducation:     {Value: 18, Unit: "months", Confidence: "medium"},
	model.GoalVacation:      {Value: 6, Unit: "months", Confidence: "medium"},
	model.GoalOther:         {Value: 12, Unit: "months", Confidence: "low"},
}

// ComputeScore derives confidence, risk and time estimate from the path,
// the profile and the goal type
func ComputeScore(goal model.GoalID, path model.DecisionPath, profile *model.UserProfile) Score {
	return Score{
		Confidence:   confidenceScore(path, profile),
		Risk:         riskLevel(goal, profile),
		TimeEstimate: timeEstimate(goal),
	}
}

// confidenceScore starts at 0.5, gains up to +0.3 from recorded decisions
// (0.1 each) and up to +0.2 from profile completeness (0.03 per populated
// checklist field). Clamped to [0,1], rounded to one decimal.
func confidenceScore(path model.DecisionPath, profile *model.UserProfile) float64 {
	score := 0.5

	pathBonus := 0.1 * float64(len(path))
	if pathBonus > 0.3 {
		pathBonus = 0.3
	}
	score += pathBonus

	profileBonus := 0.03 * float64(populatedFields(profile))
	if profileBonus > 0.2 {
		profileBonus = 0.2
	}
	score += profileBonus

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return math.Round(score*10) / 10
}

// populatedFields counts the populated fields of the fixed profile checklist
func populatedFields(p *model.UserProfile) int {
	if p == nil {
		return 0
	}
	n := 0
	if p.Name != "" {
		n++
	}
	if p.FinancialGoal != "" {
		n++
	}
	if p.Timeframe != "" {
		n++
	}
	if p.CurrentSavings > 0 {
		n++
	}
	if p.MonthlyIncome > 0 {
		n++
	}
	if p.TargetAmount > 0 {
		n++
	}
	if p.RiskTolerance != "" {
		n++
	}
	return n
}

func riskLevel(goal model.GoalID, profile *model.UserProfile) model.RiskLevel {
	switch goal {
	case model.GoalEmergencyFund, model.GoalVacation, model.GoalEducation:
		return model.RiskLow
	case model.GoalRetirement:
		if profile != nil && profile.RiskTolerance == "low" {
			return model.RiskLow
		}
		return model.RiskMedium
	case model.GoalHomePurchase:
		return model.RiskMedium
	default:
		return model.RiskMedium
	}
}

func timeEstimate(goal model.GoalID) model.TimeEstimate {
	if est, ok := timeEstimates[goal]; ok {
		return est
	}
	return model.TimeEstimate{Value: 12, Unit: "months", Confidence: "low"}
}
