package model

import "time"

// UserProfile is the externally owned read model for one user. The engine
// treats it as read-only input; only callers write it back (e.g. progress).
type UserProfile struct {
	UserID         string     `json:"userId" bson:"_id,omitempty"`
	Name           string     `json:"name" bson:"name"`
	Email          string     `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string     `json:"phone,omitempty" bson:"phone,omitempty"`
	GovernmentID   string     `json:"governmentId,omitempty" bson:"governmentId,omitempty"` // PESEL
	BirthDate      *time.Time `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	FinancialGoal  string     `json:"financialGoal" bson:"financialGoal"`
	Timeframe      string     `json:"timeframe" bson:"timeframe"`
	CurrentSavings float64    `json:"currentSavings" bson:"currentSavings"`
	MonthlyIncome  float64    `json:"monthlyIncome" bson:"monthlyIncome"`
	TargetAmount   float64    `json:"targetAmount" bson:"targetAmount"`
	RiskTolerance  string     `json:"riskTolerance" bson:"riskTolerance"` // low / medium / high
	Progress       float64    `json:"progress" bson:"progress"`           // [0,1], annotated by caller
	Achievements   []string   `json:"achievements,omitempty" bson:"achievements,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// SanitizedProfile is the subset of UserProfile sent to the remote synthesis
// endpoint. Direct identifiers (name, contact info, government id, birth
// date) are never transmitted.
type SanitizedProfile struct {
	FinancialGoal  string  `json:"financialGoal"`
	Timeframe      string  `json:"timeframe"`
	CurrentSavings float64 `json:"currentSavings"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	TargetAmount   float64 `json:"targetAmount"`
	RiskTolerance  string  `json:"riskTolerance"`
	Progress       float64 `json:"progress"`
}

// Sanitize strips direct identifiers for transmission
func (p *UserProfile) Sanitize() SanitizedProfile {
	if p == nil {
		return SanitizedProfile{}
	}
	return SanitizedProfile{
		FinancialGoal:  p.FinancialGoal,
		Timeframe:      p.Timeframe,
		CurrentSavings: p.CurrentSavings,
		MonthlyIncome:  p.MonthlyIncome,
		TargetAmount:   p.TargetAmount,
		RiskTolerance:  p.RiskTolerance,
		Progress:       p.Progress,
	}
}

// IncomeBracket classifies monthly income for context-sensitive options
func (p *UserProfile) IncomeBracket() string {
	if p == nil || p.MonthlyIncome <= 0 {
		return ""
	}
	switch {
	case p.MonthlyIncome < 4000:
		return "low"
	case p.MonthlyIncome < 12000:
		return "medium"
	default:
		return "high"
	}
}
