package model

// GoalID identifies a financial goal with its own question tree
type GoalID string

const (
	GoalEmergencyFund GoalID = "emergency_fund"
	GoalDebtReduction GoalID = "debt_reduction"
	GoalHomePurchase  GoalID = "home_purchase"
	GoalRetirement    GoalID = "retirement"
	GoalEducation     GoalID = "education"
	GoalVacation      GoalID = "vacation"
	GoalOther         GoalID = "other"
)

// AllGoals lists every goal with a question tree, in catalog order
var AllGoals = []GoalID{
	GoalEmergencyFund,
	GoalDebtReduction,
	GoalHomePurchase,
	GoalRetirement,
	GoalEducation,
	GoalVacation,
	GoalOther,
}

// GoalLabel returns the user-facing Polish label for a goal
func GoalLabel(goal GoalID) string {
	switch goal {
	case GoalEmergencyFund:
		return "Fundusz awaryjny"
	case GoalDebtReduction:
		return "Spłata zadłużenia"
	case GoalHomePurchase:
		return "Zakup nieruchomości"
	case GoalRetirement:
		return "Oszczędzanie na emeryturę"
	case GoalEducation:
		return "Edukacja (studia, kursy)"
	case GoalVacation:
		return "Wakacje i podróże"
	default:
		return "Inny cel"
	}
}

// RiskLevel classifies a recommendation's risk
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)
