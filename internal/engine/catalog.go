// Package engine holds the goal catalog, per-goal option tables, path
// validation, scoring and local recommendation synthesis. Everything here is
// pure and deterministic; remote calls and persistence live in the service
// layer.
package engine

import "finadvisor/internal/model"

// Advisor is a user-facing persona bound 1:1 to a financial goal
type Advisor struct {
	ID    string       `json:"id"`
	Label string       `json:"label"`
	Goal  model.GoalID `json:"goal"`
}

// advisorGoals maps advisor ids to their goals. Unknown advisors fall back
// to the emergency fund tree so GoalFor stays total.
var advisorGoals = map[string]model.GoalID{
	"budget_planner":       model.GoalEmergencyFund,
	"execution_expert":     model.GoalDebtReduction,
	"savings_strategist":   model.GoalHomePurchase,
	"optimization_advisor": model.GoalRetirement,
	"education_planner":    model.GoalEducation,
	"travel_planner":       model.GoalVacation,
	"goal_coach":           model.GoalOther,
}

var advisorLabels = map[string]string{
	"budget_planner":       "Planer budżetu",
	"execution_expert":     "Ekspert spłaty zadłużenia",
	"savings_strategist":   "Strateg oszczędzania",
	"optimization_advisor": "Doradca emerytalny",
	"education_planner":    "Planer edukacji",
	"travel_planner":       "Planer podróży",
	"goal_coach":           "Opiekun celu",
}

// advisorOrder fixes the catalog listing order
var advisorOrder = []string{
	"budget_planner",
	"execution_expert",
	"savings_strategist",
	"optimization_advisor",
	"education_planner",
	"travel_planner",
	"goal_coach",
}

// GoalFor maps an advisor id to its goal. Total: unknown ids map to the
// default goal and never fail.
func GoalFor(advisorID string) model.GoalID {
	if goal, ok := advisorGoals[advisorID]; ok {
		return goal
	}
	return model.GoalEmergencyFund
}

// Advisors returns the full advisor catalog in stable order
func Advisors() []Advisor {
	out := make([]Advisor, 0, len(advisorOrder))
	for _, id := range advisorOrder {
		out = append(out, Advisor{
			ID:    id,
			Label: advisorLabels[id],
			Goal:  advisorGoals[id],
		})
	}
	return out
}
