package engine

import (
	"testing"

	"finadvisor/internal/model"
)

func TestGoalFor(t *testing.T) {
	tests := []struct {
		advisorID string
		want      model.GoalID
	}{
		{"budget_planner", model.GoalEmergencyFund},
		{"execution_expert", model.GoalDebtReduction},
		{"savings_strategist", model.GoalHomePurchase},
		{"optimization_advisor", model.GoalRetirement},
		{"education_planner", model.GoalEducation},
		{"travel_planner", model.GoalVacation},
		{"goal_coach", model.GoalOther},
		// unknown advisors fall back to the default goal, never fail
		{"unknown_xyz", model.GoalEmergencyFund},
		{"", model.GoalEmergencyFund},
	}

	for _, tt := range tests {
		if got := GoalFor(tt.advisorID); got != tt.want {
			t.Errorf("GoalFor(%q) = %q, want %q", tt.advisorID, got, tt.want)
		}
	}
}

func TestAdvisorsCatalog(t *testing.T) {
	advisors := Advisors()
	if len(advisors) != len(model.AllGoals) {
		t.Fatalf("expected %d advisors, got %d", len(model.AllGoals), len(advisors))
	}

	seen := map[model.GoalID]bool{}
	for _, a := range advisors {
		if a.ID == "" || a.Label == "" {
			t.Errorf("advisor %+v missing id or label", a)
		}
		if seen[a.Goal] {
			t.Errorf("goal %q mapped by more than one advisor", a.Goal)
		}
		seen[a.Goal] = true
	}
}

func TestAdvisorsOrderStable(t *testing.T) {
	first := Advisors()
	second := Advisors()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("catalog order not stable at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
