package engine

import (
	"testing"

	"finadvisor/internal/model"
)

func TestIsComplete(t *testing.T) {
	full := model.DecisionPath{
		{Step: 0, Selection: "medium", Value: "medium"},
		{Step: 1, Selection: "six", Value: "six"},
		{Step: 2, Selection: "automatic", Value: "automatic"},
	}

	tests := []struct {
		name string
		goal model.GoalID
		path model.DecisionPath
		want bool
	}{
		{"complete path", model.GoalEmergencyFund, full, true},
		{"empty path", model.GoalEmergencyFund, nil, false},
		{"too short", model.GoalEmergencyFund, full[:2], false},
		{"too long", model.GoalEmergencyFund, full.Append(model.Decision{Step: 3, Selection: "x"}), false},
		{
			"empty selection",
			model.GoalEmergencyFund,
			model.DecisionPath{{Step: 0, Selection: "medium"}, {Step: 1, Selection: ""}, {Step: 2, Selection: "automatic"}},
			false,
		},
		{
			"error selection",
			model.GoalEmergencyFund,
			model.DecisionPath{{Step: 0, Selection: "medium"}, {Step: 1, Selection: "error"}, {Step: 2, Selection: "automatic"}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComplete(tt.goal, tt.path); got != tt.want {
				t.Errorf("IsComplete(%q, %d decisions) = %v, want %v", tt.goal, len(tt.path), got, tt.want)
			}
		})
	}
}

func TestEffectiveStep(t *testing.T) {
	path := model.DecisionPath{{Step: 0, Selection: "medium"}}

	tests := []struct {
		step int
		path model.DecisionPath
		want int
	}{
		{0, nil, 0},
		{2, nil, 0},  // desynchronized caller clamps back to the path length
		{1, path, 1}, // in sync
		{5, path, 1},
		{-1, path, 1},
	}

	for _, tt := range tests {
		if got := EffectiveStep(tt.step, tt.path); got != tt.want {
			t.Errorf("EffectiveStep(%d, len %d) = %d, want %d", tt.step, len(tt.path), got, tt.want)
		}
	}
}

func TestPathAppendDoesNotMutate(t *testing.T) {
	base := model.DecisionPath{{Step: 0, Selection: "medium", Value: "medium"}}
	next := base.Append(model.Decision{Step: 1, Selection: "six", Value: "six"})

	if len(base) != 1 {
		t.Fatalf("append mutated the original path, len = %d", len(base))
	}
	if len(next) != 2 {
		t.Fatalf("appended path len = %d, want 2", len(next))
	}
	if base[0].Selection != "medium" || next[0].Selection != "medium" {
		t.Error("earlier decision changed by append")
	}
}
