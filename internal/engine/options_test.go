package engine

import (
	"reflect"
	"testing"

	"finadvisor/internal/model"
)

func TestOptionsForEveryGoalStep(t *testing.T) {
	for _, goal := range model.AllGoals {
		count := StepCount(goal)
		if count < 3 {
			t.Errorf("goal %q has %d steps, want at least 3", goal, count)
		}
		for step := 0; step < count; step++ {
			opts := OptionsFor(goal, step, nil, model.StepContext{})
			if len(opts) == 0 {
				t.Errorf("goal %q step %d returned no options", goal, step)
				continue
			}
			for _, o := range opts {
				if o.ID == "" || o.Label == "" || o.QuestionText == "" {
					t.Errorf("goal %q step %d has malformed option %+v", goal, step, o)
				}
			}
		}
	}
}

func TestOptionsForTerminalStep(t *testing.T) {
	for _, goal := range model.AllGoals {
		if opts := OptionsFor(goal, StepCount(goal), nil, model.StepContext{}); opts != nil {
			t.Errorf("goal %q: expected nil options past the last step, got %d", goal, len(opts))
		}
	}
}

func TestOptionsForDeterministic(t *testing.T) {
	ctx := model.StepContext{IncomeBracket: "low"}
	first := OptionsFor(model.GoalEmergencyFund, 0, nil, ctx)
	second := OptionsFor(model.GoalEmergencyFund, 0, nil, ctx)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("OptionsFor is not deterministic for identical input")
	}
}

func TestOptionsForLowIncomeInsertsVeryLong(t *testing.T) {
	base := OptionsFor(model.GoalEmergencyFund, 0, nil, model.StepContext{})
	low := OptionsFor(model.GoalEmergencyFund, 0, nil, model.StepContext{IncomeBracket: "low"})

	if len(low) != len(base)+1 {
		t.Fatalf("low income bracket: got %d options, want %d", len(low), len(base)+1)
	}
	if got := low[len(low)-1].ID; got != "very_long" {
		t.Errorf("appended option id = %q, want very_long", got)
	}

	// insertion applies at step 0 only
	step1 := OptionsFor(model.GoalEmergencyFund, 1, nil, model.StepContext{IncomeBracket: "low"})
	for _, o := range step1 {
		if o.ID == "very_long" {
			t.Error("very_long leaked into step 1")
		}
	}

	// non-timeframe first steps are unaffected
	debt := OptionsFor(model.GoalDebtReduction, 0, nil, model.StepContext{IncomeBracket: "low"})
	for _, o := range debt {
		if o.ID == "very_long" {
			t.Error("very_long inserted into a non-timeframe step")
		}
	}
}

func TestOptionsForUnknownGoalFallsBack(t *testing.T) {
	opts := OptionsFor(model.GoalID("nonsense"), 0, nil, model.StepContext{})
	want := OptionsFor(model.GoalEmergencyFund, 0, nil, model.StepContext{})
	if !reflect.DeepEqual(opts, want) {
		t.Fatal("unknown goal should resolve to the default tree")
	}
}
