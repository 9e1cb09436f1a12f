package engine

import (
	"reflect"
	"strings"
	"testing"

	"finadvisor/internal/model"
)

func TestLocalSynthesizeEmergencyFund(t *testing.T) {
	path := model.DecisionPath{
		{Step: 0, Selection: "medium", Value: "medium"},
		{Step: 1, Selection: "six", Value: "six"},
		{Step: 2, Selection: "automatic", Value: "automatic"},
	}

	rec := LocalSynthesize(model.GoalEmergencyFund, path)

	for _, want := range []string{"6 miesięcy", "roku", "automatycznego odkładania"} {
		if !strings.Contains(rec.Summary, want) {
			t.Errorf("summary %q does not mention %q", rec.Summary, want)
		}
	}
	if len(rec.Steps) == 0 {
		t.Fatal("expected non-empty steps")
	}
	if rec.Source != "local" {
		t.Errorf("source = %q, want local", rec.Source)
	}
}

func TestLocalSynthesizeTotality(t *testing.T) {
	paths := []model.DecisionPath{
		nil,
		{},
		{{Step: 0, Selection: "garbage"}},
		{{Step: 0, Selection: ""}, {Step: 1, Selection: "error"}},
	}
	goals := append(append([]model.GoalID{}, model.AllGoals...), model.GoalID("nonsense"))

	for _, goal := range goals {
		for _, path := range paths {
			rec := LocalSynthesize(goal, path)
			if rec.Summary == "" {
				t.Errorf("goal %q: empty summary for path %v", goal, path)
			}
			if len(rec.Steps) == 0 {
				t.Errorf("goal %q: empty steps for path %v", goal, path)
			}
			if rec.Timeline == "" || rec.ExpectedOutcome == "" {
				t.Errorf("goal %q: missing timeline or outcome", goal)
			}
		}
	}
}

func TestLocalSynthesizeDeterministic(t *testing.T) {
	path := model.DecisionPath{
		{Step: 0, Selection: "credit_card"},
		{Step: 1, Selection: "large"},
		{Step: 2, Selection: "snowball"},
	}

	first := LocalSynthesize(model.GoalDebtReduction, path)
	second := LocalSynthesize(model.GoalDebtReduction, path)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("local synthesis is not deterministic")
	}
}

func TestLocalSynthesizeMatchesByIDNotIndex(t *testing.T) {
	// the same answers in a different order must resolve to the same slots
	ordered := model.DecisionPath{
		{Step: 0, Selection: "short"},
		{Step: 1, Selection: "twelve"},
		{Step: 2, Selection: "percentage"},
	}
	shuffled := model.DecisionPath{
		{Step: 0, Selection: "percentage"},
		{Step: 1, Selection: "short"},
		{Step: 2, Selection: "twelve"},
	}

	a := LocalSynthesize(model.GoalEmergencyFund, ordered)
	b := LocalSynthesize(model.GoalEmergencyFund, shuffled)
	if a.Summary != b.Summary {
		t.Errorf("reordered path changed the summary:\n%q\n%q", a.Summary, b.Summary)
	}
}

func TestLocalSynthesizeSharedIDsResolveInPathOrder(t *testing.T) {
	// "medium" appears in both the timeframe and budget sets for home
	// purchase; path order decides which slot consumes which decision
	path := model.DecisionPath{
		{Step: 0, Selection: "medium"}, // timeframe: 3-5 lat
		{Step: 1, Selection: "ten"},
		{Step: 2, Selection: "medium"}, // budget: 300-600 tys.
	}

	rec := LocalSynthesize(model.GoalHomePurchase, path)
	if !strings.Contains(rec.Summary, "3-5 lat") {
		t.Errorf("summary %q missing the medium timeframe", rec.Summary)
	}
	if !strings.Contains(rec.Summary, "300-600") {
		t.Errorf("summary %q missing the medium budget", rec.Summary)
	}
}

func TestLocalSynthesizeVeryLongTimeframe(t *testing.T) {
	// every timeframe-first tree can carry the low-income very_long option
	// at step 0; the synthesizer must bind it as the timeframe instead of
	// dropping it and mis-binding a later shared id (e.g. a "medium" cost)
	tests := []struct {
		goal    model.GoalID
		path    model.DecisionPath
		want    string
		notWant string
	}{
		{
			goal: model.GoalVacation,
			path: model.DecisionPath{
				{Step: 0, Selection: "very_long"},
				{Step: 1, Selection: "medium"}, // cost: 5-15 tys.
				{Step: 2, Selection: "savings"},
			},
			want:    "powyżej 3 lat",
			notWant: "w ciągu roku",
		},
		{
			goal: model.GoalHomePurchase,
			path: model.DecisionPath{
				{Step: 0, Selection: "very_long"},
				{Step: 1, Selection: "twenty"},
				{Step: 2, Selection: "medium"}, // budget: 300-600 tys.
			},
			want:    "powyżej 3 lat",
			notWant: "średnim (3-5 lat)",
		},
		{
			goal: model.GoalEducation,
			path: model.DecisionPath{
				{Step: 0, Selection: "very_long"},
				{Step: 1, Selection: "university"},
				{Step: 2, Selection: "medium"}, // cost: 10-30 tys.
			},
			want:    "powyżej 3 lat",
			notWant: "średnim okresie",
		},
		{
			goal: model.GoalEmergencyFund,
			path: model.DecisionPath{
				{Step: 0, Selection: "very_long"},
				{Step: 1, Selection: "six"},
				{Step: 2, Selection: "automatic"},
			},
			want: "ponad 3 lat",
		},
	}

	for _, tt := range tests {
		rec := LocalSynthesize(tt.goal, tt.path)
		if !strings.Contains(rec.Summary, tt.want) {
			t.Errorf("goal %q: summary %q missing %q", tt.goal, rec.Summary, tt.want)
		}
		if tt.notWant != "" && strings.Contains(rec.Summary, tt.notWant) {
			t.Errorf("goal %q: summary %q wrongly mentions %q", tt.goal, rec.Summary, tt.notWant)
		}
	}
}

func TestLocalSynthesizeVeryLongConsumesTimeframeSlot(t *testing.T) {
	// the cost answer must stay bound to the cost slot even when very_long
	// occupies the timeframe slot
	path := model.DecisionPath{
		{Step: 0, Selection: "very_long"},
		{Step: 1, Selection: "medium"},
		{Step: 2, Selection: "savings"},
	}
	rec := LocalSynthesize(model.GoalVacation, path)
	if !strings.Contains(rec.Summary, "5-15 tys.") {
		t.Errorf("summary %q missing the medium cost", rec.Summary)
	}
}

func TestLocalSynthesizeDebtStrategies(t *testing.T) {
	tests := []struct {
		strategy string
		want     string
	}{
		{"avalanche", "lawiny"},
		{"snowball", "kuli śnieżnej"},
		{"consolidation", "konsolidację"},
	}

	for _, tt := range tests {
		path := model.DecisionPath{
			{Step: 0, Selection: "multiple"},
			{Step: 1, Selection: "very_large"},
			{Step: 2, Selection: tt.strategy},
		}
		rec := LocalSynthesize(model.GoalDebtReduction, path)
		if !strings.Contains(rec.Summary, tt.want) {
			t.Errorf("strategy %q: summary %q missing %q", tt.strategy, rec.Summary, tt.want)
		}
	}
}

func TestGenericFallbackHasFourSteps(t *testing.T) {
	rec := LocalSynthesize(model.GoalID("nonsense"), nil)
	if len(rec.Steps) != 4 {
		t.Fatalf("generic recommendation has %d steps, want 4", len(rec.Steps))
	}
}
