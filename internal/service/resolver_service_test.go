package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"finadvisor/internal/config"
	"finadvisor/internal/engine"
	"finadvisor/internal/model"
)

// memProgressCache is an in-memory ProgressCache for tests
type memProgressCache struct {
	records map[string]*model.ProgressRecord
}

func newMemProgressCache() *memProgressCache {
	return &memProgressCache{records: make(map[string]*model.ProgressRecord)}
}

func (c *memProgressCache) Save(_ context.Context, advisorID, userID string, path model.DecisionPath) error {
	c.records[advisorID] = &model.ProgressRecord{
		AdvisorID: advisorID,
		UserID:    userID,
		Path:      path,
		Timestamp: time.Now(),
	}
	return nil
}

func (c *memProgressCache) Load(_ context.Context, advisorID string) (*model.ProgressRecord, error) {
	return c.records[advisorID], nil
}

func (c *memProgressCache) Clear(_ context.Context, advisorID string) error {
	delete(c.records, advisorID)
	return nil
}

func advisoryTestConfig(baseURL string) *config.AdvisoryConfig {
	return &config.AdvisoryConfig{
		BaseURL:         baseURL,
		StepTimeoutMS:   200,
		ReportTimeoutMS: 400,
	}
}

func newTestResolver(baseURL string) (*ResolverService, *memProgressCache, *memRecCache) {
	progress := newMemProgressCache()
	recCache := newMemRecCache()
	client := NewAdvisoryClient(advisoryTestConfig(baseURL))
	return NewResolverService(client, NewProgressService(progress), recCache), progress, recCache
}

func TestResolveStepRemoteSuccess(t *testing.T) {
	remote := []model.DecisionOption{
		{ID: "custom_a", Label: "Opcja A", Value: "custom_a", QuestionText: "Pytanie?"},
		{ID: "custom_b", Label: "Opcja B", Value: "custom_b", QuestionText: "Pytanie?"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/decision-tree/options" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(StepResponse{Options: remote})
	}))
	defer srv.Close()

	resolver, _, _ := newTestResolver(srv.URL)
	options, completed := resolver.ResolveStep(context.Background(), "budget_planner", "user_1", 0, nil, model.StepContext{})
	if completed {
		t.Fatal("expected completed=false at step 0")
	}
	if !reflect.DeepEqual(options, remote) {
		t.Errorf("expected remote options to pass through, got %+v", options)
	}
}

func TestResolveStepServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	resolver, _, _ := newTestResolver(srv.URL)
	options, completed := resolver.ResolveStep(context.Background(), "budget_planner", "user_1", 0, nil, model.StepContext{})
	if completed {
		t.Fatal("expected completed=false")
	}
	want := engine.OptionsFor(model.GoalEmergencyFund, 0, nil, model.StepContext{})
	if !reflect.DeepEqual(options, want) {
		t.Errorf("expected local fallback options, got %+v", options)
	}
}

func TestResolveStepTimeoutFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		json.NewEncoder(w).Encode(StepResponse{Options: []model.DecisionOption{{ID: "late", Label: "Late"}}})
	}))
	defer srv.Close()

	resolver, _, _ := newTestResolver(srv.URL)
	start := time.Now()
	options, _ := resolver.ResolveStep(context.Background(), "budget_planner", "user_1", 0, nil, model.StepContext{})
	if elapsed := time.Since(start); elapsed > 450*time.Millisecond {
		t.Errorf("resolution took %v, timeout not enforced", elapsed)
	}
	want := engine.OptionsFor(model.GoalEmergencyFund, 0, nil, model.StepContext{})
	if !reflect.DeepEqual(options, want) {
		t.Errorf("expected local fallback after timeout, got %+v", options)
	}
}

func TestResolveStepMalformedFallsBack(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing options", `{}`},
		{"null options", `{"options":null}`},
		{"empty fields", `{"options":[{"id":"","label":""}]}`},
		{"not json", `<html>gateway error</html>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			resolver, _, _ := newTestResolver(srv.URL)
			options, _ := resolver.ResolveStep(context.Background(), "budget_planner", "user_1", 0, nil, model.StepContext{})
			want := engine.OptionsFor(model.GoalEmergencyFund, 0, nil, model.StepContext{})
			if !reflect.DeepEqual(options, want) {
				t.Errorf("expected local fallback, got %+v", options)
			}
		})
	}
}

func TestResolveStepRemoteDisabled(t *testing.T) {
	resolver, _, _ := newTestResolver("")
	options, completed := resolver.ResolveStep(context.Background(), "savings_strategist", "user_1", 0, nil, model.StepContext{})
	if completed {
		t.Fatal("expected completed=false")
	}
	want := engine.OptionsFor(model.GoalHomePurchase, 0, nil, model.StepContext{})
	if !reflect.DeepEqual(options, want) {
		t.Errorf("expected local options without a remote endpoint, got %+v", options)
	}
}

func TestResolveStepTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote must not be called past the last step")
	}))
	defer srv.Close()

	path := model.DecisionPath{
		{Step: 0, Selection: "medium"},
		{Step: 1, Selection: "six"},
		{Step: 2, Selection: "automatic"},
	}
	resolver, _, _ := newTestResolver(srv.URL)
	options, completed := resolver.ResolveStep(context.Background(), "budget_planner", "user_1", 3, path, model.StepContext{})
	if !completed {
		t.Fatal("expected completed=true past the last step")
	}
	if options != nil {
		t.Errorf("expected nil options, got %+v", options)
	}
}

func TestResolveStepClampsAheadOfPath(t *testing.T) {
	resolver, _, _ := newTestResolver("")
	options, completed := resolver.ResolveStep(context.Background(), "budget_planner", "user_1", 2, nil, model.StepContext{})
	if completed {
		t.Fatal("expected completed=false after clamping")
	}
	want := engine.OptionsFor(model.GoalEmergencyFund, 0, nil, model.StepContext{})
	if !reflect.DeepEqual(options, want) {
		t.Errorf("expected step clamped to 0, got %+v", options)
	}
}

func TestRecordDecision(t *testing.T) {
	resolver, progress, _ := newTestResolver("")
	ctx := context.Background()

	path, err := resolver.RecordDecision(ctx, "budget_planner", "user_1", nil, model.Decision{Step: 0, Selection: "medium", Value: "medium"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 1 || path[0].Selection != "medium" {
		t.Fatalf("unexpected path %+v", path)
	}

	record, _ := progress.Load(ctx, "budget_planner")
	if record == nil || len(record.Path) != 1 {
		t.Error("expected progress to be saved after recording a decision")
	}

	// stale append for an already answered step is dropped
	same, err := resolver.RecordDecision(ctx, "budget_planner", "user_1", path, model.Decision{Step: 0, Selection: "low", Value: "low"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(same, path) {
		t.Errorf("stale decision must not change the path, got %+v", same)
	}

	// a step ahead of the path is clamped to the next slot
	path, err = resolver.RecordDecision(ctx, "budget_planner", "user_1", path, model.Decision{Step: 5, Selection: "six", Value: "six"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 2 || path[1].Step != 1 {
		t.Fatalf("expected decision clamped to step 1, got %+v", path)
	}
}

func TestRecordDecisionRejectsEmptySelection(t *testing.T) {
	resolver, _, _ := newTestResolver("")
	_, err := resolver.RecordDecision(context.Background(), "budget_planner", "user_1", nil, model.Decision{Step: 0})
	if err != ErrInvalidSelection {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestRecordDecisionRejectsCompletePath(t *testing.T) {
	resolver, _, _ := newTestResolver("")
	full := model.DecisionPath{
		{Step: 0, Selection: "medium"},
		{Step: 1, Selection: "six"},
		{Step: 2, Selection: "automatic"},
	}
	_, err := resolver.RecordDecision(context.Background(), "budget_planner", "user_1", full, model.Decision{Step: 3, Selection: "extra"})
	if err != ErrPathComplete {
		t.Errorf("expected ErrPathComplete, got %v", err)
	}
}

func TestReset(t *testing.T) {
	resolver, progress, recCache := newTestResolver("")
	ctx := context.Background()

	path, _ := resolver.RecordDecision(ctx, "budget_planner", "user_1", nil, model.Decision{Step: 0, Selection: "medium"})
	if len(path) != 1 {
		t.Fatal("setup failed")
	}
	recCache.Set(ctx, "budget_planner", &model.Recommendation{ID: "rec_old", UserID: "user_1", AdvisorID: "budget_planner"})

	resolver.Reset(ctx, "budget_planner")
	if record, _ := progress.Load(ctx, "budget_planner"); record != nil {
		t.Errorf("expected progress cleared, got %+v", record)
	}
	if cached, _ := recCache.Get(ctx, "budget_planner"); cached != nil {
		t.Errorf("expected cached recommendation dropped on reset, got %+v", cached)
	}
}

func TestProgressLoadScopedToOwner(t *testing.T) {
	progress := newMemProgressCache()
	svc := NewProgressService(progress)
	ctx := context.Background()

	svc.Save(ctx, "budget_planner", "user_1", model.DecisionPath{{Step: 0, Selection: "medium"}})

	if record := svc.Load(ctx, "budget_planner", "user_1"); record == nil || len(record.Path) != 1 {
		t.Fatalf("owner must see their progress, got %+v", record)
	}
	if record := svc.Load(ctx, "budget_planner", "user_2"); record != nil {
		t.Errorf("another user's session must read as fresh, got %+v", record)
	}
}
