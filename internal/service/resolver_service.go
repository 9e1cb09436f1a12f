package service

import (
	"context"
	"errors"
	"log"

	"finadvisor/internal/cache"
	"finadvisor/internal/engine"
	"finadvisor/internal/model"
)

var (
	// ErrInvalidSelection means a decision carried no usable selection
	ErrInvalidSelection = errors.New("decision selection must not be empty")
	// ErrPathComplete means the path already covers every step of the goal
	ErrPathComplete = errors.New("decision path already complete")
)

// ResolverService resolves step options for an advisory session: remote
// first, local option tables on any failure. The public surface never
// returns a resolution error; degraded resolution is logged and broadcast
// as a diagnostic event instead.
type ResolverService struct {
	client      *AdvisoryClient
	progressSvc *ProgressService
	recCache    cache.RecommendationCache
	broadcaster Broadcaster
}

// NewResolverService creates a new resolver service
func NewResolverService(client *AdvisoryClient, progressSvc *ProgressService, recCache cache.RecommendationCache) *ResolverService {
	return &ResolverService{
		client:      client,
		progressSvc: progressSvc,
		recCache:    recCache,
		broadcaster: noopBroadcaster{},
	}
}

// SetBroadcaster injects the diagnostic event broadcaster
func (s *ResolverService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// ResolveStep returns the options for the requested step, falling back to
// the local option table when the remote call times out, fails or returns a
// malformed payload. The returned completed flag is true when the tree has
// no further steps. A step ahead of the recorded path is clamped back to
// the next unanswered step rather than rejected.
func (s *ResolverService) ResolveStep(ctx context.Context, advisorID, userID string, step int, path model.DecisionPath, stepCtx model.StepContext) ([]model.DecisionOption, bool) {
	goal := engine.GoalFor(advisorID)
	effective := engine.EffectiveStep(step, path)
	if effective != step {
		log.Printf("[Resolver] %s: clamped step %d to %d (path length %d)", advisorID, step, effective, len(path))
	}

	if effective >= engine.StepCount(goal) {
		return nil, true
	}

	options, err := s.client.ResolveStep(ctx, &StepRequest{
		AdvisorID:    advisorID,
		UserID:       userID,
		CurrentStep:  effective,
		DecisionPath: path,
		Context:      stepCtx,
	})
	if err == nil {
		if len(options) == 0 {
			// remote signalled the end of the tree
			return nil, true
		}
		return options, false
	}

	if !errors.Is(err, ErrRemoteDisabled) {
		log.Printf("[Resolver] %s step %d: remote resolution failed, using local table: %v", advisorID, effective, err)
		s.broadcaster.BroadcastToSession(advisorID, "fallback_activated", map[string]interface{}{
			"operation": "resolve_step",
			"step":      effective,
			"reason":    err.Error(),
		})
	}

	return engine.OptionsFor(goal, effective, path, stepCtx), false
}

// RecordDecision appends a decision to the session path and persists the
// progress. Appends are idempotent against late or duplicated callers: a
// decision for an already answered step is dropped, a decision ahead of the
// path is clamped to the next step.
func (s *ResolverService) RecordDecision(ctx context.Context, advisorID, userID string, path model.DecisionPath, d model.Decision) (model.DecisionPath, error) {
	if d.Selection == "" {
		return path, ErrInvalidSelection
	}

	goal := engine.GoalFor(advisorID)
	if len(path) >= engine.StepCount(goal) {
		return path, ErrPathComplete
	}

	if d.Step < len(path) {
		// stale append from a caller that already recorded this step
		log.Printf("[Resolver] %s: dropping stale decision for step %d (path length %d)", advisorID, d.Step, len(path))
		return path, nil
	}
	d.Step = len(path)

	next := path.Append(d)
	s.progressSvc.Save(ctx, advisorID, userID, next)
	s.broadcaster.BroadcastToSession(advisorID, "decision_recorded", map[string]interface{}{
		"step":      d.Step,
		"selection": d.Selection,
	})
	return next, nil
}

// Reset clears all stored state for an advisor session: the in-progress
// path and the cached recommendation
func (s *ResolverService) Reset(ctx context.Context, advisorID string) {
	s.progressSvc.Clear(ctx, advisorID)
	if err := s.recCache.Delete(ctx, advisorID); err != nil {
		log.Printf("[Resolver] failed to drop cached recommendation for %s: %v", advisorID, err)
	}
	s.broadcaster.BroadcastToSession(advisorID, "session_reset", map[string]interface{}{})
}
