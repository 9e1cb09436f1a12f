package service

import (
	"context"
	"errors"
	"log"
	"time"

	"finadvisor/internal/cache"
	"finadvisor/internal/engine"
	"finadvisor/internal/model"
	"finadvisor/internal/repository"

	"github.com/google/uuid"
)

// SynthesisService turns a decision path into a full recommendation report.
// Remote synthesis is attempted first; any failure falls back to the local
// templates, so Synthesize always produces a usable recommendation.
type SynthesisService struct {
	client      *AdvisoryClient
	progressSvc *ProgressService
	recRepo     repository.RecommendationRepo
	recCache    cache.RecommendationCache
	broadcaster Broadcaster
}

// NewSynthesisService creates a new synthesis service
func NewSynthesisService(client *AdvisoryClient, progressSvc *ProgressService, recRepo repository.RecommendationRepo, recCache cache.RecommendationCache) *SynthesisService {
	return &SynthesisService{
		client:      client,
		progressSvc: progressSvc,
		recRepo:     recRepo,
		recCache:    recCache,
		broadcaster: noopBroadcaster{},
	}
}

// SetBroadcaster injects the diagnostic event broadcaster
func (s *SynthesisService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Synthesize builds the recommendation report for an advisor session. An
// incomplete path does not block synthesis; the result is just marked
// incomplete. Scoring fields are always computed locally so confidence and
// risk do not depend on which source produced the report text.
func (s *SynthesisService) Synthesize(ctx context.Context, advisorID, userID string, path model.DecisionPath, profile *model.UserProfile) *model.Recommendation {
	goal := engine.GoalFor(advisorID)
	complete := engine.IsComplete(goal, path)
	if !complete {
		log.Printf("[Synthesis] %s: synthesizing from incomplete path (%d of %d steps)", advisorID, len(path), engine.StepCount(goal))
	}

	rec := s.buildReport(ctx, advisorID, userID, goal, path, profile)

	score := engine.ComputeScore(goal, path, profile)
	rec.ConfidenceScore = score.Confidence
	rec.RiskLevel = score.Risk
	rec.TimeEstimate = score.TimeEstimate

	rec.ID = "rec_" + uuid.New().String()[:8]
	rec.UserID = userID
	rec.AdvisorID = advisorID
	rec.Goal = goal
	rec.Complete = complete
	rec.GeneratedAt = time.Now()

	s.persist(ctx, advisorID, &rec)
	s.progressSvc.Clear(ctx, advisorID)
	s.broadcaster.BroadcastToSession(advisorID, "report_ready", map[string]interface{}{
		"recommendationId": rec.ID,
		"source":           rec.Source,
		"complete":         rec.Complete,
	})
	return &rec
}

// buildReport tries the remote synthesis endpoint and falls back to the
// local templates. Only the sanitized profile crosses the wire.
func (s *SynthesisService) buildReport(ctx context.Context, advisorID, userID string, goal model.GoalID, path model.DecisionPath, profile *model.UserProfile) model.Recommendation {
	resp, err := s.client.GenerateReport(ctx, &ReportRequest{
		AdvisorID:    advisorID,
		UserID:       userID,
		DecisionPath: path,
		UserProfile:  profile.Sanitize(),
	})
	if err == nil {
		return model.Recommendation{
			Summary:         resp.Summary,
			Steps:           resp.Steps,
			Timeline:        resp.Timeline,
			ExpectedOutcome: resp.ExpectedOutcome,
			NextActions:     resp.NextActions,
			Source:          "remote",
		}
	}

	if !errors.Is(err, ErrRemoteDisabled) {
		log.Printf("[Synthesis] %s: remote report failed, using local synthesis: %v", advisorID, err)
		s.broadcaster.BroadcastToSession(advisorID, "fallback_activated", map[string]interface{}{
			"operation": "synthesize_report",
			"reason":    err.Error(),
		})
	}
	return engine.LocalSynthesize(goal, path)
}

// persist stores the recommendation in Mongo and the per-advisor cache.
// Both writes are best-effort: the caller already holds the report.
func (s *SynthesisService) persist(ctx context.Context, advisorID string, rec *model.Recommendation) {
	if err := s.recRepo.Save(ctx, rec); err != nil {
		log.Printf("[Synthesis] failed to save recommendation %s: %v", rec.ID, err)
	}
	if err := s.recCache.Set(ctx, advisorID, rec); err != nil {
		log.Printf("[Synthesis] failed to cache recommendation %s: %v", rec.ID, err)
	}
}

// Latest returns the most recent recommendation for an advisor session,
// preferring the cache and falling back to Mongo. Returns nil when the user
// has no recommendation for that advisor yet.
func (s *SynthesisService) Latest(ctx context.Context, userID, advisorID string) (*model.Recommendation, error) {
	cached, err := s.recCache.Get(ctx, advisorID)
	if err != nil {
		log.Printf("[Synthesis] cache read failed for %s: %v", advisorID, err)
	}
	if cached != nil && cached.UserID == userID {
		return cached, nil
	}
	return s.recRepo.GetLatest(ctx, userID, advisorID)
}

// History lists the user's saved recommendations, newest first
func (s *SynthesisService) History(ctx context.Context, userID string, limit int64) ([]*model.Recommendation, error) {
	return s.recRepo.ListByUser(ctx, userID, limit)
}
