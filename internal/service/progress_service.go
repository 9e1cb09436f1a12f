package service

import (
	"context"
	"log"

	"finadvisor/internal/cache"
	"finadvisor/internal/model"
)

// ProgressService wraps the progress cache with the engine's best-effort
// semantics: storage failures never block the user flow, they only make the
// session look like a fresh one.
type ProgressService struct {
	progress cache.ProgressCache
}

// NewProgressService creates a new progress service
func NewProgressService(progress cache.ProgressCache) *ProgressService {
	return &ProgressService{progress: progress}
}

// Save persists the current path for an advisor session. Fire-and-forget:
// failures are logged and swallowed.
func (s *ProgressService) Save(ctx context.Context, advisorID, userID string, path model.DecisionPath) {
	if err := s.progress.Save(ctx, advisorID, userID, path); err != nil {
		log.Printf("[Progress] save failed for %s: %v", advisorID, err)
	}
}

// Load returns the stored record, or nil when there is none, the store is
// unreachable, the record cannot be decoded, or the record belongs to a
// different user — another user's session reads as a fresh one.
func (s *ProgressService) Load(ctx context.Context, advisorID, userID string) *model.ProgressRecord {
	record, err := s.progress.Load(ctx, advisorID)
	if err != nil {
		log.Printf("[Progress] load failed for %s: %v", advisorID, err)
		return nil
	}
	if record != nil && record.UserID != "" && record.UserID != userID {
		return nil
	}
	return record
}

// Clear removes the stored path for an advisor. Best-effort.
func (s *ProgressService) Clear(ctx context.Context, advisorID string) {
	if err := s.progress.Clear(ctx, advisorID); err != nil {
		log.Printf("[Progress] clear failed for %s: %v", advisorID, err)
	}
}
