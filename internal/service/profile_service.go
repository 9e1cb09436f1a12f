package service

import (
	"context"
	"errors"

	"finadvisor/internal/model"
	"finadvisor/internal/repository"
)

// ErrProfileNotFound means no profile exists for the user yet
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService manages user financial profiles
type ProfileService struct {
	profileRepo repository.ProfileRepo
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepo) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get returns the user's profile with the savings progress annotated
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	profile.Progress = savingsProgress(profile)
	return profile, nil
}

// Upsert stores the user's profile, replacing any previous version. The
// stored progress is recomputed, not taken from the caller.
func (s *ProfileService) Upsert(ctx context.Context, userID string, profile *model.UserProfile) (*model.UserProfile, error) {
	profile.UserID = userID
	profile.Progress = savingsProgress(profile)
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// savingsProgress is current savings as a fraction of the target, clamped
// to [0,1]. Zero when no target is set.
func savingsProgress(p *model.UserProfile) float64 {
	if p.TargetAmount <= 0 {
		return 0
	}
	progress := p.CurrentSavings / p.TargetAmount
	if progress > 1 {
		return 1
	}
	if progress < 0 {
		return 0
	}
	return progress
}
