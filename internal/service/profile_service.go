package service

import (
	"context"

	"practicequiz-service/internal/models"
	"practicequiz-service/internal/repository"
)

type ProfileService struct {
	Repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID, patternID string) (*models.LearnerProfile, error) {
	profile, err := s.Repo.FindByUserAndPattern(ctx, userID, patternID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileService) UpsertProfile(ctx context.Context, profile *models.LearnerProfile) error {
	return s.Repo.Upsert(ctx, profile)
}
