package service

import (
	"context"

	"practicequiz-service/internal/models"
	"practicequiz-service/internal/repository"
)

type PatternService struct {
	Repo *repository.PatternRepository
}

func NewPatternService(repo *repository.PatternRepository) *PatternService {
	return &PatternService{Repo: repo}
}

func (s *PatternService) GetAllPatterns(ctx context.Context) ([]models.Pattern, error) {
	return s.Repo.FindActivePatterns(ctx)
}

func (s *PatternService) GetPatternByID(ctx context.Context, id string) (*models.Pattern, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *PatternService) GetPatternsByCategory(ctx context.Context, category string) ([]models.Pattern, error) {
	return s.Repo.FindByCategory(ctx, category)
}
