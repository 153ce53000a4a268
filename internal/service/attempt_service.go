package service

import (
	"context"
	"time"

	"practicequiz-service/internal/models"
	"practicequiz-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type AttemptService struct {
	Repo       *repository.AttemptRepository
	AnswerRepo *repository.AnswerRepository
}

func NewAttemptService(repo *repository.AttemptRepository, answerRepo *repository.AnswerRepository) *AttemptService {
	return &AttemptService{Repo: repo, AnswerRepo: answerRepo}
}

func (s *AttemptService) GetAttempt(ctx context.Context, id string) (*models.Attempt, error) {
	return s.Repo.FindByID(ctx, id)
}

// RecordAnswer appends an answered question to the attempt. Grading is the
// caller's concern; the engine only stores the outcome.
func (s *AttemptService) RecordAnswer(ctx context.Context, answer *models.AttemptAnswer) error {
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}
	return s.AnswerRepo.Create(ctx, answer)
}

func (s *AttemptService) GetAnswers(ctx context.Context, attemptID string) ([]models.AttemptAnswer, error) {
	return s.AnswerRepo.FindByAttemptID(ctx, attemptID)
}

// SubmitAttempt marks the attempt as submitted. Scoring and review happen
// outside this service.
func (s *AttemptService) SubmitAttempt(ctx context.Context, id string) error {
	return s.Repo.Update(ctx, id, bson.M{
		"status":       models.AttemptStatusSubmitted,
		"submitted_at": time.Now(),
	})
}
