package service

import (
	"context"
	"fmt"
	"time"

	"practicequiz-service/internal/cache"
	"practicequiz-service/internal/models"
	"practicequiz-service/internal/selection"

	"github.com/google/uuid"
)

// ProfileStore loads learner profiles.
type ProfileStore interface {
	FindByUserAndPattern(ctx context.Context, userID, patternID string) (*models.LearnerProfile, error)
}

// QuestionStore loads the candidate question catalog.
type QuestionStore interface {
	FindByPatternID(ctx context.Context, patternID string) ([]models.Question, error)
}

// AttemptStore persists attempts and answers prior exposure queries.
type AttemptStore interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	FindSeenQuestionIDs(ctx context.Context, userID, quizType string) ([]string, error)
}

// PracticeQuiz is what the generation endpoint returns: the new attempt plus
// the selected questions with their computed scores (exposed for debugging and
// analytics, not required by clients).
type PracticeQuiz struct {
	AttemptID string                     `json:"attempt_id"`
	Token     string                     `json:"token"`
	Questions []selection.ScoredQuestion `json:"questions"`
}

// PracticeService runs the adaptive practice-quiz pipeline: profile read,
// candidate scoring, constrained selection, attempt creation. Each invocation
// is an independent in-memory computation; the only write happens after a
// valid selection exists.
type PracticeService struct {
	profiles  ProfileStore
	questions QuestionStore
	attempts  AttemptStore
	seenCache *cache.SeenCache
	selector  *selection.WeightedSelector
}

func NewPracticeService(
	profiles ProfileStore,
	questions QuestionStore,
	attempts AttemptStore,
	seenCache *cache.SeenCache,
	selector *selection.WeightedSelector,
) *PracticeService {
	if selector == nil {
		selector = selection.NewWeightedSelector()
	}
	return &PracticeService{
		profiles:  profiles,
		questions: questions,
		attempts:  attempts,
		seenCache: seenCache,
		selector:  selector,
	}
}

// GeneratePracticeQuiz builds a personalized question set for the user and
// pattern and records a new attempt. Returns ErrProfileNotFound or
// ErrNoQuestionsForPattern when the preconditions fail; neither creates an
// attempt.
func (s *PracticeService) GeneratePracticeQuiz(ctx context.Context, userID, patternID string) (*PracticeQuiz, error) {
	profile, err := s.profiles.FindByUserAndPattern(ctx, userID, patternID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	questions, err := s.questions.FindByPatternID(ctx, patternID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsForPattern
	}

	seenIDs, err := s.loadSeenQuestionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seen questions: %w", err)
	}

	plan := s.selector.BuildPlan(questions, profile, seenIDs)

	attempt := &models.Attempt{
		Token:          uuid.NewString(),
		UserID:         userID,
		PatternID:      patternID,
		QuizType:       models.QuizTypePractice,
		QuestionIDs:    plan.QuestionIDs(),
		TotalQuestions: len(plan.Questions),
		Status:         models.AttemptStatusInProgress,
		CreatedAt:      time.Now(),
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	// The new attempt extends the seen set; drop the stale cache entry.
	_ = s.seenCache.Invalidate(ctx, userID, models.QuizTypePractice)

	return &PracticeQuiz{
		AttemptID: attempt.ID,
		Token:     attempt.Token,
		Questions: plan.Questions,
	}, nil
}

func (s *PracticeService) loadSeenQuestionIDs(ctx context.Context, userID string) ([]string, error) {
	if ids, ok := s.seenCache.Get(ctx, userID, models.QuizTypePractice); ok {
		return ids, nil
	}
	ids, err := s.attempts.FindSeenQuestionIDs(ctx, userID, models.QuizTypePractice)
	if err != nil {
		return nil, err
	}
	_ = s.seenCache.Set(ctx, userID, models.QuizTypePractice, ids)
	return ids, nil
}
