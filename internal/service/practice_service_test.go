package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"practicequiz-service/internal/models"
	"practicequiz-service/internal/selection"
)

type fakeProfileStore struct {
	profile *models.LearnerProfile
	err     error
}

func (f *fakeProfileStore) FindByUserAndPattern(ctx context.Context, userID, patternID string) (*models.LearnerProfile, error) {
	return f.profile, f.err
}

type fakeQuestionStore struct {
	questions []models.Question
	err       error
}

func (f *fakeQuestionStore) FindByPatternID(ctx context.Context, patternID string) ([]models.Question, error) {
	return f.questions, f.err
}

type fakeAttemptStore struct {
	seen      []string
	seenCalls int
	created   []*models.Attempt
	createErr error
}

func (f *fakeAttemptStore) Create(ctx context.Context, attempt *models.Attempt) error {
	if f.createErr != nil {
		return f.createErr
	}
	attempt.ID = fmt.Sprintf("attempt-%d", len(f.created)+1)
	f.created = append(f.created, attempt)
	return nil
}

func (f *fakeAttemptStore) FindSeenQuestionIDs(ctx context.Context, userID, quizType string) ([]string, error) {
	f.seenCalls++
	return f.seen, nil
}

func testCatalog(perSection int) []models.Question {
	difficulties := models.Difficulties()
	var questions []models.Question
	for _, section := range models.Sections() {
		for i := 0; i < perSection; i++ {
			questions = append(questions, models.Question{
				ID:              fmt.Sprintf("%s-%d", section, i),
				PatternID:       "pattern-1",
				Section:         section,
				DifficultyLevel: difficulties[i%len(difficulties)],
				BloomLevel:      "apply",
			})
		}
	}
	return questions
}

func newTestService(profiles *fakeProfileStore, questions *fakeQuestionStore, attempts *fakeAttemptStore) *PracticeService {
	return NewPracticeService(profiles, questions, attempts, nil, selection.NewWeightedSelectorWithSeed(42))
}

func TestGeneratePracticeQuiz(t *testing.T) {
	profiles := &fakeProfileStore{profile: &models.LearnerProfile{UserID: "user-1", PatternID: "pattern-1"}}
	questions := &fakeQuestionStore{questions: testCatalog(10)}
	attempts := &fakeAttemptStore{}
	svc := newTestService(profiles, questions, attempts)

	quiz, err := svc.GeneratePracticeQuiz(context.Background(), "user-1", "pattern-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if quiz.AttemptID != "attempt-1" {
		t.Errorf("Expected attempt ID from store, got %q", quiz.AttemptID)
	}
	if quiz.Token == "" {
		t.Error("Expected a non-empty attempt token")
	}
	if len(quiz.Questions) != selection.TargetQuestionCount {
		t.Errorf("Expected %d questions, got %d", selection.TargetQuestionCount, len(quiz.Questions))
	}

	if len(attempts.created) != 1 {
		t.Fatalf("Expected exactly one attempt created, got %d", len(attempts.created))
	}
	attempt := attempts.created[0]
	if attempt.QuizType != models.QuizTypePractice {
		t.Errorf("Expected quiz type %q, got %q", models.QuizTypePractice, attempt.QuizType)
	}
	if attempt.TotalQuestions != len(quiz.Questions) {
		t.Errorf("Attempt total %d does not match result size %d", attempt.TotalQuestions, len(quiz.Questions))
	}
	if len(attempt.QuestionIDs) != len(quiz.Questions) {
		t.Errorf("Attempt recorded %d question IDs for %d questions", len(attempt.QuestionIDs), len(quiz.Questions))
	}
	if attempt.Status != models.AttemptStatusInProgress {
		t.Errorf("Expected status %q, got %q", models.AttemptStatusInProgress, attempt.Status)
	}
}

func TestGeneratePracticeQuizProfileNotFound(t *testing.T) {
	profiles := &fakeProfileStore{profile: nil}
	questions := &fakeQuestionStore{questions: testCatalog(10)}
	attempts := &fakeAttemptStore{}
	svc := newTestService(profiles, questions, attempts)

	_, err := svc.GeneratePracticeQuiz(context.Background(), "user-1", "pattern-1")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("Expected ErrProfileNotFound, got %v", err)
	}
	if len(attempts.created) != 0 {
		t.Errorf("Expected no attempt on failure, got %d", len(attempts.created))
	}
}

func TestGeneratePracticeQuizEmptyCatalog(t *testing.T) {
	profiles := &fakeProfileStore{profile: &models.LearnerProfile{UserID: "user-1", PatternID: "pattern-1"}}
	questions := &fakeQuestionStore{}
	attempts := &fakeAttemptStore{}
	svc := newTestService(profiles, questions, attempts)

	_, err := svc.GeneratePracticeQuiz(context.Background(), "user-1", "pattern-1")
	if !errors.Is(err, ErrNoQuestionsForPattern) {
		t.Fatalf("Expected ErrNoQuestionsForPattern, got %v", err)
	}
	if len(attempts.created) != 0 {
		t.Errorf("Expected no attempt on failure, got %d", len(attempts.created))
	}
}

func TestGeneratePracticeQuizStoreFaultsPropagate(t *testing.T) {
	storeErr := errors.New("connection reset")

	t.Run("profile store fault", func(t *testing.T) {
		svc := newTestService(
			&fakeProfileStore{err: storeErr},
			&fakeQuestionStore{questions: testCatalog(10)},
			&fakeAttemptStore{},
		)
		_, err := svc.GeneratePracticeQuiz(context.Background(), "user-1", "pattern-1")
		if !errors.Is(err, storeErr) {
			t.Fatalf("Expected wrapped store error, got %v", err)
		}
		if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrNoQuestionsForPattern) {
			t.Error("Store fault must not masquerade as a domain error")
		}
	})

	t.Run("attempt store fault", func(t *testing.T) {
		svc := newTestService(
			&fakeProfileStore{profile: &models.LearnerProfile{}},
			&fakeQuestionStore{questions: testCatalog(10)},
			&fakeAttemptStore{createErr: storeErr},
		)
		_, err := svc.GeneratePracticeQuiz(context.Background(), "user-1", "pattern-1")
		if !errors.Is(err, storeErr) {
			t.Fatalf("Expected wrapped store error, got %v", err)
		}
	})
}

func TestGeneratePracticeQuizSmallCatalog(t *testing.T) {
	// 2 per section = 8 total; the quiz shrinks to what exists.
	profiles := &fakeProfileStore{profile: &models.LearnerProfile{UserID: "user-1", PatternID: "pattern-1"}}
	questions := &fakeQuestionStore{questions: testCatalog(2)}
	attempts := &fakeAttemptStore{}
	svc := newTestService(profiles, questions, attempts)

	quiz, err := svc.GeneratePracticeQuiz(context.Background(), "user-1", "pattern-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(quiz.Questions) != 8 {
		t.Errorf("Expected all 8 available questions, got %d", len(quiz.Questions))
	}
	if attempts.created[0].TotalQuestions != 8 {
		t.Errorf("Expected attempt total 8, got %d", attempts.created[0].TotalQuestions)
	}
}

func TestGeneratePracticeQuizLoadsSeenSet(t *testing.T) {
	profiles := &fakeProfileStore{profile: &models.LearnerProfile{}}
	questions := &fakeQuestionStore{questions: testCatalog(10)}
	attempts := &fakeAttemptStore{seen: []string{"theory-0", "code-3"}}
	svc := newTestService(profiles, questions, attempts)

	quiz, err := svc.GeneratePracticeQuiz(context.Background(), "user-1", "pattern-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if attempts.seenCalls != 1 {
		t.Errorf("Expected one seen-set lookup, got %d", attempts.seenCalls)
	}

	for _, sq := range quiz.Questions {
		switch sq.Question.ID {
		case "theory-0", "code-3":
			if !sq.Seen {
				t.Errorf("Question %s should carry the seen flag", sq.Question.ID)
			}
		default:
			if sq.Seen {
				t.Errorf("Question %s should not carry the seen flag", sq.Question.ID)
			}
		}
	}
}
