package models

import "time"

const (
	QuizTypePractice = "practice"
	QuizTypeFinal    = "final"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
)

// Attempt is one instance of a learner taking a quiz. The selection engine
// creates it; answers are appended and the attempt submitted through separate
// endpoints.
type Attempt struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Token          string    `bson:"token" json:"token"`
	UserID         string    `bson:"user_id" json:"user_id"`
	PatternID      string    `bson:"pattern_id" json:"pattern_id"`
	QuizType       string    `bson:"quiz_type" json:"quiz_type"`
	QuestionIDs    []string  `bson:"question_ids" json:"question_ids"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	SubmittedAt    time.Time `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
}

// AttemptAnswer records a single answered question within an attempt.
type AttemptAnswer struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	AttemptID        string    `bson:"attempt_id" json:"attempt_id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	UserAnswer       string    `bson:"user_answer" json:"user_answer"`
	IsCorrect        bool      `bson:"is_correct" json:"is_correct"`
	PointsEarned     float64   `bson:"points_earned" json:"points_earned"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}
