package models

import "time"

// Pattern is the subject being studied (e.g. a software design pattern). It
// scopes which questions are eligible for a practice quiz.
type Pattern struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	TopicTags   []string  `bson:"topic_tags" json:"topic_tags"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
