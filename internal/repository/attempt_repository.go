package repository

import (
	"context"

	"practicequiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*models.Attempt, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var attempt models.Attempt
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&attempt)
	if err != nil {
		return nil, err
	}
	attempt.ID = id
	return &attempt, nil
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	doc := bson.M{
		"token":           attempt.Token,
		"user_id":         attempt.UserID,
		"pattern_id":      attempt.PatternID,
		"quiz_type":       attempt.QuizType,
		"question_ids":    attempt.QuestionIDs,
		"total_questions": attempt.TotalQuestions,
		"status":          attempt.Status,
		"created_at":      attempt.CreatedAt,
	}
	res, err := r.Col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		attempt.ID = oid.Hex()
	}
	return nil
}

func (r *AttemptRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

// FindSeenQuestionIDs collects the question IDs served to the user across all
// prior attempts of the given quiz type.
func (r *AttemptRepository) FindSeenQuestionIDs(ctx context.Context, userID, quizType string) ([]string, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID, "quiz_type": quizType})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var seen []string
	dedupe := make(map[string]bool)
	for cur.Next(ctx) {
		var attempt models.Attempt
		if err := cur.Decode(&attempt); err != nil {
			return nil, err
		}
		for _, id := range attempt.QuestionIDs {
			if !dedupe[id] {
				dedupe[id] = true
				seen = append(seen, id)
			}
		}
	}
	return seen, nil
}
