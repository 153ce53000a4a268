package repository

import (
	"context"

	"practicequiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("attempt_answers")}
}

func (r *AnswerRepository) Create(ctx context.Context, answer *models.AttemptAnswer) error {
	res, err := r.Col.InsertOne(ctx, answer)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		answer.ID = oid.Hex()
	}
	return nil
}

func (r *AnswerRepository) FindByAttemptID(ctx context.Context, attemptID string) ([]models.AttemptAnswer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"attempt_id": attemptID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.AttemptAnswer
	for cur.Next(ctx) {
		var a models.AttemptAnswer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}
