package repository

import (
	"context"

	"practicequiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatternRepository struct {
	Col *mongo.Collection
}

func NewPatternRepository(db *mongo.Database) *PatternRepository {
	return &PatternRepository{Col: db.Collection("patterns")}
}

func (r *PatternRepository) FindByID(ctx context.Context, id string) (*models.Pattern, error) {
	var pattern models.Pattern
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&pattern)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &pattern, nil
}

func (r *PatternRepository) FindActivePatterns(ctx context.Context) ([]models.Pattern, error) {
	cur, err := r.Col.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var patterns []models.Pattern
	for cur.Next(ctx) {
		var pattern models.Pattern
		if err := cur.Decode(&pattern); err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

func (r *PatternRepository) FindByCategory(ctx context.Context, category string) ([]models.Pattern, error) {
	cur, err := r.Col.Find(ctx, bson.M{"category": category, "is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var patterns []models.Pattern
	for cur.Next(ctx) {
		var pattern models.Pattern
		if err := cur.Decode(&pattern); err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}
