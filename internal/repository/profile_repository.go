package repository

import (
	"context"
	"time"

	"practicequiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	Col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{Col: db.Collection("learner_profiles")}
}

// FindByUserAndPattern returns the learner profile for a (user, pattern)
// pair, or nil when none exists.
func (r *ProfileRepository) FindByUserAndPattern(ctx context.Context, userID, patternID string) (*models.LearnerProfile, error) {
	var profile models.LearnerProfile
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "pattern_id": patternID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the profile's signal maps, creating the row when missing.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.LearnerProfile) error {
	profile.UpdatedAt = time.Now()
	filter := bson.M{"user_id": profile.UserID, "pattern_id": profile.PatternID}
	update := bson.M{"$set": bson.M{
		"topic_confidence":      profile.TopicConfidence,
		"bloom_mastery":         profile.BloomMastery,
		"difficulty_preference": profile.DifficultyPreference,
		"updated_at":            profile.UpdatedAt,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
