package models

import "time"

// NeutralScore is the midpoint assumed for any signal the profile does not
// track yet.
const NeutralScore = 50.0

// LearnerProfile holds the per-user, per-pattern signals used to personalize
// question selection. All scores live on a 0-100 scale; the profile is
// read-only input for the selection engine and updated elsewhere as the
// learner answers questions.
type LearnerProfile struct {
	ID                   string             `bson:"_id,omitempty" json:"id"`
	UserID               string             `bson:"user_id" json:"user_id"`
	PatternID            string             `bson:"pattern_id" json:"pattern_id"`
	TopicConfidence      map[string]float64 `bson:"topic_confidence" json:"topic_confidence"`
	BloomMastery         map[string]float64 `bson:"bloom_mastery" json:"bloom_mastery"`
	DifficultyPreference map[string]float64 `bson:"difficulty_preference" json:"difficulty_preference"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}

// TopicConfidenceFor returns the confidence score for a topic, defaulting to
// the neutral midpoint when untracked.
func (p *LearnerProfile) TopicConfidenceFor(topic string) float64 {
	if score, exists := p.TopicConfidence[topic]; exists {
		return score
	}
	return NeutralScore
}

// BloomMasteryFor returns the mastery score for a Bloom level, defaulting to
// the neutral midpoint when untracked.
func (p *LearnerProfile) BloomMasteryFor(bloomLevel string) float64 {
	if score, exists := p.BloomMastery[bloomLevel]; exists {
		return score
	}
	return NeutralScore
}

// DifficultyPreferenceFor returns the preference score for a difficulty tier,
// defaulting to the neutral midpoint when untracked.
func (p *LearnerProfile) DifficultyPreferenceFor(difficulty string) float64 {
	if score, exists := p.DifficultyPreference[difficulty]; exists {
		return score
	}
	return NeutralScore
}

// AverageBloomMastery returns the mean mastery across all tracked Bloom
// levels, or the neutral midpoint when none are tracked.
func (p *LearnerProfile) AverageBloomMastery() float64 {
	if len(p.BloomMastery) == 0 {
		return NeutralScore
	}
	total := 0.0
	for _, score := range p.BloomMastery {
		total += score
	}
	return total / float64(len(p.BloomMastery))
}
