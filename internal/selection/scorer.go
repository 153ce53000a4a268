package selection

import "practicequiz-service/internal/models"

// Scorer assigns each candidate question a composite weight so that
// weaker-topic, weaker-Bloom-level, matching-difficulty-preference and unseen
// questions are preferred.
type Scorer struct {
	profile *models.LearnerProfile
	seen    map[string]bool
}

func NewScorer(profile *models.LearnerProfile, seenIDs []string) *Scorer {
	seen := make(map[string]bool, len(seenIDs))
	for _, id := range seenIDs {
		seen[id] = true
	}
	return &Scorer{profile: profile, seen: seen}
}

// Score computes the composite weight for a single question:
//
//	0.4*topicGap + 0.4*bloomGap + 0.1*difficultyPreference + seen penalty
//
// with all gap/preference terms normalized to [0,1]. The result can go
// negative for well-mastered, already-seen questions.
func (s *Scorer) Score(q models.Question) float64 {
	topicGap := s.averageTopicGap(q.TopicTags)
	bloomGap := 100 - s.profile.BloomMasteryFor(q.BloomLevel)
	difficultyPref := s.profile.DifficultyPreferenceFor(q.DifficultyLevel)

	score := topicGapWeight*(topicGap/100) +
		bloomGapWeight*(bloomGap/100) +
		difficultyPrefWeight*(difficultyPref/100)

	if s.seen[q.ID] {
		return score + seenPenalty
	}
	return score + unseenBonus
}

// ScoreAll scores every candidate. The output order matches the input; no
// ranking is implied.
func (s *Scorer) ScoreAll(questions []models.Question) []ScoredQuestion {
	scored := make([]ScoredQuestion, len(questions))
	for i, q := range questions {
		scored[i] = ScoredQuestion{
			Question: q,
			Score:    s.Score(q),
			Seen:     s.seen[q.ID],
		}
	}
	return scored
}

// averageTopicGap is the mean confidence gap across the question's topics, or
// the neutral gap when the question carries no topic tags.
func (s *Scorer) averageTopicGap(topics []string) float64 {
	if len(topics) == 0 {
		return models.NeutralScore
	}
	total := 0.0
	for _, topic := range topics {
		total += 100 - s.profile.TopicConfidenceFor(topic)
	}
	return total / float64(len(topics))
}
