package selection

import "practicequiz-service/internal/models"

// TargetQuestionCount is the number of questions a practice quiz aims for.
// Smaller catalogs yield smaller quizzes; the target is never exceeded.
const TargetQuestionCount = 20

// Composite score weights. Topic weakness and cognitive-level weakness
// dominate; difficulty preference is a minor tie-breaker; repetition is
// discouraged but never forbidden.
const (
	topicGapWeight       = 0.4
	bloomGapWeight       = 0.4
	difficultyPrefWeight = 0.1
	seenPenalty          = -0.2
	unseenBonus          = 0.1
)

// DefaultSectionSplit is the target share of the quiz each section gets.
func DefaultSectionSplit() map[string]float64 {
	return map[string]float64{
		models.SectionTheory:      0.3,
		models.SectionCode:        0.3,
		models.SectionApplication: 0.2,
		models.SectionStructure:   0.2,
	}
}

// BaseDifficultyDistribution is the starting probability mass per difficulty
// tier before the learner's Bloom mastery shifts it.
func BaseDifficultyDistribution() map[string]float64 {
	return map[string]float64{
		models.DifficultyEasy:   0.3,
		models.DifficultyMedium: 0.5,
		models.DifficultyHard:   0.2,
	}
}

// ScoredQuestion is a candidate question with its composite selection weight,
// computed fresh for every selection run. Scores may be negative; only the
// relative ranking matters.
type ScoredQuestion struct {
	Question models.Question `json:"question"`
	Score    float64         `json:"score"`
	Seen     bool            `json:"seen"`
}

// SelectionPlan is the outcome of one constrained selection run.
type SelectionPlan struct {
	Questions         []ScoredQuestion `json:"questions"`
	SectionQuotas     map[string]int   `json:"section_quotas"`
	DifficultyTargets map[string]int   `json:"difficulty_targets"`
	TotalCandidates   int              `json:"total_candidates"`
	Backfilled        int              `json:"backfilled"`
}

// QuestionIDs returns the selected question IDs in selection order.
func (p *SelectionPlan) QuestionIDs() []string {
	ids := make([]string, len(p.Questions))
	for i, sq := range p.Questions {
		ids[i] = sq.Question.ID
	}
	return ids
}
