package selection

import (
	"math/rand"
	"time"

	"practicequiz-service/internal/models"
)

// WeightedSelector performs score-weighted random sampling without
// replacement under section quotas and global difficulty caps.
type WeightedSelector struct {
	rand *rand.Rand
}

// NewWeightedSelector creates a selector with a time-seeded random source.
func NewWeightedSelector() *WeightedSelector {
	return NewWeightedSelectorWithSeed(time.Now().UnixNano())
}

// NewWeightedSelectorWithSeed creates a selector with a fixed seed. Tests use
// this to assert statistical properties of the sampling.
func NewWeightedSelectorWithSeed(seed int64) *WeightedSelector {
	return &WeightedSelector{rand: rand.New(rand.NewSource(seed))}
}

// BuildPlan assembles a practice quiz from the candidate pool:
//
//  1. score every candidate against the learner profile and seen set
//  2. compute per-section quotas from the target split and availability
//  3. compute per-difficulty caps from the learner's average Bloom mastery
//  4. weighted-sample each section's pool under the remaining difficulty
//     capacity, skipping nothing permanently (capped-out items simply leave
//     the eligible subset)
//  5. backfill any shortfall from all remaining candidates, ignoring quotas
//     and caps, until the target or the catalog is exhausted
//
// The plan is never larger than TargetQuestionCount and never contains a
// question twice. An empty candidate pool yields an empty plan; the caller
// decides whether that is an error.
func (s *WeightedSelector) BuildPlan(
	questions []models.Question,
	profile *models.LearnerProfile,
	seenIDs []string,
) *SelectionPlan {
	scorer := NewScorer(profile, seenIDs)
	scored := scorer.ScoreAll(questions)

	bySection := groupBySection(scored)
	sectionAvail := make(map[string]int, len(bySection))
	for section, pool := range bySection {
		sectionAvail[section] = len(pool)
	}
	difficultyAvail := countByDifficulty(scored)

	quotas := ComputeSectionQuotas(DefaultSectionSplit(), TargetQuestionCount, sectionAvail)
	targets := ComputeDifficultyTargets(profile.AverageBloomMastery(), TargetQuestionCount, difficultyAvail)

	remaining := make(map[string]int, len(targets))
	for difficulty, count := range targets {
		remaining[difficulty] = count
	}

	selected := make([]ScoredQuestion, 0, TargetQuestionCount)
	picked := make(map[string]bool)

	for _, section := range sortedKeys(bySection) {
		pool := bySection[section]
		for count := 0; count < quotas[section]; count++ {
			idx := s.pickEligible(pool, remaining)
			if idx < 0 {
				break
			}
			chosen := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)
			selected = append(selected, chosen)
			picked[chosen.Question.ID] = true
			remaining[chosen.Question.DifficultyLevel]--
		}
		bySection[section] = pool
	}

	// Backfill: quotas and difficulty caps no longer apply.
	backfilled := 0
	if len(selected) < TargetQuestionCount {
		leftovers := make([]ScoredQuestion, 0, len(scored))
		for _, sq := range scored {
			if !picked[sq.Question.ID] {
				leftovers = append(leftovers, sq)
			}
		}
		for len(selected) < TargetQuestionCount && len(leftovers) > 0 {
			idx := s.weightedPick(leftovers)
			selected = append(selected, leftovers[idx])
			picked[leftovers[idx].Question.ID] = true
			leftovers = append(leftovers[:idx], leftovers[idx+1:]...)
			backfilled++
		}
	}

	return &SelectionPlan{
		Questions:         selected,
		SectionQuotas:     quotas,
		DifficultyTargets: targets,
		TotalCandidates:   len(scored),
		Backfilled:        backfilled,
	}
}

// pickEligible draws one question from the pool whose difficulty still has
// remaining capacity, weighted by score. Returns -1 when nothing is eligible.
func (s *WeightedSelector) pickEligible(pool []ScoredQuestion, remaining map[string]int) int {
	eligible := make([]int, 0, len(pool))
	for i, sq := range pool {
		if remaining[sq.Question.DifficultyLevel] > 0 {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return -1
	}

	totalWeight := 0.0
	for _, i := range eligible {
		totalWeight += positiveWeight(pool[i].Score)
	}
	if totalWeight <= 0 {
		// All scores non-positive: fall back to uniform choice.
		return eligible[s.rand.Intn(len(eligible))]
	}

	r := s.rand.Float64() * totalWeight
	cumulative := 0.0
	for _, i := range eligible {
		cumulative += positiveWeight(pool[i].Score)
		if r <= cumulative {
			return i
		}
	}
	return eligible[len(eligible)-1]
}

// weightedPick draws one index from the pool weighted by score, uniform when
// no positive weight exists.
func (s *WeightedSelector) weightedPick(pool []ScoredQuestion) int {
	totalWeight := 0.0
	for _, sq := range pool {
		totalWeight += positiveWeight(sq.Score)
	}
	if totalWeight <= 0 {
		return s.rand.Intn(len(pool))
	}

	r := s.rand.Float64() * totalWeight
	cumulative := 0.0
	for i, sq := range pool {
		cumulative += positiveWeight(sq.Score)
		if r <= cumulative {
			return i
		}
	}
	return len(pool) - 1
}

// positiveWeight maps a composite score to a sampling weight. Negative scores
// contribute nothing to the cumulative draw but stay selectable through the
// uniform fallback.
func positiveWeight(score float64) float64 {
	if score <= 0 {
		return 0
	}
	return score
}

func groupBySection(scored []ScoredQuestion) map[string][]ScoredQuestion {
	groups := make(map[string][]ScoredQuestion)
	for _, sq := range scored {
		groups[sq.Question.Section] = append(groups[sq.Question.Section], sq)
	}
	return groups
}

func countByDifficulty(scored []ScoredQuestion) map[string]int {
	counts := make(map[string]int)
	for _, sq := range scored {
		counts[sq.Question.DifficultyLevel]++
	}
	return counts
}
