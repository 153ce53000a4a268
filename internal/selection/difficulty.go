package selection

import (
	"math"

	"practicequiz-service/internal/models"
)

// Bounds on the shifted difficulty distribution and its integer targets.
const (
	edgeProbMin   = 0.1 // easy and hard each stay within [0.1, 0.6]
	edgeProbMax   = 0.6
	mediumProbMin = 0.1
	mediumProbMax = 0.8
	masteryShift  = 0.6 // full mastery swing moves 0.6 probability mass
	easyFloorPct  = 0.2 // easy never drops below 20% of the target
	hardCapPct    = 0.5 // hard never exceeds 50% of the target
)

// ComputeDifficultyTargets derives per-difficulty question targets from the
// learner's average Bloom mastery. Higher mastery shifts probability mass from
// easy toward hard; medium absorbs the remainder. The integer targets honor a
// hard easy-floor and hard-cap, then are bounded by actual availability in the
// candidate pool, so their sum can fall below target when the pool is thin.
func ComputeDifficultyTargets(avgBloomMastery float64, target int, available map[string]int) map[string]int {
	mastery01 := clamp(avgBloomMastery/100, 0, 1)
	delta := (mastery01 - 0.5) * masteryShift

	base := BaseDifficultyDistribution()
	easy := clamp(base[models.DifficultyEasy]-delta, edgeProbMin, edgeProbMax)
	hard := clamp(base[models.DifficultyHard]+delta, edgeProbMin, edgeProbMax)
	medium := clamp(1-easy-hard, mediumProbMin, mediumProbMax)

	total := easy + medium + hard
	easy /= total
	medium /= total
	hard /= total

	targets := map[string]int{
		models.DifficultyEasy: int(math.Round(easy * float64(target))),
		models.DifficultyHard: int(math.Round(hard * float64(target))),
	}

	easyFloor := int(math.Round(easyFloorPct * float64(target)))
	hardCap := int(math.Round(hardCapPct * float64(target)))
	if targets[models.DifficultyEasy] < easyFloor {
		targets[models.DifficultyEasy] = easyFloor
	}
	if targets[models.DifficultyHard] > hardCap {
		targets[models.DifficultyHard] = hardCap
	}

	// Medium absorbs whatever the clamped edges leave over.
	medCount := target - targets[models.DifficultyEasy] - targets[models.DifficultyHard]
	if medCount < 0 {
		medCount = 0
	}
	targets[models.DifficultyMedium] = medCount

	for _, difficulty := range models.Difficulties() {
		if avail := available[difficulty]; targets[difficulty] > avail {
			targets[difficulty] = avail
		}
	}

	return targets
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
