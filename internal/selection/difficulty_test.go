package selection

import (
	"testing"

	"practicequiz-service/internal/models"
)

func ampleDifficulty(n int) map[string]int {
	avail := make(map[string]int)
	for _, difficulty := range models.Difficulties() {
		avail[difficulty] = n
	}
	return avail
}

func TestComputeDifficultyTargetsNeutralMastery(t *testing.T) {
	targets := ComputeDifficultyTargets(50, TargetQuestionCount, ampleDifficulty(100))

	// No shift at the midpoint: base 0.3/0.5/0.2 of 20
	if targets[models.DifficultyEasy] != 6 {
		t.Errorf("Expected 6 easy, got %d", targets[models.DifficultyEasy])
	}
	if targets[models.DifficultyMedium] != 10 {
		t.Errorf("Expected 10 medium, got %d", targets[models.DifficultyMedium])
	}
	if targets[models.DifficultyHard] != 4 {
		t.Errorf("Expected 4 hard, got %d", targets[models.DifficultyHard])
	}
}

func TestComputeDifficultyTargetsMasteryMonotonicity(t *testing.T) {
	// Raising average Bloom mastery must never lower the hard target or
	// raise the easy target, subject to the floor/cap clamps.
	prevEasy := TargetQuestionCount + 1
	prevHard := -1
	for mastery := 0.0; mastery <= 100; mastery += 5 {
		targets := ComputeDifficultyTargets(mastery, TargetQuestionCount, ampleDifficulty(100))
		easy := targets[models.DifficultyEasy]
		hard := targets[models.DifficultyHard]

		if easy > prevEasy {
			t.Errorf("Easy target rose from %d to %d at mastery %.0f", prevEasy, easy, mastery)
		}
		if hard < prevHard {
			t.Errorf("Hard target fell from %d to %d at mastery %.0f", prevHard, hard, mastery)
		}
		prevEasy, prevHard = easy, hard
	}

	low := ComputeDifficultyTargets(20, TargetQuestionCount, ampleDifficulty(100))
	high := ComputeDifficultyTargets(80, TargetQuestionCount, ampleDifficulty(100))
	if high[models.DifficultyHard] < low[models.DifficultyHard] {
		t.Error("Expected hard target not to decrease from mastery 20 to 80")
	}
	if high[models.DifficultyEasy] > low[models.DifficultyEasy] {
		t.Error("Expected easy target not to increase from mastery 20 to 80")
	}
}

func TestComputeDifficultyTargetsFloorAndCap(t *testing.T) {
	testCases := []struct {
		name    string
		mastery float64
	}{
		{"zero mastery", 0},
		{"full mastery", 100},
		{"out of range high", 250},
		{"out of range low", -50},
	}

	easyFloor := 4 // 20% of 20
	hardCap := 10  // 50% of 20

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			targets := ComputeDifficultyTargets(tc.mastery, TargetQuestionCount, ampleDifficulty(100))

			if targets[models.DifficultyEasy] < easyFloor {
				t.Errorf("Easy target %d below floor %d", targets[models.DifficultyEasy], easyFloor)
			}
			if targets[models.DifficultyHard] > hardCap {
				t.Errorf("Hard target %d above cap %d", targets[models.DifficultyHard], hardCap)
			}
			if targets[models.DifficultyMedium] < 0 {
				t.Errorf("Medium target negative: %d", targets[models.DifficultyMedium])
			}
		})
	}
}

func TestComputeDifficultyTargetsCappedByAvailability(t *testing.T) {
	available := map[string]int{
		models.DifficultyEasy:   2,
		models.DifficultyMedium: 3,
		models.DifficultyHard:   1,
	}

	targets := ComputeDifficultyTargets(50, TargetQuestionCount, available)

	for _, difficulty := range models.Difficulties() {
		if targets[difficulty] > available[difficulty] {
			t.Errorf("Target for %s exceeds availability: %d > %d", difficulty, targets[difficulty], available[difficulty])
		}
	}
}
