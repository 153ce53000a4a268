package models

import "testing"

func TestEnsurePoints(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		expected int
	}{
		{"remember level gets base points", Question{BloomLevel: "remember"}, 10},
		{"create level gets base points", Question{BloomLevel: "create"}, 35},
		{"unknown bloom level falls back to minimum", Question{BloomLevel: "memorize"}, 10},
		{"explicit points are preserved", Question{BloomLevel: "create", Points: 12}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.question.EnsurePoints()
			if tt.question.Points != tt.expected {
				t.Errorf("Expected %d points, got %d", tt.expected, tt.question.Points)
			}
		})
	}
}

func TestLearnerProfileDefaults(t *testing.T) {
	profile := &LearnerProfile{
		TopicConfidence: map[string]float64{"singleton": 80},
		BloomMastery:    map[string]float64{"remember": 90, "apply": 30},
	}

	if got := profile.TopicConfidenceFor("singleton"); got != 80 {
		t.Errorf("Expected tracked topic confidence 80, got %v", got)
	}
	if got := profile.TopicConfidenceFor("observer"); got != NeutralScore {
		t.Errorf("Expected neutral confidence for untracked topic, got %v", got)
	}
	if got := profile.DifficultyPreferenceFor("hard"); got != NeutralScore {
		t.Errorf("Expected neutral preference for untracked difficulty, got %v", got)
	}
	if got := profile.AverageBloomMastery(); got != 60 {
		t.Errorf("Expected average mastery 60, got %v", got)
	}

	empty := &LearnerProfile{}
	if got := empty.AverageBloomMastery(); got != NeutralScore {
		t.Errorf("Expected neutral average for empty profile, got %v", got)
	}
}
