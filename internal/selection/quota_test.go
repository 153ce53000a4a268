package selection

import (
	"reflect"
	"testing"

	"practicequiz-service/internal/models"
)

func ample(n int) map[string]int {
	avail := make(map[string]int)
	for _, section := range models.Sections() {
		avail[section] = n
	}
	return avail
}

func TestComputeSectionQuotasDefaultSplit(t *testing.T) {
	quotas := ComputeSectionQuotas(DefaultSectionSplit(), TargetQuestionCount, ample(100))

	expected := map[string]int{
		models.SectionTheory:      6,
		models.SectionCode:        6,
		models.SectionApplication: 4,
		models.SectionStructure:   4,
	}
	if !reflect.DeepEqual(quotas, expected) {
		t.Errorf("Expected quotas %v, got %v", expected, quotas)
	}
}

func TestComputeSectionQuotasDeterministic(t *testing.T) {
	available := map[string]int{
		models.SectionTheory:      3,
		models.SectionCode:        9,
		models.SectionApplication: 12,
		models.SectionStructure:   2,
	}

	first := ComputeSectionQuotas(DefaultSectionSplit(), TargetQuestionCount, available)
	for i := 0; i < 50; i++ {
		again := ComputeSectionQuotas(DefaultSectionSplit(), TargetQuestionCount, available)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Quota computation not deterministic: %v vs %v", first, again)
		}
	}
}

func TestComputeSectionQuotasRedistributesShortfall(t *testing.T) {
	// Theory only has 2 available; its shortfall of 4 must flow to sections
	// with surplus availability.
	available := map[string]int{
		models.SectionTheory:      2,
		models.SectionCode:        10,
		models.SectionApplication: 10,
		models.SectionStructure:   10,
	}

	quotas := ComputeSectionQuotas(DefaultSectionSplit(), TargetQuestionCount, available)

	if quotas[models.SectionTheory] != 2 {
		t.Errorf("Expected theory clamped to 2, got %d", quotas[models.SectionTheory])
	}
	total := 0
	for section, quota := range quotas {
		if quota > available[section] {
			t.Errorf("Quota for %s exceeds availability: %d > %d", section, quota, available[section])
		}
		total += quota
	}
	if total != TargetQuestionCount {
		t.Errorf("Expected quotas to sum to %d, got %d", TargetQuestionCount, total)
	}
}

func TestComputeSectionQuotasSmallCatalog(t *testing.T) {
	available := map[string]int{
		models.SectionTheory:      3,
		models.SectionCode:        2,
		models.SectionApplication: 1,
		models.SectionStructure:   0,
	}

	quotas := ComputeSectionQuotas(DefaultSectionSplit(), TargetQuestionCount, available)

	total := 0
	for section, quota := range quotas {
		if quota > available[section] {
			t.Errorf("Quota for %s exceeds availability: %d > %d", section, quota, available[section])
		}
		total += quota
	}
	if total != 6 {
		t.Errorf("Expected quotas to sum to total availability 6, got %d", total)
	}
}

func TestComputeSectionQuotasEvenFivePerSection(t *testing.T) {
	// The pre-clamp split is [6,6,4,4]; with only 5 per section available the
	// clamped shortfall flows to the surplus sections and every quota lands
	// on 5.
	quotas := ComputeSectionQuotas(DefaultSectionSplit(), TargetQuestionCount, ample(5))

	for section, quota := range quotas {
		if quota != 5 {
			t.Errorf("Expected quota 5 for %s, got %d", section, quota)
		}
	}
}

func TestComputeSectionQuotasZeroTarget(t *testing.T) {
	quotas := ComputeSectionQuotas(DefaultSectionSplit(), 0, ample(10))
	for section, quota := range quotas {
		if quota != 0 {
			t.Errorf("Expected zero quota for %s, got %d", section, quota)
		}
	}
}
