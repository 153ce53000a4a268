package selection

import (
	"math"
	"sort"
)

// ComputeSectionQuotas turns the target split into integer per-section quotas,
// clamped by what each section actually has available. Apportionment uses the
// largest-remainder method so repeated calls with identical inputs always
// yield identical quotas regardless of map iteration order. Shortfall from
// undersupplied sections is redistributed proportionally across sections with
// surplus availability, the last surplus section absorbing rounding remainder.
// The quotas sum to target, or to total availability when the catalog is
// smaller than the target.
func ComputeSectionQuotas(split map[string]float64, target int, available map[string]int) map[string]int {
	quotas := apportion(split, target)

	// Clamp to availability, collecting the shortfall.
	shortfall := 0
	for _, section := range sortedKeys(quotas) {
		if avail := available[section]; quotas[section] > avail {
			shortfall += quotas[section] - avail
			quotas[section] = avail
		}
	}

	for shortfall > 0 {
		var surplus []string
		totalSurplus := 0
		for _, section := range sortedKeys(quotas) {
			if extra := available[section] - quotas[section]; extra > 0 {
				surplus = append(surplus, section)
				totalSurplus += extra
			}
		}
		if totalSurplus == 0 {
			break
		}

		remaining := shortfall
		for i, section := range surplus {
			extra := available[section] - quotas[section]
			give := remaining
			if i < len(surplus)-1 {
				give = int(math.Round(float64(shortfall) * float64(extra) / float64(totalSurplus)))
			}
			if give > extra {
				give = extra
			}
			if give > remaining {
				give = remaining
			}
			quotas[section] += give
			remaining -= give
		}
		shortfall = remaining
	}

	return quotas
}

// apportion distributes target across sections proportionally to the split
// using the largest-remainder method. Ties break on section name.
func apportion(split map[string]float64, target int) map[string]int {
	sections := sortedKeys(split)

	totalShare := 0.0
	for _, section := range sections {
		totalShare += split[section]
	}
	if totalShare <= 0 || target <= 0 {
		quotas := make(map[string]int, len(sections))
		for _, section := range sections {
			quotas[section] = 0
		}
		return quotas
	}

	type remainder struct {
		section string
		frac    float64
	}

	quotas := make(map[string]int, len(sections))
	remainders := make([]remainder, 0, len(sections))
	allocated := 0
	for _, section := range sections {
		exact := split[section] / totalShare * float64(target)
		base := int(math.Floor(exact))
		quotas[section] = base
		allocated += base
		remainders = append(remainders, remainder{section: section, frac: exact - float64(base)})
	}

	sort.Slice(remainders, func(i, j int) bool {
		if remainders[i].frac != remainders[j].frac {
			return remainders[i].frac > remainders[j].frac
		}
		return remainders[i].section < remainders[j].section
	})

	for i := 0; allocated < target && len(remainders) > 0; i++ {
		quotas[remainders[i%len(remainders)].section]++
		allocated++
	}

	return quotas
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
