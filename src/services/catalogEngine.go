package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/MuseoAndino/Catalogue-Backend/src/models"
)

// MatchesText reports whether the free-text query matches the artifact's
// title, description, culture or period (case-insensitive substring).
// An empty query matches everything.
func MatchesText(artifact models.ArtifactModel, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(artifact.Title), query) ||
		strings.Contains(strings.ToLower(artifact.Description), query) ||
		strings.Contains(strings.ToLower(artifact.Culture), query) ||
		strings.Contains(strings.ToLower(artifact.Period), query)
}

// PeriodYear extracts the leading integer token of a period string
// ("1000-1500 CE" -> 1000). Strings without a leading integer yield 0 and
// compare as equal among themselves.
func PeriodYear(period string) int {
	period = strings.TrimSpace(period)
	end := 0
	for end < len(period) && period[end] >= '0' && period[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	year, err := strconv.Atoi(period[:end])
	if err != nil {
		return 0
	}
	return year
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// matchesFilters evaluates the four facet matches and combines them
// according to the filter set's tag logic. A facet with no selected values
// and an empty period bound are trivially satisfied, so ANY mode with no
// active filters passes every artifact.
func matchesFilters(artifact models.ArtifactModel, filters models.FilterSet) bool {
	cultureMatch := len(filters.Cultures) == 0 || containsString(filters.Cultures, artifact.Culture)
	materialMatch := len(filters.Materials) == 0 || containsString(filters.Materials, artifact.Material)
	conditionMatch := len(filters.Conditions) == 0 || containsString(filters.Conditions, artifact.Condition)

	periodMatch := true
	year := PeriodYear(artifact.Period)
	if start, err := strconv.Atoi(filters.PeriodStart); filters.PeriodStart != "" && err == nil && year < start {
		periodMatch = false
	}
	if end, err := strconv.Atoi(filters.PeriodEnd); filters.PeriodEnd != "" && err == nil && year > end {
		periodMatch = false
	}

	if filters.TagLogic == models.TagLogicAll {
		return cultureMatch && materialMatch && conditionMatch && periodMatch
	}
	return cultureMatch || materialMatch || conditionMatch || periodMatch
}

// FilterArtifacts returns the artifacts matching both the free-text query
// and the filter set, preserving input order. The input slice is never
// mutated.
func FilterArtifacts(artifacts []models.ArtifactModel, query string, filters models.FilterSet) []models.ArtifactModel {
	matched := make([]models.ArtifactModel, 0, len(artifacts))
	for _, artifact := range artifacts {
		if MatchesText(artifact, query) && matchesFilters(artifact, filters) {
			matched = append(matched, artifact)
		}
	}
	return matched
}

// SortArtifacts returns a sorted copy of the input. The sort is stable, so
// SortRelevance (and any tie) preserves input order.
func SortArtifacts(artifacts []models.ArtifactModel, key models.SortKey) []models.ArtifactModel {
	sorted := make([]models.ArtifactModel, len(artifacts))
	copy(sorted, artifacts)

	var less func(a, b models.ArtifactModel) bool
	switch key {
	case models.SortTitleAsc:
		less = func(a, b models.ArtifactModel) bool { return a.Title < b.Title }
	case models.SortTitleDesc:
		less = func(a, b models.ArtifactModel) bool { return b.Title < a.Title }
	case models.SortPeriodAsc:
		less = func(a, b models.ArtifactModel) bool { return PeriodYear(a.Period) < PeriodYear(b.Period) }
	case models.SortPeriodDesc:
		less = func(a, b models.ArtifactModel) bool { return PeriodYear(b.Period) < PeriodYear(a.Period) }
	case models.SortCultureAsc:
		less = func(a, b models.ArtifactModel) bool { return a.Culture < b.Culture }
	case models.SortCultureDesc:
		less = func(a, b models.ArtifactModel) bool { return b.Culture < a.Culture }
	default:
		// relevance: input order
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
