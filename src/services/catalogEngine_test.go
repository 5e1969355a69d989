package services

import (
	"testing"

	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogue() []models.ArtifactModel {
	return []models.ArtifactModel{
		{ID: 1, Title: "Paracas Embroidered Funerary Mantle", Culture: "Paracas", Period: "300 BCE - 100 CE", Material: "Camelid fiber", Condition: "Excellent", Description: "A richly embroidered funerary mantle."},
		{ID: 2, Title: "Huari Polychrome Ceremonial Vessel", Culture: "Huari", Period: "600-1000 CE", Material: "Ceramic with polychrome slip", Condition: "Very good", Description: "A ceremonial drinking vessel."},
		{ID: 3, Title: "Chimú Feathered Ceremonial Headdress", Culture: "Chimú", Period: "1100-1470 CE", Material: "Feathers", Condition: "Good", Description: "A ceremonial headdress of macaw feathers."},
		{ID: 4, Title: "Inca Wooden Kero Cup", Culture: "Inca", Period: "1400-1532 CE", Material: "Wood with pigmented resin inlay", Condition: "Very good", Description: "A ceremonial drinking cup."},
		{ID: 5, Title: "Nazca Polychrome Woven Panel", Culture: "Nazca", Period: "100-700 CE", Material: "Alpaca wool", Condition: "Good", Description: "A finely woven panel with hummingbirds."},
		{ID: 6, Title: "Chancay Cotton Burial Doll", Culture: "Chancay", Period: "1000-1470 CE", Material: "Cotton", Condition: "Excellent", Description: "A funerary figure of woven cotton."},
	}
}

func artifactIDs(artifacts []models.ArtifactModel) []int {
	ids := make([]int, 0, len(artifacts))
	for _, artifact := range artifacts {
		ids = append(ids, artifact.ID)
	}
	return ids
}

func TestMatchesTextEmptyQuery(t *testing.T) {
	for _, artifact := range testCatalogue() {
		assert.True(t, MatchesText(artifact, ""), "empty query must match %s", artifact.Title)
	}
}

func TestMatchesTextFields(t *testing.T) {
	catalogue := testCatalogue()

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "title substring", query: "kero", want: true},
		{name: "culture substring", query: "INCA", want: true},
		{name: "description substring", query: "drinking cup", want: true},
		{name: "period substring", query: "1532", want: true},
		{name: "no match", query: "byzantine", want: false},
	}

	kero := catalogue[3]
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesText(kero, tt.query))
		})
	}
}

func TestPeriodYear(t *testing.T) {
	tests := []struct {
		period string
		want   int
	}{
		{"600-1000 CE", 600},
		{"1400-1532 CE", 1400},
		{"300 BCE - 100 CE", 300},
		{"New Kingdom, 18th Dynasty", 0},
		{"", 0},
		{"  1100-1470 CE", 1100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodYear(tt.period), "period %q", tt.period)
	}
}

func TestFilterArtifactsEmptyFilterPassthrough(t *testing.T) {
	catalogue := testCatalogue()

	got := FilterArtifacts(catalogue, "", models.FilterSet{TagLogic: models.TagLogicAny})

	require.Len(t, got, len(catalogue))
	assert.Equal(t, artifactIDs(catalogue), artifactIDs(got), "order must be preserved")
}

func TestFilterArtifactsParacasScenario(t *testing.T) {
	catalogue := testCatalogue()

	got := FilterArtifacts(catalogue, "Paracas", models.FilterSet{TagLogic: models.TagLogicAny})

	assert.Equal(t, []int{1}, artifactIDs(got))
}

func TestFilterArtifactsFacets(t *testing.T) {
	catalogue := testCatalogue()

	tests := []struct {
		name    string
		filters models.FilterSet
		want    []int
	}{
		{
			name:    "single culture",
			filters: models.FilterSet{Cultures: []string{"Inca"}, TagLogic: models.TagLogicAll},
			want:    []int{4},
		},
		{
			name:    "two cultures",
			filters: models.FilterSet{Cultures: []string{"Paracas", "Nazca"}, TagLogic: models.TagLogicAll},
			want:    []int{1, 5},
		},
		{
			name: "any mode passes on either facet",
			filters: models.FilterSet{
				Cultures:  []string{"Inca"},
				Materials: []string{"Cotton"},
				TagLogic:  models.TagLogicAny,
			},
			// unset condition facet and period default to true, so ANY passes everything
			want: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name: "all mode requires both facets",
			filters: models.FilterSet{
				Cultures:  []string{"Inca", "Chancay"},
				Materials: []string{"Cotton"},
				TagLogic:  models.TagLogicAll,
			},
			want: []int{6},
		},
		{
			name:    "period range",
			filters: models.FilterSet{PeriodStart: "600", PeriodEnd: "1200", TagLogic: models.TagLogicAll},
			want:    []int{2, 3, 6},
		},
		{
			name:    "open-ended period start",
			filters: models.FilterSet{PeriodStart: "1000", TagLogic: models.TagLogicAll},
			want:    []int{3, 4, 6},
		},
		{
			name:    "non-numeric bound is unconstrained",
			filters: models.FilterSet{PeriodStart: "early", TagLogic: models.TagLogicAll},
			want:    []int{1, 2, 3, 4, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArtifacts(catalogue, "", tt.filters)
			assert.Equal(t, tt.want, artifactIDs(got))
		})
	}
}

func TestFilterArtifactsDoesNotMutateInput(t *testing.T) {
	catalogue := testCatalogue()
	before := artifactIDs(catalogue)

	FilterArtifacts(catalogue, "cotton", models.FilterSet{Cultures: []string{"Inca"}, TagLogic: models.TagLogicAll})

	assert.Equal(t, before, artifactIDs(catalogue))
}

func TestSortArtifacts(t *testing.T) {
	catalogue := testCatalogue()

	t.Run("relevance preserves input order", func(t *testing.T) {
		got := SortArtifacts(catalogue, models.SortRelevance)
		assert.Equal(t, artifactIDs(catalogue), artifactIDs(got))
	})

	t.Run("title desc reverses title asc", func(t *testing.T) {
		asc := SortArtifacts(catalogue, models.SortTitleAsc)
		desc := SortArtifacts(catalogue, models.SortTitleDesc)

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("period asc", func(t *testing.T) {
		got := SortArtifacts(catalogue, models.SortPeriodAsc)
		assert.Equal(t, []int{5, 1, 2, 6, 3, 4}, artifactIDs(got))
	})

	t.Run("culture asc", func(t *testing.T) {
		got := SortArtifacts(catalogue, models.SortCultureAsc)
		assert.Equal(t, "Chancay", got[0].Culture)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := artifactIDs(catalogue)
		SortArtifacts(catalogue, models.SortTitleDesc)
		assert.Equal(t, before, artifactIDs(catalogue))
	})
}
