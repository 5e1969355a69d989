package services

import (
	"errors"
	"testing"

	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	items      []models.CartItem
	researcher models.ResearcherInfo
	calls      int
	err        error
}

func (s *recordingSubmitter) Submit(items []models.CartItem, researcher models.ResearcherInfo) error {
	s.calls++
	s.items = items
	s.researcher = researcher
	return s.err
}

func testArtifact(id int, title, accession string) *models.ArtifactModel {
	return &models.ArtifactModel{ID: id, Title: title, AccessionNumber: accession}
}

func TestCartStartsEmpty(t *testing.T) {
	service := NewCartService(nil)

	assert.Empty(t, service.GetCartItems("session:a"))
	assert.Equal(t, 0, service.GetTotalCost("session:a"))
}

func TestAddToCartDefaultsToWeekly(t *testing.T) {
	service := NewCartService(nil)

	service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))

	items := service.GetCartItems("session:a")
	require.Len(t, items, 1)
	assert.Equal(t, models.DurationWeekly, items[0].RentalPeriod.Duration)
	assert.Equal(t, models.WeeklyRate, items[0].EstimatedCost)
	assert.Equal(t, 450, service.GetTotalCost("session:a"))
}

func TestAddToCartIsIdempotentPerArtifact(t *testing.T) {
	service := NewCartService(nil)
	artifact := testArtifact(1, "Paracas Mantle", "AM-TX-001")

	service.AddToCart("session:a", artifact)
	service.AddToCart("session:a", artifact)

	assert.Len(t, service.GetCartItems("session:a"), 1)
}

func TestUpdateRentalPeriodRecomputesCost(t *testing.T) {
	tests := []struct {
		duration models.RentalDuration
		want     int
	}{
		{models.DurationDaily, 75},
		{models.DurationWeekly, 450},
		{models.DurationMonthly, 1500},
	}

	for _, tt := range tests {
		t.Run(string(tt.duration), func(t *testing.T) {
			service := NewCartService(nil)
			service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))

			service.UpdateRentalPeriod("session:a", 1, models.RentalPeriod{Duration: tt.duration})

			items := service.GetCartItems("session:a")
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].EstimatedCost)
		})
	}
}

func TestUpdateRentalPeriodUnknownArtifactIsNoop(t *testing.T) {
	service := NewCartService(nil)
	service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))

	service.UpdateRentalPeriod("session:a", 99, models.RentalPeriod{Duration: models.DurationDaily})

	assert.Equal(t, 450, service.GetTotalCost("session:a"))
}

func TestUpdateSpecialRequirements(t *testing.T) {
	service := NewCartService(nil)
	service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))

	service.UpdateSpecialRequirements("session:a", 1, "climate-controlled transport")

	items := service.GetCartItems("session:a")
	require.Len(t, items, 1)
	assert.Equal(t, "climate-controlled transport", items[0].SpecialRequirements)
}

func TestRemoveFromCart(t *testing.T) {
	service := NewCartService(nil)
	service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))
	service.AddToCart("session:a", testArtifact(2, "Huari Vessel", "MNA-CR-002"))

	service.RemoveFromCart("session:a", 1)
	// Removing an absent id is a no-op
	service.RemoveFromCart("session:a", 99)

	items := service.GetCartItems("session:a")
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ArtifactID)
}

func TestCartsAreIsolatedPerOwner(t *testing.T) {
	service := NewCartService(nil)

	service.AddToCart("user:1", testArtifact(1, "Paracas Mantle", "AM-TX-001"))
	service.AddToCart("session:a", testArtifact(2, "Huari Vessel", "MNA-CR-002"))

	assert.Len(t, service.GetCartItems("user:1"), 1)
	assert.Len(t, service.GetCartItems("session:a"), 1)
	assert.Equal(t, 1, service.GetCartItems("user:1")[0].ArtifactID)
}

func TestSubmitCart(t *testing.T) {
	submitter := &recordingSubmitter{}
	service := NewCartService(submitter)
	service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))

	err := service.SubmitCart("session:a", models.ResearcherInfo{
		FullName:    "Dr. Quispe",
		Institution: "UNMSM",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, submitter.calls)
	assert.Len(t, submitter.items, 1)
	assert.Empty(t, service.GetCartItems("session:a"), "submission must clear the cart")
}

func TestSubmitCartRejectsEmptyCart(t *testing.T) {
	submitter := &recordingSubmitter{}
	service := NewCartService(submitter)

	err := service.SubmitCart("session:a", models.ResearcherInfo{FullName: "Dr. Quispe"})

	require.Error(t, err)
	assert.Equal(t, 0, submitter.calls)
}

func TestSubmitCartRejectsMissingResearcherName(t *testing.T) {
	submitter := &recordingSubmitter{}
	service := NewCartService(submitter)
	service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))

	err := service.SubmitCart("session:a", models.ResearcherInfo{FullName: "  "})

	require.Error(t, err)
	assert.Equal(t, 0, submitter.calls)
	assert.Len(t, service.GetCartItems("session:a"), 1, "cart must be left unchanged")
}

func TestSubmitCartKeepsCartOnSubmitterFailure(t *testing.T) {
	submitter := &recordingSubmitter{err: errors.New("request service unavailable")}
	service := NewCartService(submitter)
	service.AddToCart("session:a", testArtifact(1, "Paracas Mantle", "AM-TX-001"))

	err := service.SubmitCart("session:a", models.ResearcherInfo{FullName: "Dr. Quispe"})

	require.Error(t, err)
	assert.Len(t, service.GetCartItems("session:a"), 1)
}
