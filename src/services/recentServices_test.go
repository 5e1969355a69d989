package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordViewNewestFirst(t *testing.T) {
	service := NewRecentService(openTestLocalStore(t))

	require.NoError(t, service.RecordView(testArtifact(1, "Paracas Mantle", "AM-TX-001")))
	require.NoError(t, service.RecordView(testArtifact(2, "Huari Vessel", "MNA-CR-002")))

	entries, err := service.GetRecentlyViewed()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].ArtifactID)
	assert.Equal(t, 1, entries[1].ArtifactID)
}

func TestRecordViewMovesRepeatToFront(t *testing.T) {
	service := NewRecentService(openTestLocalStore(t))

	require.NoError(t, service.RecordView(testArtifact(1, "Paracas Mantle", "AM-TX-001")))
	require.NoError(t, service.RecordView(testArtifact(2, "Huari Vessel", "MNA-CR-002")))
	require.NoError(t, service.RecordView(testArtifact(1, "Paracas Mantle", "AM-TX-001")))

	entries, err := service.GetRecentlyViewed()
	require.NoError(t, err)
	require.Len(t, entries, 2, "re-viewing must not duplicate")
	assert.Equal(t, 1, entries[0].ArtifactID)
}

func TestRecordViewCapsList(t *testing.T) {
	service := NewRecentService(openTestLocalStore(t))

	for i := 1; i <= recentLimit+3; i++ {
		require.NoError(t, service.RecordView(testArtifact(i, fmt.Sprintf("Artifact %d", i), fmt.Sprintf("AC-%03d", i))))
	}

	entries, err := service.GetRecentlyViewed()
	require.NoError(t, err)
	require.Len(t, entries, recentLimit)
	assert.Equal(t, recentLimit+3, entries[0].ArtifactID)
}

func TestClearRecentlyViewed(t *testing.T) {
	service := NewRecentService(openTestLocalStore(t))

	require.NoError(t, service.RecordView(testArtifact(1, "Paracas Mantle", "AM-TX-001")))
	require.NoError(t, service.ClearRecentlyViewed())

	entries, err := service.GetRecentlyViewed()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
