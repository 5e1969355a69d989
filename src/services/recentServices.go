package services

import (
	"time"

	"github.com/MuseoAndino/Catalogue-Backend/src/localstore"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
)

// recentLimit caps the recently-viewed list.
const recentLimit = 10

// RecentService keeps the anonymous recently-viewed artifact list in the
// local store, newest first.
type RecentService struct {
	local *localstore.Store
}

// NewRecentService creates a new instance of RecentService
func NewRecentService(local *localstore.Store) *RecentService {
	return &RecentService{local: local}
}

func (s *RecentService) entries() ([]models.RecentlyViewedEntry, error) {
	var entries []models.RecentlyViewedEntry
	if _, err := s.local.Get(localstore.RecentlyViewedKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RecordView moves the artifact to the front of the list, dropping any
// previous entry for it and anything beyond the cap.
func (s *RecentService) RecordView(artifact *models.ArtifactModel) error {
	entries, err := s.entries()
	if err != nil {
		return err
	}

	updated := []models.RecentlyViewedEntry{{
		ArtifactID:      artifact.ID,
		Title:           artifact.Title,
		AccessionNumber: artifact.AccessionNumber,
		ImageURL:        artifact.ImageURL,
		ViewedAt:        time.Now(),
	}}
	for _, entry := range entries {
		if entry.ArtifactID == artifact.ID {
			continue
		}
		updated = append(updated, entry)
		if len(updated) == recentLimit {
			break
		}
	}

	return s.local.Put(localstore.RecentlyViewedKey, updated)
}

// GetRecentlyViewed retrieves the list, newest first.
func (s *RecentService) GetRecentlyViewed() ([]models.RecentlyViewedEntry, error) {
	return s.entries()
}

// ClearRecentlyViewed removes the whole list.
func (s *RecentService) ClearRecentlyViewed() error {
	return s.local.Delete(localstore.RecentlyViewedKey)
}
