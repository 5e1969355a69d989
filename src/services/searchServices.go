package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MuseoAndino/Catalogue-Backend/src/localstore"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// historyLimit caps the per-user search history kept in the row store.
const historyLimit = 50

type SearchService struct {
	db    *gorm.DB
	local *localstore.Store
}

// NewSearchService creates a new instance of SearchService
func NewSearchService(db *gorm.DB, local *localstore.Store) *SearchService {
	return &SearchService{db: db, local: local}
}

// RecordSearch appends a history entry for an executed search and trims the
// history to the newest entries. Blank queries are not recorded.
func (s *SearchService) RecordSearch(userID int, query string, filters models.FilterSet, resultsCount int) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	entry := models.SearchHistoryModel{
		UserID:       userID,
		SearchQuery:  query,
		SearchFilter: filters,
		ResultsCount: resultsCount,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return err
	}

	// Trim anything beyond the newest historyLimit entries.
	var staleIDs []int
	err := s.db.Model(&models.SearchHistoryModel{}).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Offset(historyLimit).
		Limit(historyLimit).
		Pluck("id", &staleIDs).Error
	if err != nil {
		return err
	}
	if len(staleIDs) > 0 {
		return s.db.Delete(&models.SearchHistoryModel{}, staleIDs).Error
	}
	return nil
}

// GetSearchHistory retrieves the user's history, newest first.
func (s *SearchService) GetSearchHistory(userID int) ([]models.SearchHistoryModel, error) {
	var history []models.SearchHistoryModel
	result := s.db.Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(historyLimit).
		Find(&history)
	if result.Error != nil {
		return nil, result.Error
	}
	return history, nil
}

// ClearHistory deletes the user's entire search history.
func (s *SearchService) ClearHistory(userID int) error {
	result := s.db.Where("user_id = ?", userID).Delete(&models.SearchHistoryModel{})
	return result.Error
}

// SaveSearch persists a named query + filter snapshot. Blank names and
// blank queries are rejected before any store call.
func (s *SearchService) SaveSearch(userID int, name, query string, filters models.FilterSet) (*models.SavedSearchModel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("search name is required")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query is required")
	}

	saved := models.SavedSearchModel{
		UserID:       userID,
		SearchName:   name,
		SearchQuery:  query,
		SearchFilter: filters,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.db.Create(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetSavedSearches retrieves the user's saved searches, newest first.
func (s *SearchService) GetSavedSearches(userID int) ([]models.SavedSearchModel, error) {
	var searches []models.SavedSearchModel
	result := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&searches)
	if result.Error != nil {
		return nil, result.Error
	}
	return searches, nil
}

// DeleteSavedSearch removes a saved search owned by the user.
func (s *SearchService) DeleteSavedSearch(userID, searchID int) error {
	result := s.db.Where("user_id = ? AND id = ?", userID, searchID).
		Delete(&models.SavedSearchModel{})
	return result.Error
}

// ===================== Anonymous local-store variant =====================

func (s *SearchService) localSavedSearches() ([]models.LocalSavedSearch, error) {
	var searches []models.LocalSavedSearch
	if _, err := s.local.Get(localstore.SavedSearchesKey, &searches); err != nil {
		return nil, err
	}
	return searches, nil
}

// SaveSearchLocal stores a saved search in the anonymous local store,
// together with the denormalized period range used by the save preview.
func (s *SearchService) SaveSearchLocal(name, query string, filters models.FilterSet) (*models.LocalSavedSearch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("search name is required")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query is required")
	}

	searches, err := s.localSavedSearches()
	if err != nil {
		return nil, err
	}

	start, _ := strconv.Atoi(filters.PeriodStart)
	end, _ := strconv.Atoi(filters.PeriodEnd)

	saved := models.LocalSavedSearch{
		ID:          uuid.NewString(),
		Name:        name,
		Query:       query,
		Filters:     filters,
		PeriodRange: models.PeriodRange{Start: start, End: end},
		CreatedAt:   time.Now(),
	}

	if err := s.local.Put(localstore.SavedSearchesKey, append(searches, saved)); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetSavedSearchesLocal retrieves the anonymous saved searches.
func (s *SearchService) GetSavedSearchesLocal() ([]models.LocalSavedSearch, error) {
	return s.localSavedSearches()
}

// DeleteSavedSearchLocal removes an anonymous saved search by id; absent
// ids are a no-op.
func (s *SearchService) DeleteSavedSearchLocal(id string) error {
	searches, err := s.localSavedSearches()
	if err != nil {
		return err
	}

	kept := make([]models.LocalSavedSearch, 0, len(searches))
	for _, saved := range searches {
		if saved.ID != id {
			kept = append(kept, saved)
		}
	}
	if len(kept) == len(searches) {
		return nil
	}
	return s.local.Put(localstore.SavedSearchesKey, kept)
}
