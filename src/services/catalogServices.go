package services

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MuseoAndino/Catalogue-Backend/src/dtos"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type ImportResult struct {
	Imported int
	Errors   []string
}

// CatalogService serves the artifact reference data. The catalogue changes
// only through seeding or bulk import, so reads are cached aggressively.
type CatalogService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	service := &CatalogService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *CatalogService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *CatalogService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *CatalogService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *CatalogService) invalidateCache() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache = make(map[string]*CacheEntry)
}

// GetAllArtifacts retrieves the full catalogue in insertion order.
func (s *CatalogService) GetAllArtifacts() ([]models.ArtifactModel, error) {
	cacheKey := "all_artifacts"

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]models.ArtifactModel), nil
	}

	var artifacts []models.ArtifactModel
	if err := s.db.Order("id").Find(&artifacts).Error; err != nil {
		return nil, err
	}

	s.setCache(cacheKey, artifacts, 5*time.Minute)

	return artifacts, nil
}

// GetArtifactByID retrieves a single artifact record.
func (s *CatalogService) GetArtifactByID(id int) (*models.ArtifactModel, error) {
	cacheKey := fmt.Sprintf("artifact_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		artifact := cached.(models.ArtifactModel)
		return &artifact, nil
	}

	var artifact models.ArtifactModel
	if err := s.db.First(&artifact, id).Error; err != nil {
		return nil, err
	}

	s.setCache(cacheKey, artifact, 10*time.Minute)

	return &artifact, nil
}

// Search runs the filter/sort engine over the catalogue and returns the
// matching artifacts in sort order.
func (s *CatalogService) Search(query string, filters models.FilterSet, sortKey models.SortKey) ([]models.ArtifactModel, error) {
	artifacts, err := s.GetAllArtifacts()
	if err != nil {
		return nil, err
	}

	matched := FilterArtifacts(artifacts, query, filters)
	return SortArtifacts(matched, sortKey), nil
}

// GetArtifactSummaries returns the lightweight card view of the catalogue.
func (s *CatalogService) GetArtifactSummaries() ([]dtos.ArtifactSummaryDTO, error) {
	cacheKey := "artifact_summaries"

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]dtos.ArtifactSummaryDTO), nil
	}

	artifacts, err := s.GetAllArtifacts()
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.ArtifactSummaryDTO, 0, len(artifacts))
	for _, artifact := range artifacts {
		summaries = append(summaries, dtos.ArtifactSummaryDTO{
			ID:              artifact.ID,
			Title:           artifact.Title,
			Category:        artifact.Category,
			Culture:         artifact.Culture,
			Period:          artifact.Period,
			Material:        artifact.Material,
			ImageURL:        artifact.ImageURL,
			AccessionNumber: artifact.AccessionNumber,
			Condition:       artifact.Condition,
		})
	}

	s.setCache(cacheKey, summaries, 5*time.Minute)

	return summaries, nil
}

// ImportArtifactsFromExcel loads catalogue rows from the "Catalogue" sheet.
// Columns: title, category, period, culture, material, dimensions, location,
// description, accession number, date acquired, condition. Rows without a
// title are skipped; per-row failures are collected, not fatal.
func (s *CatalogService) ImportArtifactsFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Catalogue")
	if err != nil {
		return nil, fmt.Errorf("could not read the Catalogue sheet: %w", err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	for i, row := range rows {
		title := cell(row, 0)
		if title == "" {
			continue
		}
		// Header row
		if i == 0 && strings.EqualFold(title, "title") {
			continue
		}

		artifact := models.ArtifactModel{
			Title:           title,
			Category:        cell(row, 1),
			Period:          cell(row, 2),
			Culture:         cell(row, 3),
			Material:        cell(row, 4),
			Dimensions:      cell(row, 5),
			Location:        cell(row, 6),
			Description:     cell(row, 7),
			AccessionNumber: cell(row, 8),
			DateAcquired:    cell(row, 9),
			Condition:       cell(row, 10),
		}

		if err := s.db.Create(&artifact).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		result.Imported++
	}

	s.invalidateCache()

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, fmt.Errorf("no artifacts could be imported")
	}

	return result, nil
}
