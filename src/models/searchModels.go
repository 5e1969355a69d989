package models

import "time"

// SearchHistoryModel records one executed catalogue search. History is
// fire-and-forget and trimmed to the newest 50 entries per user.
type SearchHistoryModel struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       int       `json:"userId" gorm:"column:user_id;not null;index"`
	SearchQuery  string    `json:"searchQuery" gorm:"column:search_query;type:varchar(255);not null"`
	SearchFilter FilterSet `json:"searchFilters" gorm:"column:search_filters;type:text"`
	ResultsCount int       `json:"resultsCount" gorm:"column:results_count;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
}

// SavedSearchModel is a named query + filter snapshot a user can re-apply.
type SavedSearchModel struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       int       `json:"userId" gorm:"column:user_id;not null;index"`
	SearchName   string    `json:"searchName" gorm:"column:search_name;type:varchar(100);not null"`
	SearchQuery  string    `json:"searchQuery" gorm:"column:search_query;type:varchar(255);not null"`
	SearchFilter FilterSet `json:"searchFilters" gorm:"column:search_filters;type:text"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// PeriodRange is the denormalized period snapshot kept by the anonymous
// local store for the save-confirmation preview.
type PeriodRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// LocalSavedSearch is the anonymous-mode saved search, stored as a JSON
// array in the local key-value store.
type LocalSavedSearch struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Query       string      `json:"query"`
	Filters     FilterSet   `json:"filters"`
	PeriodRange PeriodRange `json:"periodRange"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// RecentlyViewedEntry is one item of the capped anonymous recently-viewed
// list: an artifact snapshot plus the view timestamp.
type RecentlyViewedEntry struct {
	ArtifactID      int       `json:"artifactId"`
	Title           string    `json:"title"`
	AccessionNumber string    `json:"accessionNumber"`
	ImageURL        string    `json:"imageUrl"`
	ViewedAt        time.Time `json:"viewedAt"`
}
