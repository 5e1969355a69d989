package models

import "time"

type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// UserPreferenceModel holds per-user catalogue preferences. A row with
// defaults is created lazily on first read.
type UserPreferenceModel struct {
	ID                 int        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID             int        `json:"userId" gorm:"column:user_id;not null;uniqueIndex"`
	DefaultLanguage    string     `json:"defaultLanguage" gorm:"column:default_language;type:varchar(10);not null"`
	PreferredViewMode  ViewMode   `json:"preferredViewMode" gorm:"column:preferred_view_mode;type:varchar(10);not null"`
	EmailNotifications bool       `json:"emailNotifications" gorm:"column:email_notifications;not null"`
	ResearchAreas      StringList `json:"researchAreas" gorm:"column:research_areas;type:text"`
	CreatedAt          time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}
