package models

import "time"

const DefaultCollectionName = "My Bookmarks"

// CollectionEntryModel is a user's bookmark of a catalogue artifact.
// (UserID, ArtifactID) is unique; toggling removes the row instead of
// creating a duplicate.
type CollectionEntryModel struct {
	ID                      int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID                  int       `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_user_artifact"`
	ArtifactID              int       `json:"artifactId" gorm:"column:artifact_id;not null;uniqueIndex:idx_user_artifact"`
	ArtifactTitle           string    `json:"artifactTitle" gorm:"column:artifact_title;type:varchar(255);not null"`
	ArtifactAccessionNumber *string   `json:"artifactAccessionNumber" gorm:"column:artifact_accession_number;type:varchar(50)"`
	CollectionName          string    `json:"collectionName" gorm:"column:collection_name;type:varchar(100);not null"`
	Notes                   *string   `json:"notes" gorm:"type:text"`
	CreatedAt               time.Time `json:"createdAt" gorm:"column:created_at"`
}
