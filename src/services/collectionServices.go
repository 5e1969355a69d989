package services

import (
	"errors"
	"time"

	"github.com/MuseoAndino/Catalogue-Backend/src/localstore"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"gorm.io/gorm"
)

// BookmarkStore is the bookmark contract shared by the authenticated
// (row-store) and anonymous (local-store) implementations. Adding an
// existing bookmark and removing an absent one are safe no-ops.
type BookmarkStore interface {
	ListBookmarks() ([]models.CollectionEntryModel, error)
	IsBookmarked(artifactID int) (bool, error)
	AddBookmark(artifact *models.ArtifactModel, collectionName, notes string) error
	RemoveBookmark(artifactID int) error
}

type CollectionService struct {
	db    *gorm.DB
	local *localstore.Store
}

// NewCollectionService creates a new instance of CollectionService
func NewCollectionService(db *gorm.DB, local *localstore.Store) *CollectionService {
	return &CollectionService{db: db, local: local}
}

// StoreFor selects the bookmark store by auth state: user rows for
// authenticated users, the local store otherwise.
func (s *CollectionService) StoreFor(userID int) BookmarkStore {
	if userID > 0 {
		return &userBookmarkStore{db: s.db, userID: userID}
	}
	return &localBookmarkStore{store: s.local}
}

// userBookmarkStore persists bookmarks as user_collections rows.
type userBookmarkStore struct {
	db     *gorm.DB
	userID int
}

func (s *userBookmarkStore) ListBookmarks() ([]models.CollectionEntryModel, error) {
	var entries []models.CollectionEntryModel
	result := s.db.Where("user_id = ?", s.userID).Order("created_at desc").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (s *userBookmarkStore) IsBookmarked(artifactID int) (bool, error) {
	var entry models.CollectionEntryModel
	err := s.db.Where("user_id = ? AND artifact_id = ?", s.userID, artifactID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *userBookmarkStore) AddBookmark(artifact *models.ArtifactModel, collectionName, notes string) error {
	exists, err := s.IsBookmarked(artifact.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if collectionName == "" {
		collectionName = models.DefaultCollectionName
	}

	entry := models.CollectionEntryModel{
		UserID:         s.userID,
		ArtifactID:     artifact.ID,
		ArtifactTitle:  artifact.Title,
		CollectionName: collectionName,
		CreatedAt:      time.Now(),
	}
	if artifact.AccessionNumber != "" {
		accession := artifact.AccessionNumber
		entry.ArtifactAccessionNumber = &accession
	}
	if notes != "" {
		entry.Notes = &notes
	}

	return s.db.Create(&entry).Error
}

func (s *userBookmarkStore) RemoveBookmark(artifactID int) error {
	result := s.db.Where("user_id = ? AND artifact_id = ?", s.userID, artifactID).
		Delete(&models.CollectionEntryModel{})
	return result.Error
}

// localBookmarkStore keeps an anonymous array of artifact ids under the
// artifact-bookmarks key. Reduced fidelity: no titles or notes survive a
// round-trip, matching the browser fallback.
type localBookmarkStore struct {
	store *localstore.Store
}

func (s *localBookmarkStore) ids() ([]int, error) {
	var ids []int
	if _, err := s.store.Get(localstore.BookmarksKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *localBookmarkStore) ListBookmarks() ([]models.CollectionEntryModel, error) {
	ids, err := s.ids()
	if err != nil {
		return nil, err
	}

	entries := make([]models.CollectionEntryModel, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, models.CollectionEntryModel{
			ArtifactID:     id,
			CollectionName: models.DefaultCollectionName,
		})
	}
	return entries, nil
}

func (s *localBookmarkStore) IsBookmarked(artifactID int) (bool, error) {
	ids, err := s.ids()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == artifactID {
			return true, nil
		}
	}
	return false, nil
}

func (s *localBookmarkStore) AddBookmark(artifact *models.ArtifactModel, collectionName, notes string) error {
	ids, err := s.ids()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == artifact.ID {
			return nil
		}
	}
	return s.store.Put(localstore.BookmarksKey, append(ids, artifact.ID))
}

func (s *localBookmarkStore) RemoveBookmark(artifactID int) error {
	ids, err := s.ids()
	if err != nil {
		return err
	}

	kept := make([]int, 0, len(ids))
	for _, id := range ids {
		if id != artifactID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return s.store.Put(localstore.BookmarksKey, kept)
}
