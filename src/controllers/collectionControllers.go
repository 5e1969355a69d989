package controllers

import (
	"strconv"

	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	service        *services.CollectionService
	catalogService *services.CatalogService
}

func NewCollectionController(service *services.CollectionService, catalogService *services.CatalogService) *CollectionController {
	return &CollectionController{service: service, catalogService: catalogService}
}

func (cc *CollectionController) store(c *gin.Context) services.BookmarkStore {
	return cc.service.StoreFor(middleware.CurrentUserID(c))
}

func (cc *CollectionController) GetBookmarks(c *gin.Context) {
	entries, err := cc.store(c).ListBookmarks()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, entries)
}

func (cc *CollectionController) GetBookmarkStatus(c *gin.Context) {
	artifactID, err := strconv.Atoi(c.Param("artifactId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	bookmarked, err := cc.store(c).IsBookmarked(artifactID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"bookmarked": bookmarked})
}

type bookmarkRequest struct {
	ArtifactID     int    `json:"artifactId"`
	CollectionName string `json:"collectionName"`
	Notes          string `json:"notes"`
}

func (cc *CollectionController) AddBookmark(c *gin.Context) {
	var body bookmarkRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	artifact, err := cc.catalogService.GetArtifactByID(body.ArtifactID)
	if err != nil {
		c.JSON(404, gin.H{"error": "Artifact not found"})
		return
	}

	if err := cc.store(c).AddBookmark(artifact, body.CollectionName, body.Notes); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, gin.H{"bookmarked": true})
}

func (cc *CollectionController) RemoveBookmark(c *gin.Context) {
	artifactID, err := strconv.Atoi(c.Param("artifactId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := cc.store(c).RemoveBookmark(artifactID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"bookmarked": false})
}

// ToggleBookmark flips bookmark membership for the artifact.
func (cc *CollectionController) ToggleBookmark(c *gin.Context) {
	var body bookmarkRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	store := cc.store(c)
	bookmarked, err := store.IsBookmarked(body.ArtifactID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if bookmarked {
		if err := store.RemoveBookmark(body.ArtifactID); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"bookmarked": false})
		return
	}

	artifact, err := cc.catalogService.GetArtifactByID(body.ArtifactID)
	if err != nil {
		c.JSON(404, gin.H{"error": "Artifact not found"})
		return
	}
	if err := store.AddBookmark(artifact, body.CollectionName, body.Notes); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"bookmarked": true})
}
