package controllers

import (
	"log"
	"strconv"
	"strings"

	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	service       *services.CatalogService
	searchService *services.SearchService
	recentService *services.RecentService
}

func NewCatalogController(service *services.CatalogService, searchService *services.SearchService, recentService *services.RecentService) *CatalogController {
	return &CatalogController{
		service:       service,
		searchService: searchService,
		recentService: recentService,
	}
}

// splitParam turns a comma-separated query parameter into a value set.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func parseFilters(c *gin.Context) models.FilterSet {
	filters := models.FilterSet{
		Cultures:    splitParam(c.Query("cultures")),
		Materials:   splitParam(c.Query("materials")),
		Conditions:  splitParam(c.Query("conditions")),
		PeriodStart: strings.TrimSpace(c.Query("periodStart")),
		PeriodEnd:   strings.TrimSpace(c.Query("periodEnd")),
		TagLogic:    models.TagLogicAny,
	}
	if c.Query("tagLogic") == string(models.TagLogicAll) {
		filters.TagLogic = models.TagLogicAll
	}
	return filters
}

// GetArtifacts runs a catalogue search from the query parameters and, for
// authenticated users, records it in the search history.
func (cc *CatalogController) GetArtifacts(c *gin.Context) {
	query := c.Query("q")
	filters := parseFilters(c)
	sortKey := models.SortKey(c.DefaultQuery("sort", string(models.SortRelevance)))

	artifacts, err := cc.service.Search(query, filters, sortKey)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	// Fire-and-forget: a history failure never fails the search.
	if userID := middleware.CurrentUserID(c); userID > 0 {
		if err := cc.searchService.RecordSearch(userID, query, filters, len(artifacts)); err != nil {
			log.Printf("Failed to record search for user %d: %v\n", userID, err)
		}
	}

	c.JSON(200, artifacts)
}

// GetArtifactByID serves an artifact detail view and records it in the
// recently-viewed list.
func (cc *CatalogController) GetArtifactByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	artifact, err := cc.service.GetArtifactByID(id)
	if err != nil {
		c.JSON(404, gin.H{"error": "Artifact not found"})
		return
	}

	if err := cc.recentService.RecordView(artifact); err != nil {
		log.Printf("Failed to record view of artifact %d: %v\n", id, err)
	}

	c.JSON(200, artifact)
}

func (cc *CatalogController) GetArtifactSummaries(c *gin.Context) {
	summaries, err := cc.service.GetArtifactSummaries()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, summaries)
}

// ImportArtifacts bulk-loads catalogue rows from an uploaded Excel file.
func (cc *CatalogController) ImportArtifacts(c *gin.Context) {
	file, _, err := c.Request.FormFile("catalogue")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := cc.service.ImportArtifactsFromExcel(file)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"imported": result.Imported,
		"errors":   result.Errors,
	})
}
