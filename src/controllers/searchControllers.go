package controllers

import (
	"strconv"

	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type SearchController struct {
	service *services.SearchService
}

func NewSearchController(service *services.SearchService) *SearchController {
	return &SearchController{service: service}
}

func (sc *SearchController) GetHistory(c *gin.Context) {
	history, err := sc.service.GetSearchHistory(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, history)
}

func (sc *SearchController) ClearHistory(c *gin.Context) {
	if err := sc.service.ClearHistory(middleware.CurrentUserID(c)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Search history cleared"})
}

type saveSearchRequest struct {
	Name    string           `json:"name"`
	Query   string           `json:"query"`
	Filters models.FilterSet `json:"filters"`
}

// SaveSearch persists a named search for the user, or in the anonymous
// local store when no user is signed in.
func (sc *SearchController) SaveSearch(c *gin.Context) {
	var body saveSearchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if userID := middleware.CurrentUserID(c); userID > 0 {
		saved, err := sc.service.SaveSearch(userID, body.Name, body.Query, body.Filters)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, saved)
		return
	}

	saved, err := sc.service.SaveSearchLocal(body.Name, body.Query, body.Filters)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, saved)
}

func (sc *SearchController) GetSavedSearches(c *gin.Context) {
	if userID := middleware.CurrentUserID(c); userID > 0 {
		searches, err := sc.service.GetSavedSearches(userID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, searches)
		return
	}

	searches, err := sc.service.GetSavedSearchesLocal()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, searches)
}

func (sc *SearchController) DeleteSavedSearch(c *gin.Context) {
	if userID := middleware.CurrentUserID(c); userID > 0 {
		searchID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid ID format"})
			return
		}
		if err := sc.service.DeleteSavedSearch(userID, searchID); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "Saved search deleted"})
		return
	}

	if err := sc.service.DeleteSavedSearchLocal(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Saved search deleted"})
}
