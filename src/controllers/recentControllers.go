package controllers

import (
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type RecentController struct {
	service *services.RecentService
}

func NewRecentController(service *services.RecentService) *RecentController {
	return &RecentController{service: service}
}

func (rc *RecentController) GetRecentlyViewed(c *gin.Context) {
	entries, err := rc.service.GetRecentlyViewed()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, entries)
}

func (rc *RecentController) ClearRecentlyViewed(c *gin.Context) {
	if err := rc.service.ClearRecentlyViewed(); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Recently viewed cleared"})
}
