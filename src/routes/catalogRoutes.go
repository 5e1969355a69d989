package routes

import (
	"github.com/MuseoAndino/Catalogue-Backend/src/controllers"
	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(router *gin.Engine, service *services.CatalogService, searchService *services.SearchService, recentService *services.RecentService) {
	controller := controllers.NewCatalogController(service, searchService, recentService)

	// Public catalogue, with optional auth for history recording
	artifactGroup := router.Group("/artifacts")
	artifactGroup.Use(middleware.OptionalAuthMiddleware())
	{
		artifactGroup.GET("", controller.GetArtifacts)
		artifactGroup.GET("/summaries", controller.GetArtifactSummaries)
		artifactGroup.GET("/:id", controller.GetArtifactByID)
	}

	// Bulk import is admin-only
	adminGroup := router.Group("/artifacts")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("/import", controller.ImportArtifacts)
	}
}
