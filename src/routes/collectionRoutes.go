package routes

import (
	"github.com/MuseoAndino/Catalogue-Backend/src/controllers"
	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCollectionRoutes(router *gin.Engine, service *services.CollectionService, catalogService *services.CatalogService) {
	controller := controllers.NewCollectionController(service, catalogService)

	collectionGroup := router.Group("/collections")
	collectionGroup.Use(middleware.OptionalAuthMiddleware())
	{
		collectionGroup.GET("", controller.GetBookmarks)
		collectionGroup.GET("/status/:artifactId", controller.GetBookmarkStatus)
		collectionGroup.POST("", controller.AddBookmark)
		collectionGroup.POST("/toggle", controller.ToggleBookmark)
		collectionGroup.DELETE("/:artifactId", controller.RemoveBookmark)
	}
}
