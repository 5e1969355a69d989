package routes

import (
	"github.com/MuseoAndino/Catalogue-Backend/src/controllers"
	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSearchRoutes(router *gin.Engine, service *services.SearchService) {
	controller := controllers.NewSearchController(service)

	// History exists only for authenticated users
	historyGroup := router.Group("/searches/history")
	historyGroup.Use(middleware.AuthMiddleware())
	{
		historyGroup.GET("", controller.GetHistory)
		historyGroup.DELETE("", controller.ClearHistory)
	}

	// Saved searches fall back to the local store for anonymous users
	savedGroup := router.Group("/searches/saved")
	savedGroup.Use(middleware.OptionalAuthMiddleware())
	{
		savedGroup.GET("", controller.GetSavedSearches)
		savedGroup.POST("", controller.SaveSearch)
		savedGroup.DELETE("/:id", controller.DeleteSavedSearch)
	}
}
