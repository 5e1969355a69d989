package routes

import (
	"github.com/MuseoAndino/Catalogue-Backend/src/controllers"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupRecentRoutes(router *gin.Engine, service *services.RecentService) {
	controller := controllers.NewRecentController(service)

	recentGroup := router.Group("/recently-viewed")
	{
		recentGroup.GET("", controller.GetRecentlyViewed)
		recentGroup.DELETE("", controller.ClearRecentlyViewed)
	}
}
