package routes

import (
	"github.com/MuseoAndino/Catalogue-Backend/src/controllers"
	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(router *gin.Engine, service *services.CartService, catalogService *services.CatalogService) {
	controller := controllers.NewCartController(service, catalogService)

	cartGroup := router.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware())
	{
		cartGroup.GET("", controller.GetCart)
		cartGroup.POST("/items", controller.AddToCart)
		cartGroup.DELETE("/items/:artifactId", controller.RemoveFromCart)
		cartGroup.PUT("/items/:artifactId/period", controller.UpdateRentalPeriod)
		cartGroup.PUT("/items/:artifactId/requirements", controller.UpdateSpecialRequirements)
		cartGroup.DELETE("", controller.ClearCart)
		cartGroup.POST("/submit", controller.SubmitCart)
	}
}
