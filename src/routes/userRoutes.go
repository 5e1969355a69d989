package routes

import (
	"github.com/MuseoAndino/Catalogue-Backend/src/controllers"
	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	router.POST("/users/register", controller.Register)
	router.POST("/users/login", controller.Login)

	meGroup := router.Group("/users/me")
	meGroup.Use(middleware.AuthMiddleware())
	{
		meGroup.GET("", controller.GetProfile)
		meGroup.PUT("", controller.UpdateProfile)
		meGroup.GET("/preferences", controller.GetPreferences)
		meGroup.PUT("/preferences", controller.UpdatePreferences)
	}
}
