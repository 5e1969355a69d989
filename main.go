package main

import (
	"log"
	"os"

	"github.com/MuseoAndino/Catalogue-Backend/src/db"
	"github.com/MuseoAndino/Catalogue-Backend/src/localstore"
	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/MuseoAndino/Catalogue-Backend/src/routes"
	"github.com/MuseoAndino/Catalogue-Backend/src/seed"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.ArtifactModel{},
		&models.UserModel{},
		&models.UserPreferenceModel{},
		&models.CollectionEntryModel{},
		&models.SearchHistoryModel{},
		&models.SavedSearchModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))

	// Seed reference data
	seed.Seed(db)

	// Anonymous-mode local store
	localPath := os.Getenv("LOCAL_STORE_PATH")
	if localPath == "" {
		localPath = "data/localstore.json"
	}
	local, err := localstore.Open(localPath)
	if err != nil {
		log.Fatalf("Error opening local store at %s: %v\n", localPath, err)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	catalogService := services.NewCatalogService(db)
	searchService := services.NewSearchService(db, local)
	recentService := services.NewRecentService(local)
	cartService := services.NewCartService(services.LogSubmitter{})
	collectionService := services.NewCollectionService(db, local)
	userService := services.NewUserService(db)

	// Routes setup
	routes.SetupCatalogRoutes(router, catalogService, searchService, recentService)
	routes.SetupCartRoutes(router, cartService, catalogService)
	routes.SetupCollectionRoutes(router, collectionService, catalogService)
	routes.SetupSearchRoutes(router, searchService)
	routes.SetupRecentRoutes(router, recentService)
	routes.SetupUserRoutes(router, userService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Museo Andino catalogue API")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
