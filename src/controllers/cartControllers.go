package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	service        *services.CartService
	catalogService *services.CatalogService
}

func NewCartController(service *services.CartService, catalogService *services.CatalogService) *CartController {
	return &CartController{service: service, catalogService: catalogService}
}

// cartOwner resolves the cart key: the user id for authenticated requests,
// the X-Session-ID header for anonymous ones.
func cartOwner(c *gin.Context) (string, bool) {
	if userID := middleware.CurrentUserID(c); userID > 0 {
		return fmt.Sprintf("user:%d", userID), true
	}
	if session := strings.TrimSpace(c.GetHeader("X-Session-ID")); session != "" {
		return "session:" + session, true
	}
	return "", false
}

func (cc *CartController) GetCart(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		c.JSON(400, gin.H{"error": "X-Session-ID header is required for anonymous carts"})
		return
	}

	c.JSON(200, gin.H{
		"items": cc.service.GetCartItems(owner),
		"total": cc.service.GetTotalCost(owner),
	})
}

func (cc *CartController) AddToCart(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		c.JSON(400, gin.H{"error": "X-Session-ID header is required for anonymous carts"})
		return
	}

	var body struct {
		ArtifactID int `json:"artifactId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	artifact, err := cc.catalogService.GetArtifactByID(body.ArtifactID)
	if err != nil {
		c.JSON(404, gin.H{"error": "Artifact not found"})
		return
	}

	cc.service.AddToCart(owner, artifact)
	c.JSON(200, gin.H{"items": cc.service.GetCartItems(owner)})
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		c.JSON(400, gin.H{"error": "X-Session-ID header is required for anonymous carts"})
		return
	}

	artifactID, err := strconv.Atoi(c.Param("artifactId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	cc.service.RemoveFromCart(owner, artifactID)
	c.JSON(200, gin.H{"items": cc.service.GetCartItems(owner)})
}

func (cc *CartController) UpdateRentalPeriod(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		c.JSON(400, gin.H{"error": "X-Session-ID header is required for anonymous carts"})
		return
	}

	artifactID, err := strconv.Atoi(c.Param("artifactId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var period models.RentalPeriod
	if err := c.ShouldBindJSON(&period); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	cc.service.UpdateRentalPeriod(owner, artifactID, period)
	c.JSON(200, gin.H{"items": cc.service.GetCartItems(owner)})
}

func (cc *CartController) UpdateSpecialRequirements(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		c.JSON(400, gin.H{"error": "X-Session-ID header is required for anonymous carts"})
		return
	}

	artifactID, err := strconv.Atoi(c.Param("artifactId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var body struct {
		SpecialRequirements string `json:"specialRequirements"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	cc.service.UpdateSpecialRequirements(owner, artifactID, body.SpecialRequirements)
	c.JSON(200, gin.H{"items": cc.service.GetCartItems(owner)})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		c.JSON(400, gin.H{"error": "X-Session-ID header is required for anonymous carts"})
		return
	}

	cc.service.ClearCart(owner)
	c.JSON(200, gin.H{"message": "Cart cleared"})
}

func (cc *CartController) SubmitCart(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		c.JSON(400, gin.H{"error": "X-Session-ID header is required for anonymous carts"})
		return
	}

	var researcher models.ResearcherInfo
	if err := c.ShouldBindJSON(&researcher); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := cc.service.SubmitCart(owner, researcher); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Research request submitted"})
}
