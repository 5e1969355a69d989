package controllers

import (
	"strings"

	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/MuseoAndino/Catalogue-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (uc *UserController) Register(c *gin.Context) {
	var signup models.SignupRequest
	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(signup.Username) == "" {
		c.JSON(400, gin.H{"error": "Username is required"})
		return
	}
	if signup.Password == "" {
		c.JSON(400, gin.H{"error": "Password is required"})
		return
	}
	if signup.Password != signup.ConfirmPassword {
		c.JSON(400, gin.H{"error": "Passwords do not match"})
		return
	}

	user, err := uc.service.CreateUser(&signup)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, models.RegisterResponse{
		ID:          user.Id,
		Username:    user.Username,
		FullName:    user.FullName,
		Institution: user.Institution,
	})
}

func (uc *UserController) Login(c *gin.Context) {
	var login models.LoginRequest
	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	token, err := uc.service.AuthenticateUser(login.Username, login.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"token": token})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.service.GetUserByID(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	c.JSON(200, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var update models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.service.UpdateProfile(middleware.CurrentUserID(c), &update)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, user)
}

func (uc *UserController) GetPreferences(c *gin.Context) {
	prefs, err := uc.service.GetPreferences(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, prefs)
}

func (uc *UserController) UpdatePreferences(c *gin.Context) {
	var prefs models.UserPreferenceModel
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if prefs.PreferredViewMode != models.ViewModeGrid && prefs.PreferredViewMode != models.ViewModeList {
		c.JSON(400, gin.H{"error": "preferredViewMode must be grid or list"})
		return
	}

	updated, err := uc.service.UpdatePreferences(middleware.CurrentUserID(c), &prefs)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, updated)
}
